package models

import "time"

type Category struct {
	ID           uint       `gorm:"primaryKey"`
	RestaurantID uint       `gorm:"not null;index"`
	Restaurant   Restaurant `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Name         string     `gorm:"type:varchar(100);not null"`
	SortOrder    int        `gorm:"default:0"`
	IsActive     bool       `gorm:"default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
