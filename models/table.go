package models

import "time"

type Table struct {
	ID           uint       `gorm:"primaryKey"`
	RestaurantID uint       `gorm:"not null;index"`
	Restaurant   Restaurant `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Name         string     `gorm:"type:varchar(50);not null"`
	Token        string     `gorm:"type:varchar(64);unique"`
	IsActive     bool       `gorm:"default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
