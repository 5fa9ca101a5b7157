package models

import "time"

type MenuItem struct {
	ID           uint     `gorm:"primaryKey"`
	RestaurantID uint     `gorm:"not null;index"`
	CategoryID   uint     `gorm:"not null"`
	Category     Category `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Name         string   `gorm:"type:varchar(100);not null"`
	Description  *string  `gorm:"type:text"`
	Price        float64  `gorm:"type:decimal(10,2);not null"`
	Currency     string   `gorm:"type:varchar(10);default:'TRY'"`
	ImageURL     *string  `gorm:"type:varchar(255)"`
	SortOrder    int      `gorm:"default:0"`
	IsActive     bool     `gorm:"default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
