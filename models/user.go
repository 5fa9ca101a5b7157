package models

import "time"

type User struct {
	ID           uint       `gorm:"primaryKey"`
	RestaurantID uint       `gorm:"not null;index"`
	Restaurant   Restaurant `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Email        string     `gorm:"type:varchar(120);unique;not null"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	Role         string     `gorm:"type:varchar(20);default:'owner'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
