package models

import "time"

type Restaurant struct {
	ID           uint    `gorm:"primaryKey"`
	Name         string  `gorm:"type:varchar(100);not null"`
	Slug         string  `gorm:"type:varchar(100);unique;not null"`
	ThemeColor   string  `gorm:"type:varchar(20);default:'#e11d48'"`
	WifiSSID     *string `gorm:"type:varchar(100)"`
	WifiPassword *string `gorm:"type:varchar(100)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
