package models

import "time"

type OrderItem struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OrderID uint `gorm:"not null" json:"order_id"`
	// Omitting Order field from JSON to avoid recursive nesting
	Order      Order    `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	MenuItemID uint     `gorm:"not null" json:"menu_item_id"`
	MenuItem   MenuItem `gorm:"foreignKey:MenuItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Quantity   int      `gorm:"not null" json:"quantity"`
	// UnitPrice and LineTotal snapshot the menu item price at order
	// time; later price edits must not touch past orders.
	UnitPrice float64   `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	LineTotal float64   `gorm:"type:decimal(10,2);not null" json:"line_total"`
	CreatedAt time.Time `json:"created_at"`
}
