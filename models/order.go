package models

import "time"

type Order struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	RestaurantID uint        `gorm:"not null;index" json:"restaurant_id"`
	Restaurant   Restaurant  `gorm:"foreignKey:RestaurantID" json:"-"`
	TableNumber  int         `gorm:"not null" json:"table_number"`
	Status       string      `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	TotalAmount  float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"total_amount"`
	Note         string      `gorm:"type:text" json:"note"`
	CreatedAt    time.Time   `gorm:"not null" json:"created_at"`
	Items        []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

// Order statuses. The workflow is deliberately permissive: staff may
// move an order from any status to any other member of this set.
const (
	OrderPending   = "PENDING"
	OrderAccepted  = "ACCEPTED"
	OrderPreparing = "PREPARING"
	OrderReady     = "READY"
	OrderServed    = "SERVED"
	OrderCancelled = "CANCELLED"
)

var ValidOrderStatuses = map[string]bool{
	OrderPending:   true,
	OrderAccepted:  true,
	OrderPreparing: true,
	OrderReady:     true,
	OrderServed:    true,
	OrderCancelled: true,
}
