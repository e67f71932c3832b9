package model

import "time"

// OrderItem is a frozen snapshot of a cart item at checkout time,
// decoupled from any later product edits. Rows are never mutated.
type OrderItem struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID     int64     `gorm:"not null;index" json:"order_id"`
	ProductID   int64     `gorm:"not null;index" json:"product_id"`
	ProductName string    `gorm:"type:varchar(255);not null" json:"product_name"`
	Quantity    int64     `gorm:"not null" json:"quantity"`
	UnitPrice   int64     `gorm:"column:unit_price;not null" json:"price"`
	TotalPrice  int64     `gorm:"not null" json:"total_price"`
	Size        string    `gorm:"type:varchar(50)" json:"size"`
	Color       string    `gorm:"type:varchar(50)" json:"color"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
