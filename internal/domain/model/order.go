package model

import "time"

type OrderStatus string

// Status values are stored as-is; "shiping" keeps the historical
// spelling used by existing rows and clients.
const (
	OrderStatusWaiting    OrderStatus = "waiting"
	OrderStatusChecking   OrderStatus = "checking"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShiping    OrderStatus = "shiping"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

type PaymentMethod string

const (
	PaymentMethodQris           PaymentMethod = "qris"
	PaymentMethodDigitalWallet  PaymentMethod = "digital_wallet"
	PaymentMethodCashOnDelivery PaymentMethod = "cash_on_delivery"
)

// Terminal reports whether no further transition may leave s.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// InitialStatus returns the state a fresh order starts in. Cash on
// delivery needs no payment confirmation, so it skips straight to
// processing; prepaid orders wait for a payment proof.
func (m PaymentMethod) InitialStatus() OrderStatus {
	if m == PaymentMethodCashOnDelivery {
		return OrderStatusProcessing
	}
	return OrderStatusWaiting
}

type Order struct {
	ID             int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         int64         `gorm:"not null;index" json:"user_id"`
	Name           string        `gorm:"type:varchar(255);not null" json:"name"`
	Address        string        `gorm:"type:varchar(255);not null" json:"address"`
	Village        string        `gorm:"type:varchar(255);not null" json:"village"`
	District       string        `gorm:"type:varchar(255);not null" json:"district"`
	City           string        `gorm:"type:varchar(255);not null" json:"city"`
	Province       string        `gorm:"type:varchar(255);not null" json:"province"`
	Phone          string        `gorm:"type:varchar(30);not null" json:"phone"`
	Note           string        `gorm:"type:text" json:"note"`
	TotalPrice     int64         `gorm:"not null" json:"total_price"`
	PaymentMethod  PaymentMethod `gorm:"type:varchar(30);not null" json:"payment_method"`
	PaymentProof   string        `gorm:"type:varchar(255)" json:"payment_proof"`
	ShippingMethod string        `gorm:"type:varchar(50)" json:"shipping_method"`
	ShippingCost   int64         `gorm:"not null;default:0" json:"shipping_cost"`
	TrackingNumber string        `gorm:"type:varchar(100)" json:"tracking_number"`
	Status         OrderStatus   `gorm:"type:varchar(20);not null;index" json:"status"`
	CreatedAt      time.Time     `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time     `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
