package model

import "time"

// ProductReview is a 1-5 rating a customer leaves while completing an
// order. Unique per (user, product, order); resubmitting updates the
// rating in place.
type ProductReview struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_review_user_product_order" json:"user_id"`
	ProductID int64     `gorm:"not null;uniqueIndex:idx_review_user_product_order;index" json:"product_id"`
	OrderID   int64     `gorm:"not null;uniqueIndex:idx_review_user_product_order" json:"order_id"`
	Rating    int64     `gorm:"not null" json:"rating"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
