package repository

import (
	"context"
	"time"

	"storefront/internal/domain/model"
)

type AdminOrderListFilter struct {
	Page    int
	Limit   int
	Status  string
	UserID  *int64
	From    *time.Time // inclusive
	To      *time.Time // exclusive
}

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	ListByUserID(ctx context.Context, userID int64) ([]model.Order, error)
	ListAdmin(ctx context.Context, f AdminOrderListFilter) ([]model.Order, int64, error)
	Create(ctx context.Context, order model.Order) (int64, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
	// SetPaymentProof stores the uploaded proof filename and moves the
	// order forward in one write.
	SetPaymentProof(ctx context.Context, orderID int64, filename string, status model.OrderStatus) error
	// SetTracking records the tracking number together with the status
	// change to keep the shipping transition a single write.
	SetTracking(ctx context.Context, orderID int64, trackingNumber string, status model.OrderStatus) error
}
