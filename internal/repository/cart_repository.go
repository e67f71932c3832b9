package repository

import (
	"context"

	"storefront/internal/domain/model"
)

// CartRepository stores pending cart rows, one per
// (user, product, size, color) combination.
type CartRepository interface {
	ListByUserID(ctx context.Context, userID int64) ([]model.CartItem, error)
	FindByID(ctx context.Context, cartItemID int64) (model.CartItem, error)
	FindByVariant(ctx context.Context, userID, productID int64, size, color string) (model.CartItem, error)
	Create(ctx context.Context, item model.CartItem) (model.CartItem, error)
	UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) error
	DeleteByID(ctx context.Context, cartItemID int64) error
	// DeleteByUserID clears the whole cart (explicit clear and
	// successful checkout).
	DeleteByUserID(ctx context.Context, userID int64) error
	// CountByUserID sums quantities for the header badge.
	CountByUserID(ctx context.Context, userID int64) (int64, error)
}
