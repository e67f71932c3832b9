package repository

import (
	"context"

	"storefront/internal/domain/model"
)

type WishlistRepository interface {
	ListByUserID(ctx context.Context, userID int64) ([]model.Wishlist, error)
	FindByID(ctx context.Context, id int64) (model.Wishlist, error)
	Exists(ctx context.Context, userID, productID int64) (bool, error)
	Create(ctx context.Context, w model.Wishlist) (model.Wishlist, error)
	DeleteByID(ctx context.Context, id int64) error
	CountByUserID(ctx context.Context, userID int64) (int64, error)
}
