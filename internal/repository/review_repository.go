package repository

import (
	"context"

	"storefront/internal/domain/model"
)

type ReviewRepository interface {
	// Upsert inserts the review or, when the (user, product, order)
	// row already exists, replaces its rating.
	Upsert(ctx context.Context, review model.ProductReview) error
	ListByUserID(ctx context.Context, userID int64) ([]model.ProductReview, error)
	// ListRatings returns the bare rating values for one product; the
	// caller derives average and count.
	ListRatings(ctx context.Context, productID int64) ([]int64, error)
	CountByProductID(ctx context.Context, productID int64) (int64, error)
}
