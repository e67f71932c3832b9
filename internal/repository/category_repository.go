package repository

import (
	"context"

	"storefront/internal/domain/model"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]model.Category, error)
	FindByID(ctx context.Context, id int64) (model.Category, error)
	// FindOrCreateByName backs the ad-hoc category creation that
	// happens while an admin saves a product.
	FindOrCreateByName(ctx context.Context, name string) (model.Category, error)
}
