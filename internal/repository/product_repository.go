package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// ProductListQuery mirrors the shop page filters.
type ProductListQuery struct {
	Page       int
	Limit      int
	Search     string
	CategoryID *int64
	SortField  string // name | price | created_at
	SortDir    string // asc | desc
}

type ProductRepository interface {
	List(ctx context.Context, q ProductListQuery) ([]model.Product, int64, error)
	// ListTop returns the newest products for the landing page.
	ListTop(ctx context.Context, limit int) ([]model.Product, error)
	// ListRelated returns other products in the same category.
	ListRelated(ctx context.Context, categoryID int64, excludeID int64, limit int) ([]model.Product, error)
	ListLowStock(ctx context.Context, threshold int64, limit int) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
	FindBySlug(ctx context.Context, slug string) (model.Product, error)
	SlugExists(ctx context.Context, slug string) (bool, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	SoftDelete(ctx context.Context, id int64) error

	// HasOpenOrders reports whether the product is referenced by any
	// order whose status is not terminal. Such products must not be
	// deleted.
	HasOpenOrders(ctx context.Context, productID int64) (bool, error)
}
