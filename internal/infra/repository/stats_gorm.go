package repository

import (
	"context"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"gorm.io/gorm"
)

type StatsGormRepository struct {
	db *gorm.DB
}

func NewStatsGormRepository(db *gorm.DB) *StatsGormRepository {
	return &StatsGormRepository{db: db}
}

// Units sold per product, ignoring orders that never got past payment
// review (waiting/checking) and cancelled ones.
func (r *StatsGormRepository) TopSelling(ctx context.Context, limit int) ([]repo.ProductSales, error) {
	var rows []repo.ProductSales
	err := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Select(`products.id AS product_id,
			products.name,
			products.price,
			products.stock,
			COALESCE(products.images->>0, '') AS image,
			COALESCE(SUM(CASE WHEN orders.id IS NOT NULL THEN order_items.quantity ELSE 0 END), 0) AS total_sold`).
		Joins(`LEFT JOIN order_items ON order_items.product_id = products.id`).
		Joins(`LEFT JOIN orders ON orders.id = order_items.order_id
			AND orders.status NOT IN ('cancelled', 'waiting', 'checking')`).
		Group("products.id").
		Order("total_sold DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *StatsGormRepository) MostRated(ctx context.Context, limit int) ([]repo.ProductRating, error) {
	var rows []repo.ProductRating
	err := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Select(`products.id AS product_id,
			products.name,
			products.price,
			products.stock,
			COALESCE(products.images->>0, '') AS image,
			COUNT(product_reviews.id) AS total_reviews,
			COALESCE(ROUND(AVG(product_reviews.rating)::numeric, 1), 0) AS average_rating`).
		Joins("LEFT JOIN product_reviews ON product_reviews.product_id = products.id").
		Group("products.id").
		Order("average_rating DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
