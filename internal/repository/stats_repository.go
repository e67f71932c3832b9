package repository

import "context"

// ProductSales is a dashboard aggregate: units sold per product,
// counting only orders that got past payment review.
type ProductSales struct {
	ProductID int64  `json:"id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Stock     int64  `json:"stock"`
	Image     string `json:"image"`
	TotalSold int64  `json:"total_sold"`
}

type ProductRating struct {
	ProductID     int64   `json:"id"`
	Name          string  `json:"name"`
	Price         int64   `json:"price"`
	Stock         int64   `json:"stock"`
	Image         string  `json:"image"`
	TotalReviews  int64   `json:"total_reviews"`
	AverageRating float64 `json:"average_rating"`
}

type StatsRepository interface {
	TopSelling(ctx context.Context, limit int) ([]ProductSales, error)
	MostRated(ctx context.Context, limit int) ([]ProductRating, error)
}
