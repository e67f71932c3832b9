package usecase

import (
	"context"
	"net/http"

	repo "storefront/internal/repository"
)

const lowStockThreshold = 10

type DashboardUsecase struct {
	stats    repo.StatsRepository
	products repo.ProductRepository
}

func NewDashboardUsecase(stats repo.StatsRepository, products repo.ProductRepository) *DashboardUsecase {
	return &DashboardUsecase{stats: stats, products: products}
}

type DashboardOutput struct {
	TopSelling []repo.ProductSales  `json:"top_selling"`
	MostRated  []repo.ProductRating `json:"most_rated"`
	LowStock   []LowStockProduct    `json:"low_stock"`
}

type LowStockProduct struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Stock int64  `json:"stock"`
	Image string `json:"image"`
}

func (u *DashboardUsecase) Overview(ctx context.Context) (DashboardOutput, error) {
	top, err := u.stats.TopSelling(ctx, 5)
	if err != nil {
		return DashboardOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	rated, err := u.stats.MostRated(ctx, 5)
	if err != nil {
		return DashboardOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	low, err := u.products.ListLowStock(ctx, lowStockThreshold, 10)
	if err != nil {
		return DashboardOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	lowOut := make([]LowStockProduct, 0, len(low))
	for _, p := range low {
		item := LowStockProduct{ID: p.ID, Name: p.Name, Slug: p.Slug, Stock: p.Stock}
		if len(p.Images) > 0 {
			item.Image = p.Images[0]
		}
		lowOut = append(lowOut, item)
	}

	return DashboardOutput{TopSelling: top, MostRated: rated, LowStock: lowOut}, nil
}
