package repository

import (
	"context"

	"storefront/internal/domain/model"
)

// RegionRepository reads the static administrative hierarchy.
type RegionRepository interface {
	ListProvinces(ctx context.Context) ([]model.Province, error)
	ListRegencies(ctx context.Context, provinceID int64) ([]model.Regency, error)
	ListDistricts(ctx context.Context, regencyID int64) ([]model.District, error)
	ListVillages(ctx context.Context, districtID int64) ([]model.Village, error)

	SearchProvinces(ctx context.Context, q string) ([]model.Province, error)
	SearchRegencies(ctx context.Context, q string) ([]model.Regency, error)
	SearchDistricts(ctx context.Context, q string) ([]model.District, error)
	SearchVillages(ctx context.Context, q string) ([]model.Village, error)
}
