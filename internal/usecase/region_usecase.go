package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"storefront/internal/cache"
	repo "storefront/internal/repository"
)

// RegionUsecase fronts the static region tables with an in-process
// cache keyed by list type and parent id.
type RegionUsecase struct {
	regions repo.RegionRepository
	cache   *cache.Cache
}

func NewRegionUsecase(regions repo.RegionRepository, c *cache.Cache) *RegionUsecase {
	return &RegionUsecase{regions: regions, cache: c}
}

type RegionSearchInput struct {
	Query string
	Type  string
}

func (u *RegionUsecase) Provinces(ctx context.Context) (interface{}, error) {
	const key = "regions:provinces"
	if v, ok := u.cache.Get(key); ok {
		return v, nil
	}

	rows, err := u.regions.ListProvinces(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	u.cache.Set(key, rows)
	return rows, nil
}

func (u *RegionUsecase) Regencies(ctx context.Context, provinceID int64) (interface{}, error) {
	if provinceID <= 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid province id")
	}

	key := fmt.Sprintf("regions:regencies:%d", provinceID)
	if v, ok := u.cache.Get(key); ok {
		return v, nil
	}

	rows, err := u.regions.ListRegencies(ctx, provinceID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	u.cache.Set(key, rows)
	return rows, nil
}

func (u *RegionUsecase) Districts(ctx context.Context, regencyID int64) (interface{}, error) {
	if regencyID <= 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid regency id")
	}

	key := fmt.Sprintf("regions:districts:%d", regencyID)
	if v, ok := u.cache.Get(key); ok {
		return v, nil
	}

	rows, err := u.regions.ListDistricts(ctx, regencyID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	u.cache.Set(key, rows)
	return rows, nil
}

func (u *RegionUsecase) Villages(ctx context.Context, districtID int64) (interface{}, error) {
	if districtID <= 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid district id")
	}

	key := fmt.Sprintf("regions:villages:%d", districtID)
	if v, ok := u.cache.Get(key); ok {
		return v, nil
	}

	rows, err := u.regions.ListVillages(ctx, districtID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	u.cache.Set(key, rows)
	return rows, nil
}

// Search looks a region name up by substring. Searches are not cached;
// the query space is unbounded.
func (u *RegionUsecase) Search(ctx context.Context, in RegionSearchInput) (interface{}, error) {
	q := strings.TrimSpace(in.Query)
	if len(q) < 3 {
		return nil, NewHTTPError(http.StatusBadRequest, "query must be at least 3 characters")
	}

	switch in.Type {
	case "province":
		rows, err := u.regions.SearchProvinces(ctx, q)
		if err != nil {
			return nil, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return rows, nil
	case "regency":
		rows, err := u.regions.SearchRegencies(ctx, q)
		if err != nil {
			return nil, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return rows, nil
	case "district":
		rows, err := u.regions.SearchDistricts(ctx, q)
		if err != nil {
			return nil, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return rows, nil
	case "village":
		rows, err := u.regions.SearchVillages(ctx, q)
		if err != nil {
			return nil, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return rows, nil
	default:
		return nil, NewHTTPError(http.StatusBadRequest, "type must be one of province, regency, district, village")
	}
}
