package repository

import (
	"context"

	"storefront/internal/domain/model"

	"gorm.io/gorm"
)

type RegionGormRepository struct {
	db *gorm.DB
}

func NewRegionGormRepository(db *gorm.DB) *RegionGormRepository {
	return &RegionGormRepository{db: db}
}

func (r *RegionGormRepository) ListProvinces(ctx context.Context) ([]model.Province, error) {
	var items []model.Province
	err := r.db.WithContext(ctx).Order("name asc").Find(&items).Error
	return items, err
}

func (r *RegionGormRepository) ListRegencies(ctx context.Context, provinceID int64) ([]model.Regency, error) {
	var items []model.Regency
	err := r.db.WithContext(ctx).
		Where("province_id = ?", provinceID).
		Order("name asc").
		Find(&items).Error
	return items, err
}

func (r *RegionGormRepository) ListDistricts(ctx context.Context, regencyID int64) ([]model.District, error) {
	var items []model.District
	err := r.db.WithContext(ctx).
		Where("regency_id = ?", regencyID).
		Order("name asc").
		Find(&items).Error
	return items, err
}

func (r *RegionGormRepository) ListVillages(ctx context.Context, districtID int64) ([]model.Village, error) {
	var items []model.Village
	err := r.db.WithContext(ctx).
		Where("district_id = ?", districtID).
		Order("name asc").
		Find(&items).Error
	return items, err
}

func (r *RegionGormRepository) SearchProvinces(ctx context.Context, q string) ([]model.Province, error) {
	var items []model.Province
	err := r.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+q+"%").
		Order("name asc").
		Find(&items).Error
	return items, err
}

func (r *RegionGormRepository) SearchRegencies(ctx context.Context, q string) ([]model.Regency, error) {
	var items []model.Regency
	err := r.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+q+"%").
		Order("name asc").
		Find(&items).Error
	return items, err
}

func (r *RegionGormRepository) SearchDistricts(ctx context.Context, q string) ([]model.District, error) {
	var items []model.District
	err := r.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+q+"%").
		Order("name asc").
		Find(&items).Error
	return items, err
}

func (r *RegionGormRepository) SearchVillages(ctx context.Context, q string) ([]model.Village, error) {
	var items []model.Village
	err := r.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+q+"%").
		Order("name asc").
		Find(&items).Error
	return items, err
}
