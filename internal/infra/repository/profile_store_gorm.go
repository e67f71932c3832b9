package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"gorm.io/gorm"
)

type ProfileStoreGormRepository struct {
	db *gorm.DB
}

func NewProfileStoreGormRepository(db *gorm.DB) *ProfileStoreGormRepository {
	return &ProfileStoreGormRepository{db: db}
}

func (r *ProfileStoreGormRepository) Get(ctx context.Context) (model.ProfileStore, error) {
	var p model.ProfileStore
	err := r.db.WithContext(ctx).Order("id asc").First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ProfileStore{}, repo.ErrNotFound
	}
	if err != nil {
		return model.ProfileStore{}, err
	}
	return p, nil
}

func (r *ProfileStoreGormRepository) Upsert(ctx context.Context, p model.ProfileStore) (model.ProfileStore, error) {
	existing, err := r.Get(ctx)
	if err == repo.ErrNotFound {
		if createErr := r.db.WithContext(ctx).Create(&p).Error; createErr != nil {
			return model.ProfileStore{}, createErr
		}
		return p, nil
	}
	if err != nil {
		return model.ProfileStore{}, err
	}

	p.ID = existing.ID
	if saveErr := r.db.WithContext(ctx).Save(&p).Error; saveErr != nil {
		return model.ProfileStore{}, saveErr
	}
	return p, nil
}
