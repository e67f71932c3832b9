package repository

import (
	"context"

	"storefront/internal/domain/model"
)

type ProfileStoreRepository interface {
	Get(ctx context.Context) (model.ProfileStore, error)
	Upsert(ctx context.Context, p model.ProfileStore) (model.ProfileStore, error)
}
