package usecase

import (
	"context"
	"net/http"
	"strings"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

type ProfileStoreUsecase struct {
	profiles repo.ProfileStoreRepository
}

func NewProfileStoreUsecase(profiles repo.ProfileStoreRepository) *ProfileStoreUsecase {
	return &ProfileStoreUsecase{profiles: profiles}
}

type SaveProfileStoreInput struct {
	Name      string
	Logo      string
	Address   string
	City      string
	Phone     string
	Qris      string
	Instagram string
	Facebook  string
	Tiktok    string
}

func (u *ProfileStoreUsecase) Get(ctx context.Context) (model.ProfileStore, error) {
	p, err := u.profiles.Get(ctx)
	if err == repo.ErrNotFound {
		// No profile configured yet; the storefront renders defaults.
		return model.ProfileStore{}, nil
	}
	if err != nil {
		return model.ProfileStore{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

func (u *ProfileStoreUsecase) Save(ctx context.Context, in SaveProfileStoreInput) (model.ProfileStore, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.ProfileStore{}, NewHTTPError(http.StatusBadRequest, "name required")
	}

	current, err := u.profiles.Get(ctx)
	if err != nil && err != repo.ErrNotFound {
		return model.ProfileStore{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	current.Name = strings.TrimSpace(in.Name)
	current.Address = in.Address
	current.City = in.City
	current.Phone = in.Phone
	current.Instagram = in.Instagram
	current.Facebook = in.Facebook
	current.Tiktok = in.Tiktok
	if in.Logo != "" {
		current.Logo = in.Logo
	}
	if in.Qris != "" {
		current.Qris = in.Qris
	}

	saved, err := u.profiles.Upsert(ctx, current)
	if err != nil {
		return model.ProfileStore{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return saved, nil
}
