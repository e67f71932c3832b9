package usecase

import (
	"context"
	"net/http"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

type WishlistUsecase struct {
	wishlists repo.WishlistRepository
	products  repo.ProductRepository
}

func NewWishlistUsecase(wishlists repo.WishlistRepository, products repo.ProductRepository) *WishlistUsecase {
	return &WishlistUsecase{wishlists: wishlists, products: products}
}

type WishlistItemOutput struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	Price     int64  `json:"price"`
	Stock     int64  `json:"stock"`
	Image     string `json:"image"`
}

func (u *WishlistUsecase) List(ctx context.Context, userID int64) ([]WishlistItemOutput, error) {
	if userID <= 0 {
		return []WishlistItemOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	rows, err := u.wishlists.ListByUserID(ctx, userID)
	if err != nil {
		return []WishlistItemOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]WishlistItemOutput, 0, len(rows))
	for _, w := range rows {
		p, err := u.products.FindByID(ctx, w.ProductID)
		if err == repo.ErrNotFound {
			// Product was removed after being wishlisted.
			continue
		}
		if err != nil {
			return []WishlistItemOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		outs = append(outs, toWishlistItemOutput(w, p))
	}
	return outs, nil
}

func (u *WishlistUsecase) Add(ctx context.Context, userID int64, productID int64) (WishlistItemOutput, error) {
	if userID <= 0 {
		return WishlistItemOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return WishlistItemOutput{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	p, err := u.products.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return WishlistItemOutput{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return WishlistItemOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	exists, err := u.wishlists.Exists(ctx, userID, productID)
	if err != nil {
		return WishlistItemOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if exists {
		return WishlistItemOutput{}, NewHTTPError(http.StatusConflict, "product already in wishlist")
	}

	w, err := u.wishlists.Create(ctx, model.Wishlist{UserID: userID, ProductID: productID})
	if err != nil {
		return WishlistItemOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return toWishlistItemOutput(w, p), nil
}

func (u *WishlistUsecase) Remove(ctx context.Context, userID int64, wishlistID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if wishlistID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	w, err := u.wishlists.FindByID(ctx, wishlistID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "wishlist item not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if w.UserID != userID {
		return NewHTTPError(http.StatusNotFound, "wishlist item not found")
	}

	if err := u.wishlists.DeleteByID(ctx, wishlistID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *WishlistUsecase) Count(ctx context.Context, userID int64) (int64, error) {
	if userID <= 0 {
		return 0, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	count, err := u.wishlists.CountByUserID(ctx, userID)
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return count, nil
}

func toWishlistItemOutput(w model.Wishlist, p model.Product) WishlistItemOutput {
	out := WishlistItemOutput{
		ID:        w.ID,
		ProductID: p.ID,
		Name:      p.Name,
		Slug:      p.Slug,
		Price:     p.Price,
		Stock:     p.Stock,
	}
	if len(p.Images) > 0 {
		out.Image = p.Images[0]
	}
	return out
}
