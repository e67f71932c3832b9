package usecase

import (
	"context"
	"math"
	"net/http"

	repo "storefront/internal/repository"
)

type ReviewUsecase struct {
	reviews  repo.ReviewRepository
	products repo.ProductRepository
}

func NewReviewUsecase(reviews repo.ReviewRepository, products repo.ProductRepository) *ReviewUsecase {
	return &ReviewUsecase{reviews: reviews, products: products}
}

type UserReviewOutput struct {
	ID          int64  `json:"id"`
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	ProductSlug string `json:"product_slug"`
	Image       string `json:"image"`
	OrderID     int64  `json:"order_id"`
	Rating      int64  `json:"rating"`
}

type ProductReviewSummary struct {
	AverageRating float64 `json:"average_rating"`
	TotalReviews  int64   `json:"total_reviews"`
	Ratings       []int64 `json:"ratings"`
}

// ListMine returns the caller's reviews enriched with product info so
// the account page can render them without extra lookups.
func (u *ReviewUsecase) ListMine(ctx context.Context, userID int64) ([]UserReviewOutput, error) {
	if userID <= 0 {
		return []UserReviewOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	rows, err := u.reviews.ListByUserID(ctx, userID)
	if err != nil {
		return []UserReviewOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]UserReviewOutput, 0, len(rows))
	for _, rv := range rows {
		out := UserReviewOutput{
			ID:        rv.ID,
			ProductID: rv.ProductID,
			OrderID:   rv.OrderID,
			Rating:    rv.Rating,
		}
		p, err := u.products.FindByID(ctx, rv.ProductID)
		if err == nil {
			out.ProductName = p.Name
			out.ProductSlug = p.Slug
			if len(p.Images) > 0 {
				out.Image = p.Images[0]
			}
		} else if err != repo.ErrNotFound {
			return []UserReviewOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		outs = append(outs, out)
	}
	return outs, nil
}

func (u *ReviewUsecase) ProductSummary(ctx context.Context, productID int64) (ProductReviewSummary, error) {
	if productID <= 0 {
		return ProductReviewSummary{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if _, err := u.products.FindByID(ctx, productID); err == repo.ErrNotFound {
		return ProductReviewSummary{}, NewHTTPError(http.StatusNotFound, "product not found")
	} else if err != nil {
		return ProductReviewSummary{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	ratings, err := u.reviews.ListRatings(ctx, productID)
	if err != nil {
		return ProductReviewSummary{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	summary := ProductReviewSummary{
		Ratings:      ratings,
		TotalReviews: int64(len(ratings)),
	}
	if len(ratings) > 0 {
		var sum int64
		for _, r := range ratings {
			sum += r
		}
		avg := float64(sum) / float64(len(ratings))
		summary.AverageRating = math.Round(avg*10) / 10
	}
	return summary, nil
}
