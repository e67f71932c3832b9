package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"
	"unicode"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

type ProductUsecase struct {
	productRepo  repo.ProductRepository
	categoryRepo repo.CategoryRepository
	reviewRepo   repo.ReviewRepository
}

func NewProductUsecase(
	productRepo repo.ProductRepository,
	categoryRepo repo.CategoryRepository,
	reviewRepo repo.ReviewRepository,
) *ProductUsecase {
	return &ProductUsecase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		reviewRepo:   reviewRepo,
	}
}

// ProductPreview is the catalog card shown on home/shop pages.
type ProductPreview struct {
	model.Product
	TotalReviews  int64   `json:"total_reviews"`
	AverageRating float64 `json:"average_rating"`
}

type HomeOutput struct {
	Products   []ProductPreview `json:"products"`
	Categories []model.Category `json:"categories"`
}

func (u *ProductUsecase) Home(ctx context.Context) (HomeOutput, error) {
	products, err := u.productRepo.ListTop(ctx, 8)
	if err != nil {
		return HomeOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	categories, err := u.categoryRepo.List(ctx)
	if err != nil {
		return HomeOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	previews, err := u.withRatings(ctx, products)
	if err != nil {
		return HomeOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return HomeOutput{Products: previews, Categories: categories}, nil
}

type ShopInput struct {
	Page       int
	Limit      int
	Search     string
	CategoryID *int64
	SortField  string
	SortDir    string
}

type ShopOutput struct {
	Products   []ProductPreview `json:"products"`
	Categories []model.Category `json:"categories"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	LastPage   int              `json:"last_page"`
	Limit      int              `json:"limit"`
}

func (u *ProductUsecase) Shop(ctx context.Context, in ShopInput) (ShopOutput, error) {
	if in.Page < 1 {
		in.Page = 1
	}
	if in.Limit < 1 || in.Limit > 100 {
		in.Limit = 16
	}
	if len(in.Search) > 100 {
		return ShopOutput{}, NewHTTPError(http.StatusBadRequest, "search too long")
	}
	switch in.SortField {
	case "", "name", "price", "created_at":
	default:
		return ShopOutput{}, NewHTTPError(http.StatusBadRequest, "invalid sort field")
	}
	switch in.SortDir {
	case "", "asc", "desc":
	default:
		return ShopOutput{}, NewHTTPError(http.StatusBadRequest, "invalid sort direction")
	}

	products, total, err := u.productRepo.List(ctx, repo.ProductListQuery{
		Page:       in.Page,
		Limit:      in.Limit,
		Search:     strings.TrimSpace(in.Search),
		CategoryID: in.CategoryID,
		SortField:  in.SortField,
		SortDir:    in.SortDir,
	})
	if err != nil {
		return ShopOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	categories, err := u.categoryRepo.List(ctx)
	if err != nil {
		return ShopOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	previews, err := u.withRatings(ctx, products)
	if err != nil {
		return ShopOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	lastPage := int(math.Ceil(float64(total) / float64(in.Limit)))
	if lastPage < 1 {
		lastPage = 1
	}

	return ShopOutput{
		Products:   previews,
		Categories: categories,
		Total:      total,
		Page:       in.Page,
		LastPage:   lastPage,
		Limit:      in.Limit,
	}, nil
}

type RatingSummary struct {
	AverageRating float64 `json:"average_rating"`
	TotalReviews  int64   `json:"total_reviews"`
}

type ProductDetailOutput struct {
	Product         model.Product    `json:"product"`
	Rating          RatingSummary    `json:"rating"`
	RelatedProducts []ProductPreview `json:"related_products"`
}

func (u *ProductUsecase) DetailBySlug(ctx context.Context, slug string) (ProductDetailOutput, error) {
	if strings.TrimSpace(slug) == "" {
		return ProductDetailOutput{}, NewHTTPError(http.StatusBadRequest, "invalid slug")
	}

	p, err := u.productRepo.FindBySlug(ctx, slug)
	if err == repo.ErrNotFound {
		return ProductDetailOutput{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return ProductDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	summary, err := u.ratingSummary(ctx, p.ID)
	if err != nil {
		return ProductDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	related, err := u.productRepo.ListRelated(ctx, p.CategoryID, p.ID, 4)
	if err != nil {
		return ProductDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	relatedPreviews, err := u.withRatings(ctx, related)
	if err != nil {
		return ProductDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ProductDetailOutput{
		Product:         p,
		Rating:          summary,
		RelatedProducts: relatedPreviews,
	}, nil
}

type AdminListProductsInput struct {
	Page  int
	Limit int
}

type AdminProductListOutput struct {
	Items []model.Product `json:"items"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

func (u *ProductUsecase) AdminListProducts(ctx context.Context, in AdminListProductsInput) (AdminProductListOutput, error) {
	if in.Page < 1 {
		return AdminProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return AdminProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	items, total, err := u.productRepo.List(ctx, repo.ProductListQuery{
		Page:  in.Page,
		Limit: in.Limit,
	})
	if err != nil {
		return AdminProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return AdminProductListOutput{Items: items, Total: total, Page: in.Page, Limit: in.Limit}, nil
}

func (u *ProductUsecase) AdminGetProduct(ctx context.Context, productID int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

type AdminSaveProductInput struct {
	Name         string
	CategoryName string
	Stock        int64
	Price        int64
	Weight       int64
	Description  string
	Images       []string
	Sizes        []string
	Colors       []string
}

func (in *AdminSaveProductInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}
	if strings.TrimSpace(in.CategoryName) == "" {
		return NewHTTPError(http.StatusBadRequest, "category required")
	}
	if in.Stock < 0 {
		return NewHTTPError(http.StatusBadRequest, "stock must be >= 0")
	}
	if in.Price < 0 {
		return NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	if in.Weight < 0 {
		return NewHTTPError(http.StatusBadRequest, "weight must be >= 0")
	}
	return nil
}

func (u *ProductUsecase) AdminCreateProduct(ctx context.Context, in AdminSaveProductInput) (model.Product, error) {
	if err := in.validate(); err != nil {
		return model.Product{}, err
	}

	category, err := u.categoryRepo.FindOrCreateByName(ctx, in.CategoryName)
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	slug, err := u.uniqueSlug(ctx, in.Name)
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	now := time.Now()
	p, err := u.productRepo.Create(ctx, model.Product{
		Name:        strings.TrimSpace(in.Name),
		Slug:        slug,
		CategoryID:  category.ID,
		Stock:       in.Stock,
		Price:       in.Price,
		Weight:      in.Weight,
		Description: in.Description,
		Images:      in.Images,
		Sizes:       in.Sizes,
		Colors:      in.Colors,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

func (u *ProductUsecase) AdminUpdateProduct(ctx context.Context, productID int64, in AdminSaveProductInput) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if err := in.validate(); err != nil {
		return model.Product{}, err
	}

	existing, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	category, err := u.categoryRepo.FindOrCreateByName(ctx, in.CategoryName)
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// The slug is regenerated only when the name changed, so stored
	// links keep working for plain edits.
	slug := existing.Slug
	if !strings.EqualFold(strings.TrimSpace(in.Name), existing.Name) {
		slug, err = u.uniqueSlug(ctx, in.Name)
		if err != nil {
			return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
	}

	images := in.Images
	if len(images) == 0 {
		images = existing.Images
	}

	updated := model.Product{
		ID:          productID,
		Name:        strings.TrimSpace(in.Name),
		Slug:        slug,
		CategoryID:  category.ID,
		Stock:       in.Stock,
		Price:       in.Price,
		Weight:      in.Weight,
		Description: in.Description,
		Images:      images,
		Sizes:       in.Sizes,
		Colors:      in.Colors,
		UpdatedAt:   time.Now(),
	}
	if err := u.productRepo.Update(ctx, updated); err != nil {
		if err == repo.ErrNotFound {
			return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
		}
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return updated, nil
}

// AdminDeleteProduct soft-deletes a product. Products referenced by
// an order that is still in flight cannot be removed.
func (u *ProductUsecase) AdminDeleteProduct(ctx context.Context, productID int64) error {
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	open, err := u.productRepo.HasOpenOrders(ctx, productID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if open {
		return NewHTTPError(http.StatusBadRequest, "product has active orders and cannot be deleted")
	}

	err = u.productRepo.SoftDelete(ctx, productID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *ProductUsecase) withRatings(ctx context.Context, products []model.Product) ([]ProductPreview, error) {
	previews := make([]ProductPreview, 0, len(products))
	for _, p := range products {
		summary, err := u.ratingSummary(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		previews = append(previews, ProductPreview{
			Product:       p,
			TotalReviews:  summary.TotalReviews,
			AverageRating: summary.AverageRating,
		})
	}
	return previews, nil
}

func (u *ProductUsecase) ratingSummary(ctx context.Context, productID int64) (RatingSummary, error) {
	ratings, err := u.reviewRepo.ListRatings(ctx, productID)
	if err != nil {
		return RatingSummary{}, err
	}
	if len(ratings) == 0 {
		return RatingSummary{}, nil
	}

	var sum int64
	for _, r := range ratings {
		sum += r
	}
	avg := float64(sum) / float64(len(ratings))
	return RatingSummary{
		AverageRating: math.Round(avg*10) / 10,
		TotalReviews:  int64(len(ratings)),
	}, nil
}

// uniqueSlug slugifies the name and, on collision, appends -2, -3, ...
func (u *ProductUsecase) uniqueSlug(ctx context.Context, name string) (string, error) {
	base := slugify(name)
	if base == "" {
		base = "product"
	}

	slug := base
	for i := 2; ; i++ {
		exists, err := u.productRepo.SlugExists(ctx, slug)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	lastDash := true
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
