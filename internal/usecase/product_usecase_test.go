package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

func newProductTestEnv() (*ProductUsecase, *ProductRepoMock, *CategoryRepoMock, *ReviewRepoMock) {
	products := new(ProductRepoMock)
	categories := new(CategoryRepoMock)
	reviews := new(ReviewRepoMock)
	return NewProductUsecase(products, categories, reviews), products, categories, reviews
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Kaos Polos Hitam", "kaos-polos-hitam"},
		{"  T-Shirt  (Limited!) ", "t-shirt-limited"},
		{"100% Cotton", "100-cotton"},
		{"---", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, slugify(tc.in), "slugify(%q)", tc.in)
	}
}

func TestAdminCreateProduct_GeneratesUniqueSlug(t *testing.T) {
	uc, products, categories, _ := newProductTestEnv()

	categories.On("FindOrCreateByName", mock.Anything, "Kaos").Return(model.Category{ID: 3, Name: "Kaos"}, nil)
	products.On("SlugExists", mock.Anything, "kaos-polos").Return(true, nil)
	products.On("SlugExists", mock.Anything, "kaos-polos-2").Return(false, nil)
	products.On("Create", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.Slug == "kaos-polos-2" && p.CategoryID == 3
	})).Return(model.Product{ID: 9, Slug: "kaos-polos-2"}, nil)

	out, err := uc.AdminCreateProduct(context.Background(), AdminSaveProductInput{
		Name: "Kaos Polos", CategoryName: "Kaos", Stock: 5, Price: 50000, Weight: 200,
	})
	assert.NoError(t, err)
	assert.Equal(t, "kaos-polos-2", out.Slug)
}

func TestAdminCreateProduct_Validation(t *testing.T) {
	uc, _, _, _ := newProductTestEnv()

	_, err := uc.AdminCreateProduct(context.Background(), AdminSaveProductInput{
		Name: "", CategoryName: "Kaos",
	})
	assertErrContains(t, err, "name required")

	_, err = uc.AdminCreateProduct(context.Background(), AdminSaveProductInput{
		Name: "Kaos", CategoryName: "Kaos", Price: -1,
	})
	assertErrContains(t, err, "price must be >= 0")
}

func TestAdminUpdateProduct_KeepsSlugWhenNameUnchanged(t *testing.T) {
	uc, products, categories, _ := newProductTestEnv()

	products.On("FindByID", mock.Anything, int64(9)).Return(model.Product{
		ID: 9, Name: "Kaos Polos", Slug: "kaos-polos", Images: model.StringList{"a.jpg"},
	}, nil)
	categories.On("FindOrCreateByName", mock.Anything, "Kaos").Return(model.Category{ID: 3}, nil)
	products.On("Update", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.Slug == "kaos-polos" && len(p.Images) == 1
	})).Return(nil)

	out, err := uc.AdminUpdateProduct(context.Background(), 9, AdminSaveProductInput{
		Name: "Kaos Polos", CategoryName: "Kaos", Stock: 8, Price: 55000,
	})
	assert.NoError(t, err)
	assert.Equal(t, "kaos-polos", out.Slug)
	products.AssertNotCalled(t, "SlugExists", mock.Anything, mock.Anything)
}

func TestAdminUpdateProduct_RegeneratesSlugOnRename(t *testing.T) {
	uc, products, categories, _ := newProductTestEnv()

	products.On("FindByID", mock.Anything, int64(9)).Return(model.Product{
		ID: 9, Name: "Kaos Polos", Slug: "kaos-polos",
	}, nil)
	categories.On("FindOrCreateByName", mock.Anything, "Kaos").Return(model.Category{ID: 3}, nil)
	products.On("SlugExists", mock.Anything, "kaos-premium").Return(false, nil)
	products.On("Update", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.Slug == "kaos-premium"
	})).Return(nil)

	out, err := uc.AdminUpdateProduct(context.Background(), 9, AdminSaveProductInput{
		Name: "Kaos Premium", CategoryName: "Kaos",
	})
	assert.NoError(t, err)
	assert.Equal(t, "kaos-premium", out.Slug)
}

func TestAdminDeleteProduct_BlockedByOpenOrders(t *testing.T) {
	uc, products, _, _ := newProductTestEnv()

	products.On("HasOpenOrders", mock.Anything, int64(9)).Return(true, nil)

	err := uc.AdminDeleteProduct(context.Background(), 9)
	assertErrContains(t, err, "active orders")
	products.AssertNotCalled(t, "SoftDelete", mock.Anything, mock.Anything)
}

func TestAdminDeleteProduct_SoftDeletes(t *testing.T) {
	uc, products, _, _ := newProductTestEnv()

	products.On("HasOpenOrders", mock.Anything, int64(9)).Return(false, nil)
	products.On("SoftDelete", mock.Anything, int64(9)).Return(nil)

	assert.NoError(t, uc.AdminDeleteProduct(context.Background(), 9))
}

func TestDetailBySlug_NotFound(t *testing.T) {
	uc, products, _, _ := newProductTestEnv()

	products.On("FindBySlug", mock.Anything, "missing").Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.DetailBySlug(context.Background(), "missing")
	assertHTTPStatus(t, err, http.StatusNotFound)
}

func TestDetailBySlug_IncludesRatingAndRelated(t *testing.T) {
	uc, products, _, reviews := newProductTestEnv()

	products.On("FindBySlug", mock.Anything, "kaos-polos").Return(model.Product{
		ID: 9, CategoryID: 3, Slug: "kaos-polos",
	}, nil)
	reviews.On("ListRatings", mock.Anything, int64(9)).Return([]int64{5, 4, 4}, nil)
	products.On("ListRelated", mock.Anything, int64(3), int64(9), 4).Return([]model.Product{
		{ID: 10, CategoryID: 3},
	}, nil)
	reviews.On("ListRatings", mock.Anything, int64(10)).Return([]int64{}, nil)

	out, err := uc.DetailBySlug(context.Background(), "kaos-polos")
	assert.NoError(t, err)
	assert.Equal(t, 4.3, out.Rating.AverageRating)
	assert.Equal(t, int64(3), out.Rating.TotalReviews)
	assert.Len(t, out.RelatedProducts, 1)
}

func TestShop_ClampsPagination(t *testing.T) {
	uc, products, categories, _ := newProductTestEnv()

	products.On("List", mock.Anything, mock.MatchedBy(func(q repo.ProductListQuery) bool {
		return q.Page == 1 && q.Limit == 16
	})).Return([]model.Product{}, int64(0), nil)
	categories.On("List", mock.Anything).Return([]model.Category{}, nil)

	out, err := uc.Shop(context.Background(), ShopInput{Page: -3, Limit: 1000})
	assert.NoError(t, err)
	assert.Equal(t, 1, out.Page)
	assert.Equal(t, 1, out.LastPage)
}
