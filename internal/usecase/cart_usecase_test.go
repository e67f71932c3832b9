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

func newCartTestEnv() (*CartUsecase, *CartRepoMock, *ProductRepoMock) {
	carts := new(CartRepoMock)
	products := new(ProductRepoMock)
	return NewCartUsecase(carts, products), carts, products
}

func TestAddToCart_NewVariantCreatesRow(t *testing.T) {
	uc, carts, products := newCartTestEnv()

	products.On("FindByID", mock.Anything, int64(100)).Return(testProduct(100, 10, 50000), nil)
	carts.On("FindByVariant", mock.Anything, int64(1), int64(100), "M", "black").
		Return(model.CartItem{}, repo.ErrNotFound)
	carts.On("Create", mock.Anything, mock.MatchedBy(func(it model.CartItem) bool {
		return it.UserID == 1 && it.ProductID == 100 && it.Quantity == 2 &&
			it.UnitPrice == 50000 && it.Size == "M" && it.Color == "black"
	})).Return(model.CartItem{ID: 10}, nil)
	carts.On("ListByUserID", mock.Anything, int64(1)).Return([]model.CartItem{
		{ID: 10, UserID: 1, ProductID: 100, Quantity: 2, UnitPrice: 50000, Size: "M", Color: "black"},
	}, nil)

	out, err := uc.AddToCart(context.Background(), 1, AddCartInput{
		ProductID: 100, Quantity: 2, Size: "M", Color: "black",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(100000), out.Summary.Subtotal)
	assert.Equal(t, int64(2), out.Summary.TotalItems)
}

func TestAddToCart_SameVariantMergesQuantity(t *testing.T) {
	uc, carts, products := newCartTestEnv()

	products.On("FindByID", mock.Anything, int64(100)).Return(testProduct(100, 10, 50000), nil)
	carts.On("FindByVariant", mock.Anything, int64(1), int64(100), "M", "black").
		Return(model.CartItem{ID: 10, UserID: 1, ProductID: 100, Quantity: 3}, nil)
	carts.On("UpdateQuantity", mock.Anything, int64(10), int64(5)).Return(nil)
	carts.On("ListByUserID", mock.Anything, int64(1)).Return([]model.CartItem{
		{ID: 10, UserID: 1, ProductID: 100, Quantity: 5, UnitPrice: 50000},
	}, nil)

	_, err := uc.AddToCart(context.Background(), 1, AddCartInput{
		ProductID: 100, Quantity: 2, Size: "M", Color: "black",
	})
	assert.NoError(t, err)
	carts.AssertCalled(t, "UpdateQuantity", mock.Anything, int64(10), int64(5))
	carts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddToCart_MergedQuantityExceedsStock(t *testing.T) {
	uc, carts, products := newCartTestEnv()

	products.On("FindByID", mock.Anything, int64(100)).Return(testProduct(100, 4, 50000), nil)
	carts.On("FindByVariant", mock.Anything, int64(1), int64(100), "", "").
		Return(model.CartItem{ID: 10, UserID: 1, ProductID: 100, Quantity: 3}, nil)

	_, err := uc.AddToCart(context.Background(), 1, AddCartInput{ProductID: 100, Quantity: 2})
	assertErrContains(t, err, "exceeds available stock")
	carts.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddToCart_UnknownProduct(t *testing.T) {
	uc, _, products := newCartTestEnv()

	products.On("FindByID", mock.Anything, int64(100)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.AddToCart(context.Background(), 1, AddCartInput{ProductID: 100, Quantity: 1})
	assertErrContains(t, err, "product not found")
}

func TestUpdateCartItem_OtherUsersRowLooksMissing(t *testing.T) {
	uc, carts, _ := newCartTestEnv()

	carts.On("FindByID", mock.Anything, int64(10)).Return(model.CartItem{
		ID: 10, UserID: 2, ProductID: 100, Quantity: 1,
	}, nil)

	_, err := uc.UpdateCartItem(context.Background(), 1, 10, UpdateCartItemInput{Quantity: 2})
	assertHTTPStatus(t, err, http.StatusNotFound)
}

func TestRemoveFromCart_OwnRow(t *testing.T) {
	uc, carts, _ := newCartTestEnv()

	carts.On("FindByID", mock.Anything, int64(10)).Return(model.CartItem{
		ID: 10, UserID: 1, ProductID: 100, Quantity: 1,
	}, nil)
	carts.On("DeleteByID", mock.Anything, int64(10)).Return(nil)
	carts.On("ListByUserID", mock.Anything, int64(1)).Return([]model.CartItem{}, nil)

	out, err := uc.RemoveFromCart(context.Background(), 1, 10)
	assert.NoError(t, err)
	assert.Equal(t, 0, out.Summary.ItemCount)
}

func TestValidateCart_ReportsIssues(t *testing.T) {
	uc, carts, products := newCartTestEnv()

	carts.On("ListByUserID", mock.Anything, int64(1)).Return([]model.CartItem{
		{ID: 10, UserID: 1, ProductID: 100, Quantity: 2, UnitPrice: 50000},
		{ID: 11, UserID: 1, ProductID: 101, Quantity: 5, UnitPrice: 60000},
		{ID: 12, UserID: 1, ProductID: 102, Quantity: 1, UnitPrice: 70000},
	}, nil)
	products.On("FindByID", mock.Anything, int64(100)).Return(testProduct(100, 10, 50000), nil)
	products.On("FindByID", mock.Anything, int64(101)).Return(testProduct(101, 2, 60000), nil)
	products.On("FindByID", mock.Anything, int64(102)).Return(model.Product{}, repo.ErrNotFound)

	out, err := uc.ValidateCart(context.Background(), 1)
	assert.NoError(t, err)
	assert.False(t, out.CanProceed)
	assert.Len(t, out.ValidItems, 1)
	assert.Len(t, out.Issues, 2)
	assert.Equal(t, "insufficient stock", out.Issues[0].Issue)
	assert.Equal(t, int64(2), out.Issues[0].AvailableStock)
	assert.Equal(t, "product no longer exists", out.Issues[1].Issue)
}

func TestValidateCart_EmptyCart(t *testing.T) {
	uc, carts, _ := newCartTestEnv()

	carts.On("ListByUserID", mock.Anything, int64(1)).Return([]model.CartItem{}, nil)

	_, err := uc.ValidateCart(context.Background(), 1)
	assertErrContains(t, err, "cart is empty")
}

func TestGetCart_SkipsRowsWithDeletedProducts(t *testing.T) {
	uc, carts, products := newCartTestEnv()

	carts.On("ListByUserID", mock.Anything, int64(1)).Return([]model.CartItem{
		{ID: 10, UserID: 1, ProductID: 100, Quantity: 1, UnitPrice: 50000},
		{ID: 11, UserID: 1, ProductID: 101, Quantity: 1, UnitPrice: 60000},
	}, nil)
	products.On("FindByID", mock.Anything, int64(100)).Return(testProduct(100, 10, 50000), nil)
	products.On("FindByID", mock.Anything, int64(101)).Return(model.Product{}, repo.ErrNotFound)

	out, err := uc.GetCart(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 1, out.Summary.ItemCount)
	assert.Equal(t, int64(50000), out.Summary.Subtotal)
}
