package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

// =====================
// TxManager / TxRepos mocks
// =====================

// TxManagerMock runs fn against a fixed set of repos so the unit
// tests can observe what happened inside the transaction.
type TxManagerMock struct {
	mock.Mock
	Repos repo.TxRepos
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	m.Called(ctx)
	return fn(m.Repos)
}

type TxReposMock struct {
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
	carts      repo.CartRepository
	inventory  repo.InventoryRepository
	products   repo.ProductRepository
	reviews    repo.ReviewRepository
}

func (r *TxReposMock) Orders() repo.OrderRepository         { return r.orders }
func (r *TxReposMock) OrderItems() repo.OrderItemRepository { return r.orderItems }
func (r *TxReposMock) Carts() repo.CartRepository           { return r.carts }
func (r *TxReposMock) Inventory() repo.InventoryRepository  { return r.inventory }
func (r *TxReposMock) Products() repo.ProductRepository     { return r.products }
func (r *TxReposMock) Reviews() repo.ReviewRepository       { return r.reviews }

// =====================
// Repository mocks
// =====================

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) ListByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepoMock) ListAdmin(ctx context.Context, f repo.AdminOrderListFilter) ([]model.Order, int64, error) {
	args := m.Called(ctx, f)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Get(1).(int64), args.Error(2)
}

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepoMock) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *OrderRepoMock) SetPaymentProof(ctx context.Context, orderID int64, filename string, status model.OrderStatus) error {
	args := m.Called(ctx, orderID, filename, status)
	return args.Error(0)
}

func (m *OrderRepoMock) SetTracking(ctx context.Context, orderID int64, trackingNumber string, status model.OrderStatus) error {
	args := m.Called(ctx, orderID, trackingNumber, status)
	return args.Error(0)
}

type OrderItemRepoMock struct{ mock.Mock }

func (m *OrderItemRepoMock) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *OrderItemRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

type CartRepoMock struct{ mock.Mock }

func (m *CartRepoMock) ListByUserID(ctx context.Context, userID int64) ([]model.CartItem, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]model.CartItem)
	return items, args.Error(1)
}

func (m *CartRepoMock) FindByID(ctx context.Context, cartItemID int64) (model.CartItem, error) {
	args := m.Called(ctx, cartItemID)
	it, _ := args.Get(0).(model.CartItem)
	return it, args.Error(1)
}

func (m *CartRepoMock) FindByVariant(ctx context.Context, userID, productID int64, size, color string) (model.CartItem, error) {
	args := m.Called(ctx, userID, productID, size, color)
	it, _ := args.Get(0).(model.CartItem)
	return it, args.Error(1)
}

func (m *CartRepoMock) Create(ctx context.Context, item model.CartItem) (model.CartItem, error) {
	args := m.Called(ctx, item)
	it, _ := args.Get(0).(model.CartItem)
	return it, args.Error(1)
}

func (m *CartRepoMock) UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) error {
	args := m.Called(ctx, cartItemID, qty)
	return args.Error(0)
}

func (m *CartRepoMock) DeleteByID(ctx context.Context, cartItemID int64) error {
	args := m.Called(ctx, cartItemID)
	return args.Error(0)
}

func (m *CartRepoMock) DeleteByUserID(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *CartRepoMock) CountByUserID(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type InventoryRepoMock struct{ mock.Mock }

func (m *InventoryRepoMock) DecreaseStockIfEnough(ctx context.Context, productID int64, qty int64) (bool, error) {
	args := m.Called(ctx, productID, qty)
	return args.Bool(0), args.Error(1)
}

func (m *InventoryRepoMock) IncreaseStock(ctx context.Context, productID int64, qty int64) error {
	args := m.Called(ctx, productID, qty)
	return args.Error(0)
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	args := m.Called(ctx, q)
	products, _ := args.Get(0).([]model.Product)
	return products, args.Get(1).(int64), args.Error(2)
}

func (m *ProductRepoMock) ListTop(ctx context.Context, limit int) ([]model.Product, error) {
	args := m.Called(ctx, limit)
	products, _ := args.Get(0).([]model.Product)
	return products, args.Error(1)
}

func (m *ProductRepoMock) ListRelated(ctx context.Context, categoryID int64, excludeID int64, limit int) ([]model.Product, error) {
	args := m.Called(ctx, categoryID, excludeID, limit)
	products, _ := args.Get(0).([]model.Product)
	return products, args.Error(1)
}

func (m *ProductRepoMock) ListLowStock(ctx context.Context, threshold int64, limit int) ([]model.Product, error) {
	args := m.Called(ctx, threshold, limit)
	products, _ := args.Get(0).([]model.Product)
	return products, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) FindBySlug(ctx context.Context, slug string) (model.Product, error) {
	args := m.Called(ctx, slug)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) SlugExists(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	out, _ := args.Get(0).(model.Product)
	return out, args.Error(1)
}

func (m *ProductRepoMock) Update(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepoMock) SoftDelete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ProductRepoMock) HasOpenOrders(ctx context.Context, productID int64) (bool, error) {
	args := m.Called(ctx, productID)
	return args.Bool(0), args.Error(1)
}

type CategoryRepoMock struct{ mock.Mock }

func (m *CategoryRepoMock) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	cats, _ := args.Get(0).([]model.Category)
	return cats, args.Error(1)
}

func (m *CategoryRepoMock) FindByID(ctx context.Context, id int64) (model.Category, error) {
	args := m.Called(ctx, id)
	cat, _ := args.Get(0).(model.Category)
	return cat, args.Error(1)
}

func (m *CategoryRepoMock) FindOrCreateByName(ctx context.Context, name string) (model.Category, error) {
	args := m.Called(ctx, name)
	cat, _ := args.Get(0).(model.Category)
	return cat, args.Error(1)
}

type ReviewRepoMock struct{ mock.Mock }

func (m *ReviewRepoMock) Upsert(ctx context.Context, review model.ProductReview) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *ReviewRepoMock) ListByUserID(ctx context.Context, userID int64) ([]model.ProductReview, error) {
	args := m.Called(ctx, userID)
	rows, _ := args.Get(0).([]model.ProductReview)
	return rows, args.Error(1)
}

func (m *ReviewRepoMock) ListRatings(ctx context.Context, productID int64) ([]int64, error) {
	args := m.Called(ctx, productID)
	ratings, _ := args.Get(0).([]int64)
	return ratings, args.Error(1)
}

func (m *ReviewRepoMock) CountByProductID(ctx context.Context, productID int64) (int64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(int64), args.Error(1)
}

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

type WishlistRepoMock struct{ mock.Mock }

func (m *WishlistRepoMock) ListByUserID(ctx context.Context, userID int64) ([]model.Wishlist, error) {
	args := m.Called(ctx, userID)
	rows, _ := args.Get(0).([]model.Wishlist)
	return rows, args.Error(1)
}

func (m *WishlistRepoMock) FindByID(ctx context.Context, id int64) (model.Wishlist, error) {
	args := m.Called(ctx, id)
	w, _ := args.Get(0).(model.Wishlist)
	return w, args.Error(1)
}

func (m *WishlistRepoMock) Exists(ctx context.Context, userID, productID int64) (bool, error) {
	args := m.Called(ctx, userID, productID)
	return args.Bool(0), args.Error(1)
}

func (m *WishlistRepoMock) Create(ctx context.Context, w model.Wishlist) (model.Wishlist, error) {
	args := m.Called(ctx, w)
	out, _ := args.Get(0).(model.Wishlist)
	return out, args.Error(1)
}

func (m *WishlistRepoMock) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *WishlistRepoMock) CountByUserID(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type RegionRepoMock struct{ mock.Mock }

func (m *RegionRepoMock) ListProvinces(ctx context.Context) ([]model.Province, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]model.Province)
	return rows, args.Error(1)
}

func (m *RegionRepoMock) ListRegencies(ctx context.Context, provinceID int64) ([]model.Regency, error) {
	args := m.Called(ctx, provinceID)
	rows, _ := args.Get(0).([]model.Regency)
	return rows, args.Error(1)
}

func (m *RegionRepoMock) ListDistricts(ctx context.Context, regencyID int64) ([]model.District, error) {
	args := m.Called(ctx, regencyID)
	rows, _ := args.Get(0).([]model.District)
	return rows, args.Error(1)
}

func (m *RegionRepoMock) ListVillages(ctx context.Context, districtID int64) ([]model.Village, error) {
	args := m.Called(ctx, districtID)
	rows, _ := args.Get(0).([]model.Village)
	return rows, args.Error(1)
}

func (m *RegionRepoMock) SearchProvinces(ctx context.Context, q string) ([]model.Province, error) {
	args := m.Called(ctx, q)
	rows, _ := args.Get(0).([]model.Province)
	return rows, args.Error(1)
}

func (m *RegionRepoMock) SearchRegencies(ctx context.Context, q string) ([]model.Regency, error) {
	args := m.Called(ctx, q)
	rows, _ := args.Get(0).([]model.Regency)
	return rows, args.Error(1)
}

func (m *RegionRepoMock) SearchDistricts(ctx context.Context, q string) ([]model.District, error) {
	args := m.Called(ctx, q)
	rows, _ := args.Get(0).([]model.District)
	return rows, args.Error(1)
}

func (m *RegionRepoMock) SearchVillages(ctx context.Context, q string) ([]model.Village, error) {
	args := m.Called(ctx, q)
	rows, _ := args.Get(0).([]model.Village)
	return rows, args.Error(1)
}

type ShippingGatewayMock struct{ mock.Mock }

func (m *ShippingGatewayMock) Cost(ctx context.Context, in ShippingCostInput) (ShippingCostResult, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(ShippingCostResult)
	return out, args.Error(1)
}

func (m *ShippingGatewayMock) Track(ctx context.Context, courier string, awb string) (TrackingResult, error) {
	args := m.Called(ctx, courier, awb)
	out, _ := args.Get(0).(TrackingResult)
	return out, args.Error(1)
}

// =====================
// Helpers
// =====================

func assertErrContains(t *testing.T, err error, wantSubstr string) {
	t.Helper()
	if assert.Error(t, err) {
		assert.True(t, strings.Contains(err.Error(), wantSubstr), "err=%q want contains %q", err.Error(), wantSubstr)
	}
}

func assertHTTPStatus(t *testing.T, err error, wantStatus int) {
	t.Helper()
	he, ok := AsHTTPError(err)
	if assert.True(t, ok, "expected HTTPError, got %v", err) {
		assert.Equal(t, wantStatus, he.Status)
	}
}

func testProduct(id int64, stock int64, price int64) model.Product {
	return model.Product{
		ID:         id,
		Name:       "Product",
		Slug:       "product",
		CategoryID: 1,
		Stock:      stock,
		Price:      price,
		CreatedAt:  time.Now(),
	}
}
