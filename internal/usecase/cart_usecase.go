package usecase

import (
	"context"
	"net/http"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

type CartUsecase struct {
	cartRepo    repo.CartRepository
	productRepo repo.ProductRepository
}

func NewCartUsecase(cartRepo repo.CartRepository, productRepo repo.ProductRepository) *CartUsecase {
	return &CartUsecase{cartRepo: cartRepo, productRepo: productRepo}
}

type CartItemResponse struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Stock     int64  `json:"stock"`
}

type CartSummary struct {
	Subtotal   int64 `json:"subtotal"`
	TotalItems int64 `json:"total_items"`
	ItemCount  int   `json:"item_count"`
}

type CartResponse struct {
	Items   []CartItemResponse `json:"cart_items"`
	Summary CartSummary        `json:"summary"`
}

type AddCartInput struct {
	ProductID int64
	Quantity  int64
	Size      string
	Color     string
}

type UpdateCartItemInput struct {
	Quantity int64
}

func (u *CartUsecase) GetCart(ctx context.Context, userID int64) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	return u.buildCartResponse(ctx, userID)
}

// AddToCart adds a (product, size, color) selection; an existing row
// for the same variant gets its quantity merged. The stock check is
// advisory: the authoritative check happens at the shipping transition.
func (u *CartUsecase) AddToCart(ctx context.Context, userID int64, in AddCartInput) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.ProductID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if in.Quantity < 1 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	p, err := u.productRepo.FindByID(ctx, in.ProductID)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "product not found")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	existing, err := u.cartRepo.FindByVariant(ctx, userID, in.ProductID, in.Size, in.Color)
	switch err {
	case nil:
		newQty := existing.Quantity + in.Quantity
		if newQty > p.Stock {
			return CartResponse{}, NewHTTPError(http.StatusBadRequest, "requested quantity exceeds available stock")
		}
		if err := u.cartRepo.UpdateQuantity(ctx, existing.ID, newQty); err != nil {
			return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
	case repo.ErrNotFound:
		if in.Quantity > p.Stock {
			return CartResponse{}, NewHTTPError(http.StatusBadRequest, "requested quantity exceeds available stock")
		}
		_, err := u.cartRepo.Create(ctx, model.CartItem{
			UserID:    userID,
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
			UnitPrice: p.Price,
			Size:      in.Size,
			Color:     in.Color,
		})
		if err != nil {
			return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
	default:
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, userID)
}

func (u *CartUsecase) UpdateCartItem(ctx context.Context, userID int64, cartItemID int64, in UpdateCartItemInput) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if cartItemID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if in.Quantity < 1 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	item, err := u.cartRepo.FindByID(ctx, cartItemID)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "cart item not found")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	// Another user's row is reported as missing, not forbidden, so the
	// id space leaks nothing.
	if item.UserID != userID {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "cart item not found")
	}

	p, err := u.productRepo.FindByID(ctx, item.ProductID)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "product not found")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if in.Quantity > p.Stock {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "requested quantity exceeds available stock")
	}

	if err := u.cartRepo.UpdateQuantity(ctx, cartItemID, in.Quantity); err != nil {
		if err == repo.ErrNotFound {
			return CartResponse{}, NewHTTPError(http.StatusNotFound, "cart item not found")
		}
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, userID)
}

func (u *CartUsecase) RemoveFromCart(ctx context.Context, userID int64, cartItemID int64) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if cartItemID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	item, err := u.cartRepo.FindByID(ctx, cartItemID)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "cart item not found")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if item.UserID != userID {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "cart item not found")
	}

	if err := u.cartRepo.DeleteByID(ctx, cartItemID); err != nil {
		if err == repo.ErrNotFound {
			return CartResponse{}, NewHTTPError(http.StatusNotFound, "cart item not found")
		}
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, userID)
}

func (u *CartUsecase) ClearCart(ctx context.Context, userID int64) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err := u.cartRepo.DeleteByUserID(ctx, userID); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return CartResponse{Items: []CartItemResponse{}, Summary: CartSummary{}}, nil
}

func (u *CartUsecase) Count(ctx context.Context, userID int64) (int64, error) {
	if userID <= 0 {
		return 0, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	n, err := u.cartRepo.CountByUserID(ctx, userID)
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return n, nil
}

type CartIssue struct {
	ItemID            int64  `json:"item_id"`
	ProductName       string `json:"product_name,omitempty"`
	Issue             string `json:"issue"`
	AvailableStock    int64  `json:"available_stock,omitempty"`
	RequestedQuantity int64  `json:"requested_quantity,omitempty"`
}

type ValidateCartOutput struct {
	ValidItems []CartItemResponse `json:"valid_items"`
	Issues     []CartIssue        `json:"issues"`
	CanProceed bool               `json:"can_proceed"`
}

// ValidateCart re-checks every row against live product state before
// the client is allowed to open the checkout page.
func (u *CartUsecase) ValidateCart(ctx context.Context, userID int64) (ValidateCartOutput, error) {
	if userID <= 0 {
		return ValidateCartOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	items, err := u.cartRepo.ListByUserID(ctx, userID)
	if err != nil {
		return ValidateCartOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if len(items) == 0 {
		return ValidateCartOutput{}, NewHTTPError(http.StatusBadRequest, "cart is empty")
	}

	out := ValidateCartOutput{
		ValidItems: []CartItemResponse{},
		Issues:     []CartIssue{},
	}
	for _, it := range items {
		p, err := u.productRepo.FindByID(ctx, it.ProductID)
		if err == repo.ErrNotFound {
			out.Issues = append(out.Issues, CartIssue{
				ItemID: it.ID,
				Issue:  "product no longer exists",
			})
			continue
		}
		if err != nil {
			return ValidateCartOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if it.Quantity > p.Stock {
			out.Issues = append(out.Issues, CartIssue{
				ItemID:            it.ID,
				ProductName:       p.Name,
				Issue:             "insufficient stock",
				AvailableStock:    p.Stock,
				RequestedQuantity: it.Quantity,
			})
			continue
		}
		out.ValidItems = append(out.ValidItems, toCartItemResponse(it, p))
	}

	out.CanProceed = len(out.Issues) == 0
	return out, nil
}

func (u *CartUsecase) buildCartResponse(ctx context.Context, userID int64) (CartResponse, error) {
	items, err := u.cartRepo.ListByUserID(ctx, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	resp := CartResponse{Items: make([]CartItemResponse, 0, len(items))}
	for _, it := range items {
		p, err := u.productRepo.FindByID(ctx, it.ProductID)
		if err != nil {
			// Product removed since it was added; the row stays until
			// validate/checkout reports it.
			continue
		}

		resp.Items = append(resp.Items, toCartItemResponse(it, p))
		resp.Summary.Subtotal += it.UnitPrice * it.Quantity
		resp.Summary.TotalItems += it.Quantity
	}
	resp.Summary.ItemCount = len(resp.Items)
	return resp, nil
}

func toCartItemResponse(it model.CartItem, p model.Product) CartItemResponse {
	image := ""
	if len(p.Images) > 0 {
		image = p.Images[0]
	}
	return CartItemResponse{
		ID:        it.ID,
		ProductID: it.ProductID,
		Name:      p.Name,
		Image:     image,
		Price:     it.UnitPrice,
		Quantity:  it.Quantity,
		Size:      it.Size,
		Color:     it.Color,
		Stock:     p.Stock,
	}
}
