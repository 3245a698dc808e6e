package services

import (
	"context"

	"coffeeshop/internal/domain"

	"github.com/shopspring/decimal"
)

// Cart is the cart engine surface used by the presentation layer.
type Cart interface {
	AddItem(item domain.CartItem)
	RemoveItem(productID string, size domain.Size)
	UpdateQuantity(productID string, quantity int)
	UpdateSize(productID string, size domain.Size)
	SetDeliveryType(t domain.DeliveryType)
	SetDiscount(d domain.Discount)
	SetPaymentMethod(m domain.PaymentMethod)
	ClearCart()
	TotalPrice() decimal.Decimal
	TotalItems() int
	Snapshot() domain.CartState
	Summary() CartSummary
}

type Favorites interface {
	Load(ctx context.Context)
	Add(ctx context.Context, p domain.Product)
	Remove(ctx context.Context, productID string)
	Toggle(ctx context.Context, productID string) bool
	IsFavorite(productID string) bool
	List() []domain.Product
	Loading() bool
}

type Locations interface {
	Load(ctx context.Context)
	AddSavedLocation(ctx context.Context, loc domain.Location) error
	RemoveSavedLocation(ctx context.Context, name string)
	SetCurrentLocation(loc domain.Location)
	SetPickerOpen(open bool)
	SetAddingAddress(adding bool)
	SetFormError(msg *string)
	State() domain.LocationState
}

type Catalog interface {
	Refresh(ctx context.Context) error
	SelectCategory(name string)
	Filtered() []domain.Product
	ByCategory(name string) []domain.Product
	Product(id string) (domain.Product, bool)
	State() CatalogState
}

var (
	_ Cart      = (*CartService)(nil)
	_ Favorites = (*FavoritesService)(nil)
	_ Locations = (*LocationService)(nil)
	_ Catalog   = (*CatalogService)(nil)
)
