package services

import (
	"slices"
	"sync"

	"coffeeshop/internal/domain"

	"github.com/shopspring/decimal"
)

// CartService owns the in-memory cart. It never touches storage; the cart
// starts empty on every process start.
type CartService struct {
	mu    sync.Mutex
	state domain.CartState
}

func NewCartService(fee domain.DeliveryFee) *CartService {
	return &CartService{state: domain.CartState{
		Items:         []domain.CartItem{},
		DeliveryType:  domain.Deliver,
		Discount:      domain.Discount{Amount: decimal.Zero},
		DeliveryFee:   fee,
		PaymentMethod: domain.PaymentMethod{Type: domain.CashWallet, Selected: true},
	}}
}

// AddItem merges into the line with the same (product id, size) by summing
// quantities, otherwise appends.
func (s *CartService) AddItem(item domain.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, it := range s.state.Items {
		if it.Product.ID == item.Product.ID && it.Size == item.Size {
			s.state.Items[i].Quantity += item.Quantity
			return
		}
	}
	s.state.Items = append(s.state.Items, item)
}

func (s *CartService) RemoveItem(productID string, size domain.Size) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Items = slices.DeleteFunc(s.state.Items, func(it domain.CartItem) bool {
		return it.Product.ID == productID && it.Size == size
	})
}

// UpdateQuantity matches on product id alone, so it hits every size of the
// product. A quantity of zero or less removes those lines.
func (s *CartService) UpdateQuantity(productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if quantity <= 0 {
		s.state.Items = slices.DeleteFunc(s.state.Items, func(it domain.CartItem) bool {
			return it.Product.ID == productID
		})
		return
	}
	for i := range s.state.Items {
		if s.state.Items[i].Product.ID == productID {
			s.state.Items[i].Quantity = quantity
		}
	}
}

// UpdateSize rewrites the size of every line for the product without merging,
// which can leave two lines with the same (product id, size).
func (s *CartService) UpdateSize(productID string, size domain.Size) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Items {
		if s.state.Items[i].Product.ID == productID {
			s.state.Items[i].Size = size
		}
	}
}

func (s *CartService) SetDeliveryType(t domain.DeliveryType) {
	s.mu.Lock()
	s.state.DeliveryType = t
	s.mu.Unlock()
}

func (s *CartService) SetDiscount(d domain.Discount) {
	s.mu.Lock()
	s.state.Discount = d
	s.mu.Unlock()
}

func (s *CartService) SetPaymentMethod(m domain.PaymentMethod) {
	s.mu.Lock()
	s.state.PaymentMethod = m
	s.mu.Unlock()
}

func (s *CartService) ClearCart() {
	s.mu.Lock()
	s.state.Items = []domain.CartItem{}
	s.mu.Unlock()
}

// Snapshot returns a copy that callers may keep or modify.
func (s *CartService) Snapshot() domain.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.state
	out.Items = slices.Clone(s.state.Items)
	if out.Items == nil {
		out.Items = []domain.CartItem{}
	}
	return out
}

func (s *CartService) TotalPrice() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return summarize(s.state).Total
}

func (s *CartService) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return summarize(s.state).TotalItems
}

// CartSummary is the payment breakdown shown at checkout.
type CartSummary struct {
	Subtotal       decimal.Decimal    `json:"subtotal"`
	DeliveryFee    domain.DeliveryFee `json:"deliveryFee"`
	DeliveryCharge decimal.Decimal    `json:"deliveryCharge"`
	Discount       decimal.Decimal    `json:"discount"`
	Total          decimal.Decimal    `json:"total"`
	TotalItems     int                `json:"totalItems"`
}

func (s *CartService) Summary() CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return summarize(s.state)
}

// summarize is not clamped: a discount larger than the rest gives a negative total.
func summarize(st domain.CartState) CartSummary {
	sum := CartSummary{
		Subtotal:       decimal.Zero,
		DeliveryFee:    st.DeliveryFee,
		DeliveryCharge: decimal.Zero,
		Discount:       decimal.Zero,
	}
	for _, it := range st.Items {
		sum.Subtotal = sum.Subtotal.Add(it.Product.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		sum.TotalItems += it.Quantity
	}
	if st.DeliveryType == domain.Deliver {
		sum.DeliveryCharge = st.DeliveryFee.Discounted
	}
	if st.Discount.Applied {
		sum.Discount = st.Discount.Amount
	}
	sum.Total = sum.Subtotal.Add(sum.DeliveryCharge).Sub(sum.Discount)
	return sum
}
