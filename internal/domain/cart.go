package domain

import "github.com/shopspring/decimal"

type Size string

const (
	SizeS Size = "S"
	SizeM Size = "M"
	SizeL Size = "L"
)

func ParseSize(s string) (Size, bool) {
	switch Size(s) {
	case SizeS, SizeM, SizeL:
		return Size(s), true
	}
	return "", false
}

type DeliveryType string

const (
	Deliver DeliveryType = "Deliver"
	PickUp  DeliveryType = "Pick Up"
)

type PaymentType string

const (
	CashWallet PaymentType = "Cash/Wallet"
	Card       PaymentType = "Card"
)

// CartItem is one line of the cart. (Product.ID, Size) identifies it.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Size     Size    `json:"size"`
}

type Discount struct {
	Applied bool            `json:"applied"`
	Amount  decimal.Decimal `json:"amount"`
}

type DeliveryFee struct {
	Original   decimal.Decimal `json:"original"`
	Discounted decimal.Decimal `json:"discounted"`
}

type PaymentMethod struct {
	Type     PaymentType `json:"type"`
	Selected bool        `json:"selected"`
}

type CartState struct {
	Items         []CartItem    `json:"items"`
	DeliveryType  DeliveryType  `json:"deliveryType"`
	Discount      Discount      `json:"discount"`
	DeliveryFee   DeliveryFee   `json:"deliveryFee"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
}
