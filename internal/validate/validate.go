package validate

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"coffeeshop/internal/domain"
)

var (
	reID       = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reCategory = regexp.MustCompile(`^[A-Za-z ]{1,30}$`)
)

// ID validates a simple resource identifier (product ids, uuids included).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Qty parses a quantity, clamping to 1..50 to avoid abuse.
func Qty(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 1
	}
	return ClampQty(n)
}

func ClampQty(n int) int {
	if n < 1 {
		return 1
	}
	if n > 50 {
		return 50
	} // clamp to avoid abuse
	return n
}

// Size accepts S, M or L in any case.
func Size(s string) (domain.Size, bool) {
	return domain.ParseSize(strings.ToUpper(strings.TrimSpace(s)))
}

// Money parses a non-negative decimal amount with at most two decimals.
func Money(s string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || d.IsNegative() || d.Exponent() < -2 {
		return decimal.Zero, false
	}
	return d, true
}

func DeliveryType(s string) (domain.DeliveryType, bool) {
	switch t := domain.DeliveryType(strings.TrimSpace(s)); t {
	case domain.Deliver, domain.PickUp:
		return t, true
	}
	return "", false
}

func PaymentType(s string) (domain.PaymentType, bool) {
	switch t := domain.PaymentType(strings.TrimSpace(s)); t {
	case domain.CashWallet, domain.Card:
		return t, true
	}
	return "", false
}

func Category(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reCategory.MatchString(s)
}

// Name trims a location name; empty is reported as not ok so the caller can
// still hand it to the store, which owns the user-facing message.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 40 {
		return s, false
	}
	return s, true
}

func Address(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 120 {
		return s, false
	}
	return s, true
}
