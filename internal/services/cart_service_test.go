package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coffeeshop/internal/domain"
	"coffeeshop/internal/services"
)

func TestCartService_Defaults(t *testing.T) {
	cart := services.NewCartService(defaultFee())
	st := cart.Snapshot()

	assert.Empty(t, st.Items)
	assert.Equal(t, domain.Deliver, st.DeliveryType)
	assert.False(t, st.Discount.Applied)
	assert.Equal(t, domain.PaymentMethod{Type: domain.CashWallet, Selected: true}, st.PaymentMethod)
	assert.True(t, st.DeliveryFee.Discounted.Equal(decimal.RequireFromString("1")))
}

func TestCartService_AddItemMergesSameProductAndSize(t *testing.T) {
	cart := services.NewCartService(defaultFee())
	p := product("p1", "4.50")

	for _, q := range []int{1, 2, 3} {
		cart.AddItem(domain.CartItem{Product: p, Quantity: q, Size: domain.SizeM})
	}

	items := cart.Snapshot().Items
	require.Len(t, items, 1)
	assert.Equal(t, 6, items[0].Quantity)
	assert.Equal(t, domain.SizeM, items[0].Size)
}

func TestCartService_AddItemKeepsDistinctKeys(t *testing.T) {
	cart := services.NewCartService(defaultFee())
	p1, p2 := product("p1", "4.50"), product("p2", "3.00")

	cart.AddItem(domain.CartItem{Product: p1, Quantity: 1, Size: domain.SizeS})
	cart.AddItem(domain.CartItem{Product: p1, Quantity: 1, Size: domain.SizeL})
	cart.AddItem(domain.CartItem{Product: p2, Quantity: 1, Size: domain.SizeS})
	cart.AddItem(domain.CartItem{Product: p1, Quantity: 2, Size: domain.SizeS})

	items := cart.Snapshot().Items
	require.Len(t, items, 3)
	// insertion order is kept
	assert.Equal(t, "p1", items[0].Product.ID)
	assert.Equal(t, domain.SizeS, items[0].Size)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, domain.SizeL, items[1].Size)
	assert.Equal(t, "p2", items[2].Product.ID)
}

func TestCartService_TotalPrice(t *testing.T) {
	cart := services.NewCartService(defaultFee())
	cart.AddItem(domain.CartItem{Product: product("p1", "4.50"), Quantity: 2, Size: domain.SizeM})

	assert.Equal(t, "10.00", cart.TotalPrice().StringFixed(2))

	cart.SetDeliveryType(domain.PickUp)
	assert.Equal(t, "9.00", cart.TotalPrice().StringFixed(2))

	cart.SetDiscount(domain.Discount{Applied: true, Amount: decimal.RequireFromString("0.50")})
	assert.Equal(t, "8.50", cart.TotalPrice().StringFixed(2))

	// a discount that is not applied does not count
	cart.SetDiscount(domain.Discount{Applied: false, Amount: decimal.RequireFromString("5")})
	assert.Equal(t, "9.00", cart.TotalPrice().StringFixed(2))
}

func TestCartService_TotalPriceCanGoNegative(t *testing.T) {
	cart := services.NewCartService(defaultFee())
	cart.AddItem(domain.CartItem{Product: product("p1", "2.00"), Quantity: 1, Size: domain.SizeS})
	cart.SetDiscount(domain.Discount{Applied: true, Amount: decimal.RequireFromString("10")})

	assert.Equal(t, "-7.00", cart.TotalPrice().StringFixed(2))
}

func TestCartService_UpdateQuantityZeroRemovesEverySize(t *testing.T) {
	cart := services.NewCartService(defaultFee())
	cart.AddItem(domain.CartItem{Product: product("p1", "4.50"), Quantity: 2, Size: domain.SizeS})
	cart.AddItem(domain.CartItem{Product: product("p1", "4.50"), Quantity: 3, Size: domain.SizeL})
	cart.AddItem(domain.CartItem{Product: product("p2", "3.00"), Quantity: 1, Size: domain.SizeM})

	cart.UpdateQuantity("p1", 0)

	items := cart.Snapshot().Items
	require.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].Product.ID)
	assert.Equal(t, 1, cart.TotalItems())
}

func TestCartService_UpdateQuantitySetsEverySize(t *testing.T) {
	cart := services.NewCartService(defaultFee())
	cart.AddItem(domain.CartItem{Product: product("p1", "4.50"), Quantity: 2, Size: domain.SizeS})
	cart.AddItem(domain.CartItem{Product: product("p1", "4.50"), Quantity: 3, Size: domain.SizeL})

	cart.UpdateQuantity("p1", 5)

	for _, it := range cart.Snapshot().Items {
		assert.Equal(t, 5, it.Quantity)
	}
	assert.Equal(t, 10, cart.TotalItems())
}

func TestCartService_UpdateSizeDoesNotMerge(t *testing.T) {
	cart := services.NewCartService(defaultFee())
	cart.AddItem(domain.CartItem{Product: product("p1", "4.50"), Quantity: 1, Size: domain.SizeS})
	cart.AddItem(domain.CartItem{Product: product("p1", "4.50"), Quantity: 2, Size: domain.SizeL})

	cart.UpdateSize("p1", domain.SizeM)

	items := cart.Snapshot().Items
	require.Len(t, items, 2)
	assert.Equal(t, domain.SizeM, items[0].Size)
	assert.Equal(t, domain.SizeM, items[1].Size)
}

func TestCartService_RemoveItem(t *testing.T) {
	cart := services.NewCartService(defaultFee())
	cart.AddItem(domain.CartItem{Product: product("p1", "4.50"), Quantity: 1, Size: domain.SizeS})
	cart.AddItem(domain.CartItem{Product: product("p1", "4.50"), Quantity: 1, Size: domain.SizeL})
	before := cart.Snapshot()

	cart.RemoveItem("p1", domain.SizeM)
	cart.RemoveItem("missing", domain.SizeS)
	assert.Equal(t, before, cart.Snapshot())

	cart.RemoveItem("p1", domain.SizeS)
	items := cart.Snapshot().Items
	require.Len(t, items, 1)
	assert.Equal(t, domain.SizeL, items[0].Size)
}

func TestCartService_ClearCartKeepsSettings(t *testing.T) {
	cart := services.NewCartService(defaultFee())
	cart.AddItem(domain.CartItem{Product: product("p1", "4.50"), Quantity: 1, Size: domain.SizeS})
	cart.SetDeliveryType(domain.PickUp)
	cart.SetPaymentMethod(domain.PaymentMethod{Type: domain.Card, Selected: true})

	cart.ClearCart()

	st := cart.Snapshot()
	assert.Empty(t, st.Items)
	assert.Equal(t, domain.PickUp, st.DeliveryType)
	assert.Equal(t, domain.Card, st.PaymentMethod.Type)
	assert.Equal(t, 0, cart.TotalItems())
}

func TestCartService_SnapshotIsACopy(t *testing.T) {
	cart := services.NewCartService(defaultFee())
	cart.AddItem(domain.CartItem{Product: product("p1", "4.50"), Quantity: 1, Size: domain.SizeS})

	snap := cart.Snapshot()
	snap.Items[0].Quantity = 99

	assert.Equal(t, 1, cart.Snapshot().Items[0].Quantity)
}

func TestCartService_Summary(t *testing.T) {
	cart := services.NewCartService(defaultFee())
	cart.AddItem(domain.CartItem{Product: product("p1", "4.53"), Quantity: 1, Size: domain.SizeM})
	cart.SetDiscount(domain.Discount{Applied: true, Amount: decimal.RequireFromString("0.53")})

	sum := cart.Summary()
	assert.Equal(t, "4.53", sum.Subtotal.StringFixed(2))
	assert.Equal(t, "1.00", sum.DeliveryCharge.StringFixed(2))
	assert.Equal(t, "2.00", sum.DeliveryFee.Original.StringFixed(2))
	assert.Equal(t, "0.53", sum.Discount.StringFixed(2))
	assert.Equal(t, "5.00", sum.Total.StringFixed(2))
	assert.Equal(t, 1, sum.TotalItems)
}
