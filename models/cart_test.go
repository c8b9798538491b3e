package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartUpdateInc(t *testing.T) {
	cart := Cart{}

	cart = cart.Update("🍵 Matcha OG", CartInc)
	assert.Equal(t, 1, cart.Qty("🍵 Matcha OG"))

	cart = cart.Update("🍵 Matcha OG", CartInc)
	assert.Equal(t, 2, cart.Qty("🍵 Matcha OG"))
}

func TestCartUpdateDecRemovesAtZero(t *testing.T) {
	cart := Cart{"🍵 Matcha OG": 1}

	cart = cart.Update("🍵 Matcha OG", CartDec)
	assert.Equal(t, 0, cart.Qty("🍵 Matcha OG"))
	_, exists := cart["🍵 Matcha OG"]
	assert.False(t, exists, "entry dengan qty 0 harus dihapus, bukan disimpan")
}

func TestCartUpdateDecOnMissingItemIsNoop(t *testing.T) {
	cart := Cart{"🍯 Honey Matcha": 3}

	next := cart.Update("🍵 Matcha OG", CartDec)
	assert.Equal(t, cart, next)
}

func TestCartUpdateDoesNotMutateInput(t *testing.T) {
	cart := Cart{"🍵 Matcha OG": 1}

	_ = cart.Update("🍵 Matcha OG", CartInc)
	assert.Equal(t, 1, cart.Qty("🍵 Matcha OG"))

	_ = cart.Update("🍵 Matcha OG", CartDec)
	assert.Equal(t, 1, cart.Qty("🍵 Matcha OG"))
}

func TestCartIncThenDecRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		cart Cart
	}{
		{name: "starting from empty", cart: Cart{}},
		{name: "starting from qty 2", cart: Cart{"🍵 Matcha OG": 2}},
		{name: "with other items present", cart: Cart{"🍯 Honey Matcha": 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := tt.cart.Update("🍵 Matcha OG", CartInc).Update("🍵 Matcha OG", CartDec)
			assert.Equal(t, tt.cart, next)
		})
	}
}

func TestMenuTotal(t *testing.T) {
	menu := DefaultMenu()

	assert.Equal(t, 0, menu.Total(Cart{}), "keranjang kosong harus bertotal 0")

	cart := Cart{
		"🍵 Matcha OG":    2, // 2 x 12000
		"🍯 Honey Matcha": 1, // 1 x 15000
	}
	assert.Equal(t, 39000, menu.Total(cart))
}

func TestMenuPriceLookup(t *testing.T) {
	menu := DefaultMenu()

	price, ok := menu.Price("🍵 Matcha OG")
	assert.True(t, ok)
	assert.Equal(t, 12000, price)

	_, ok = menu.Price("Es Teh")
	assert.False(t, ok)
	assert.False(t, menu.Has("Es Teh"))
}

func TestMenuItemOrderIsStable(t *testing.T) {
	menu := NewMenu([]MenuItem{
		{Name: "B", Price: 2},
		{Name: "A", Price: 1},
		{Name: "C", Price: 3},
	})

	items := menu.Items()
	assert.Equal(t, []string{"B", "A", "C"}, []string{items[0].Name, items[1].Name, items[2].Name})
}
