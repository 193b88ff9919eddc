package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCart_FindRemoveClear(t *testing.T) {
	cart := &Cart{Items: []CartItem{
		{ProductID: 1, Name: "Hamburguesa Clásica", UnitPrice: 3500, Quantity: 2},
		{ProductID: 2, Name: "Gaseosa 350ml", UnitPrice: 1200, Quantity: 1},
	}}

	item := cart.Find(1)
	assert.NotNil(t, item)
	assert.Equal(t, "Hamburguesa Clásica", item.Name)
	assert.Nil(t, cart.Find(3))

	cart.Remove(1)
	assert.Len(t, cart.Items, 1)
	cart.Remove(99)
	assert.Len(t, cart.Items, 1)

	cart.Clear()
	assert.True(t, cart.IsEmpty())
}

func TestCart_Total(t *testing.T) {
	cart := &Cart{}
	assert.Equal(t, int64(0), cart.Total())

	cart.Items = []CartItem{
		{ProductID: 1, UnitPrice: 3500, Quantity: 2, ExtraCodes: []string{"tocino"}},
		{ProductID: 2, UnitPrice: 1200, Quantity: 3},
	}

	// Extras never count toward the total
	assert.Equal(t, int64(10600), cart.Total())
}
