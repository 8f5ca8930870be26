package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoercePrice(t *testing.T) {
	cases := []struct {
		in   interface{}
		want float64
	}{
		{550.0, 550},
		{float32(99.5), 99.5},
		{int32(120), 120},
		{int64(120), 120},
		{120, 120},
		{"499", 499},
		{"499.99", 499.99},
		{"", 0},
		{"not a number", 0},
		{nil, 0},
		{true, 0},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, CoercePrice(tc.in), "input %v", tc.in)
	}
}

func TestCartEntrySubtotal(t *testing.T) {
	e := CartEntry{Item: CatalogItem{MRP: 500}, Quantity: 2}
	assert.Equal(t, 1000.0, e.Subtotal())

	missing := CartEntry{Item: CatalogItem{}, Quantity: 3}
	assert.Zero(t, missing.Subtotal())
}
