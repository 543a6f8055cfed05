package entities_test

import (
	"testing"

	"github.com/andrevlb/sushi-api/internal/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrderItem_Reprice(t *testing.T) {
	product := entities.Product{
		ID:    7,
		Name:  "Salmon Nigiri",
		Price: decimal.RequireFromString("8.99"),
	}

	var item entities.OrderItem
	item.Reprice(product, 2)

	assert.Equal(t, int64(7), item.ProductID)
	assert.Equal(t, 2, item.Quantity)
	assert.True(t, item.UnitPrice.Equal(decimal.RequireFromString("8.99")))
	assert.True(t, item.TotalPrice.Equal(decimal.RequireFromString("17.98")))
}

func TestOrderItem_Reprice_OverwritesPreviousSnapshot(t *testing.T) {
	item := entities.OrderItem{
		ID:        3,
		ProductID: 1,
		Quantity:  5,
		UnitPrice: decimal.RequireFromString("4.50"),
	}
	item.CalculateTotal()

	product := entities.Product{ID: 2, Price: decimal.RequireFromString("12.00")}
	item.Reprice(product, 1)

	assert.Equal(t, int64(3), item.ID, "identity survives repricing")
	assert.Equal(t, int64(2), item.ProductID)
	assert.True(t, item.UnitPrice.Equal(decimal.RequireFromString("12.00")))
	assert.True(t, item.TotalPrice.Equal(decimal.RequireFromString("12.00")))
}

func TestOrder_CalculateTotal(t *testing.T) {
	testCases := []struct {
		name  string
		items []entities.OrderItem
		want  string
	}{
		{
			name: "sums item totals",
			items: []entities.OrderItem{
				{Quantity: 2, UnitPrice: decimal.RequireFromString("8.99"), TotalPrice: decimal.RequireFromString("17.98")},
				{Quantity: 1, UnitPrice: decimal.RequireFromString("5.00"), TotalPrice: decimal.RequireFromString("5.00")},
			},
			want: "22.98",
		},
		{
			name:  "no items means zero total",
			items: nil,
			want:  "0",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			order := entities.Order{Items: tc.items}
			order.CalculateTotal()
			assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString(tc.want)),
				"got %s", order.TotalAmount)
		})
	}
}
