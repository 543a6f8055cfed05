package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderItemNotFound = errors.New("order item not found")
)

// OrderItem is one line of an order. UnitPrice is snapshotted from the
// product at creation/replace time and is never taken from client input.
type OrderItem struct {
	ID         int64
	OrderID    int64
	ProductID  int64
	Quantity   int
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}

// Reprice points the item at product, sets the quantity, re-snapshots the
// unit price from the product and recomputes the line total. All price
// assignments go through here.
func (i *OrderItem) Reprice(product Product, quantity int) {
	i.ProductID = product.ID
	i.Quantity = quantity
	i.UnitPrice = product.Price
	i.CalculateTotal()
}

func (i *OrderItem) CalculateTotal() {
	i.TotalPrice = i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order owns its item collection; items carry the order id, there are no
// back-pointers. TotalAmount is derived and never client-supplied.
type Order struct {
	ID                int64
	CustomerID        uuid.UUID
	DeliveryAddressID int64
	OrderDate         time.Time
	TotalAmount       decimal.Decimal
	Items             []OrderItem
}

// CalculateTotal recomputes TotalAmount as the sum of line totals.
// Must be called after any change to Items.
func (o *Order) CalculateTotal() {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.TotalPrice)
	}
	o.TotalAmount = total
}
