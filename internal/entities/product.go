package entities

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrProductExists    = errors.New("product with this name already exists")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category with this name already exists")
)

type Category struct {
	ID          int64
	Name        string
	Description string
}

type Product struct {
	ID              int64
	Name            string
	Description     string
	Price           decimal.Decimal
	PortionQuantity int
	PortionUnit     string
	URLImage        string
	CategoryIDs     []int64
}
