package handler

import (
	"time"

	"github.com/andrevlb/sushi-api/internal/entities"
	"github.com/andrevlb/sushi-api/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is the wire representation of an order aggregate.
type Order struct {
	ID                int64           `json:"id"`
	CustomerID        uuid.UUID       `json:"customer_id"`
	DeliveryAddressID int64           `json:"delivery_address_id"`
	OrderDate         time.Time       `json:"order_date"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	Items             []OrderItem     `json:"items"`
}

type OrderItem struct {
	ID         int64           `json:"id"`
	ProductID  int64           `json:"product_id"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// CreateOrderRequest carries only references and quantities; prices and
// totals are computed server-side.
type CreateOrderRequest struct {
	CustomerID        uuid.UUID              `json:"customer_id" validate:"required"`
	DeliveryAddressID int64                  `json:"delivery_address_id" validate:"required"`
	Items             []CreateOrderItemInput `json:"items" validate:"required,min=1,dive"`
}

type CreateOrderItemInput struct {
	ProductID int64 `json:"product_id" validate:"required"`
	Quantity  int   `json:"quantity" validate:"required,gt=0"`
}

// ReplaceOrderRequest submits the complete new item set; an empty list is
// valid and drops every line.
type ReplaceOrderRequest struct {
	ID                int64                   `json:"id" validate:"required"`
	DeliveryAddressID int64                   `json:"delivery_address_id" validate:"required"`
	Items             []ReplaceOrderItemInput `json:"items" validate:"dive"`
}

type ReplaceOrderItemInput struct {
	ID        int64 `json:"id,omitempty"`
	ProductID int64 `json:"product_id" validate:"required"`
	Quantity  int   `json:"quantity" validate:"required,gt=0"`
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItem{
			ID:         it.ID,
			ProductID:  it.ProductID,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			TotalPrice: it.TotalPrice,
		})
	}
	return Order{
		ID:                o.ID,
		CustomerID:        o.CustomerID,
		DeliveryAddressID: o.DeliveryAddressID,
		OrderDate:         o.OrderDate,
		TotalAmount:       o.TotalAmount,
		Items:             items,
	}
}

func OrdersEntityToJSON(orders []entities.Order) []Order {
	result := make([]Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderEntityToJSON(o))
	}
	return result
}

func (r CreateOrderRequest) ToInput() service.CreateOrderInput {
	items := make([]service.OrderLineInput, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, service.OrderLineInput{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return service.CreateOrderInput{
		CustomerID:        r.CustomerID,
		DeliveryAddressID: r.DeliveryAddressID,
		Items:             items,
	}
}

func (r ReplaceOrderRequest) ToInput() service.ReplaceOrderInput {
	items := make([]service.OrderLineInput, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, service.OrderLineInput{ItemID: it.ID, ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return service.ReplaceOrderInput{
		OrderID:           r.ID,
		DeliveryAddressID: r.DeliveryAddressID,
		Items:             items,
	}
}

type Product struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	PortionQuantity int             `json:"portion_quantity"`
	PortionUnit     string          `json:"portion_unit"`
	URLImage        string          `json:"url_image"`
	CategoryIDs     []int64         `json:"category_ids"`
}

type ProductRequest struct {
	Name            string          `json:"name" validate:"required"`
	Description     string          `json:"description" validate:"required"`
	Price           decimal.Decimal `json:"price" validate:"required"`
	PortionQuantity int             `json:"portion_quantity" validate:"required,gt=0"`
	PortionUnit     string          `json:"portion_unit" validate:"required"`
	URLImage        string          `json:"url_image" validate:"required,url"`
	CategoryIDs     []int64         `json:"category_ids" validate:"required,min=1"`
}

func ProductEntityToJSON(p entities.Product) Product {
	return Product{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		PortionQuantity: p.PortionQuantity,
		PortionUnit:     p.PortionUnit,
		URLImage:        p.URLImage,
		CategoryIDs:     p.CategoryIDs,
	}
}

func ProductsEntityToJSON(products []entities.Product) []Product {
	result := make([]Product, 0, len(products))
	for _, p := range products {
		result = append(result, ProductEntityToJSON(p))
	}
	return result
}

func (r ProductRequest) ToInput() service.ProductInput {
	return service.ProductInput{
		Name:            r.Name,
		Description:     r.Description,
		Price:           r.Price,
		PortionQuantity: r.PortionQuantity,
		PortionUnit:     r.PortionUnit,
		URLImage:        r.URLImage,
		CategoryIDs:     r.CategoryIDs,
	}
}

type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

func CategoryEntityToJSON(c entities.Category) Category {
	return Category{ID: c.ID, Name: c.Name, Description: c.Description}
}

func CategoriesEntityToJSON(categories []entities.Category) []Category {
	result := make([]Category, 0, len(categories))
	for _, c := range categories {
		result = append(result, CategoryEntityToJSON(c))
	}
	return result
}

type Customer struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Addresses []Address `json:"addresses,omitempty"`
}

type Address struct {
	ID           int64  `json:"id"`
	Number       string `json:"number"`
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
}

type CustomerRequest struct {
	Name      string         `json:"name" validate:"required"`
	Email     string         `json:"email" validate:"required,email"`
	Password  string         `json:"password" validate:"required"`
	Phone     string         `json:"phone" validate:"required"`
	Addresses []AddressInput `json:"addresses" validate:"required,min=1,dive"`
}

type AddressInput struct {
	Number       string `json:"number" validate:"required"`
	Street       string `json:"street" validate:"required,max=255"`
	Neighborhood string `json:"neighborhood" validate:"required,max=255"`
}

// CustomerEntityToJSON never exposes the password hash.
func CustomerEntityToJSON(c entities.Customer) Customer {
	addresses := make([]Address, 0, len(c.Addresses))
	for _, a := range c.Addresses {
		addresses = append(addresses, Address{
			ID:           a.ID,
			Number:       a.Number,
			Street:       a.Street,
			Neighborhood: a.Neighborhood,
		})
	}
	return Customer{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone.Number,
		Addresses: addresses,
	}
}

func CustomersEntityToJSON(customers []entities.Customer) []Customer {
	result := make([]Customer, 0, len(customers))
	for _, c := range customers {
		result = append(result, CustomerEntityToJSON(c))
	}
	return result
}

func (r CustomerRequest) ToInput() service.CustomerInput {
	addresses := make([]service.AddressInput, 0, len(r.Addresses))
	for _, a := range r.Addresses {
		addresses = append(addresses, service.AddressInput{
			Number:       a.Number,
			Street:       a.Street,
			Neighborhood: a.Neighborhood,
		})
	}
	return service.CustomerInput{
		Name:      r.Name,
		Email:     r.Email,
		Password:  r.Password,
		Phone:     r.Phone,
		Addresses: addresses,
	}
}

type Employee struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type EmployeeRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func EmployeeEntityToJSON(e entities.Employee) Employee {
	return Employee{ID: e.ID, Name: e.Name, Email: e.Email}
}

func EmployeesEntityToJSON(employees []entities.Employee) []Employee {
	result := make([]Employee, 0, len(employees))
	for _, e := range employees {
		result = append(result, EmployeeEntityToJSON(e))
	}
	return result
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Name      string    `json:"name"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func AuthResultToJSON(r service.AuthResult) AuthResponse {
	return AuthResponse{Name: r.Name, Token: r.Token, ExpiresAt: r.ExpiresAt}
}
