package repo

import (
	"time"

	"github.com/andrevlb/sushi-api/internal/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type orderRow struct {
	ID                int64           `db:"id"`
	CustomerID        uuid.UUID       `db:"customer_id"`
	DeliveryAddressID int64           `db:"delivery_address_id"`
	OrderDate         time.Time       `db:"order_date"`
	TotalAmount       decimal.Decimal `db:"total_amount"`
}

type orderItemRow struct {
	ID         int64           `db:"id"`
	OrderID    int64           `db:"order_id"`
	ProductID  int64           `db:"product_id"`
	Quantity   int             `db:"quantity"`
	UnitPrice  decimal.Decimal `db:"unit_price"`
	TotalPrice decimal.Decimal `db:"total_price"`
}

type productRow struct {
	ID              int64           `db:"id"`
	Name            string          `db:"name"`
	Description     string          `db:"description"`
	Price           decimal.Decimal `db:"price"`
	PortionQuantity int             `db:"portion_quantity"`
	PortionUnit     string          `db:"portion_unit"`
	URLImage        string          `db:"url_image"`
}

type categoryRow struct {
	ID          int64  `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
}

type customerRow struct {
	ID       uuid.UUID `db:"id"`
	Name     string    `db:"name"`
	Email    string    `db:"email"`
	Password string    `db:"password"`
}

type phoneRow struct {
	ID         int64     `db:"id"`
	CustomerID uuid.UUID `db:"customer_id"`
	Number     string    `db:"number"`
}

type addressRow struct {
	ID           int64     `db:"id"`
	CustomerID   uuid.UUID `db:"customer_id"`
	Number       string    `db:"number"`
	Street       string    `db:"street"`
	Neighborhood string    `db:"neighborhood"`
}

type employeeRow struct {
	ID       uuid.UUID `db:"id"`
	Name     string    `db:"name"`
	Email    string    `db:"email"`
	Password string    `db:"password"`
}

func orderToEntity(o orderRow, items []orderItemRow) entities.Order {
	order := entities.Order{
		ID:                o.ID,
		CustomerID:        o.CustomerID,
		DeliveryAddressID: o.DeliveryAddressID,
		OrderDate:         o.OrderDate,
		TotalAmount:       o.TotalAmount,
	}
	if len(items) > 0 {
		order.Items = make([]entities.OrderItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, orderItemToEntity(it))
		}
	}
	return order
}

func orderItemToEntity(i orderItemRow) entities.OrderItem {
	return entities.OrderItem{
		ID:         i.ID,
		OrderID:    i.OrderID,
		ProductID:  i.ProductID,
		Quantity:   i.Quantity,
		UnitPrice:  i.UnitPrice,
		TotalPrice: i.TotalPrice,
	}
}

func productToEntity(p productRow, categoryIDs []int64) entities.Product {
	return entities.Product{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		PortionQuantity: p.PortionQuantity,
		PortionUnit:     p.PortionUnit,
		URLImage:        p.URLImage,
		CategoryIDs:     categoryIDs,
	}
}

func categoryToEntity(c categoryRow) entities.Category {
	return entities.Category{ID: c.ID, Name: c.Name, Description: c.Description}
}

func customerToEntity(c customerRow, phone phoneRow, addresses []addressRow) entities.Customer {
	customer := entities.Customer{
		ID:           c.ID,
		Name:         c.Name,
		Email:        c.Email,
		PasswordHash: c.Password,
		Phone:        entities.Phone{ID: phone.ID, Number: phone.Number},
	}
	if len(addresses) > 0 {
		customer.Addresses = make([]entities.Address, 0, len(addresses))
		for _, a := range addresses {
			customer.Addresses = append(customer.Addresses, addressToEntity(a))
		}
	}
	return customer
}

func addressToEntity(a addressRow) entities.Address {
	return entities.Address{
		ID:           a.ID,
		Number:       a.Number,
		Street:       a.Street,
		Neighborhood: a.Neighborhood,
	}
}

func employeeToEntity(e employeeRow) entities.Employee {
	return entities.Employee{ID: e.ID, Name: e.Name, Email: e.Email, PasswordHash: e.Password}
}
