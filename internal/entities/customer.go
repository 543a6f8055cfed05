package entities

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrAddressNotFound    = errors.New("address not found")
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Phone struct {
	ID     int64
	Number string
}

type Address struct {
	ID           int64
	Number       string
	Street       string
	Neighborhood string
}

// Customer carries the bcrypt hash, never the raw password.
type Customer struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Phone        Phone
	Addresses    []Address
}
