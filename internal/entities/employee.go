package entities

import (
	"errors"

	"github.com/google/uuid"
)

var ErrEmployeeNotFound = errors.New("employee not found")

type Employee struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
}
