package domain

import (
	"errors"
	"time"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrValidation        = errors.New("validation failed")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Product is the persisted catalog entity. Price is in minor currency
// units (cents). Category is lowercased at write time.
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     int64     `json:"price"`
	Stock     int       `json:"stock"`
	Category  string    `json:"category"`
	Photo     string    `json:"photo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
