package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Material is a catalog item that can be picked into a quotation.
//
// Unit is a free-form label ("metro", "unidade", ...) and Price is the default
// unit price, never negative.
type Material struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// MaterialLine is a material picked into a quotation. Quantity is always >= 1.
type MaterialLine struct {
	Material Material `json:"material"`
	Quantity int      `json:"quantity"`
}
