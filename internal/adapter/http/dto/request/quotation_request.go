package request

import (
	"strings"

	"refrigeracao_os/internal/domain/entities"
	"refrigeracao_os/internal/domain/pricing"
	"refrigeracao_os/internal/usecase"

	"github.com/shopspring/decimal"
)

type AddMaterialRequest struct {
	MaterialID string `json:"material_id" binding:"required"`
	Quantity   int    `json:"quantity"`
}

type QuantityRequest struct {
	Quantity int `json:"quantity"`
}

type ServiceLineRequest struct {
	Type        string     `json:"type"`
	Category    string     `json:"category"`
	Capacity    int        `json:"capacity"`
	Description string     `json:"description"`
	Value       AmountText `json:"value"`
}

func (r ServiceLineRequest) ToEntity() entities.ServiceLine {
	return entities.ServiceLine{
		Type:        entities.ServiceType(strings.TrimSpace(r.Type)),
		Category:    entities.EquipmentCategory(strings.TrimSpace(r.Category)),
		Capacity:    entities.Capacity(r.Capacity),
		Description: strings.TrimSpace(r.Description),
		Value:       r.Value.String(),
	}
}

type DiscountRequest struct {
	Discount AmountText `json:"discount"`
}

// Resolve parses the discount; an empty value clears it.
func (r DiscountRequest) Resolve() (decimal.Decimal, error) {
	if r.Discount.String() == "" {
		return decimal.Zero, nil
	}
	d, ok := pricing.ParseAmount(r.Discount.String())
	if !ok {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

type SubmitRequest struct {
	CustomerID    string   `json:"customer_id"`
	CustomerName  string   `json:"customer_name"`
	CustomerPhone string   `json:"customer_phone"`
	Address       string   `json:"address"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	Notes         string   `json:"notes"`
}

func (r SubmitRequest) ToInput() usecase.SubmitInput {
	return usecase.SubmitInput{
		CustomerID:    strings.TrimSpace(r.CustomerID),
		CustomerName:  strings.TrimSpace(r.CustomerName),
		CustomerPhone: strings.TrimSpace(r.CustomerPhone),
		Address:       strings.TrimSpace(r.Address),
		Latitude:      r.Latitude,
		Longitude:     r.Longitude,
		Notes:         strings.TrimSpace(r.Notes),
	}
}
