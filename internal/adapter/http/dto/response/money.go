package response

import (
	"refrigeracao_os/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

// Money is an amount as sent to clients: a fixed two-place string plus a
// display form.
type Money struct {
	Value     string `json:"value"`
	Formatted string `json:"formatted"`
}

func NewMoney(d decimal.Decimal) Money {
	return Money{
		Value:     pricing.Round2(d).StringFixed(2),
		Formatted: pricing.FormatBRL(d),
	}
}

type TotalsResponse struct {
	MaterialsTotal Money `json:"materials_total"`
	ServicesTotal  Money `json:"services_total"`
	Subtotal       Money `json:"subtotal"`
	Discount       Money `json:"discount"`
	Total          Money `json:"total"`
}

func FromTotals(t pricing.Totals) TotalsResponse {
	return TotalsResponse{
		MaterialsTotal: NewMoney(t.MaterialsTotal),
		ServicesTotal:  NewMoney(t.ServicesTotal),
		Subtotal:       NewMoney(t.Subtotal),
		Discount:       NewMoney(t.Discount),
		Total:          NewMoney(t.Total),
	}
}
