package response

import (
	"time"

	"refrigeracao_os/internal/domain/entities"
	"refrigeracao_os/internal/domain/pricing"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type ServiceLineResponse struct {
	Index               int    `json:"index"`
	Type                string `json:"type"`
	TypeLabel           string `json:"type_label"`
	Category            string `json:"category,omitempty"`
	Capacity            int    `json:"capacity,omitempty"`
	Description         string `json:"description,omitempty"`
	Value               string `json:"value"`
	Amount              Money  `json:"amount"`
	RequiresCustomValue bool   `json:"requires_custom_value"`
}

type MaterialLineResponse struct {
	Index      int    `json:"index"`
	MaterialID string `json:"material_id"`
	Name       string `json:"name"`
	Unit       string `json:"unit"`
	UnitPrice  Money  `json:"unit_price"`
	Quantity   int    `json:"quantity"`
	LineTotal  Money  `json:"line_total"`
}

// QuotationResponse carries totals computed at response time.
type QuotationResponse struct {
	ID            string                 `json:"id"`
	State         string                 `json:"state"`
	SourceOrderID string                 `json:"source_order_id,omitempty"`
	Services      []ServiceLineResponse  `json:"services"`
	Materials     []MaterialLineResponse `json:"materials"`
	Totals        TotalsResponse         `json:"totals"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

func FromDraft(d pricing.Draft) QuotationResponse {
	q := d.Quotation
	if q == nil {
		q = pricing.NewQuotation()
	}
	return QuotationResponse{
		ID:            d.ID,
		State:         string(d.State),
		SourceOrderID: d.SourceOrderID,
		Services: lo.Map(q.Services(), func(l entities.ServiceLine, i int) ServiceLineResponse {
			return ServiceLineResponse{
				Index:               i,
				Type:                string(l.Type),
				TypeLabel:           l.Type.Label(),
				Category:            string(l.Category),
				Capacity:            int(l.Capacity),
				Description:         l.Description,
				Value:               l.Value,
				Amount:              NewMoney(pricing.ServiceLineAmount(l)),
				RequiresCustomValue: l.Type.RequiresCustomValue(),
			}
		}),
		Materials: lo.Map(q.Materials(), func(l entities.MaterialLine, i int) MaterialLineResponse {
			return MaterialLineResponse{
				Index:      i,
				MaterialID: l.Material.ID,
				Name:       l.Material.Name,
				Unit:       l.Material.Unit,
				UnitPrice:  NewMoney(l.Material.Price),
				Quantity:   l.Quantity,
				LineTotal:  NewMoney(l.Material.Price.Mul(decimalQty(l.Quantity))),
			}
		}),
		Totals:    FromTotals(q.Totals()),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func decimalQty(q int) decimal.Decimal {
	return decimal.NewFromInt(int64(q))
}
