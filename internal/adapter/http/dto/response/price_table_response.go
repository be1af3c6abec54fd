package response

import (
	"time"

	"refrigeracao_os/internal/domain/entities"
)

// PriceTableResponse keys capacities by their decimal text ("12000"). Cells
// hold the stored text; "" is a blank cell, a missing key was never set.
type PriceTableResponse struct {
	ID           string                       `json:"id"`
	Revision     int64                        `json:"revision"`
	Installation map[string]map[string]string `json:"installation"`
	Cleaning     map[string]string            `json:"cleaning"`
	Categories   []CategoryResponse           `json:"categories"`
	Capacities   []int                        `json:"capacities"`
	UpdatedAt    time.Time                    `json:"updated_at"`
}

type CategoryResponse struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

func FromPriceTable(t entities.PriceTable) PriceTableResponse {
	res := PriceTableResponse{
		ID:           t.ID,
		Revision:     t.Revision,
		Installation: make(map[string]map[string]string, len(t.Installation)),
		Cleaning:     make(map[string]string, len(t.Cleaning)),
		UpdatedAt:    t.UpdatedAt,
	}
	for cat, byCap := range t.Installation {
		inner := make(map[string]string, len(byCap))
		for c, v := range byCap {
			inner[c.String()] = v
		}
		res.Installation[string(cat)] = inner
	}
	for cat, v := range t.Cleaning {
		res.Cleaning[string(cat)] = v
	}
	for _, c := range entities.EquipmentCategories {
		res.Categories = append(res.Categories, CategoryResponse{Key: string(c), Label: c.Label()})
	}
	for _, c := range entities.Capacities {
		res.Capacities = append(res.Capacities, int(c))
	}
	return res
}

// PriceResponse is a single resolved cell.
type PriceResponse struct {
	Category string `json:"category"`
	Capacity int    `json:"capacity,omitempty"`
	Price    string `json:"price"`
}
