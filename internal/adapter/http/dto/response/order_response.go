package response

import (
	"time"

	"refrigeracao_os/internal/domain/entities"

	"github.com/samber/lo"
)

type OrderServiceResponse struct {
	Position    int    `json:"position"`
	Type        string `json:"type"`
	TypeLabel   string `json:"type_label"`
	Category    string `json:"category,omitempty"`
	Capacity    int    `json:"capacity,omitempty"`
	Description string `json:"description,omitempty"`
	Value       string `json:"value,omitempty"`
	Amount      Money  `json:"amount"`
}

type OrderMaterialResponse struct {
	Position   int    `json:"position"`
	MaterialID string `json:"material_id"`
	Name       string `json:"name"`
	Unit       string `json:"unit"`
	UnitPrice  Money  `json:"unit_price"`
	Quantity   int    `json:"quantity"`
	LineTotal  Money  `json:"line_total"`
}

type OrderResponse struct {
	ID                string                  `json:"id"`
	CustomerID        string                  `json:"customer_id"`
	CustomerName      string                  `json:"customer_name"`
	CustomerPhone     string                  `json:"customer_phone,omitempty"`
	ServiceType       string                  `json:"service_type,omitempty"`
	EquipmentCategory string                  `json:"equipment_category,omitempty"`
	Capacity          int                     `json:"capacity,omitempty"`
	Address           string                  `json:"address,omitempty"`
	Latitude          *float64                `json:"latitude,omitempty"`
	Longitude         *float64                `json:"longitude,omitempty"`
	Notes             string                  `json:"notes,omitempty"`
	Services          []OrderServiceResponse  `json:"services"`
	Materials         []OrderMaterialResponse `json:"materials"`
	Totals            TotalsResponse          `json:"totals"`
	Status            string                  `json:"status"`
	CreatedAt         time.Time               `json:"created_at"`
	UpdatedAt         time.Time               `json:"updated_at"`
}

// FromOrder returns the stored amounts as they were at submission.
func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:                o.ID,
		CustomerID:        o.CustomerID,
		CustomerName:      o.CustomerName,
		CustomerPhone:     o.CustomerPhone,
		ServiceType:       string(o.ServiceType),
		EquipmentCategory: string(o.EquipmentCategory),
		Capacity:          int(o.Capacity),
		Address:           o.Address,
		Latitude:          o.Latitude,
		Longitude:         o.Longitude,
		Notes:             o.Notes,
		Services: lo.Map(o.Services, func(l entities.OrderServiceLine, _ int) OrderServiceResponse {
			return OrderServiceResponse{
				Position:    l.Position,
				Type:        string(l.Type),
				TypeLabel:   l.Type.Label(),
				Category:    string(l.Category),
				Capacity:    int(l.Capacity),
				Description: l.Description,
				Value:       l.Value,
				Amount:      NewMoney(l.Amount),
			}
		}),
		Materials: lo.Map(o.Materials, func(l entities.OrderMaterialLine, _ int) OrderMaterialResponse {
			return OrderMaterialResponse{
				Position:   l.Position,
				MaterialID: l.MaterialID,
				Name:       l.Name,
				Unit:       l.Unit,
				UnitPrice:  NewMoney(l.UnitPrice),
				Quantity:   l.Quantity,
				LineTotal:  NewMoney(l.LineTotal),
			}
		}),
		Totals: TotalsResponse{
			MaterialsTotal: NewMoney(o.MaterialsTotal),
			ServicesTotal:  NewMoney(o.ServicesTotal),
			Subtotal:       NewMoney(o.Subtotal),
			Discount:       NewMoney(o.Discount),
			Total:          NewMoney(o.Total),
		},
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	return lo.Map(orders, func(o entities.Order, _ int) OrderResponse {
		return FromOrder(o)
	})
}
