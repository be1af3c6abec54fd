package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is owned by the order store; a submitted quotation always starts as pending.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
)

func (s OrderStatus) Valid() bool {
	return s == OrderStatusPending || s == OrderStatusCompleted
}

// Order is a persisted service order (ordem de serviço).
//
// The header repeats the first service line's type and equipment fields so list
// views do not need the child records. Amounts are the totals computed at submission
// and are never recomputed from the lines.
type Order struct {
	ID                string            `json:"id"`
	CustomerID        string            `json:"customer_id"`
	CustomerName      string            `json:"customer_name"`
	CustomerPhone     string            `json:"customer_phone,omitempty"`
	ServiceType       ServiceType       `json:"service_type,omitempty"`
	EquipmentCategory EquipmentCategory `json:"equipment_category,omitempty"`
	Capacity          Capacity          `json:"capacity,omitempty"`
	Address           string            `json:"address,omitempty"`
	Latitude          *float64          `json:"latitude,omitempty"`
	Longitude         *float64          `json:"longitude,omitempty"`
	Notes             string            `json:"notes,omitempty"`

	Services  []OrderServiceLine  `json:"services"`
	Materials []OrderMaterialLine `json:"materials"`

	MaterialsTotal decimal.Decimal `json:"materials_total"`
	ServicesTotal  decimal.Decimal `json:"services_total"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Discount       decimal.Decimal `json:"discount"`
	Total          decimal.Decimal `json:"total"`

	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// OrderServiceLine is the persisted form of a ServiceLine. Value keeps the text
// as entered; Amount is what the line contributed to the services total.
type OrderServiceLine struct {
	Position    int               `json:"position"`
	Type        ServiceType       `json:"type"`
	Category    EquipmentCategory `json:"category,omitempty"`
	Capacity    Capacity          `json:"capacity,omitempty"`
	Description string            `json:"description,omitempty"`
	Value       string            `json:"value,omitempty"`
	Amount      decimal.Decimal   `json:"amount"`
}

// OrderMaterialLine snapshots the material at submission time.
type OrderMaterialLine struct {
	ID         string          `json:"id"`
	OrderID    string          `json:"order_id"`
	Position   int             `json:"position"`
	MaterialID string          `json:"material_id"`
	Name       string          `json:"name"`
	Unit       string          `json:"unit"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Quantity   int             `json:"quantity"`
	LineTotal  decimal.Decimal `json:"line_total"`
}
