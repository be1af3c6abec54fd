package pricing

import (
	"errors"
	"fmt"
	"strings"

	"refrigeracao_os/internal/domain/entities"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

var (
	ErrLineIndexOutOfRange      = errors.New("line index out of range")
	ErrNegativeDiscount         = errors.New("discount must not be negative")
	ErrCustomerRequired         = errors.New("customer name or existing customer is required")
	ErrCleaningCategoryRequired = errors.New("cleaning service requires an equipment category")
	ErrTooManyMaterialLines     = fmt.Errorf("an order holds at most %d material lines", MaxMaterialLines)
)

// MaxMaterialLines bounds the material lines of a submitted order so the order,
// its new customer and its lines fit a single DynamoDB transaction (100 actions).
const MaxMaterialLines = 98

// Totals is a snapshot of the derived amounts of a Quotation.
type Totals struct {
	MaterialsTotal decimal.Decimal `json:"materials_total"`
	ServicesTotal  decimal.Decimal `json:"services_total"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Discount       decimal.Decimal `json:"discount"`
	Total          decimal.Decimal `json:"total"`
}

// Quotation is the in-memory order being priced. Totals are derived from the
// lines and the discount on every call and never cached.
//
// Material lines are a pick-list: adding the same material twice yields two lines.
type Quotation struct {
	services  []entities.ServiceLine
	materials []entities.MaterialLine
	discount  decimal.Decimal
}

// NewQuotation returns a quotation with a single blank service line.
func NewQuotation() *Quotation {
	q := &Quotation{}
	q.Reset()
	return q
}

// RestoreQuotation rebuilds a quotation from previously stored lines.
func RestoreQuotation(services []entities.ServiceLine, materials []entities.MaterialLine, discount decimal.Decimal) *Quotation {
	q := &Quotation{
		services:  append([]entities.ServiceLine(nil), services...),
		materials: append([]entities.MaterialLine(nil), materials...),
		discount:  Round2(discount),
	}
	for i := range q.materials {
		q.materials[i].Quantity = clampQuantity(q.materials[i].Quantity)
	}
	if q.discount.IsNegative() {
		q.discount = decimal.Zero
	}
	return q
}

func (q *Quotation) Clone() *Quotation {
	return RestoreQuotation(q.services, q.materials, q.discount)
}

func (q *Quotation) Services() []entities.ServiceLine {
	return append([]entities.ServiceLine(nil), q.services...)
}

func (q *Quotation) Materials() []entities.MaterialLine {
	return append([]entities.MaterialLine(nil), q.materials...)
}

func (q *Quotation) Discount() decimal.Decimal {
	return q.discount
}

// Reset drops every line and the discount, leaving one blank service line.
func (q *Quotation) Reset() {
	q.services = []entities.ServiceLine{entities.BlankServiceLine()}
	q.materials = nil
	q.discount = decimal.Zero
}

// AddMaterialLine appends a line; quantity is clamped to at least 1.
func (q *Quotation) AddMaterialLine(m entities.Material, quantity int) int {
	q.materials = append(q.materials, entities.MaterialLine{Material: m, Quantity: clampQuantity(quantity)})
	return len(q.materials) - 1
}

func (q *Quotation) UpdateMaterialQuantity(index, quantity int) error {
	if index < 0 || index >= len(q.materials) {
		return ErrLineIndexOutOfRange
	}
	q.materials[index].Quantity = clampQuantity(quantity)
	return nil
}

// RemoveMaterialLine removes by position; later lines shift down by one.
func (q *Quotation) RemoveMaterialLine(index int) error {
	if index < 0 || index >= len(q.materials) {
		return ErrLineIndexOutOfRange
	}
	q.materials = append(q.materials[:index], q.materials[index+1:]...)
	return nil
}

func (q *Quotation) AddServiceLine(line entities.ServiceLine) int {
	q.services = append(q.services, line)
	return len(q.services) - 1
}

func (q *Quotation) UpdateServiceLine(index int, line entities.ServiceLine) error {
	if index < 0 || index >= len(q.services) {
		return ErrLineIndexOutOfRange
	}
	q.services[index] = line
	return nil
}

func (q *Quotation) RemoveServiceLine(index int) error {
	if index < 0 || index >= len(q.services) {
		return ErrLineIndexOutOfRange
	}
	q.services = append(q.services[:index], q.services[index+1:]...)
	return nil
}

// SetDiscount stores the discount rounded to cents, so the shown subtotal minus
// the shown discount always equals the total.
func (q *Quotation) SetDiscount(d decimal.Decimal) error {
	if d.IsNegative() {
		return ErrNegativeDiscount
	}
	q.discount = Round2(d)
	return nil
}

// MaterialsTotal is the sum of unit price x quantity, rounded once on the sum.
func (q *Quotation) MaterialsTotal() decimal.Decimal {
	sum := lo.Reduce(q.materials, func(acc decimal.Decimal, l entities.MaterialLine, _ int) decimal.Decimal {
		return acc.Add(l.Material.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}, decimal.Zero)
	return Round2(sum)
}

// ServicesTotal sums the parseable values of the service lines; empty or
// unparseable values contribute zero.
func (q *Quotation) ServicesTotal() decimal.Decimal {
	sum := lo.Reduce(q.services, func(acc decimal.Decimal, l entities.ServiceLine, _ int) decimal.Decimal {
		return acc.Add(ServiceLineAmount(l))
	}, decimal.Zero)
	return Round2(sum)
}

func (q *Quotation) Subtotal() decimal.Decimal {
	return Round2(Round2(q.MaterialsTotal()).Add(Round2(q.ServicesTotal())))
}

// TotalWithDiscount subtracts the discount from the already rounded subtotal and
// rounds again. The result is not clamped at zero.
func (q *Quotation) TotalWithDiscount(discount decimal.Decimal) decimal.Decimal {
	return Round2(q.Subtotal().Sub(discount))
}

func (q *Quotation) Total() decimal.Decimal {
	return q.TotalWithDiscount(q.discount)
}

func (q *Quotation) Totals() Totals {
	return Totals{
		MaterialsTotal: q.MaterialsTotal(),
		ServicesTotal:  q.ServicesTotal(),
		Subtotal:       q.Subtotal(),
		Discount:       q.discount,
		Total:          q.Total(),
	}
}

// CustomerRef identifies who the order is for: an existing customer or a new name.
type CustomerRef struct {
	ID   string
	Name string
}

// Validate runs the submission checks. Incomplete lines are otherwise accepted;
// details are often filled in later on site.
func (q *Quotation) Validate(customer CustomerRef) error {
	if strings.TrimSpace(customer.ID) == "" && strings.TrimSpace(customer.Name) == "" {
		return ErrCustomerRequired
	}
	if len(q.materials) > MaxMaterialLines {
		return ErrTooManyMaterialLines
	}
	for i, l := range q.services {
		if l.Type == entities.ServiceCleaning && l.Category == "" {
			return fmt.Errorf("service line %d: %w", i+1, ErrCleaningCategoryRequired)
		}
	}
	return nil
}

// ServiceLineAmount is what a single service line contributes to the total.
// Negative values are treated as unparseable and contribute zero.
func ServiceLineAmount(l entities.ServiceLine) decimal.Decimal {
	v, ok := parseServiceValue(l.Value)
	if !ok {
		return decimal.Zero
	}
	return v
}

func parseServiceValue(s string) (decimal.Decimal, bool) {
	v, ok := ParseAmount(s)
	if !ok || v.IsNegative() {
		return decimal.Zero, false
	}
	return v, true
}

// PriceServiceLine fills an empty value of an installation or cleaning line from
// the price table. It reports whether the returned line carries a usable value.
func PriceServiceLine(r *Resolver, l entities.ServiceLine) (entities.ServiceLine, bool) {
	if strings.TrimSpace(l.Value) != "" {
		_, ok := parseServiceValue(l.Value)
		return l, ok
	}
	if r == nil || l.Category == "" {
		return l, false
	}

	var (
		amount decimal.Decimal
		err    error
	)
	switch l.Type {
	case entities.ServiceInstallation:
		if l.Capacity == 0 {
			return l, false
		}
		amount, err = r.InstallationAmount(l.Category, l.Capacity)
	case entities.ServiceCleaning:
		amount, err = r.CleaningAmount(l.Category)
	default:
		return l, false
	}
	if err != nil {
		return l, false
	}
	l.Value = amount.StringFixed(centsPlaces)
	return l, true
}

func clampQuantity(q int) int {
	if q < 1 {
		return 1
	}
	return q
}
