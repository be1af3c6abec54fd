package pricing

import (
	"errors"

	"refrigeracao_os/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	// ErrPriceNotFound means the table has no cell for the key. It is never
	// turned into a zero price: "free" and "unpriced" are different things.
	ErrPriceNotFound   = errors.New("price not found")
	ErrPriceUnset      = errors.New("price cell is blank")
	ErrUnknownCategory = errors.New("unknown equipment category")
	ErrUnknownCapacity = errors.New("unknown capacity")
)

// Resolver looks up and edits unit prices on its own copy of a PriceTable.
type Resolver struct {
	table entities.PriceTable
}

func NewResolver(t entities.PriceTable) *Resolver {
	return &Resolver{table: t.Clone()}
}

// Table returns a copy of the current table.
func (r *Resolver) Table() entities.PriceTable {
	return r.table.Clone()
}

func (r *Resolver) ResolveInstallationPrice(category entities.EquipmentCategory, capacity entities.Capacity) (string, error) {
	byCap, ok := r.table.Installation[category]
	if !ok {
		return "", ErrPriceNotFound
	}
	v, ok := byCap[capacity]
	if !ok {
		return "", ErrPriceNotFound
	}
	return v, nil
}

func (r *Resolver) ResolveCleaningPrice(category entities.EquipmentCategory) (string, error) {
	v, ok := r.table.Cleaning[category]
	if !ok {
		return "", ErrPriceNotFound
	}
	return v, nil
}

// InstallationAmount resolves and parses an installation cell.
func (r *Resolver) InstallationAmount(category entities.EquipmentCategory, capacity entities.Capacity) (decimal.Decimal, error) {
	v, err := r.ResolveInstallationPrice(category, capacity)
	if err != nil {
		return decimal.Zero, err
	}
	return cellAmount(v)
}

// CleaningAmount resolves and parses a cleaning cell.
func (r *Resolver) CleaningAmount(category entities.EquipmentCategory) (decimal.Decimal, error) {
	v, err := r.ResolveCleaningPrice(category)
	if err != nil {
		return decimal.Zero, err
	}
	return cellAmount(v)
}

// SetUniformInstallationPrice writes the same price to every capacity of the
// category, overwriting whatever was there.
func (r *Resolver) SetUniformInstallationPrice(category entities.EquipmentCategory, raw string) error {
	if !category.Valid() {
		return ErrUnknownCategory
	}
	price := SanitizePriceInput(raw)
	byCap := make(map[entities.Capacity]string, len(entities.Capacities))
	for _, c := range entities.Capacities {
		byCap[c] = price
	}
	r.ensureMaps()
	r.table.Installation[category] = byCap
	return nil
}

func (r *Resolver) SetInstallationPrice(category entities.EquipmentCategory, capacity entities.Capacity, raw string) error {
	if !category.Valid() {
		return ErrUnknownCategory
	}
	if !capacity.Valid() {
		return ErrUnknownCapacity
	}
	r.ensureMaps()
	byCap, ok := r.table.Installation[category]
	if !ok {
		byCap = make(map[entities.Capacity]string, len(entities.Capacities))
		r.table.Installation[category] = byCap
	}
	byCap[capacity] = SanitizePriceInput(raw)
	return nil
}

func (r *Resolver) SetCleaningPrice(category entities.EquipmentCategory, raw string) error {
	if !category.Valid() {
		return ErrUnknownCategory
	}
	r.ensureMaps()
	r.table.Cleaning[category] = SanitizePriceInput(raw)
	return nil
}

func (r *Resolver) ensureMaps() {
	if r.table.Installation == nil {
		r.table.Installation = map[entities.EquipmentCategory]map[entities.Capacity]string{}
	}
	if r.table.Cleaning == nil {
		r.table.Cleaning = map[entities.EquipmentCategory]string{}
	}
}

func cellAmount(v string) (decimal.Decimal, error) {
	if v == "" {
		return decimal.Zero, ErrPriceUnset
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, ErrPriceUnset
	}
	return d, nil
}

var (
	defaultInstallationBase = map[entities.Capacity]int64{
		7000: 450, 9000: 450, 12000: 450, 18000: 550, 24000: 650,
		30000: 800, 36000: 950, 48000: 1200, 60000: 1400,
	}
	defaultInstallationExtra = map[entities.EquipmentCategory]int64{
		entities.CategorySplit:        0,
		entities.CategoryCassette:     150,
		entities.CategoryFloorCeiling: 150,
		entities.CategoryMultiSplit:   250,
	}
	defaultInstallationFlat = map[entities.EquipmentCategory]int64{
		entities.CategoryWindow:   250,
		entities.CategoryPortable: 150,
	}
	defaultCleaning = map[entities.EquipmentCategory]int64{
		entities.CategorySplit:        180,
		entities.CategoryCassette:     250,
		entities.CategoryFloorCeiling: 250,
		entities.CategoryMultiSplit:   300,
		entities.CategoryWindow:       150,
		entities.CategoryPortable:     120,
		entities.CategoryCurtain:      200,
	}
)

// DefaultPriceTable is the seed used when the store has no record yet.
func DefaultPriceTable() entities.PriceTable {
	t := entities.PriceTable{
		Installation: map[entities.EquipmentCategory]map[entities.Capacity]string{},
		Cleaning:     map[entities.EquipmentCategory]string{},
	}
	for cat, extra := range defaultInstallationExtra {
		byCap := make(map[entities.Capacity]string, len(entities.Capacities))
		for _, c := range entities.Capacities {
			byCap[c] = decimal.NewFromInt(defaultInstallationBase[c] + extra).StringFixed(centsPlaces)
		}
		t.Installation[cat] = byCap
	}
	for cat, flat := range defaultInstallationFlat {
		byCap := make(map[entities.Capacity]string, len(entities.Capacities))
		for _, c := range entities.Capacities {
			byCap[c] = decimal.NewFromInt(flat).StringFixed(centsPlaces)
		}
		t.Installation[cat] = byCap
	}
	for cat, v := range defaultCleaning {
		t.Cleaning[cat] = decimal.NewFromInt(v).StringFixed(centsPlaces)
	}
	return t
}
