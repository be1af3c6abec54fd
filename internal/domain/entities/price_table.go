package entities

import "time"

// PriceTable is the configured unit-price table.
//
// Cell values are sanitized text: "" means the cell was touched but left blank,
// while a missing key means the cell was never set.
//
// Storage model:
//   - only the most recently created record is used; historical records are never merged.
//   - Revision increases on every write issued by this service.
type PriceTable struct {
	ID           string                                    `json:"id"`
	Installation map[EquipmentCategory]map[Capacity]string `json:"installation"`
	Cleaning     map[EquipmentCategory]string              `json:"cleaning"`
	Revision     int64                                     `json:"revision"`
	CreatedAt    time.Time                                 `json:"created_at"`
	UpdatedAt    time.Time                                 `json:"updated_at"`
}

// Clone returns a deep copy so callers can mutate it without touching the original.
func (t PriceTable) Clone() PriceTable {
	out := t
	out.Installation = make(map[EquipmentCategory]map[Capacity]string, len(t.Installation))
	for cat, byCap := range t.Installation {
		inner := make(map[Capacity]string, len(byCap))
		for c, v := range byCap {
			inner[c] = v
		}
		out.Installation[cat] = inner
	}
	out.Cleaning = make(map[EquipmentCategory]string, len(t.Cleaning))
	for cat, v := range t.Cleaning {
		out.Cleaning[cat] = v
	}
	return out
}
