package entities

import "strconv"

// EquipmentCategory identifies the kind of air-conditioning unit a service targets.
//
// CategoryCurtain (air curtain) only exists as a seeded cleaning price; it is a valid
// table key but is not offered for installation.
type EquipmentCategory string

const (
	CategorySplit        EquipmentCategory = "split"
	CategoryCassette     EquipmentCategory = "cassette"
	CategoryFloorCeiling EquipmentCategory = "floor_ceiling"
	CategoryMultiSplit   EquipmentCategory = "multi_split"
	CategoryWindow       EquipmentCategory = "window"
	CategoryPortable     EquipmentCategory = "portable"
	CategoryCurtain      EquipmentCategory = "curtain"
)

// EquipmentCategories lists every category accepted as a price-table key.
var EquipmentCategories = []EquipmentCategory{
	CategorySplit,
	CategoryCassette,
	CategoryFloorCeiling,
	CategoryMultiSplit,
	CategoryWindow,
	CategoryPortable,
	CategoryCurtain,
}

var categoryLabels = map[EquipmentCategory]string{
	CategorySplit:        "Split",
	CategoryCassette:     "Cassete",
	CategoryFloorCeiling: "Piso-Teto",
	CategoryMultiSplit:   "Multi-Split",
	CategoryWindow:       "Janela",
	CategoryPortable:     "Portátil",
	CategoryCurtain:      "Cortina de Ar",
}

func (c EquipmentCategory) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label is the human readable name used on documents and spreadsheets.
func (c EquipmentCategory) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// Capacity is a nominal cooling capacity in BTU/h.
type Capacity int

// Capacities is the fixed, ordered capacity enumeration.
var Capacities = []Capacity{7000, 9000, 12000, 18000, 24000, 30000, 36000, 48000, 60000}

func (c Capacity) Valid() bool {
	for _, v := range Capacities {
		if v == c {
			return true
		}
	}
	return false
}

func (c Capacity) String() string {
	return strconv.Itoa(int(c))
}

// ParseCapacity parses a capacity written as plain digits ("12000").
func ParseCapacity(s string) (Capacity, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	c := Capacity(n)
	return c, c.Valid()
}
