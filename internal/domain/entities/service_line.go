package entities

// ServiceType is the kind of work a service line describes.
type ServiceType string

const (
	ServiceInstallation ServiceType = "installation"
	ServiceMaintenance  ServiceType = "maintenance"
	ServiceCleaning     ServiceType = "cleaning"
	ServiceGasRecharge  ServiceType = "gas_recharge"
	ServiceCustom       ServiceType = "custom"
)

var serviceLabels = map[ServiceType]string{
	ServiceInstallation: "Instalação",
	ServiceMaintenance:  "Manutenção",
	ServiceCleaning:     "Limpeza",
	ServiceGasRecharge:  "Recarga de Gás",
	ServiceCustom:       "Outro",
}

func (s ServiceType) Valid() bool {
	_, ok := serviceLabels[s]
	return ok
}

func (s ServiceType) Label() string {
	if l, ok := serviceLabels[s]; ok {
		return l
	}
	return string(s)
}

// RequiresCustomValue reports whether the line is priced by a manually entered
// value instead of a price-table lookup.
func (s ServiceType) RequiresCustomValue() bool {
	switch s {
	case ServiceMaintenance, ServiceGasRecharge, ServiceCustom:
		return true
	}
	return false
}

// ServiceLine is one service entry of a quotation.
//
// Value keeps the amount as typed (decimal comma or point). For installation and
// cleaning it is filled from the price table when left empty.
type ServiceLine struct {
	Type        ServiceType       `json:"type"`
	Category    EquipmentCategory `json:"category,omitempty"`
	Capacity    Capacity          `json:"capacity,omitempty"`
	Description string            `json:"description,omitempty"`
	Value       string            `json:"value,omitempty"`
}

// BlankServiceLine is the line a fresh or reset quotation starts with.
func BlankServiceLine() ServiceLine {
	return ServiceLine{Type: ServiceInstallation}
}
