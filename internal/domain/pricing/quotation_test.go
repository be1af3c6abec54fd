package pricing

import (
	"errors"
	"testing"

	"refrigeracao_os/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func material(id, price string) entities.Material {
	return entities.Material{ID: id, Name: "Material " + id, Unit: "unidade", Price: decimal.RequireFromString(price)}
}

func TestQuotation_NewStartsBlank(t *testing.T) {
	q := NewQuotation()
	services := q.Services()
	if len(services) != 1 || services[0] != entities.BlankServiceLine() {
		t.Fatalf("expected one blank service line, got %+v", services)
	}
	if len(q.Materials()) != 0 || !q.Discount().IsZero() {
		t.Fatalf("expected no materials and zero discount")
	}
}

func TestQuotation_MaterialsTotalSingleLine(t *testing.T) {
	tests := []struct {
		price string
		qty   int
		want  string
	}{
		{"10", 1, "10"},
		{"12.345", 3, "37.04"},
		{"0", 5, "0"},
		{"50.005", 1, "50.01"},
		{"0.1", 3, "0.3"},
	}

	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			q := NewQuotation()
			q.AddMaterialLine(material("m1", tt.price), tt.qty)
			want := decimal.RequireFromString(tt.want)
			if got := q.MaterialsTotal(); !got.Equal(want) {
				t.Errorf("MaterialsTotal() = %s, want %s", got, want)
			}
		})
	}
}

func TestQuotation_MaterialsTotalRoundsSumOnce(t *testing.T) {
	q := NewQuotation()
	q.AddMaterialLine(material("m1", "0.005"), 1)
	q.AddMaterialLine(material("m2", "0.005"), 1)

	// per-line rounding would give 0.02
	if got := q.MaterialsTotal(); !got.Equal(decimal.RequireFromString("0.01")) {
		t.Fatalf("expected 0.01, got %s", got)
	}
}

func TestQuotation_AddMaterialLineDoesNotMerge(t *testing.T) {
	q := NewQuotation()
	m := material("m1", "5")
	q.AddMaterialLine(m, 1)
	q.AddMaterialLine(m, 2)

	if len(q.Materials()) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(q.Materials()))
	}
	if !q.MaterialsTotal().Equal(decimal.NewFromInt(15)) {
		t.Fatalf("expected 15, got %s", q.MaterialsTotal())
	}
}

func TestQuotation_UpdateMaterialQuantityClamps(t *testing.T) {
	for _, qty := range []int{0, -1, -100} {
		q := NewQuotation()
		q.AddMaterialLine(material("m1", "10"), 4)
		if err := q.UpdateMaterialQuantity(0, qty); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := q.Materials()[0].Quantity; got != 1 {
			t.Fatalf("quantity %d: expected clamp to 1, got %d", qty, got)
		}
	}

	q := NewQuotation()
	q.AddMaterialLine(material("m1", "10"), 0)
	if q.Materials()[0].Quantity != 1 {
		t.Fatalf("expected add to clamp to 1")
	}
	if err := q.UpdateMaterialQuantity(3, 2); !errors.Is(err, ErrLineIndexOutOfRange) {
		t.Fatalf("expected ErrLineIndexOutOfRange, got %v", err)
	}
}

func TestQuotation_RemoveMaterialLineShifts(t *testing.T) {
	q := NewQuotation()
	q.AddMaterialLine(material("a", "1"), 1)
	q.AddMaterialLine(material("b", "2"), 1)
	q.AddMaterialLine(material("c", "3"), 1)

	if err := q.RemoveMaterialLine(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := q.Materials()
	if len(lines) != 2 || lines[0].Material.ID != "a" || lines[1].Material.ID != "c" {
		t.Fatalf("unexpected lines %+v", lines)
	}
	if err := q.RemoveMaterialLine(-1); !errors.Is(err, ErrLineIndexOutOfRange) {
		t.Fatalf("expected ErrLineIndexOutOfRange, got %v", err)
	}
}

func TestQuotation_ServicesTotal(t *testing.T) {
	q := NewQuotation()
	q.AddServiceLine(entities.ServiceLine{Type: entities.ServiceMaintenance, Value: "150,50"})
	q.AddServiceLine(entities.ServiceLine{Type: entities.ServiceGasRecharge, Value: "200.25"})
	q.AddServiceLine(entities.ServiceLine{Type: entities.ServiceCustom, Value: "a combinar"})
	q.AddServiceLine(entities.ServiceLine{Type: entities.ServiceCustom})
	q.AddServiceLine(entities.ServiceLine{Type: entities.ServiceCustom, Value: "-50"})
	q.AddServiceLine(entities.ServiceLine{Type: entities.ServiceCustom, Value: "1e3"})

	if got := q.ServicesTotal(); !got.Equal(decimal.RequireFromString("350.75")) {
		t.Fatalf("expected 350.75, got %s", got)
	}
}

func TestQuotation_TotalRoundsBeforeDiscount(t *testing.T) {
	q := NewQuotation()
	q.AddMaterialLine(material("m1", "50.005"), 1)

	got := q.TotalWithDiscount(decimal.NewFromInt(10))
	if !got.Equal(decimal.RequireFromString("40.01")) {
		t.Fatalf("expected 40.01, got %s", got)
	}

	if err := q.SetDiscount(decimal.NewFromInt(10)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	totals := q.Totals()
	if !totals.MaterialsTotal.Equal(decimal.RequireFromString("50.01")) ||
		!totals.Subtotal.Equal(decimal.RequireFromString("50.01")) ||
		!totals.Total.Equal(decimal.RequireFromString("40.01")) {
		t.Fatalf("unexpected totals %+v", totals)
	}
}

func TestQuotation_TotalNotClamped(t *testing.T) {
	q := NewQuotation()
	q.AddServiceLine(entities.ServiceLine{Type: entities.ServiceCustom, Value: "5"})
	if got := q.TotalWithDiscount(decimal.NewFromInt(8)); !got.Equal(decimal.NewFromInt(-3)) {
		t.Fatalf("expected -3, got %s", got)
	}
}

func TestQuotation_SetDiscount(t *testing.T) {
	q := NewQuotation()
	if err := q.SetDiscount(decimal.NewFromInt(-1)); !errors.Is(err, ErrNegativeDiscount) {
		t.Fatalf("expected ErrNegativeDiscount, got %v", err)
	}
	if !q.Discount().IsZero() {
		t.Fatalf("discount must be unchanged")
	}
}

func TestQuotation_DiscountRoundedToCents(t *testing.T) {
	q := NewQuotation()
	_ = q.UpdateServiceLine(0, entities.ServiceLine{Type: entities.ServiceCustom, Value: "100"})
	if err := q.SetDiscount(decimal.RequireFromString("10.005")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	totals := q.Totals()
	if !totals.Discount.Equal(decimal.RequireFromString("10.01")) {
		t.Fatalf("expected discount 10.01, got %s", totals.Discount)
	}
	if !totals.Subtotal.Sub(totals.Discount).Equal(totals.Total) {
		t.Fatalf("subtotal %s - discount %s must equal total %s", totals.Subtotal, totals.Discount, totals.Total)
	}
	if !totals.Total.Equal(decimal.RequireFromString("89.99")) {
		t.Fatalf("expected 89.99, got %s", totals.Total)
	}

	restored := RestoreQuotation(q.Services(), nil, decimal.RequireFromString("0.125"))
	if !restored.Discount().Equal(decimal.RequireFromString("0.13")) {
		t.Fatalf("expected restored discount 0.13, got %s", restored.Discount())
	}
}

func TestQuotation_ServiceLineEdits(t *testing.T) {
	q := NewQuotation()
	idx := q.AddServiceLine(entities.ServiceLine{Type: entities.ServiceCustom, Value: "10"})
	if idx != 1 {
		t.Fatalf("expected index 1, got %d", idx)
	}
	if err := q.UpdateServiceLine(1, entities.ServiceLine{Type: entities.ServiceCustom, Value: "20"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !q.ServicesTotal().Equal(decimal.NewFromInt(20)) {
		t.Fatalf("expected 20, got %s", q.ServicesTotal())
	}
	if err := q.RemoveServiceLine(0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := q.UpdateServiceLine(5, entities.ServiceLine{}); !errors.Is(err, ErrLineIndexOutOfRange) {
		t.Fatalf("expected ErrLineIndexOutOfRange, got %v", err)
	}
	if err := q.RemoveServiceLine(1); !errors.Is(err, ErrLineIndexOutOfRange) {
		t.Fatalf("expected ErrLineIndexOutOfRange, got %v", err)
	}
}

func TestQuotation_Reset(t *testing.T) {
	q := NewQuotation()
	for i := 0; i < 3; i++ {
		q.AddMaterialLine(material("m", "1"), 2)
	}
	for i := 0; i < 4; i++ {
		q.AddServiceLine(entities.ServiceLine{Type: entities.ServiceCustom, Value: "9"})
	}
	_ = q.SetDiscount(decimal.NewFromInt(3))

	q.Reset()

	services := q.Services()
	if len(services) != 1 || services[0] != entities.BlankServiceLine() {
		t.Fatalf("expected one blank service line, got %+v", services)
	}
	if len(q.Materials()) != 0 || !q.Discount().IsZero() || !q.Total().IsZero() {
		t.Fatalf("expected empty quotation after reset")
	}
}

func TestQuotation_Validate(t *testing.T) {
	t.Run("customer required", func(t *testing.T) {
		q := NewQuotation()
		if err := q.Validate(CustomerRef{Name: "  "}); !errors.Is(err, ErrCustomerRequired) {
			t.Fatalf("expected ErrCustomerRequired, got %v", err)
		}
	})

	t.Run("material line limit", func(t *testing.T) {
		q := NewQuotation()
		for i := 0; i < MaxMaterialLines; i++ {
			q.AddMaterialLine(material("m1", "1"), 1)
		}
		if err := q.Validate(CustomerRef{Name: "Maria"}); err != nil {
			t.Fatalf("expected %d lines accepted, got %v", MaxMaterialLines, err)
		}
		q.AddMaterialLine(material("m1", "1"), 1)
		if err := q.Validate(CustomerRef{Name: "Maria"}); !errors.Is(err, ErrTooManyMaterialLines) {
			t.Fatalf("expected ErrTooManyMaterialLines, got %v", err)
		}
	})

	t.Run("existing customer is enough", func(t *testing.T) {
		q := NewQuotation()
		if err := q.Validate(CustomerRef{ID: "c-1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("cleaning without category", func(t *testing.T) {
		q := NewQuotation()
		q.AddServiceLine(entities.ServiceLine{Type: entities.ServiceCleaning})
		err := q.Validate(CustomerRef{Name: "Maria"})
		if !errors.Is(err, ErrCleaningCategoryRequired) {
			t.Fatalf("expected ErrCleaningCategoryRequired, got %v", err)
		}

		if err := q.UpdateServiceLine(1, entities.ServiceLine{Type: entities.ServiceCleaning, Category: entities.CategorySplit}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := q.Validate(CustomerRef{Name: "Maria"}); err != nil {
			t.Fatalf("expected acceptance with category, got %v", err)
		}
	})

	t.Run("incomplete lines accepted", func(t *testing.T) {
		q := NewQuotation()
		q.AddServiceLine(entities.ServiceLine{Type: entities.ServiceMaintenance})
		if err := q.Validate(CustomerRef{Name: "João"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuotation_CloneIsIndependent(t *testing.T) {
	q := NewQuotation()
	q.AddMaterialLine(material("m1", "10"), 1)
	c := q.Clone()
	_ = c.UpdateMaterialQuantity(0, 5)
	_ = c.RemoveServiceLine(0)

	if q.Materials()[0].Quantity != 1 || len(q.Services()) != 1 {
		t.Fatalf("clone mutations leaked into original")
	}
}

func TestRestoreQuotation(t *testing.T) {
	q := RestoreQuotation(
		[]entities.ServiceLine{{Type: entities.ServiceCustom, Value: "10"}},
		[]entities.MaterialLine{{Material: material("m1", "2"), Quantity: 0}},
		decimal.NewFromInt(-5),
	)
	if q.Materials()[0].Quantity != 1 {
		t.Fatalf("expected quantity clamp on restore")
	}
	if !q.Discount().IsZero() {
		t.Fatalf("expected negative discount dropped")
	}
	if !q.Total().Equal(decimal.NewFromInt(12)) {
		t.Fatalf("expected 12, got %s", q.Total())
	}
}

func TestPriceServiceLine(t *testing.T) {
	r := NewResolver(DefaultPriceTable())
	_ = r.SetCleaningPrice(entities.CategoryWindow, "")

	tests := []struct {
		name       string
		line       entities.ServiceLine
		wantValue  string
		wantPriced bool
	}{
		{"installation from table", entities.ServiceLine{Type: entities.ServiceInstallation, Category: entities.CategorySplit, Capacity: 12000}, "450.00", true},
		{"cleaning from table", entities.ServiceLine{Type: entities.ServiceCleaning, Category: entities.CategoryCassette}, "250.00", true},
		{"typed value wins", entities.ServiceLine{Type: entities.ServiceInstallation, Category: entities.CategorySplit, Capacity: 12000, Value: "399,90"}, "399,90", true},
		{"typed value unparseable", entities.ServiceLine{Type: entities.ServiceCustom, Value: "x"}, "x", false},
		{"typed value negative", entities.ServiceLine{Type: entities.ServiceCustom, Value: "-50"}, "-50", false},
		{"installation missing capacity", entities.ServiceLine{Type: entities.ServiceInstallation, Category: entities.CategorySplit}, "", false},
		{"curtain has no installation", entities.ServiceLine{Type: entities.ServiceInstallation, Category: entities.CategoryCurtain, Capacity: 12000}, "", false},
		{"blank cell", entities.ServiceLine{Type: entities.ServiceCleaning, Category: entities.CategoryWindow}, "", false},
		{"maintenance needs typed value", entities.ServiceLine{Type: entities.ServiceMaintenance, Category: entities.CategorySplit}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, priced := PriceServiceLine(r, tt.line)
			if priced != tt.wantPriced || got.Value != tt.wantValue {
				t.Errorf("PriceServiceLine() = (%q, %v), want (%q, %v)", got.Value, priced, tt.wantValue, tt.wantPriced)
			}
		})
	}
}

func TestServiceTypeRequiresCustomValue(t *testing.T) {
	cases := map[entities.ServiceType]bool{
		entities.ServiceInstallation: false,
		entities.ServiceCleaning:     false,
		entities.ServiceMaintenance:  true,
		entities.ServiceGasRecharge:  true,
		entities.ServiceCustom:       true,
	}
	for st, want := range cases {
		if got := st.RequiresCustomValue(); got != want {
			t.Errorf("%s.RequiresCustomValue() = %v, want %v", st, got, want)
		}
	}
}
