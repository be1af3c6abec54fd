package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"refrigeracao_os/internal/domain/entities"
	"refrigeracao_os/internal/domain/pricing"
	mock_interfaces "refrigeracao_os/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type quotationMocks struct {
	drafts     *mock_interfaces.MockIQuotationDraftStore
	materials  *mock_interfaces.MockIMaterialRepository
	priceTable *mock_interfaces.MockIPriceTableRepository
	orders     orderMocks
}

func newQuotationUseCase(ctrl *gomock.Controller) (*QuotationUseCase, quotationMocks) {
	orderUC, om := newOrderUseCase(ctrl)
	m := quotationMocks{
		drafts:     mock_interfaces.NewMockIQuotationDraftStore(ctrl),
		materials:  mock_interfaces.NewMockIMaterialRepository(ctrl),
		priceTable: mock_interfaces.NewMockIPriceTableRepository(ctrl),
		orders:     om,
	}
	uc := NewQuotationUseCase(
		m.drafts,
		NewMaterialUseCase(m.materials, om.orders),
		NewPriceTableUseCase(m.priceTable),
		orderUC,
	)
	return uc, m
}

// stubUpdate makes the draft store mock apply fn to d, like the real store.
func stubUpdate(d *pricing.Draft) func(context.Context, string, func(*pricing.Draft) error) (pricing.Draft, error) {
	return func(_ context.Context, _ string, fn func(*pricing.Draft) error) (pricing.Draft, error) {
		next := d.Clone()
		if err := fn(&next); err != nil {
			return pricing.Draft{}, err
		}
		*d = next
		return next.Clone(), nil
	}
}

func newDraft() *pricing.Draft {
	return &pricing.Draft{ID: "d-1", State: pricing.DraftStateDraft, Quotation: pricing.NewQuotation(), CreatedAt: time.Now()}
}

func TestQuotationUseCase_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newQuotationUseCase(ctrl)

	m.drafts.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d pricing.Draft) (pricing.Draft, error) { return d, nil },
	)

	d, err := uc.Create(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.ID == "" || d.State != pricing.DraftStateDraft || len(d.Quotation.Services()) != 1 {
		t.Fatalf("unexpected draft %+v", d)
	}
}

func TestQuotationUseCase_CreateFromOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newQuotationUseCase(ctrl)

	m.orders.orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{
		ID:       "o-1",
		Services: []entities.OrderServiceLine{{Type: entities.ServiceCustom, Value: "50"}},
		Discount: decimal.NewFromInt(5),
	}, nil)
	m.drafts.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d pricing.Draft) (pricing.Draft, error) { return d, nil },
	)

	d, err := uc.CreateFromOrder(context.Background(), "o-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.SourceOrderID != "o-1" || !d.Quotation.Total().Equal(decimal.NewFromInt(45)) {
		t.Fatalf("unexpected draft source=%q total=%s", d.SourceOrderID, d.Quotation.Total())
	}
}

func TestQuotationUseCase_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newQuotationUseCase(ctrl)

	m.drafts.EXPECT().Get(gomock.Any(), "gone").Return(pricing.Draft{}, nil)

	if _, err := uc.Get(context.Background(), "gone"); !errors.Is(err, ErrDraftNotFound) {
		t.Fatalf("expected ErrDraftNotFound, got %v", err)
	}
	if _, err := uc.Get(context.Background(), ""); !errors.Is(err, ErrInvalidDraftID) {
		t.Fatalf("expected ErrInvalidDraftID, got %v", err)
	}
}

func TestQuotationUseCase_Materials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newQuotationUseCase(ctrl)
	d := newDraft()

	m.materials.EXPECT().GetByID(gomock.Any(), "m-1").
		Return(entities.Material{ID: "m-1", Name: "Tubo", Price: decimal.RequireFromString("12.5")}, nil).Times(2)
	m.drafts.EXPECT().Update(gomock.Any(), "d-1", gomock.Any()).DoAndReturn(stubUpdate(d)).AnyTimes()

	ctx := context.Background()
	if _, err := uc.AddMaterial(ctx, "d-1", "m-1", 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := uc.AddMaterial(ctx, "d-1", "m-1", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Quotation.Materials()) != 2 || !got.Quotation.MaterialsTotal().Equal(decimal.RequireFromString("37.5")) {
		t.Fatalf("expected two lines totalling 37.5, got %s", got.Quotation.MaterialsTotal())
	}

	got, err = uc.UpdateMaterialQuantity(ctx, "d-1", 0, -3)
	if err != nil || got.Quotation.Materials()[0].Quantity != 1 {
		t.Fatalf("expected clamp to 1, got %+v (%v)", got.Quotation.Materials(), err)
	}

	got, err = uc.RemoveMaterial(ctx, "d-1", 0)
	if err != nil || len(got.Quotation.Materials()) != 1 {
		t.Fatalf("expected one line left, got %v", err)
	}

	if _, err := uc.RemoveMaterial(ctx, "d-1", 4); !errors.Is(err, pricing.ErrLineIndexOutOfRange) {
		t.Fatalf("expected ErrLineIndexOutOfRange, got %v", err)
	}
}

func TestQuotationUseCase_AddMaterialUnknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newQuotationUseCase(ctrl)

	m.materials.EXPECT().GetByID(gomock.Any(), "m-9").Return(entities.Material{}, nil)
	m.drafts.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	if _, err := uc.AddMaterial(context.Background(), "d-1", "m-9", 1); !errors.Is(err, ErrMaterialNotFound) {
		t.Fatalf("expected ErrMaterialNotFound, got %v", err)
	}
}

func TestQuotationUseCase_Services(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newQuotationUseCase(ctrl)
	d := newDraft()

	table := pricing.DefaultPriceTable()
	table.ID = "pt-1"
	m.priceTable.EXPECT().GetLatest(gomock.Any()).Return(table, nil).Times(1)
	m.drafts.EXPECT().Update(gomock.Any(), "d-1", gomock.Any()).DoAndReturn(stubUpdate(d)).AnyTimes()

	ctx := context.Background()
	got, err := uc.AddService(ctx, "d-1", entities.ServiceLine{
		Type: entities.ServiceInstallation, Category: entities.CategoryCassette, Capacity: 12000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v := got.Quotation.Services()[1].Value; v != "600.00" {
		t.Fatalf("expected value filled from table, got %q", v)
	}

	got, err = uc.UpdateService(ctx, "d-1", 0, entities.ServiceLine{Type: entities.ServiceMaintenance, Value: "80,00"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Quotation.ServicesTotal().Equal(decimal.NewFromInt(680)) {
		t.Fatalf("expected 680, got %s", got.Quotation.ServicesTotal())
	}

	got, err = uc.RemoveService(ctx, "d-1", 0)
	if err != nil || len(got.Quotation.Services()) != 1 {
		t.Fatalf("expected one service left, got %v", err)
	}

	for _, bad := range []entities.ServiceLine{
		{Type: "painting"},
		{Type: entities.ServiceCleaning, Category: "fan"},
		{Type: entities.ServiceInstallation, Category: entities.CategorySplit, Capacity: 10000},
		{Type: entities.ServiceInstallation, Category: entities.CategoryCurtain, Capacity: 12000},
	} {
		if _, err := uc.AddService(ctx, "d-1", bad); !errors.Is(err, ErrInvalidServiceLine) {
			t.Fatalf("line %+v: expected ErrInvalidServiceLine, got %v", bad, err)
		}
	}
}

func TestQuotationUseCase_DiscountAndReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newQuotationUseCase(ctrl)
	d := newDraft()
	d.Quotation.AddMaterialLine(entities.Material{ID: "m-1", Price: decimal.RequireFromString("50.005")}, 1)

	m.drafts.EXPECT().Update(gomock.Any(), "d-1", gomock.Any()).DoAndReturn(stubUpdate(d)).AnyTimes()

	ctx := context.Background()
	got, err := uc.SetDiscount(ctx, "d-1", decimal.NewFromInt(10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Quotation.Total().Equal(decimal.RequireFromString("40.01")) {
		t.Fatalf("expected 40.01, got %s", got.Quotation.Total())
	}

	if _, err := uc.SetDiscount(ctx, "d-1", decimal.NewFromInt(-1)); !errors.Is(err, pricing.ErrNegativeDiscount) {
		t.Fatalf("expected ErrNegativeDiscount, got %v", err)
	}

	got, err = uc.Reset(ctx, "d-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Quotation.Materials()) != 0 || len(got.Quotation.Services()) != 1 || !got.Quotation.Discount().IsZero() {
		t.Fatalf("expected blank quotation after reset")
	}
}

func TestQuotationUseCase_Submit(t *testing.T) {
	t.Run("success removes draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuotationUseCase(ctrl)
		d := newDraft()

		m.drafts.EXPECT().Update(gomock.Any(), "d-1", gomock.Any()).DoAndReturn(stubUpdate(d))
		m.orders.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Not(gomock.Nil())).DoAndReturn(echoOrder)
		m.drafts.EXPECT().Delete(gomock.Any(), "d-1").Return(nil)

		o, err := uc.Submit(context.Background(), "d-1", SubmitInput{CustomerName: "Maria"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.ID == "" || d.State != pricing.DraftStatePersisted {
			t.Fatalf("expected order and persisted draft, got %q state=%s", o.ID, d.State)
		}
	})

	t.Run("validation failure restores draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuotationUseCase(ctrl)
		d := newDraft()
		d.Quotation.AddServiceLine(entities.ServiceLine{Type: entities.ServiceCleaning})

		m.drafts.EXPECT().Update(gomock.Any(), "d-1", gomock.Any()).DoAndReturn(stubUpdate(d)).Times(2)
		m.drafts.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

		_, err := uc.Submit(context.Background(), "d-1", SubmitInput{CustomerName: "Maria"})
		if !errors.Is(err, pricing.ErrCleaningCategoryRequired) {
			t.Fatalf("expected ErrCleaningCategoryRequired, got %v", err)
		}
		if d.State != pricing.DraftStateDraft || len(d.Quotation.Services()) != 2 {
			t.Fatalf("expected untouched draft, got state=%s", d.State)
		}
	})

	t.Run("persisted draft rejects edits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuotationUseCase(ctrl)
		d := newDraft()
		d.State = pricing.DraftStatePersisted

		m.drafts.EXPECT().Update(gomock.Any(), "d-1", gomock.Any()).DoAndReturn(stubUpdate(d)).AnyTimes()

		if _, err := uc.Submit(context.Background(), "d-1", SubmitInput{CustomerName: "Maria"}); !errors.Is(err, pricing.ErrQuotationNotDraft) {
			t.Fatalf("expected ErrQuotationNotDraft, got %v", err)
		}
		if _, err := uc.Reset(context.Background(), "d-1"); !errors.Is(err, pricing.ErrQuotationNotDraft) {
			t.Fatalf("expected ErrQuotationNotDraft, got %v", err)
		}
	})

	t.Run("missing draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuotationUseCase(ctrl)

		m.drafts.EXPECT().Update(gomock.Any(), "d-1", gomock.Any()).Return(pricing.Draft{}, nil)

		if _, err := uc.Submit(context.Background(), "d-1", SubmitInput{CustomerName: "Maria"}); !errors.Is(err, ErrDraftNotFound) {
			t.Fatalf("expected ErrDraftNotFound, got %v", err)
		}
	})
}

func TestQuotationUseCase_Discard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newQuotationUseCase(ctrl)

	m.drafts.EXPECT().Get(gomock.Any(), "d-1").Return(*newDraft(), nil)
	m.drafts.EXPECT().Delete(gomock.Any(), "d-1").Return(nil)

	if err := uc.Discard(context.Background(), "d-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
