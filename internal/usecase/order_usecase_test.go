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

type orderMocks struct {
	orders    *mock_interfaces.MockIOrderRepository
	customers *mock_interfaces.MockICustomerRepository
	geo       *mock_interfaces.MockILocationProvider
	renderer  *mock_interfaces.MockIDocumentRenderer
	exporter  *mock_interfaces.MockISpreadsheetExporter
}

func newOrderUseCase(ctrl *gomock.Controller) (*OrderUseCase, orderMocks) {
	m := orderMocks{
		orders:    mock_interfaces.NewMockIOrderRepository(ctrl),
		customers: mock_interfaces.NewMockICustomerRepository(ctrl),
		geo:       mock_interfaces.NewMockILocationProvider(ctrl),
		renderer:  mock_interfaces.NewMockIDocumentRenderer(ctrl),
		exporter:  mock_interfaces.NewMockISpreadsheetExporter(ctrl),
	}
	return NewOrderUseCase(m.orders, m.customers, m.geo, m.renderer, m.exporter, time.Second), m
}

func pricedQuotation() *pricing.Quotation {
	q := pricing.NewQuotation()
	_ = q.UpdateServiceLine(0, entities.ServiceLine{
		Type: entities.ServiceInstallation, Category: entities.CategorySplit, Capacity: 12000, Value: "450.00",
	})
	q.AddServiceLine(entities.ServiceLine{Type: entities.ServiceGasRecharge, Value: "150,50"})
	q.AddMaterialLine(entities.Material{ID: "m-1", Name: "Tubo", Unit: "metro", Price: decimal.RequireFromString("32.90")}, 3)
	_ = q.SetDiscount(decimal.NewFromInt(20))
	return q
}

func echoOrder(_ context.Context, o entities.Order, _ *entities.Customer) (entities.Order, error) {
	return o, nil
}

func TestOrderUseCase_Submit(t *testing.T) {
	t.Run("validation failure writes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newOrderUseCase(ctrl)

		q := pricing.NewQuotation()
		q.AddServiceLine(entities.ServiceLine{Type: entities.ServiceCleaning})

		_, err := uc.Submit(context.Background(), q, SubmitInput{CustomerName: "Maria"})
		if !errors.Is(err, pricing.ErrCleaningCategoryRequired) {
			t.Fatalf("expected ErrCleaningCategoryRequired, got %v", err)
		}

		_, err = uc.Submit(context.Background(), pricing.NewQuotation(), SubmitInput{})
		if !errors.Is(err, pricing.ErrCustomerRequired) {
			t.Fatalf("expected ErrCustomerRequired, got %v", err)
		}
	})

	t.Run("new customer and snapshot of lines", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newOrderUseCase(ctrl)

		var stored *entities.Customer
		m.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Not(gomock.Nil())).DoAndReturn(
			func(_ context.Context, o entities.Order, c *entities.Customer) (entities.Order, error) {
				stored = c
				return o, nil
			},
		)

		o, err := uc.Submit(context.Background(), pricedQuotation(), SubmitInput{
			CustomerName: " Maria ", CustomerPhone: "11 99999-0000", Address: "Rua A, 10",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored == nil || stored.ID != o.CustomerID || stored.Name != "Maria" || stored.Phone != "11 99999-0000" {
			t.Fatalf("expected new customer written with the order, got %+v", stored)
		}
		if o.ID == "" || o.CustomerID == "" || o.CustomerName != "Maria" || o.Status != entities.OrderStatusPending {
			t.Fatalf("unexpected header %+v", o)
		}
		if o.ServiceType != entities.ServiceInstallation || o.EquipmentCategory != entities.CategorySplit || o.Capacity != 12000 {
			t.Fatalf("expected header from first service line, got %s/%s/%d", o.ServiceType, o.EquipmentCategory, o.Capacity)
		}
		if len(o.Services) != 2 || !o.Services[1].Amount.Equal(decimal.RequireFromString("150.5")) {
			t.Fatalf("unexpected service lines %+v", o.Services)
		}
		if len(o.Materials) != 1 || o.Materials[0].OrderID != o.ID || !o.Materials[0].LineTotal.Equal(decimal.RequireFromString("98.7")) {
			t.Fatalf("unexpected material lines %+v", o.Materials)
		}
		// 98.70 + 600.50 - 20
		if !o.Subtotal.Equal(decimal.RequireFromString("699.2")) || !o.Total.Equal(decimal.RequireFromString("679.2")) {
			t.Fatalf("unexpected totals subtotal=%s total=%s", o.Subtotal, o.Total)
		}
	})

	t.Run("existing customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newOrderUseCase(ctrl)

		m.customers.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{ID: "c-1", Name: "João"}, nil)
		m.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(echoOrder)

		o, err := uc.Submit(context.Background(), pricedQuotation(), SubmitInput{CustomerID: "c-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.CustomerID != "c-1" || o.CustomerName != "João" {
			t.Fatalf("unexpected customer on order %+v", o)
		}
	})

	t.Run("unknown customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newOrderUseCase(ctrl)

		m.customers.EXPECT().GetByID(gomock.Any(), "c-9").Return(entities.Customer{}, nil)

		_, err := uc.Submit(context.Background(), pricedQuotation(), SubmitInput{CustomerID: "c-9"})
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("blank address resolved from coordinates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newOrderUseCase(ctrl)
		lat, lon := -23.55, -46.63

		m.geo.EXPECT().ReverseGeocode(gomock.Any(), lat, lon).DoAndReturn(
			func(ctx context.Context, _, _ float64) (string, error) {
				if _, ok := ctx.Deadline(); !ok {
					t.Fatalf("expected geolocation deadline")
				}
				return "Praça da Sé, São Paulo", nil
			},
		)
		m.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(echoOrder)

		o, err := uc.Submit(context.Background(), pricedQuotation(), SubmitInput{CustomerName: "Maria", Latitude: &lat, Longitude: &lon})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.Address != "Praça da Sé, São Paulo" || o.Latitude == nil {
			t.Fatalf("unexpected address %q", o.Address)
		}
	})

	t.Run("geolocation failure falls back to manual address", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newOrderUseCase(ctrl)
		lat, lon := 1.0, 2.0

		m.geo.EXPECT().ReverseGeocode(gomock.Any(), lat, lon).Return("", context.DeadlineExceeded)
		m.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(echoOrder)

		o, err := uc.Submit(context.Background(), pricedQuotation(), SubmitInput{CustomerName: "Maria", Latitude: &lat, Longitude: &lon})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.Address != "" {
			t.Fatalf("expected blank address, got %q", o.Address)
		}
	})

	t.Run("manual address skips geolocation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newOrderUseCase(ctrl)
		lat, lon := 1.0, 2.0

		m.geo.EXPECT().ReverseGeocode(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		m.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(echoOrder)

		if _, err := uc.Submit(context.Background(), pricedQuotation(), SubmitInput{CustomerName: "Maria", Address: "Rua B", Latitude: &lat, Longitude: &lon}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newOrderUseCase(ctrl)

		m.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Order{}, errors.New("db"))

		_, err := uc.Submit(context.Background(), pricedQuotation(), SubmitInput{CustomerName: "Maria"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("failed order write stores no customer on its own", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newOrderUseCase(ctrl)

		// the customer repository has no expectations: any write through it fails the test
		customersInFailedWrites := 0
		m.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order, c *entities.Customer) (entities.Order, error) {
				if c == nil || c.ID != o.CustomerID {
					t.Fatalf("expected the new customer to travel with the order, got %+v", c)
				}
				customersInFailedWrites++
				return entities.Order{}, errors.New("store down")
			},
		).Times(2)

		for i := 0; i < 2; i++ {
			if _, err := uc.Submit(context.Background(), pricedQuotation(), SubmitInput{CustomerName: "Maria"}); err == nil {
				t.Fatalf("expected store error")
			}
		}
		if customersInFailedWrites != 2 {
			t.Fatalf("expected 2 rejected order writes, got %d", customersInFailedWrites)
		}
	})

	t.Run("too many material lines", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newOrderUseCase(ctrl)

		q := pricing.NewQuotation()
		for i := 0; i <= pricing.MaxMaterialLines; i++ {
			q.AddMaterialLine(entities.Material{ID: "m-1", Price: decimal.NewFromInt(1)}, 1)
		}

		_, err := uc.Submit(context.Background(), q, SubmitInput{CustomerName: "Maria"})
		if !errors.Is(err, pricing.ErrTooManyMaterialLines) {
			t.Fatalf("expected ErrTooManyMaterialLines, got %v", err)
		}
	})
}

func TestQuotationFromOrder(t *testing.T) {
	o := entities.Order{
		Services: []entities.OrderServiceLine{{Position: 1, Type: entities.ServiceCustom, Value: "100"}},
		Materials: []entities.OrderMaterialLine{
			{MaterialID: "m-1", Name: "Tubo", UnitPrice: decimal.RequireFromString("10.5"), Quantity: 2},
		},
		Discount: decimal.NewFromInt(1),
	}

	q := QuotationFromOrder(o)
	if !q.Total().Equal(decimal.NewFromInt(120)) {
		t.Fatalf("expected 120, got %s", q.Total())
	}
	if q.Materials()[0].Material.ID != "m-1" {
		t.Fatalf("expected material reference kept")
	}
}

func TestOrderUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil, nil, nil, 0)
		if _, err := uc.GetByID(context.Background(), ""); !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newOrderUseCase(ctrl)
		m.orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{}, nil)

		if _, err := uc.GetByID(context.Background(), "o-1"); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

func TestOrderUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newOrderUseCase(ctrl)

	now := time.Now()
	m.orders.EXPECT().List(gomock.Any()).Return([]entities.Order{
		{ID: "old", CreatedAt: now.Add(-time.Hour)},
		{ID: "new", CreatedAt: now},
	}, nil)

	got, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].ID != "new" || got[1].ID != "old" {
		t.Fatalf("expected newest first, got %s,%s", got[0].ID, got[1].ID)
	}
}

func TestOrderUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil, nil, nil, 0)
		if _, err := uc.UpdateStatus(context.Background(), "o-1", "cancelled"); !errors.Is(err, ErrInvalidOrderStatus) {
			t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newOrderUseCase(ctrl)
		m.orders.EXPECT().UpdateStatus(gomock.Any(), "o-1", entities.OrderStatusCompleted).Return(entities.Order{}, nil)

		if _, err := uc.UpdateStatus(context.Background(), "o-1", entities.OrderStatusCompleted); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newOrderUseCase(ctrl)
		m.orders.EXPECT().UpdateStatus(gomock.Any(), "o-1", entities.OrderStatusCompleted).
			Return(entities.Order{ID: "o-1", Status: entities.OrderStatusCompleted}, nil)

		o, err := uc.UpdateStatus(context.Background(), " o-1 ", entities.OrderStatusCompleted)
		if err != nil || o.Status != entities.OrderStatusCompleted {
			t.Fatalf("unexpected result %+v, %v", o, err)
		}
	})
}

func TestOrderUseCase_DocumentAndExport(t *testing.T) {
	t.Run("document renders stored order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newOrderUseCase(ctrl)

		stored := entities.Order{ID: "o-1", Total: decimal.RequireFromString("10.01")}
		m.orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(stored, nil)
		m.renderer.EXPECT().RenderOrder(stored).Return([]byte("%PDF-1.3"), nil)

		b, err := uc.Document(context.Background(), "o-1")
		if err != nil || string(b) != "%PDF-1.3" {
			t.Fatalf("unexpected result %q, %v", b, err)
		}
	})

	t.Run("document of missing order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newOrderUseCase(ctrl)
		m.orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{}, nil)
		m.renderer.EXPECT().RenderOrder(gomock.Any()).Times(0)

		if _, err := uc.Document(context.Background(), "o-1"); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("export", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newOrderUseCase(ctrl)
		m.orders.EXPECT().List(gomock.Any()).Return([]entities.Order{{ID: "o-1"}}, nil)
		m.exporter.EXPECT().ExportOrders(gomock.Len(1)).Return([]byte("xlsx"), nil)

		b, err := uc.ExportSpreadsheet(context.Background())
		if err != nil || string(b) != "xlsx" {
			t.Fatalf("unexpected result %q, %v", b, err)
		}
	})
}
