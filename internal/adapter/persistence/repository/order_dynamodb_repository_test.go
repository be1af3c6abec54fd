package repository

import (
	"errors"
	"testing"
	"time"

	"refrigeracao_os/internal/domain/entities"
	"refrigeracao_os/internal/domain/pricing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/shopspring/decimal"
)

func TestOrderDynamoRepository_CreateItems(t *testing.T) {
	r := NewOrderDynamoRepository(nil, "orders", "order_materials", "customers")
	now := time.Now().UTC()
	o := entities.Order{
		ID:         "o-1",
		CustomerID: "c-1",
		Total:      decimal.RequireFromString("10.5"),
		Status:     entities.OrderStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
		Materials: []entities.OrderMaterialLine{
			{ID: "l-1", OrderID: "o-1", Position: 1, MaterialID: "m-1", Quantity: 1},
			{ID: "l-2", OrderID: "o-1", Position: 2, MaterialID: "m-1", Quantity: 2},
		},
	}

	t.Run("new customer is written in the same transaction", func(t *testing.T) {
		items, err := r.createItems(o, &entities.Customer{ID: "c-1", Name: "Maria", CreatedAt: now})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 4 {
			t.Fatalf("expected header, customer and 2 lines, got %d items", len(items))
		}
		tables := make([]string, 0, len(items))
		for _, it := range items {
			if it.Put == nil {
				t.Fatalf("expected only puts")
			}
			tables = append(tables, aws.ToString(it.Put.TableName))
		}
		want := []string{"orders", "customers", "order_materials", "order_materials"}
		for i := range want {
			if tables[i] != want[i] {
				t.Fatalf("expected tables %v, got %v", want, tables)
			}
		}
		if aws.ToString(items[1].Put.ConditionExpression) != "attribute_not_exists(#id)" {
			t.Fatalf("expected customer put guarded against overwrite")
		}
	})

	t.Run("existing customer is not written", func(t *testing.T) {
		items, err := r.createItems(o, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 3 {
			t.Fatalf("expected header and 2 lines, got %d items", len(items))
		}
	})

	t.Run("line limit fits one transaction", func(t *testing.T) {
		big := o
		big.Materials = make([]entities.OrderMaterialLine, pricing.MaxMaterialLines)
		items, err := r.createItems(big, &entities.Customer{ID: "c-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) > 100 {
			t.Fatalf("expected at most 100 actions, got %d", len(items))
		}

		big.Materials = append(big.Materials, entities.OrderMaterialLine{})
		if _, err := r.createItems(big, nil); !errors.Is(err, pricing.ErrTooManyMaterialLines) {
			t.Fatalf("expected ErrTooManyMaterialLines, got %v", err)
		}
	})
}
