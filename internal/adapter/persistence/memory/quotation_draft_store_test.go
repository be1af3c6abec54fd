package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"refrigeracao_os/internal/domain/entities"
	"refrigeracao_os/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

func newDraft(id string) pricing.Draft {
	return pricing.Draft{ID: id, State: pricing.DraftStateDraft, Quotation: pricing.NewQuotation()}
}

func TestQuotationDraftStore_CreateGet(t *testing.T) {
	s := NewQuotationDraftStore(time.Hour)
	ctx := context.Background()

	if _, err := s.Create(ctx, newDraft("d-1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.Create(ctx, newDraft("d-1")); !errors.Is(err, ErrDraftExists) {
		t.Fatalf("expected ErrDraftExists, got %v", err)
	}

	got, err := s.Get(ctx, "d-1")
	if err != nil || got.ID != "d-1" {
		t.Fatalf("unexpected draft %+v (%v)", got, err)
	}

	missing, err := s.Get(ctx, "nope")
	if err != nil || missing.ID != "" {
		t.Fatalf("expected zero draft, got %+v (%v)", missing, err)
	}
}

func TestQuotationDraftStore_CopiesOnReadAndWrite(t *testing.T) {
	s := NewQuotationDraftStore(time.Hour)
	ctx := context.Background()
	d := newDraft("d-1")
	_, _ = s.Create(ctx, d)

	d.Quotation.AddMaterialLine(entities.Material{ID: "m", Price: decimal.NewFromInt(1)}, 1)
	got, _ := s.Get(ctx, "d-1")
	got.Quotation.AddMaterialLine(entities.Material{ID: "m", Price: decimal.NewFromInt(1)}, 1)

	again, _ := s.Get(ctx, "d-1")
	if len(again.Quotation.Materials()) != 0 {
		t.Fatalf("store shares quotation with callers")
	}
}

func TestQuotationDraftStore_Update(t *testing.T) {
	s := NewQuotationDraftStore(time.Hour)
	ctx := context.Background()
	_, _ = s.Create(ctx, newDraft("d-1"))

	t.Run("applies fn", func(t *testing.T) {
		got, err := s.Update(ctx, "d-1", func(d *pricing.Draft) error {
			return d.Quotation.SetDiscount(decimal.NewFromInt(5))
		})
		if err != nil || !got.Quotation.Discount().Equal(decimal.NewFromInt(5)) {
			t.Fatalf("unexpected result %v", err)
		}
	})

	t.Run("fn error discards changes", func(t *testing.T) {
		_, err := s.Update(ctx, "d-1", func(d *pricing.Draft) error {
			d.Quotation.Reset()
			return errors.New("boom")
		})
		if err == nil {
			t.Fatalf("expected error")
		}
		got, _ := s.Get(ctx, "d-1")
		if !got.Quotation.Discount().Equal(decimal.NewFromInt(5)) {
			t.Fatalf("expected stored draft unchanged")
		}
	})

	t.Run("missing draft", func(t *testing.T) {
		got, err := s.Update(ctx, "nope", func(d *pricing.Draft) error {
			t.Fatalf("fn must not run for a missing draft")
			return nil
		})
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero draft, got %+v (%v)", got, err)
		}
	})
}

func TestQuotationDraftStore_Expiry(t *testing.T) {
	s := NewQuotationDraftStore(time.Minute)
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	ctx := context.Background()

	_, _ = s.Create(ctx, newDraft("d-1"))
	_, _ = s.Create(ctx, newDraft("d-2"))

	now = now.Add(30 * time.Second)
	_, _ = s.Update(ctx, "d-2", func(d *pricing.Draft) error { return nil })

	now = now.Add(45 * time.Second)
	if got, _ := s.Get(ctx, "d-1"); got.ID != "" {
		t.Fatalf("expected d-1 expired")
	}
	if got, _ := s.Get(ctx, "d-2"); got.ID != "d-2" {
		t.Fatalf("expected d-2 alive after its update")
	}

	now = now.Add(time.Hour)
	if n := s.Sweep(); n != 1 {
		t.Fatalf("expected 1 swept draft, got %d", n)
	}
}

func TestQuotationDraftStore_Delete(t *testing.T) {
	s := NewQuotationDraftStore(time.Hour)
	ctx := context.Background()
	_, _ = s.Create(ctx, newDraft("d-1"))

	if err := s.Delete(ctx, "d-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := s.Get(ctx, "d-1"); got.ID != "" {
		t.Fatalf("expected draft removed")
	}
}

func TestQuotationDraftStore_ConcurrentUpdates(t *testing.T) {
	s := NewQuotationDraftStore(time.Hour)
	ctx := context.Background()
	_, _ = s.Create(ctx, newDraft("d-1"))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Update(ctx, "d-1", func(d *pricing.Draft) error {
				d.Quotation.AddMaterialLine(entities.Material{ID: "m", Price: decimal.NewFromInt(1)}, 1)
				return nil
			})
		}()
	}
	wg.Wait()

	got, _ := s.Get(ctx, "d-1")
	if n := len(got.Quotation.Materials()); n != 50 {
		t.Fatalf("expected 50 lines, got %d", n)
	}
}
