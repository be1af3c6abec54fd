package pricing

import (
	"errors"
	"time"
)

// DraftState is the lifecycle of a quotation inside this service. Status changes
// after persistence (pending, completed) belong to the order store.
type DraftState string

const (
	DraftStateDraft     DraftState = "draft"
	DraftStatePersisted DraftState = "persisted"
)

var ErrQuotationNotDraft = errors.New("quotation is no longer a draft")

// Draft is a quotation being edited in a session.
type Draft struct {
	ID            string
	State         DraftState
	Quotation     *Quotation
	SourceOrderID string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (d Draft) Clone() Draft {
	out := d
	if d.Quotation != nil {
		out.Quotation = d.Quotation.Clone()
	}
	return out
}

// Mutable reports ErrQuotationNotDraft once the draft has been submitted.
func (d Draft) Mutable() error {
	if d.State != DraftStateDraft {
		return ErrQuotationNotDraft
	}
	return nil
}
