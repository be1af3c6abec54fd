package interfaces

import (
	"context"

	"refrigeracao_os/internal/domain/pricing"
)

// IQuotationDraftStore keeps quotations that are still being edited.
//
// Get and Update return a zero Draft (empty ID) when the draft does not exist or
// has expired. Update applies fn to a copy and stores it only when fn returns nil.
type IQuotationDraftStore interface {
	Create(ctx context.Context, d pricing.Draft) (pricing.Draft, error)
	Get(ctx context.Context, id string) (pricing.Draft, error)
	Update(ctx context.Context, id string, fn func(d *pricing.Draft) error) (pricing.Draft, error)
	Delete(ctx context.Context, id string) error
}
