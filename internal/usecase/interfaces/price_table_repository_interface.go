package interfaces

import (
	"context"

	"refrigeracao_os/internal/domain/entities"
)

// IPriceTableRepository stores price table records. Only the most recent record
// is ever read; GetLatest returns a zero PriceTable when none exists.
//
// Save inserts or overwrites the record with the table's ID.
type IPriceTableRepository interface {
	GetLatest(ctx context.Context) (entities.PriceTable, error)
	Save(ctx context.Context, t entities.PriceTable) (entities.PriceTable, error)
}
