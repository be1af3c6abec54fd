package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"refrigeracao_os/internal/domain/entities"
	"refrigeracao_os/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PriceTableRepository keeps price table records as JSONB documents. Cells map
// category -> capacity -> sanitized text, exactly as the resolver holds them.
type PriceTableRepository struct{ pool *pgxpool.Pool }

var _ interfaces.IPriceTableRepository = (*PriceTableRepository)(nil)

func NewPriceTableRepository(pool *pgxpool.Pool) *PriceTableRepository {
	return &PriceTableRepository{pool: pool}
}

func (r *PriceTableRepository) GetLatest(ctx context.Context) (entities.PriceTable, error) {
	var (
		t                      entities.PriceTable
		installation, cleaning []byte
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, installation, cleaning, revision, created_at, updated_at
		FROM price_tables
		ORDER BY created_at DESC
		LIMIT 1
	`).Scan(&t.ID, &installation, &cleaning, &t.Revision, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.PriceTable{}, nil
	}
	if err != nil {
		return entities.PriceTable{}, err
	}

	if err := json.Unmarshal(installation, &t.Installation); err != nil {
		return entities.PriceTable{}, err
	}
	if err := json.Unmarshal(cleaning, &t.Cleaning); err != nil {
		return entities.PriceTable{}, err
	}
	return t, nil
}

func (r *PriceTableRepository) Save(ctx context.Context, t entities.PriceTable) (entities.PriceTable, error) {
	installation, err := json.Marshal(t.Installation)
	if err != nil {
		return entities.PriceTable{}, err
	}
	cleaning, err := json.Marshal(t.Cleaning)
	if err != nil {
		return entities.PriceTable{}, err
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO price_tables (id, installation, cleaning, revision, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			installation = EXCLUDED.installation,
			cleaning     = EXCLUDED.cleaning,
			revision     = EXCLUDED.revision,
			updated_at   = EXCLUDED.updated_at
	`, t.ID, installation, cleaning, t.Revision, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return entities.PriceTable{}, err
	}
	return t, nil
}
