package postgres

import (
	"context"
	"errors"

	"refrigeracao_os/internal/domain/entities"
	"refrigeracao_os/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const materialColumns = `id, name, unit, price::text, created_at, updated_at`

type MaterialRepository struct{ pool *pgxpool.Pool }

var _ interfaces.IMaterialRepository = (*MaterialRepository)(nil)

func NewMaterialRepository(pool *pgxpool.Pool) *MaterialRepository {
	return &MaterialRepository{pool: pool}
}

func scanMaterial(row pgx.Row) (entities.Material, error) {
	var (
		m     entities.Material
		price string
	)
	if err := row.Scan(&m.ID, &m.Name, &m.Unit, &price, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return entities.Material{}, err
	}
	m.Price = parseNumeric(price)
	return m, nil
}

func (r *MaterialRepository) List(ctx context.Context) ([]entities.Material, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+materialColumns+` FROM materials ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entities.Material
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *MaterialRepository) GetByID(ctx context.Context, id string) (entities.Material, error) {
	m, err := scanMaterial(r.pool.QueryRow(ctx, `SELECT `+materialColumns+` FROM materials WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Material{}, nil
	}
	return m, err
}

func (r *MaterialRepository) Create(ctx context.Context, material entities.Material) (entities.Material, error) {
	return scanMaterial(r.pool.QueryRow(ctx, `
		INSERT INTO materials (id, name, unit, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4::numeric, $5, $6)
		RETURNING `+materialColumns,
		material.ID, material.Name, material.Unit, numericArg(material.Price), material.CreatedAt, material.UpdatedAt,
	))
}

func (r *MaterialRepository) Update(ctx context.Context, material entities.Material) (entities.Material, error) {
	m, err := scanMaterial(r.pool.QueryRow(ctx, `
		UPDATE materials SET name = $2, unit = $3, price = $4::numeric, updated_at = $5
		WHERE id = $1
		RETURNING `+materialColumns,
		material.ID, material.Name, material.Unit, numericArg(material.Price), material.UpdatedAt,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Material{}, nil
	}
	return m, err
}

func (r *MaterialRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM materials WHERE id = $1`, id)
	return err
}
