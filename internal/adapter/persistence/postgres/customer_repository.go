package postgres

import (
	"context"
	"errors"

	"refrigeracao_os/internal/domain/entities"
	"refrigeracao_os/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerRepository struct{ pool *pgxpool.Pool }

var _ interfaces.ICustomerRepository = (*CustomerRepository)(nil)

func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	var c entities.Customer
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, phone, address, created_at FROM customers WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.Phone, &c.Address, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Customer{}, nil
	}
	if err != nil {
		return entities.Customer{}, err
	}
	return c, nil
}
