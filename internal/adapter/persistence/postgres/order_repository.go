package postgres

import (
	"context"
	"errors"

	"refrigeracao_os/internal/domain/entities"
	"refrigeracao_os/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const orderColumns = `
	id, customer_id, customer_name, customer_phone, service_type, equipment_category, capacity,
	address, latitude, longitude, notes,
	materials_total::text, services_total::text, subtotal::text, discount::text, total::text,
	status, created_at, updated_at`

// OrderRepository stores the order header, its service and material lines and a
// new customer in one transaction.
type OrderRepository struct{ pool *pgxpool.Pool }

var _ interfaces.IOrderRepository = (*OrderRepository)(nil)

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

func (r *OrderRepository) Create(ctx context.Context, o entities.Order, newCustomer *entities.Customer) (entities.Order, error) {
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if c := newCustomer; c != nil {
			_, err := tx.Exec(ctx, `
				INSERT INTO customers (id, name, phone, address, created_at)
				VALUES ($1, $2, $3, $4, $5)`,
				c.ID, c.Name, c.Phone, c.Address, c.CreatedAt,
			)
			if err != nil {
				return err
			}
		}

		_, err := tx.Exec(ctx, `
			INSERT INTO orders (
				id, customer_id, customer_name, customer_phone, service_type, equipment_category, capacity,
				address, latitude, longitude, notes,
				materials_total, services_total, subtotal, discount, total,
				status, created_at, updated_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7,
				$8, $9, $10, $11,
				$12::numeric, $13::numeric, $14::numeric, $15::numeric, $16::numeric,
				$17, $18, $19
			)`,
			o.ID, o.CustomerID, o.CustomerName, o.CustomerPhone, string(o.ServiceType), string(o.EquipmentCategory), int(o.Capacity),
			o.Address, o.Latitude, o.Longitude, o.Notes,
			numericArg(o.MaterialsTotal), numericArg(o.ServicesTotal), numericArg(o.Subtotal), numericArg(o.Discount), numericArg(o.Total),
			string(o.Status), o.CreatedAt, o.UpdatedAt,
		)
		if err != nil {
			return err
		}

		batch := &pgx.Batch{}
		for _, l := range o.Services {
			batch.Queue(`
				INSERT INTO order_services (order_id, position, type, category, capacity, description, value, amount)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8::numeric)`,
				o.ID, l.Position, string(l.Type), string(l.Category), int(l.Capacity), l.Description, l.Value, numericArg(l.Amount),
			)
		}
		for _, l := range o.Materials {
			batch.Queue(`
				INSERT INTO order_materials (id, order_id, position, material_id, name, unit, unit_price, quantity, line_total)
				VALUES ($1, $2, $3, $4, $5, $6, $7::numeric, $8, $9::numeric)`,
				l.ID, o.ID, l.Position, l.MaterialID, l.Name, l.Unit, numericArg(l.UnitPrice), l.Quantity, numericArg(l.LineTotal),
			)
		}
		if batch.Len() == 0 {
			return nil
		}
		return tx.SendBatch(ctx, batch).Close()
	})
	if err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	o, err := scanOrder(r.pool.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Order{}, nil
	}
	if err != nil {
		return entities.Order{}, err
	}
	if err := r.loadLines(ctx, []*entities.Order{&o}); err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

// List returns every order, newest first, with its lines.
func (r *OrderRepository) List(ctx context.Context) ([]entities.Order, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entities.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	ptrs := make([]*entities.Order, len(out))
	for i := range out {
		ptrs[i] = &out[i]
	}
	if err := r.loadLines(ctx, ptrs); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	o, err := scanOrder(r.pool.QueryRow(ctx, `
		UPDATE orders SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING `+orderColumns, id, string(status)))
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Order{}, nil
	}
	if err != nil {
		return entities.Order{}, err
	}
	if err := r.loadLines(ctx, []*entities.Order{&o}); err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderRepository) CountMaterialReferences(ctx context.Context, materialID string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM order_materials WHERE material_id = $1`, materialID).Scan(&n)
	return n, err
}

func (r *OrderRepository) loadLines(ctx context.Context, orders []*entities.Order) error {
	if len(orders) == 0 {
		return nil
	}
	byID := make(map[string]*entities.Order, len(orders))
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		o.Services = []entities.OrderServiceLine{}
		o.Materials = []entities.OrderMaterialLine{}
		byID[o.ID] = o
		ids = append(ids, o.ID)
	}

	srows, err := r.pool.Query(ctx, `
		SELECT order_id, position, type, category, capacity, description, value, amount::text
		FROM order_services WHERE order_id = ANY($1) ORDER BY order_id, position`, ids)
	if err != nil {
		return err
	}
	defer srows.Close()
	for srows.Next() {
		var (
			orderID, typ, category, amount string
			l                              entities.OrderServiceLine
			capacity                       int
		)
		if err := srows.Scan(&orderID, &l.Position, &typ, &category, &capacity, &l.Description, &l.Value, &amount); err != nil {
			return err
		}
		l.Type = entities.ServiceType(typ)
		l.Category = entities.EquipmentCategory(category)
		l.Capacity = entities.Capacity(capacity)
		l.Amount = parseNumeric(amount)
		if o := byID[orderID]; o != nil {
			o.Services = append(o.Services, l)
		}
	}
	if err := srows.Err(); err != nil {
		return err
	}

	mrows, err := r.pool.Query(ctx, `
		SELECT id, order_id, position, material_id, name, unit, unit_price::text, quantity, line_total::text
		FROM order_materials WHERE order_id = ANY($1) ORDER BY order_id, position`, ids)
	if err != nil {
		return err
	}
	defer mrows.Close()
	for mrows.Next() {
		var (
			l                    entities.OrderMaterialLine
			unitPrice, lineTotal string
		)
		if err := mrows.Scan(&l.ID, &l.OrderID, &l.Position, &l.MaterialID, &l.Name, &l.Unit, &unitPrice, &l.Quantity, &lineTotal); err != nil {
			return err
		}
		l.UnitPrice = parseNumeric(unitPrice)
		l.LineTotal = parseNumeric(lineTotal)
		if o := byID[l.OrderID]; o != nil {
			o.Materials = append(o.Materials, l)
		}
	}
	return mrows.Err()
}

func scanOrder(row pgx.Row) (entities.Order, error) {
	var (
		o                                                      entities.Order
		serviceType, category, status                          string
		capacity                                               int
		materialsTotal, servicesTotal, subtotal, discount, tot string
	)
	err := row.Scan(
		&o.ID, &o.CustomerID, &o.CustomerName, &o.CustomerPhone, &serviceType, &category, &capacity,
		&o.Address, &o.Latitude, &o.Longitude, &o.Notes,
		&materialsTotal, &servicesTotal, &subtotal, &discount, &tot,
		&status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return entities.Order{}, err
	}
	o.ServiceType = entities.ServiceType(serviceType)
	o.EquipmentCategory = entities.EquipmentCategory(category)
	o.Capacity = entities.Capacity(capacity)
	o.Status = entities.OrderStatus(status)
	o.MaterialsTotal = parseNumeric(materialsTotal)
	o.ServicesTotal = parseNumeric(servicesTotal)
	o.Subtotal = parseNumeric(subtotal)
	o.Discount = parseNumeric(discount)
	o.Total = parseNumeric(tot)
	return o, nil
}
