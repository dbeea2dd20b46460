package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository sobre database/sql.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el repositorio sobre una conexión o transacción.
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create inserta un cliente y asigna el ID generado.
func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	const query = `INSERT INTO customers (name, phone) VALUES ($1, $2) RETURNING id`
	if err := r.q.QueryRowContext(ctx, query, c.Name, c.Phone).Scan(&c.ID); err != nil {
		return translate(err, "insert customer")
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	const query = `SELECT id, name, phone FROM customers WHERE id = $1`
	var c entity.Customer
	err := r.q.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Phone)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, translate(err, "get customer")
	}
	return &c, nil
}

// List devuelve todos los clientes ordenados por ID.
func (r *CustomerRepo) List(ctx context.Context) ([]*entity.Customer, error) {
	const query = `SELECT id, name, phone FROM customers ORDER BY id`
	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, translate(err, "list customers")
	}
	defer rows.Close()

	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone); err != nil {
			return nil, translate(err, "scan customer")
		}
		list = append(list, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(err, "list customers")
	}
	return list, nil
}

// Update sobrescribe name y phone.
func (r *CustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	const query = `UPDATE customers SET name = $1, phone = $2 WHERE id = $3`
	res, err := r.q.ExecContext(ctx, query, c.Name, c.Phone, c.ID)
	if err != nil {
		return translate(err, "update customer")
	}
	return rowsAffectedOrNotFound(res, "update customer")
}

// Delete elimina un cliente por ID.
func (r *CustomerRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM customers WHERE id = $1`
	res, err := r.q.ExecContext(ctx, query, id)
	if err != nil {
		return translate(err, "delete customer")
	}
	return rowsAffectedOrNotFound(res, "delete customer")
}

// Upsert inserta el cliente si no existe y devuelve su ID. El DO UPDATE sin cambios
// reales permite que RETURNING entregue el ID también cuando la fila ya existía.
func (r *CustomerRepo) Upsert(ctx context.Context, name, phone string) (int64, error) {
	const query = `
		INSERT INTO customers (name, phone) VALUES ($1, $2)
		ON CONFLICT (name, phone) DO UPDATE SET name = excluded.name
		RETURNING id`
	var id int64
	if err := r.q.QueryRowContext(ctx, query, name, phone).Scan(&id); err != nil {
		return 0, translate(err, "upsert customer")
	}
	return id, nil
}

// Count devuelve la cantidad de clientes.
func (r *CustomerRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM customers`).Scan(&n); err != nil {
		return 0, translate(err, "count customers")
	}
	return n, nil
}
