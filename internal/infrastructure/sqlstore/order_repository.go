package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository sobre database/sql.
// notes admite NULL en la tabla; se lee como cadena vacía.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el repositorio sobre una conexión o transacción.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, customer_id, item_id, COALESCE(notes, ''), "timestamp"`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(s rowScanner) (*entity.Order, error) {
	var o entity.Order
	if err := s.Scan(&o.ID, &o.CustomerID, &o.ItemID, &o.Notes, &o.Timestamp); err != nil {
		return nil, err
	}
	return &o, nil
}

// Create inserta un pedido y asigna el ID generado.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	const query = `
		INSERT INTO orders (customer_id, item_id, notes, "timestamp")
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRowContext(ctx, query, o.CustomerID, o.ItemID, o.Notes, o.Timestamp).Scan(&o.ID)
	if err != nil {
		return translate(err, "insert order")
	}
	return nil
}

// GetByID obtiene un pedido por ID; (nil, nil) si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	o, err := scanOrder(r.q.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, translate(err, "get order")
	}
	return o, nil
}

// List devuelve todos los pedidos ordenados por ID.
func (r *OrderRepo) List(ctx context.Context) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY id`
	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, translate(err, "list orders")
	}
	defer rows.Close()

	var list []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, translate(err, "scan order")
		}
		list = append(list, o)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(err, "list orders")
	}
	return list, nil
}

// Update sobrescribe todas las columnas del pedido.
func (r *OrderRepo) Update(ctx context.Context, o *entity.Order) error {
	const query = `
		UPDATE orders SET customer_id = $1, item_id = $2, notes = $3, "timestamp" = $4
		WHERE id = $5`
	res, err := r.q.ExecContext(ctx, query, o.CustomerID, o.ItemID, o.Notes, o.Timestamp, o.ID)
	if err != nil {
		return translate(err, "update order")
	}
	return rowsAffectedOrNotFound(res, "update order")
}

// Delete elimina un pedido por ID.
func (r *OrderRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return translate(err, "delete order")
	}
	return rowsAffectedOrNotFound(res, "delete order")
}

func (r *OrderRepo) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM orders`, "count orders")
}

func (r *OrderRepo) CountByCustomer(ctx context.Context, customerID int64) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM orders WHERE customer_id = $1`, "count orders by customer", customerID)
}

func (r *OrderRepo) CountByItem(ctx context.Context, itemID int64) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM orders WHERE item_id = $1`, "count orders by item", itemID)
}

// Exists busca un pedido idéntico; la comparación de notas trata NULL como cadena vacía.
func (r *OrderRepo) Exists(ctx context.Context, o *entity.Order) (bool, error) {
	const query = `
		SELECT COUNT(*) FROM orders
		WHERE customer_id = $1 AND item_id = $2 AND COALESCE(notes, '') = $3 AND "timestamp" = $4`
	n, err := r.count(ctx, query, "exists order", o.CustomerID, o.ItemID, o.Notes, o.Timestamp)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *OrderRepo) count(ctx context.Context, query, op string, args ...any) (int64, error) {
	var n int64
	if err := r.q.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, translate(err, op)
	}
	return n, nil
}
