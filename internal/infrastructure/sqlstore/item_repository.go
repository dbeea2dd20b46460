package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación de ItemRepository sobre database/sql.
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el repositorio sobre una conexión o transacción.
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

func (r *ItemRepo) Create(ctx context.Context, it *entity.Item) error {
	const query = `INSERT INTO items (name, price) VALUES ($1, $2) RETURNING id`
	if err := r.q.QueryRowContext(ctx, query, it.Name, it.Price).Scan(&it.ID); err != nil {
		return translate(err, "insert item")
	}
	return nil
}

func (r *ItemRepo) GetByID(ctx context.Context, id int64) (*entity.Item, error) {
	const query = `SELECT id, name, price FROM items WHERE id = $1`
	var it entity.Item
	err := r.q.QueryRowContext(ctx, query, id).Scan(&it.ID, &it.Name, &it.Price)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, translate(err, "get item")
	}
	return &it, nil
}

func (r *ItemRepo) List(ctx context.Context) ([]*entity.Item, error) {
	const query = `SELECT id, name, price FROM items ORDER BY id`
	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, translate(err, "list items")
	}
	defer rows.Close()

	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Price); err != nil {
			return nil, translate(err, "scan item")
		}
		list = append(list, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(err, "list items")
	}
	return list, nil
}

func (r *ItemRepo) Update(ctx context.Context, it *entity.Item) error {
	const query = `UPDATE items SET name = $1, price = $2 WHERE id = $3`
	res, err := r.q.ExecContext(ctx, query, it.Name, it.Price, it.ID)
	if err != nil {
		return translate(err, "update item")
	}
	return rowsAffectedOrNotFound(res, "update item")
}

func (r *ItemRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return translate(err, "delete item")
	}
	return rowsAffectedOrNotFound(res, "delete item")
}

// Upsert conserva el precio existente cuando el nombre ya está registrado.
func (r *ItemRepo) Upsert(ctx context.Context, name string, price decimal.Decimal) (int64, error) {
	const query = `
		INSERT INTO items (name, price) VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET name = excluded.name
		RETURNING id`
	var id int64
	if err := r.q.QueryRowContext(ctx, query, name, price).Scan(&id); err != nil {
		return 0, translate(err, "upsert item")
	}
	return id, nil
}

func (r *ItemRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM items`).Scan(&n); err != nil {
		return 0, translate(err, "count items")
	}
	return n, nil
}
