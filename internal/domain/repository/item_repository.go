package repository

import (
	"context"

	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ItemRepository define el puerto de persistencia para Item.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id int64) (*entity.Item, error)
	List(ctx context.Context) ([]*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	Delete(ctx context.Context, id int64) error
	// Upsert inserta el artículo si no existe (conserva el precio previo) y devuelve su ID.
	Upsert(ctx context.Context, name string, price decimal.Decimal) (int64, error)
	Count(ctx context.Context) (int64, error)
}
