package repository

import (
	"context"

	"github.com/jhoicas/pedidos-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id int64) (*entity.Order, error)
	List(ctx context.Context) ([]*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
	// CountByCustomer y CountByItem permiten bloquear borrados con pedidos dependientes.
	CountByCustomer(ctx context.Context, customerID int64) (int64, error)
	CountByItem(ctx context.Context, itemID int64) (int64, error)
	// Exists indica si ya hay un pedido idéntico (mismo cliente, artículo, notas y timestamp).
	Exists(ctx context.Context, order *entity.Order) (bool, error)
}
