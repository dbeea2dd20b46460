package repository

import (
	"context"

	"github.com/jhoicas/pedidos-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	// Create inserta el cliente y completa customer.ID. ErrDuplicate si (name, phone) ya existe.
	Create(ctx context.Context, customer *entity.Customer) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Customer, error)
	List(ctx context.Context) ([]*entity.Customer, error)
	// Update devuelve ErrNotFound si ninguna fila fue afectada.
	Update(ctx context.Context, customer *entity.Customer) error
	// Delete devuelve ErrNotFound si ninguna fila fue afectada.
	Delete(ctx context.Context, id int64) error
	// Upsert inserta o reutiliza el cliente (name, phone) y devuelve su ID en una sola sentencia.
	Upsert(ctx context.Context, name, phone string) (int64, error)
	Count(ctx context.Context) (int64, error)
}
