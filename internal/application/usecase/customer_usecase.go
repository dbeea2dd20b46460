package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD para clientes sobre la Store de la petición.
type CustomerUseCase struct {
	store  repository.Store
	policy ListPolicy
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(store repository.Store, policy ListPolicy) *CustomerUseCase {
	return &CustomerUseCase{store: store, policy: policy}
}

// Create registra un cliente. ErrDuplicate si el par (name, phone) ya existe.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	customer := &entity.Customer{Name: in.Name, Phone: in.Phone}
	err := uc.store.RunInTx(ctx, func(tx repository.Store) error {
		return tx.Customers().Create(ctx, customer)
	})
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente; ErrNotFound si no existe.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id int64) (*dto.CustomerResponse, error) {
	customer, err := uc.store.Customers().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

// List devuelve el mapa id → cliente.
func (uc *CustomerUseCase) List(ctx context.Context) (map[int64]dto.CustomerSummary, error) {
	list, err := uc.store.Customers().List(ctx)
	if err != nil {
		return nil, err
	}
	if err := uc.policy.check(len(list)); err != nil {
		return nil, err
	}
	out := make(map[int64]dto.CustomerSummary, len(list))
	for _, c := range list {
		out[c.ID] = dto.CustomerSummary{Name: c.Name, Phone: c.Phone}
	}
	return out, nil
}

// Update sobrescribe name y phone.
func (uc *CustomerUseCase) Update(ctx context.Context, id int64, in dto.CustomerRequest) error {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return err
	}
	return uc.store.RunInTx(ctx, func(tx repository.Store) error {
		return tx.Customers().Update(ctx, &entity.Customer{ID: id, Name: in.Name, Phone: in.Phone})
	})
}

// Delete elimina un cliente. Con pedidos asociados devuelve ErrConflict.
func (uc *CustomerUseCase) Delete(ctx context.Context, id int64) error {
	return uc.store.RunInTx(ctx, func(tx repository.Store) error {
		n, err := tx.Orders().CountByCustomer(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("%w: el cliente %d tiene %d pedido(s)", domain.ErrConflict, id, n)
		}
		return tx.Customers().Delete(ctx, id)
	})
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{ID: c.ID, Name: c.Name, Phone: c.Phone}
}
