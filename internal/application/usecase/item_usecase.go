package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

// ItemUseCase casos de uso CRUD para artículos.
type ItemUseCase struct {
	store  repository.Store
	policy ListPolicy
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(store repository.Store, policy ListPolicy) *ItemUseCase {
	return &ItemUseCase{store: store, policy: policy}
}

// Create registra un artículo. ErrDuplicate si el nombre ya existe.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.ItemRequest) (*dto.ItemResponse, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	item := &entity.Item{Name: in.Name, Price: *in.Price}
	err := uc.store.RunInTx(ctx, func(tx repository.Store) error {
		return tx.Items().Create(ctx, item)
	})
	if err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

func (uc *ItemUseCase) GetByID(ctx context.Context, id int64) (*dto.ItemResponse, error) {
	item, err := uc.store.Items().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

func (uc *ItemUseCase) List(ctx context.Context) (map[int64]dto.ItemSummary, error) {
	list, err := uc.store.Items().List(ctx)
	if err != nil {
		return nil, err
	}
	if err := uc.policy.check(len(list)); err != nil {
		return nil, err
	}
	out := make(map[int64]dto.ItemSummary, len(list))
	for _, it := range list {
		out[it.ID] = dto.ItemSummary{Name: it.Name, Price: it.Price}
	}
	return out, nil
}

func (uc *ItemUseCase) Update(ctx context.Context, id int64, in dto.ItemRequest) error {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return err
	}
	return uc.store.RunInTx(ctx, func(tx repository.Store) error {
		return tx.Items().Update(ctx, &entity.Item{ID: id, Name: in.Name, Price: *in.Price})
	})
}

// Delete elimina un artículo. Con pedidos asociados devuelve ErrConflict.
func (uc *ItemUseCase) Delete(ctx context.Context, id int64) error {
	return uc.store.RunInTx(ctx, func(tx repository.Store) error {
		n, err := tx.Orders().CountByItem(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("%w: el artículo %d tiene %d pedido(s)", domain.ErrConflict, id, n)
		}
		return tx.Items().Delete(ctx, id)
	})
}

func toItemResponse(it *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{ID: it.ID, Name: it.Name, Price: it.Price}
}
