package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/application/ports"
	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

// OrderUseCase casos de uso CRUD para pedidos.
// Las referencias a cliente y artículo se verifican dentro de la misma transacción de la escritura.
type OrderUseCase struct {
	store  repository.Store
	events ports.OrderEventPublisher
	policy ListPolicy
	now    func() time.Time
}

// NewOrderUseCase construye el caso de uso. events puede ser nil.
func NewOrderUseCase(store repository.Store, events ports.OrderEventPublisher, policy ListPolicy) *OrderUseCase {
	return &OrderUseCase{store: store, events: events, policy: policy, now: time.Now}
}

// WithClock reemplaza el reloj usado para completar timestamps vacíos.
func (uc *OrderUseCase) WithClock(now func() time.Time) *OrderUseCase {
	uc.now = now
	return uc
}

// Create registra un pedido. Timestamp 0 se reemplaza por la hora actual.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.OrderRequest) (*dto.OrderResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	order := &entity.Order{CustomerID: in.CustomerID, ItemID: in.ItemID, Notes: in.Notes, Timestamp: in.Timestamp}
	order.StampIfZero(uc.now())

	err := uc.store.RunInTx(ctx, func(tx repository.Store) error {
		if err := ensureReferences(ctx, tx, order); err != nil {
			return err
		}
		return tx.Orders().Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	uc.publish(ctx, dto.OrderCreated, order)
	return toOrderResponse(order), nil
}

func (uc *OrderUseCase) GetByID(ctx context.Context, id int64) (*dto.OrderResponse, error) {
	order, err := uc.store.Orders().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return toOrderResponse(order), nil
}

func (uc *OrderUseCase) List(ctx context.Context) (map[int64]dto.OrderSummary, error) {
	list, err := uc.store.Orders().List(ctx)
	if err != nil {
		return nil, err
	}
	if err := uc.policy.check(len(list)); err != nil {
		return nil, err
	}
	out := make(map[int64]dto.OrderSummary, len(list))
	for _, o := range list {
		out[o.ID] = dto.OrderSummary{CustomerID: o.CustomerID, ItemID: o.ItemID, Notes: o.Notes, Timestamp: o.Timestamp}
	}
	return out, nil
}

// Update sobrescribe el pedido con la misma regla de timestamp que Create.
func (uc *OrderUseCase) Update(ctx context.Context, id int64, in dto.OrderRequest) error {
	if err := in.Validate(); err != nil {
		return err
	}
	order := &entity.Order{ID: id, CustomerID: in.CustomerID, ItemID: in.ItemID, Notes: in.Notes, Timestamp: in.Timestamp}
	order.StampIfZero(uc.now())

	err := uc.store.RunInTx(ctx, func(tx repository.Store) error {
		existing, err := tx.Orders().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		if err := ensureReferences(ctx, tx, order); err != nil {
			return err
		}
		return tx.Orders().Update(ctx, order)
	})
	if err != nil {
		return err
	}
	uc.publish(ctx, dto.OrderUpdated, order)
	return nil
}

func (uc *OrderUseCase) Delete(ctx context.Context, id int64) error {
	err := uc.store.RunInTx(ctx, func(tx repository.Store) error {
		return tx.Orders().Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	uc.publish(ctx, dto.OrderDeleted, &entity.Order{ID: id})
	return nil
}

// ensureReferences exige que cliente y artículo existan; si no, ErrConflict.
func ensureReferences(ctx context.Context, tx repository.Store, o *entity.Order) error {
	customer, err := tx.Customers().GetByID(ctx, o.CustomerID)
	if err != nil {
		return err
	}
	if customer == nil {
		return fmt.Errorf("%w: el cliente %d no existe", domain.ErrConflict, o.CustomerID)
	}
	item, err := tx.Items().GetByID(ctx, o.ItemID)
	if err != nil {
		return err
	}
	if item == nil {
		return fmt.Errorf("%w: el artículo %d no existe", domain.ErrConflict, o.ItemID)
	}
	return nil
}

// publish notifica después del Commit. El error se descarta: el publicador lo registra.
func (uc *OrderUseCase) publish(ctx context.Context, kind string, o *entity.Order) {
	if uc.events == nil {
		return
	}
	_ = uc.events.PublishOrderEvent(ctx, dto.OrderEvent{
		Type:       kind,
		OrderID:    o.ID,
		CustomerID: o.CustomerID,
		ItemID:     o.ItemID,
		Notes:      o.Notes,
		Timestamp:  o.Timestamp,
		OccurredAt: uc.now().UTC().Format(time.RFC3339),
	})
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	return &dto.OrderResponse{ID: o.ID, CustomerID: o.CustomerID, ItemID: o.ItemID, Notes: o.Notes, Timestamp: o.Timestamp}
}
