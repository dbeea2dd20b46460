package ports

import (
	"context"

	"github.com/jhoicas/pedidos-api/internal/application/dto"
)

// OrderEventPublisher puerto de salida para notificar cambios confirmados sobre pedidos.
// Se invoca después del Commit; un error de publicación no revierte la escritura.
type OrderEventPublisher interface {
	PublishOrderEvent(ctx context.Context, event dto.OrderEvent) error
}
