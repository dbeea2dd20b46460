package dto

import (
	"fmt"

	"github.com/jhoicas/pedidos-api/internal/domain"
)

// OrderRequest body para POST y PUT /orders.
// Timestamp en segundos Unix; 0 u omitido hace que el servidor asigne la hora actual.
type OrderRequest struct {
	CustomerID int64  `json:"customer_id"`
	ItemID     int64  `json:"item_id"`
	Notes      string `json:"notes"`
	Timestamp  int64  `json:"timestamp"`
}

// Validate exige referencias positivas y timestamp no negativo.
func (r OrderRequest) Validate() error {
	if r.CustomerID <= 0 || r.ItemID <= 0 {
		return fmt.Errorf("%w: customer_id e item_id son requeridos", domain.ErrInvalidInput)
	}
	if r.Timestamp < 0 {
		return fmt.Errorf("%w: timestamp no puede ser negativo", domain.ErrInvalidInput)
	}
	return nil
}

// OrderResponse pedido en respuestas de lectura individual.
type OrderResponse struct {
	ID         int64  `json:"id"`
	CustomerID int64  `json:"customer_id"`
	ItemID     int64  `json:"item_id"`
	Notes      string `json:"notes"`
	Timestamp  int64  `json:"timestamp"`
}

// OrderSummary valor del mapa id → pedido de GET /all_orders.
type OrderSummary struct {
	CustomerID int64  `json:"customer_id"`
	ItemID     int64  `json:"item_id"`
	Notes      string `json:"notes"`
	Timestamp  int64  `json:"timestamp"`
}

// Tipos de evento publicados al broker.
const (
	OrderCreated = "order.created"
	OrderUpdated = "order.updated"
	OrderDeleted = "order.deleted"
)

// OrderEvent se publica tras confirmar una escritura sobre pedidos.
type OrderEvent struct {
	Type       string `json:"type"`
	OrderID    int64  `json:"order_id"`
	CustomerID int64  `json:"customer_id,omitempty"`
	ItemID     int64  `json:"item_id,omitempty"`
	Notes      string `json:"notes,omitempty"`
	Timestamp  int64  `json:"timestamp,omitempty"`
	OccurredAt string `json:"occurred_at"`
}
