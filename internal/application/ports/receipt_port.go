package ports

import (
	"context"

	"github.com/jhoicas/pedidos-api/internal/domain/entity"
)

// ReceiptGenerator renderiza el comprobante de un pedido (PDF).
type ReceiptGenerator interface {
	GenerateOrderReceipt(
		ctx context.Context,
		order *entity.Order,
		customer *entity.Customer,
		item *entity.Item,
	) ([]byte, error)
}
