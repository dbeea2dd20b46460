package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/pedidos-api/internal/application/ports"
	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

// ReceiptUseCase genera el comprobante PDF de un pedido.
type ReceiptUseCase struct {
	store     repository.Store
	generator ports.ReceiptGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(store repository.Store, generator ports.ReceiptGenerator) *ReceiptUseCase {
	return &ReceiptUseCase{store: store, generator: generator}
}

// Download carga pedido, cliente y artículo y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si el pedido no existe.
func (uc *ReceiptUseCase) Download(ctx context.Context, orderID int64) (pdfBytes []byte, filename string, err error) {
	order, err := uc.store.Orders().GetByID(ctx, orderID)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: obtener pedido: %w", err)
	}
	if order == nil {
		return nil, "", domain.ErrNotFound
	}

	customer, err := uc.store.Customers().GetByID(ctx, order.CustomerID)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: obtener cliente: %w", err)
	}
	if customer == nil {
		return nil, "", fmt.Errorf("receipt: el cliente %d del pedido %d no existe", order.CustomerID, order.ID)
	}
	item, err := uc.store.Items().GetByID(ctx, order.ItemID)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: obtener artículo: %w", err)
	}
	if item == nil {
		return nil, "", fmt.Errorf("receipt: el artículo %d del pedido %d no existe", order.ItemID, order.ID)
	}

	pdfBytes, err = uc.generator.GenerateOrderReceipt(ctx, order, customer, item)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("pedido_%d.pdf", order.ID), nil
}
