package dto

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pedidos-api/internal/domain"
)

func init() {
	// Los precios viajan como número JSON (9.99), no como string.
	decimal.MarshalJSONWithoutQuotes = true
}

// ItemRequest body para POST y PUT /items. Price es puntero para distinguir "no enviado" de 0.
type ItemRequest struct {
	Name  string           `json:"name"`
	Price *decimal.Decimal `json:"price"`
}

// Normalize limpia el nombre.
func (r *ItemRequest) Normalize() {
	r.Name = normalizeText(r.Name)
}

// Validate exige name y un price no negativo.
func (r ItemRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	if r.Price == nil {
		return fmt.Errorf("%w: price es requerido", domain.ErrInvalidInput)
	}
	if r.Price.IsNegative() {
		return fmt.Errorf("%w: price no puede ser negativo", domain.ErrInvalidInput)
	}
	return nil
}

// ItemResponse artículo en respuestas de lectura individual.
type ItemResponse struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// ItemSummary valor del mapa id → artículo de GET /all_items.
type ItemSummary struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}
