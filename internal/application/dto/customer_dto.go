package dto

import (
	"fmt"

	"github.com/jhoicas/pedidos-api/internal/domain"
)

// CustomerRequest body para POST y PUT /customers.
type CustomerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Normalize limpia los campos de texto.
func (r *CustomerRequest) Normalize() {
	r.Name = normalizeText(r.Name)
	r.Phone = normalizeText(r.Phone)
}

// Validate exige name y phone.
func (r CustomerRequest) Validate() error {
	if r.Name == "" || r.Phone == "" {
		return fmt.Errorf("%w: name y phone son requeridos", domain.ErrInvalidInput)
	}
	return nil
}

// CustomerResponse cliente en respuestas de lectura individual.
type CustomerResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// CustomerSummary valor del mapa id → cliente de GET /all_customers.
type CustomerSummary struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}
