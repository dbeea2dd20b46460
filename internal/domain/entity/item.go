package entity

import "github.com/shopspring/decimal"

// Item representa un artículo vendible. Name es único; ID es la clave sustituta.
type Item struct {
	ID    int64
	Name  string
	Price decimal.Decimal // precio unitario, no negativo
}
