package entity

import "time"

// Order representa un pedido de un cliente sobre un artículo.
// Timestamp se guarda en segundos Unix; 0 significa "asignar hora del servidor".
type Order struct {
	ID         int64
	CustomerID int64
	ItemID     int64
	Notes      string
	Timestamp  int64
}

// StampIfZero asigna now (en segundos) cuando Timestamp no fue informado.
func (o *Order) StampIfZero(now time.Time) {
	if o.Timestamp == 0 {
		o.Timestamp = now.Unix()
	}
}

// Time devuelve el Timestamp como time.Time en UTC.
func (o *Order) Time() time.Time {
	return time.Unix(o.Timestamp, 0).UTC()
}
