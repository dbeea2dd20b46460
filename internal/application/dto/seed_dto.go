package dto

import "github.com/shopspring/decimal"

// SeedRecord registro del archivo de carga inicial (example_orders.json).
// Cada artículo genera un pedido con las notas y el timestamp compartidos.
type SeedRecord struct {
	Name      string     `json:"name"`
	Phone     string     `json:"phone"`
	Items     []SeedItem `json:"items"`
	Notes     string     `json:"notes"`
	Timestamp int64      `json:"timestamp"`
}

// SeedItem artículo dentro de un SeedRecord.
type SeedItem struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// SeedReport resumen de una ejecución del seeder.
// Los totales se leen al terminar; OrdersBefore es el conteo de pedidos antes de cargar.
type SeedReport struct {
	RunID          string `json:"run_id"`
	Records        int    `json:"records"`
	CustomersTotal int64  `json:"customers_total"`
	ItemsTotal     int64  `json:"items_total"`
	OrdersBefore   int64  `json:"orders_before"`
	OrdersInserted int    `json:"orders_inserted"`
	OrdersSkipped  int    `json:"orders_skipped"`
	OrdersTotal    int64  `json:"orders_total"`
}
