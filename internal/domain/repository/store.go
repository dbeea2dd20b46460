package repository

import "context"

// Store agrupa los repositorios atados a una misma conexión (o transacción).
// Una Store vive lo que dura una petición; quien la adquiere es responsable de liberarla.
type Store interface {
	Customers() CustomerRepository
	Items() ItemRepository
	Orders() OrderRepository
	// RunInTx ejecuta fn dentro de una transacción: Commit si fn retorna nil, Rollback en otro caso.
	// Dentro de una transacción, RunInTx reutiliza la misma tx.
	RunInTx(ctx context.Context, fn func(tx Store) error) error
}

// ScopedStore es una Store con una conexión dedicada que debe cerrarse exactamente una vez.
// Close es idempotente.
type ScopedStore interface {
	Store
	Close() error
}

// StoreProvider entrega una ScopedStore por petición.
type StoreProvider interface {
	Acquire(ctx context.Context) (ScopedStore, error)
}
