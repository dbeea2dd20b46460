package sqlstore

import (
	"context"
	"database/sql"
	"sync"

	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

var (
	_ repository.ScopedStore = (*Session)(nil)
	_ repository.Store       = (*txStore)(nil)
)

// Session es una conexión dedicada a una petición. Las lecturas van directo a la
// conexión; las escrituras pasan por RunInTx.
type Session struct {
	conn *sql.Conn

	once     sync.Once
	closeErr error
}

func (s *Session) Customers() repository.CustomerRepository { return NewCustomerRepository(s.conn) }
func (s *Session) Items() repository.ItemRepository         { return NewItemRepository(s.conn) }
func (s *Session) Orders() repository.OrderRepository       { return NewOrderRepository(s.conn) }

// RunInTx abre una transacción sobre la conexión de la sesión.
func (s *Session) RunInTx(ctx context.Context, fn func(tx repository.Store) error) error {
	return runInTx(ctx, s.conn, fn)
}

// Close devuelve la conexión. Llamadas posteriores retornan el mismo resultado.
func (s *Session) Close() error {
	s.once.Do(func() {
		s.closeErr = s.conn.Close()
	})
	return s.closeErr
}

// txStore expone los repositorios atados a una transacción en curso.
type txStore struct {
	tx *sql.Tx
}

func (t *txStore) Customers() repository.CustomerRepository { return NewCustomerRepository(t.tx) }
func (t *txStore) Items() repository.ItemRepository         { return NewItemRepository(t.tx) }
func (t *txStore) Orders() repository.OrderRepository       { return NewOrderRepository(t.tx) }

// RunInTx dentro de una transacción reutiliza la misma tx.
func (t *txStore) RunInTx(_ context.Context, fn func(tx repository.Store) error) error {
	return fn(t)
}
