package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

var _ repository.StoreProvider = (*Provider)(nil)

// Provider entrega una conexión dedicada por petición y administra el esquema.
type Provider struct {
	db      *sql.DB
	dialect Dialect
}

// NewProvider construye el provider sobre un *sql.DB ya abierto (Open o sqlmock).
func NewProvider(db *sql.DB, dialect Dialect) *Provider {
	return &Provider{db: db, dialect: dialect}
}

// Acquire toma una conexión del pool. El llamador debe cerrar la Session.
func (p *Provider) Acquire(ctx context.Context) (repository.ScopedStore, error) {
	return p.Session(ctx)
}

// Session es Acquire con el tipo concreto.
func (p *Provider) Session(ctx context.Context) (*Session, error) {
	conn, err := p.db.Conn(ctx)
	if err != nil {
		return nil, translate(err, "acquire connection")
	}
	return &Session{conn: conn}, nil
}

// Migrate crea las tablas e índices que falten. Cada sentencia se ejecuta por separado.
func (p *Provider) Migrate(ctx context.Context) error {
	for _, stmt := range p.dialect.schema {
		if _, err := p.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// Reset borra las tablas y vuelve a crearlas vacías.
func (p *Provider) Reset(ctx context.Context) error {
	for _, stmt := range p.dialect.drop {
		if _, err := p.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
	}
	return p.Migrate(ctx)
}

// Ping verifica que la base responda (health check).
func (p *Provider) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

// Close cierra el pool.
func (p *Provider) Close() error {
	return p.db.Close()
}
