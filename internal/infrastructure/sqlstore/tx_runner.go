package sqlstore

import (
	"context"
	"database/sql"

	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

// runInTx inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func runInTx(ctx context.Context, conn *sql.Conn, fn func(tx repository.Store) error) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return translate(err, "begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(&txStore{tx: tx}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return translate(err, "commit transaction")
	}
	return nil
}
