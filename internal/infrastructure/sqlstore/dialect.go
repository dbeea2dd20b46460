package sqlstore

import (
	"fmt"

	"github.com/jhoicas/pedidos-api/pkg/config"
)

// Dialect reúne lo que cambia entre motores: nombre del driver y DDL.
// Las consultas de los repositorios son comunes: placeholders $n en orden ascendente,
// ON CONFLICT ... RETURNING y columnas explícitas funcionan igual en SQLite y PostgreSQL.
type Dialect struct {
	Name       string
	DriverName string
	schema     []string
	drop       []string
}

// SQLite dialecto por defecto (archivo local, driver mattn/go-sqlite3).
var SQLite = Dialect{
	Name:       config.DriverSQLite,
	DriverName: "sqlite3",
	schema:     sqliteSchema,
	drop:       dropSchema,
}

// Postgres dialecto para despliegues con servidor (driver pgx vía database/sql).
var Postgres = Dialect{
	Name:       config.DriverPostgres,
	DriverName: "pgx",
	schema:     postgresSchema,
	drop:       dropSchema,
}

// DialectFor devuelve el dialecto configurado en DB_DRIVER.
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case config.DriverSQLite, "":
		return SQLite, nil
	case config.DriverPostgres:
		return Postgres, nil
	default:
		return Dialect{}, fmt.Errorf("dialecto no soportado: %q", driver)
	}
}
