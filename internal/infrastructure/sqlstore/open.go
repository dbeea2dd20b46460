package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"strconv"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/jhoicas/pedidos-api/pkg/config"
)

// Open abre la base configurada, verifica la conexión y devuelve el Provider.
// El pool no conserva conexiones ociosas: cada Acquire obtiene una conexión nueva.
func Open(ctx context.Context, cfg config.DBConfig) (*Provider, error) {
	dialect, err := DialectFor(cfg.Driver)
	if err != nil {
		return nil, err
	}

	var db *sql.DB
	switch dialect.Name {
	case config.DriverPostgres:
		db, err = openPostgres(cfg)
	default:
		db, err = sql.Open(dialect.DriverName, sqliteDSN(cfg.Path, cfg.LockTimeout))
	}
	if err != nil {
		return nil, fmt.Errorf("abrir base de datos: %w", err)
	}

	db.SetMaxIdleConns(0)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return NewProvider(db, dialect), nil
}

// sqliteDSN arma el DSN de mattn/go-sqlite3: espera por bloqueo, llaves foráneas activas
// y BEGIN IMMEDIATE para que el escritor tome el lock al iniciar la transacción.
func sqliteDSN(path string, lockTimeout time.Duration) string {
	return fmt.Sprintf("file:%s?_busy_timeout=%d&_foreign_keys=on&_txlock=immediate",
		path, lockTimeout.Milliseconds())
}

func openPostgres(cfg config.DBConfig) (*sql.DB, error) {
	connConfig, err := pgx.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}
	connConfig.RuntimeParams["lock_timeout"] = strconv.FormatInt(cfg.LockTimeout.Milliseconds(), 10)

	// Preferir IPv4 en el dial: en contenedores sin IPv6 el host puede resolver solo AAAA.
	connConfig.DialFunc = func(ctx context.Context, network, addr string) (net.Conn, error) {
		dialer := &net.Dialer{}
		host, port, err := net.SplitHostPort(addr)
		if err != nil {
			return dialer.DialContext(ctx, network, addr)
		}
		ipv4, err := resolveIPv4(ctx, host)
		if err != nil {
			return dialer.DialContext(ctx, network, addr)
		}
		return dialer.DialContext(ctx, "tcp4", net.JoinHostPort(ipv4, port))
	}

	// Registrar codec NUMERIC -> shopspring/decimal en cada conexión nueva.
	return stdlib.OpenDB(*connConfig, stdlib.OptionAfterConnect(func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	})), nil
}

func resolveIPv4(ctx context.Context, host string) (string, error) {
	if ip := net.ParseIP(host); ip != nil {
		if ip.To4() != nil {
			return host, nil
		}
		return "", fmt.Errorf("es IPv6")
	}
	ips, err := net.DefaultResolver.LookupIP(ctx, "ip4", host)
	if err != nil {
		return "", err
	}
	if len(ips) == 0 {
		return "", fmt.Errorf("no hay IPv4")
	}
	return ips[0].String(), nil
}
