// seed carga clientes, artículos y pedidos desde un archivo JSON (example_orders.json).
//
// Uso: go run ./cmd/seed [-file example_orders.json] [-reset] [-dedupe-orders]
//
// Clientes y artículos se insertan una sola vez aunque se ejecute varias veces. Los pedidos
// se vuelven a insertar en cada ejecución salvo con -dedupe-orders.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/pedidos-api/internal/application/seed"
	"github.com/jhoicas/pedidos-api/internal/infrastructure/sqlstore"
	"github.com/jhoicas/pedidos-api/pkg/config"
	"github.com/jhoicas/pedidos-api/pkg/logger"
)

type options struct {
	file   string
	reset  bool
	dedupe bool
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	var opts options
	flag.StringVar(&opts.file, "file", cfg.Seed.File, "archivo JSON con los registros")
	flag.BoolVar(&opts.reset, "reset", false, "borrar y recrear las tablas antes de cargar")
	flag.BoolVar(&opts.dedupe, "dedupe-orders", false, "no insertar pedidos idénticos a uno existente")
	flag.Parse()

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "seed"})
	if err := run(cfg, opts, log); err != nil {
		log.Error().Err(err).Str("file", opts.file).Msg("semilla no cargada")
		os.Exit(1)
	}
}

// run carga la semilla; los defer cierran archivo, sesión y base en cualquier salida.
func run(cfg *config.Config, opts options, log *logger.Logger) error {
	f, err := os.Open(opts.file)
	if err != nil {
		return fmt.Errorf("abrir archivo de semilla: %w", err)
	}
	defer f.Close()

	records, err := seed.LoadRecords(f)
	if err != nil {
		return err
	}

	ctx := context.Background()
	provider, err := sqlstore.Open(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("abrir base de datos: %w", err)
	}
	defer provider.Close()

	if opts.reset {
		err = provider.Reset(ctx)
	} else {
		err = provider.Migrate(ctx)
	}
	if err != nil {
		return fmt.Errorf("preparar esquema (reset=%t): %w", opts.reset, err)
	}

	sess, err := provider.Session(ctx)
	if err != nil {
		return fmt.Errorf("adquirir conexión: %w", err)
	}
	defer sess.Close()

	report, err := seed.NewUseCase(sess, seed.Options{DedupeOrders: opts.dedupe}).Run(ctx, records)
	if err != nil {
		return fmt.Errorf("cargar semilla: %w", err)
	}

	if report.OrdersBefore > 0 && !opts.dedupe {
		log.Warn().
			Int64("orders_before", report.OrdersBefore).
			Int("orders_inserted", report.OrdersInserted).
			Msg("ya había pedidos: esta ejecución los duplicó; use -dedupe-orders o -reset")
	}
	log.Info().
		Str("run_id", report.RunID).
		Int("records", report.Records).
		Int64("customers", report.CustomersTotal).
		Int64("items", report.ItemsTotal).
		Int("orders_inserted", report.OrdersInserted).
		Int("orders_skipped", report.OrdersSkipped).
		Int64("orders_total", report.OrdersTotal).
		Msg("semilla cargada")
	return nil
}
