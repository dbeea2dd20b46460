package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

// Options controla la carga.
type Options struct {
	// DedupeOrders omite un pedido si ya existe otro con el mismo cliente, artículo, notas y timestamp.
	// Sin esta opción cada ejecución vuelve a insertar todos los pedidos del archivo.
	DedupeOrders bool
}

// UseCase carga clientes, artículos y pedidos desde registros de semilla.
type UseCase struct {
	store repository.Store
	opts  Options
}

// NewUseCase construye el seeder sobre una Store (normalmente una Session dedicada).
func NewUseCase(store repository.Store, opts Options) *UseCase {
	return &UseCase{store: store, opts: opts}
}

// LoadRecords decodifica el arreglo JSON de registros.
func LoadRecords(r io.Reader) ([]dto.SeedRecord, error) {
	var records []dto.SeedRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decodificar semilla: %w", err)
	}
	return records, nil
}

// Run procesa cada registro en su propia transacción. Clientes y artículos se resuelven con
// upsert-returning-id, por lo que volver a ejecutar no los duplica.
func (uc *UseCase) Run(ctx context.Context, records []dto.SeedRecord) (*dto.SeedReport, error) {
	report := &dto.SeedReport{RunID: uuid.NewString(), Records: len(records)}

	before, err := uc.store.Orders().Count(ctx)
	if err != nil {
		return nil, err
	}
	report.OrdersBefore = before

	for i, rec := range records {
		if err := validateRecord(rec); err != nil {
			return report, fmt.Errorf("registro %d: %w", i, err)
		}
		inserted, skipped, err := uc.loadRecord(ctx, rec)
		if err != nil {
			return report, fmt.Errorf("registro %d (%s): %w", i, rec.Name, err)
		}
		report.OrdersInserted += inserted
		report.OrdersSkipped += skipped
	}

	if report.CustomersTotal, err = uc.store.Customers().Count(ctx); err != nil {
		return report, err
	}
	if report.ItemsTotal, err = uc.store.Items().Count(ctx); err != nil {
		return report, err
	}
	if report.OrdersTotal, err = uc.store.Orders().Count(ctx); err != nil {
		return report, err
	}
	return report, nil
}

func (uc *UseCase) loadRecord(ctx context.Context, rec dto.SeedRecord) (inserted, skipped int, err error) {
	customer := dto.CustomerRequest{Name: rec.Name, Phone: rec.Phone}
	customer.Normalize()

	err = uc.store.RunInTx(ctx, func(tx repository.Store) error {
		inserted, skipped = 0, 0
		customerID, err := tx.Customers().Upsert(ctx, customer.Name, customer.Phone)
		if err != nil {
			return err
		}
		for _, it := range rec.Items {
			item := dto.ItemRequest{Name: it.Name, Price: &it.Price}
			item.Normalize()
			itemID, err := tx.Items().Upsert(ctx, item.Name, it.Price)
			if err != nil {
				return err
			}

			order := &entity.Order{CustomerID: customerID, ItemID: itemID, Notes: rec.Notes, Timestamp: rec.Timestamp}
			if uc.opts.DedupeOrders {
				exists, err := tx.Orders().Exists(ctx, order)
				if err != nil {
					return err
				}
				if exists {
					skipped++
					continue
				}
			}
			if err := tx.Orders().Create(ctx, order); err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	return inserted, skipped, err
}

func validateRecord(rec dto.SeedRecord) error {
	customer := dto.CustomerRequest{Name: rec.Name, Phone: rec.Phone}
	customer.Normalize()
	if err := customer.Validate(); err != nil {
		return err
	}
	for _, it := range rec.Items {
		item := dto.ItemRequest{Name: it.Name, Price: &it.Price}
		item.Normalize()
		if err := item.Validate(); err != nil {
			return err
		}
	}
	if rec.Timestamp < 0 {
		return fmt.Errorf("%w: timestamp no puede ser negativo", domain.ErrInvalidInput)
	}
	return nil
}
