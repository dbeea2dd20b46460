package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/application/usecase"
	"github.com/jhoicas/pedidos-api/internal/domain"
)

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestItemUseCase_CRUD(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewItemUseCase(newStore(t), usecase.DefaultListPolicy)

	it, err := uc.Create(ctx, dto.ItemRequest{Name: "Pizza", Price: price("9.99")})
	require.NoError(t, err)

	got, err := uc.GetByID(ctx, it.ID)
	require.NoError(t, err)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("9.99")))

	require.NoError(t, uc.Update(ctx, it.ID, dto.ItemRequest{Name: "Pizza grande", Price: price("12.50")}))
	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Contains(t, list, it.ID)
	assert.Equal(t, "Pizza grande", list[it.ID].Name)

	require.NoError(t, uc.Delete(ctx, it.ID))
	_, err = uc.GetByID(ctx, it.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItemUseCase_Validacion(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewItemUseCase(newStore(t), usecase.DefaultListPolicy)

	_, err := uc.Create(ctx, dto.ItemRequest{Name: "Pizza"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "price es obligatorio")

	_, err = uc.Create(ctx, dto.ItemRequest{Name: "Pizza", Price: price("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "price no puede ser negativo")

	_, err = uc.Create(ctx, dto.ItemRequest{Name: "Agua", Price: price("0")})
	assert.NoError(t, err, "precio cero es válido")
}

func TestItemUseCase_NombreDuplicado(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewItemUseCase(newStore(t), usecase.DefaultListPolicy)

	_, err := uc.Create(ctx, dto.ItemRequest{Name: "Pizza", Price: price("10")})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.ItemRequest{Name: "Pizza", Price: price("11")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}
