package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"gestor-backend/internal/models"
)

func TestReceiptCreateDefaults(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	client := env.mustClient(t, "Dona Maria")
	receipt, err := env.receipts.Create(ctx, CreateReceiptInput{
		ClientID: client.ID,
		Amount:   dec("99.90"),
	})
	require.NoError(t, err)
	require.NotEmpty(t, receipt.ID)
	require.Equal(t, models.PaymentPix, receipt.PaymentMethod)
	require.False(t, receipt.Date.IsZero())
}

func TestReceiptCreateValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	client := env.mustClient(t, "Cliente")

	_, err := env.receipts.Create(ctx, CreateReceiptInput{Amount: dec("10")})
	require.Error(t, err)

	_, err = env.receipts.Create(ctx, CreateReceiptInput{ClientID: client.ID})
	require.Error(t, err)

	_, err = env.receipts.Create(ctx, CreateReceiptInput{ClientID: client.ID, Amount: decimal.NewFromInt(-5)})
	require.Error(t, err)

	_, err = env.receipts.Create(ctx, CreateReceiptInput{ClientID: "missing", Amount: dec("10")})
	require.Error(t, err)
}

func TestReceiptDelete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	client := env.mustClient(t, "Cliente")
	receipt, err := env.receipts.Create(ctx, CreateReceiptInput{ClientID: client.ID, Amount: dec("10")})
	require.NoError(t, err)

	require.NoError(t, env.receipts.Delete(ctx, receipt.ID))
	require.Error(t, env.receipts.Delete(ctx, receipt.ID))

	all, err := env.receipts.List(ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}
