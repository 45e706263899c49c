package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"gestor-backend/internal/models"
)

func TestCoerceValue(t *testing.T) {
	require.True(t, coerceValue("1234.56").Equal(dec("1234.56")))
	require.True(t, coerceValue("1.234,56").Equal(dec("1234.56")))
	require.True(t, coerceValue("").IsZero())
	require.True(t, coerceValue("abc").IsZero())
	require.True(t, coerceValue("-50").IsZero())
}

func TestCommitmentSaveCreatesAndEdits(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.commitments.Save(ctx, SaveCommitmentInput{
		Authority:        "Prefeitura de Itapevi",
		CommitmentNumber: "2025NE000123",
		ProcessNumber:    "PROC-77",
		Date:             "2025-03-07",
		Value:            "2.500,00",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, models.CommitmentCommitted, created.Status)
	require.True(t, created.Value.Equal(dec("2500")))
	require.Equal(t, "07/03/2025", created.Date.Format("02/01/2006"))

	edited, err := env.commitments.Save(ctx, SaveCommitmentInput{
		ID:               created.ID,
		Authority:        "Prefeitura de Itapevi",
		CommitmentNumber: "2025NE000123",
		ProcessNumber:    "PROC-77",
		Value:            "3000",
		Status:           string(models.CommitmentLiquidated),
	})
	require.NoError(t, err)
	require.Equal(t, created.ID, edited.ID)
	require.True(t, edited.Value.Equal(dec("3000")))

	all, err := env.commitments.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestCommitmentSaveValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.commitments.Save(ctx, SaveCommitmentInput{Authority: "  ", CommitmentNumber: "NE1"})
	require.Error(t, err)

	// The commitment number is just as mandatory as the authority.
	_, err = env.commitments.Save(ctx, SaveCommitmentInput{Authority: "Prefeitura de Cotia"})
	require.Error(t, err)

	_, err = env.commitments.Save(ctx, SaveCommitmentInput{Authority: "Prefeitura de Cotia", CommitmentNumber: "   "})
	require.Error(t, err)

	_, err = env.commitments.Save(ctx, SaveCommitmentInput{Authority: "X", CommitmentNumber: "NE1", Status: "aberto"})
	require.Error(t, err)

	_, err = env.commitments.Save(ctx, SaveCommitmentInput{Authority: "X", CommitmentNumber: "NE1", Date: "07/03/2025"})
	require.Error(t, err)
}

func TestCommitmentSearch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.commitments.Save(ctx, SaveCommitmentInput{Authority: "Prefeitura de Cotia", CommitmentNumber: "NE100"})
	require.NoError(t, err)
	_, err = env.commitments.Save(ctx, SaveCommitmentInput{Authority: "Prefeitura de Itapevi", CommitmentNumber: "NE200", ProcessNumber: "proc-55"})
	require.NoError(t, err)

	results, err := env.commitments.Search(ctx, "COTIA")
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "Prefeitura de Cotia", results[0].Authority)

	results, err = env.commitments.Search(ctx, "PROC-55")
	require.NoError(t, err)
	require.Len(t, results, 1)

	results, err = env.commitments.Search(ctx, "")
	require.NoError(t, err)
	require.Len(t, results, 2)

	results, err = env.commitments.Search(ctx, "nada")
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestCommitmentStatusUpdate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	c, err := env.commitments.Save(ctx, SaveCommitmentInput{Authority: "Prefeitura", CommitmentNumber: "NE300"})
	require.NoError(t, err)

	c, err = env.commitments.UpdateStatus(ctx, c.ID, models.CommitmentPaid)
	require.NoError(t, err)
	require.Equal(t, models.CommitmentPaid, c.Status)

	_, err = env.commitments.UpdateStatus(ctx, c.ID, "quitado")
	require.Error(t, err)
}
