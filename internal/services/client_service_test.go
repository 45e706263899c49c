package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"gestor-backend/internal/models"
)

func TestClientCreateValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.clients.Create(ctx, ClientInput{})
	require.Error(t, err)

	_, err = env.clients.Create(ctx, ClientInput{Name: "Maria", Email: "not-an-email"})
	require.Error(t, err)

	client, err := env.clients.Create(ctx, ClientInput{Name: "Maria", Email: "maria@example.com", Phone: "11 99999-0000"})
	require.NoError(t, err)
	require.Len(t, client.ID, 9)
}

func TestClientDeleteDoesNotCascade(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	client := env.mustClient(t, "Maria")
	service := env.mustService(t, "Poda", "80", "Geral")
	quote, err := env.quotes.Create(ctx, CreateQuoteInput{
		ClientID: client.ID,
		Items:    []models.QuoteItem{{ItemID: service.ID, Type: models.ItemService, Quantity: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, env.clients.Delete(ctx, client.ID))

	// The quote survives with the dangling client id.
	got, err := env.quotes.Get(ctx, quote.ID)
	require.NoError(t, err)
	require.Equal(t, client.ID, got.ClientID)
}

func TestAppointments(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	client := env.mustClient(t, "Maria")

	_, err := env.clients.CreateAppointment(ctx, AppointmentInput{ClientID: client.ID})
	require.Error(t, err)

	_, err = env.clients.CreateAppointment(ctx, AppointmentInput{ClientID: "missing", Date: "2025-04-01", Time: "14:00"})
	require.Error(t, err)

	appointment, err := env.clients.CreateAppointment(ctx, AppointmentInput{
		ClientID: client.ID,
		Date:     "2025-04-01",
		Time:     "14:00",
		Notes:    "levar escada",
	})
	require.NoError(t, err)

	all, err := env.clients.ListAppointments(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, appointment.ID, all[0].ID)

	require.NoError(t, env.clients.DeleteAppointment(ctx, appointment.ID))
	all, err = env.clients.ListAppointments(ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestQuoteStatusValues(t *testing.T) {
	require.True(t, models.QuoteApproved.Valid())
	require.False(t, models.QuoteStatus("pendente").Valid())
	require.True(t, models.CommitmentPaid.Valid())
	require.False(t, models.CommitmentStatus("quitado").Valid())
}
