package repositories

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"gestor-backend/internal/models"
	"gestor-backend/internal/store"
)

func newFileStore(t *testing.T) store.Store {
	t.Helper()
	s, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestCorruptDataFallsBackToEmpty(t *testing.T) {
	st := newFileStore(t)
	ctx := context.Background()

	require.NoError(t, st.Set(ctx, store.KeyServices, []byte("{{{ not json")))

	repo := NewServiceRepository(st)
	services, err := repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, services)

	// A corrupt key must not block writes either.
	require.NoError(t, repo.Create(ctx, &models.Service{ID: models.NewID(), Name: "Poda", Price: decimal.NewFromInt(80)}))
	services, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, services, 1)
}

func TestCorruptKeyDoesNotAffectOthers(t *testing.T) {
	st := newFileStore(t)
	ctx := context.Background()

	require.NoError(t, st.Set(ctx, store.KeyQuotes, []byte("garbage")))

	clientRepo := NewClientRepository(st)
	require.NoError(t, clientRepo.Create(ctx, &models.Client{ID: "C1", Name: "Maria"}))

	clients, err := clientRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 1)

	quotes, err := NewQuoteRepository(st).List(ctx)
	require.NoError(t, err)
	require.Empty(t, quotes)
}

func TestCreatePrepends(t *testing.T) {
	st := newFileStore(t)
	ctx := context.Background()
	repo := NewClientRepository(st)

	require.NoError(t, repo.Create(ctx, &models.Client{ID: "A", Name: "Primeiro"}))
	require.NoError(t, repo.Create(ctx, &models.Client{ID: "B", Name: "Segundo"}))

	clients, err := repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, "B", clients[0].ID)
	require.Equal(t, "A", clients[1].ID)
}

func TestUpdateAndDelete(t *testing.T) {
	st := newFileStore(t)
	ctx := context.Background()
	repo := NewClientRepository(st)

	require.NoError(t, repo.Create(ctx, &models.Client{ID: "A", Name: "Maria"}))

	require.NoError(t, repo.Update(ctx, &models.Client{ID: "A", Name: "Maria Silva"}))
	got, err := repo.GetByID(ctx, "A")
	require.NoError(t, err)
	require.Equal(t, "Maria Silva", got.Name)

	require.Error(t, repo.Update(ctx, &models.Client{ID: "missing"}))

	require.NoError(t, repo.Delete(ctx, "A"))
	_, err = repo.GetByID(ctx, "A")
	require.Error(t, err)
}

func TestProfileDefaults(t *testing.T) {
	st := newFileStore(t)
	ctx := context.Background()
	repo := NewProfileRepository(st)

	profile, err := repo.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "Meu Negócio", profile.Name)

	profile.Name = "Oficina do Zé"
	require.NoError(t, repo.Save(ctx, profile))

	profile, err = repo.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "Oficina do Zé", profile.Name)
}

func TestCommitmentUpsert(t *testing.T) {
	st := newFileStore(t)
	ctx := context.Background()
	repo := NewCommitmentRepository(st)

	c := &models.Commitment{ID: "E1", Authority: "Prefeitura", Value: decimal.NewFromInt(100)}
	require.NoError(t, repo.Upsert(ctx, c))

	c.Value = decimal.NewFromInt(200)
	require.NoError(t, repo.Upsert(ctx, c))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.True(t, all[0].Value.Equal(decimal.NewFromInt(200)))
}
