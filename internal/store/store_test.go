package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func TestRedisStoreRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)

	s, err := NewRedisStore(mr.Addr(), "", 0)
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()

	_, err = s.Get(ctx, KeyQuotes)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, KeyQuotes, []byte(`[{"id":"A1"}]`)))

	data, err := s.Get(ctx, KeyQuotes)
	require.NoError(t, err)
	require.JSONEq(t, `[{"id":"A1"}]`, string(data))

	require.NoError(t, s.Ping(ctx))
}

func TestRedisStoreConnectFailure(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedisStore(addr, "", 0)
	require.Error(t, err)
}

func TestFileStoreRoundTrip(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()

	_, err = s.Get(ctx, KeyProfile)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, KeyProfile, []byte(`{"name":"Meu Negócio"}`)))

	data, err := s.Get(ctx, KeyProfile)
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"Meu Negócio"}`, string(data))

	// Overwrite keeps the latest value only.
	require.NoError(t, s.Set(ctx, KeyProfile, []byte(`{"name":"Outra"}`)))
	data, err = s.Get(ctx, KeyProfile)
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"Outra"}`, string(data))

	require.NoError(t, s.Ping(ctx))
}
