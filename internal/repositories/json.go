package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"gestor-backend/internal/store"
)

// loadInto reads a namespace key and unmarshals it into out. A missing key
// leaves out at its zero value; corrupt JSON is logged and also falls back,
// so one bad document never blocks the rest of the namespace.
func loadInto(ctx context.Context, s store.Store, key string, out interface{}) error {
	data, err := s.Get(ctx, key)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Printf("[Store] Corrupt data under %s, falling back to defaults: %v", key, err)
	}
	return nil
}

// saveAll serializes the full collection and writes it back under key.
func saveAll(ctx context.Context, s store.Store, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", key, err)
	}
	if err := s.Set(ctx, key, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
