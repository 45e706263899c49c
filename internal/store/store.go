package store

import (
	"context"
	"errors"
)

// Keys of the persistent namespace. One JSON document per key, matching the
// storage layout of the original tool so exported blobs stay portable.
const (
	KeyServices          = "sp_services"
	KeyProducts          = "sp_products"
	KeyClients           = "sp_clients"
	KeyQuotes            = "sp_quotes"
	KeyReceipts          = "sp_receipts"
	KeyCommitments       = "sp_commitments"
	KeyCategories        = "sp_categories"
	KeyProductCategories = "sp_prod_categories"
	KeyProfile           = "sp_profile"
	KeyAppointments      = "sp_appointments"
)

// Keys lists the whole namespace, used by snapshot backup and restore.
var Keys = []string{
	KeyServices,
	KeyProducts,
	KeyClients,
	KeyQuotes,
	KeyReceipts,
	KeyCommitments,
	KeyCategories,
	KeyProductCategories,
	KeyProfile,
	KeyAppointments,
}

// ErrNotFound is returned by Get when a key has never been written.
// Callers fall back to the key's default instead of failing.
var ErrNotFound = errors.New("store: key not found")

// Store is a flat key-value namespace of JSON documents.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Ping(ctx context.Context) error
	Close() error
}
