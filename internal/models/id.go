package models

import (
	"strings"

	"github.com/google/uuid"
)

// NewID generates a short uppercase identifier for a new record.
// Matches the 9-character ids already present in exported data blobs.
func NewID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:9])
}
