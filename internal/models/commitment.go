package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CommitmentStatus tracks a public-authority commitment (empenho) through
// settlement. Like QuoteStatus, transitions are unguarded by design.
type CommitmentStatus string

const (
	CommitmentCommitted  CommitmentStatus = "empenhado"
	CommitmentLiquidated CommitmentStatus = "liquidado"
	CommitmentPaid       CommitmentStatus = "pago"
	CommitmentCancelled  CommitmentStatus = "cancelado"
)

func (s CommitmentStatus) Valid() bool {
	switch s {
	case CommitmentCommitted, CommitmentLiquidated, CommitmentPaid, CommitmentCancelled:
		return true
	}
	return false
}

// Commitment is a purchase-order-like record issued by a public authority.
// Value is entered by the user, not derived from line items.
type Commitment struct {
	ID               string           `json:"id"`
	Authority        string           `json:"prefeitura"`
	AuthorityLogo    string           `json:"prefeituraLogo,omitempty"` // data URI
	CommitmentNumber string           `json:"commitmentNumber"`
	ProcessNumber    string           `json:"processNumber"`
	Date             time.Time        `json:"date"`
	Value            decimal.Decimal  `json:"value"`
	Description      string           `json:"description"`
	Status           CommitmentStatus `json:"status"`
	Images           []string         `json:"images"` // evidence photos, data URIs
}
