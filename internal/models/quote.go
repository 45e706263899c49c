package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteStatus is the lifecycle state of a quote. Transitions are
// deliberately unguarded: the selector in the original tool allows any
// value from any other, and stored history may contain such sequences.
type QuoteStatus string

const (
	QuoteDraft    QuoteStatus = "rascunho"
	QuoteSent     QuoteStatus = "enviado"
	QuoteApproved QuoteStatus = "aprovado"
	QuoteRejected QuoteStatus = "rejeitado"
)

func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteDraft, QuoteSent, QuoteApproved, QuoteRejected:
		return true
	}
	return false
}

// ItemType discriminates which catalog a quote line references.
type ItemType string

const (
	ItemService ItemType = "service"
	ItemProduct ItemType = "product"
)

func (t ItemType) Valid() bool {
	return t == ItemService || t == ItemProduct
}

// QuoteItem is one line of a quote. PriceOverride, when set, supersedes the
// catalog price for this line only; nil means "use the catalog price".
type QuoteItem struct {
	ItemID        string           `json:"itemId"`
	Type          ItemType         `json:"type"`
	Quantity      int              `json:"quantity"`
	PriceOverride *decimal.Decimal `json:"priceOverride,omitempty"`
	Image         string           `json:"image,omitempty"` // evidence photo, data URI
}

// QuoteValidityDays is how long a new quote stays valid.
const QuoteValidityDays = 15

// Quote is a priced proposal for a client. Total is derived from the items
// and discount but persisted; the quote service recomputes it on every
// mutation so stored blobs stay consistent.
type Quote struct {
	ID         string          `json:"id"`
	ClientID   string          `json:"clientId"`
	Items      []QuoteItem     `json:"items"`
	Discount   decimal.Decimal `json:"discount"`
	Status     QuoteStatus     `json:"status"`
	Date       time.Time       `json:"date"`
	ValidUntil time.Time       `json:"validUntil"`
	Total      decimal.Decimal `json:"total"`
	Notes      string          `json:"notes,omitempty"`
}
