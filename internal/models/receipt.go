package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Common payment method labels. The field is an open set: any free-text
// value is accepted and rendered as-is.
const (
	PaymentPix  = "Pix"
	PaymentCash = "Dinheiro"
	PaymentCard = "Cartão"
)

// Receipt records a completed payment. Receipts are immutable once issued;
// the only mutation the tool offers is deletion.
type Receipt struct {
	ID            string          `json:"id"`
	ClientID      string          `json:"clientId"`
	QuoteID       string          `json:"quoteId,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	PaymentMethod string          `json:"paymentMethod"`
}
