package services

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"gestor-backend/internal/models"
	"gestor-backend/internal/repositories"
)

// ReceiptService issues and lists payment receipts. Receipts are immutable
// once created; the only follow-up operation is deletion.
type ReceiptService struct {
	receipts *repositories.ReceiptRepository
	clients  *repositories.ClientRepository
	validate *validator.Validate
}

func NewReceiptService(receipts *repositories.ReceiptRepository, clients *repositories.ClientRepository) *ReceiptService {
	return &ReceiptService{
		receipts: receipts,
		clients:  clients,
		validate: validator.New(),
	}
}

type CreateReceiptInput struct {
	ClientID      string          `json:"clientId" validate:"required"`
	QuoteID       string          `json:"quoteId"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	PaymentMethod string          `json:"paymentMethod"`
}

func (s *ReceiptService) Create(ctx context.Context, input CreateReceiptInput) (*models.Receipt, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid receipt: %w", err)
	}
	if !input.Amount.IsPositive() {
		return nil, fmt.Errorf("receipt amount must be positive")
	}
	if _, err := s.clients.GetByID(ctx, input.ClientID); err != nil {
		return nil, err
	}

	if input.Date.IsZero() {
		input.Date = time.Now()
	}
	if input.PaymentMethod == "" {
		input.PaymentMethod = models.PaymentPix
	}

	receipt := &models.Receipt{
		ID:            models.NewID(),
		ClientID:      input.ClientID,
		QuoteID:       input.QuoteID,
		Amount:        input.Amount,
		Date:          input.Date,
		Description:   input.Description,
		PaymentMethod: input.PaymentMethod,
	}
	if err := s.receipts.Create(ctx, receipt); err != nil {
		return nil, err
	}
	return receipt, nil
}

func (s *ReceiptService) List(ctx context.Context) ([]*models.Receipt, error) {
	return s.receipts.List(ctx)
}

func (s *ReceiptService) Get(ctx context.Context, id string) (*models.Receipt, error) {
	return s.receipts.GetByID(ctx, id)
}

func (s *ReceiptService) Delete(ctx context.Context, id string) error {
	if _, err := s.receipts.GetByID(ctx, id); err != nil {
		return err
	}
	return s.receipts.Delete(ctx, id)
}
