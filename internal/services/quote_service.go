package services

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"gestor-backend/internal/ai"
	"gestor-backend/internal/models"
	"gestor-backend/internal/money"
	"gestor-backend/internal/repositories"
)

// QuoteService owns the quote lifecycle. Every mutation recomputes the
// stored total from the current catalog, so a persisted quote is always
// internally consistent.
type QuoteService struct {
	quotes    *repositories.QuoteRepository
	services  *repositories.ServiceRepository
	products  *repositories.ProductRepository
	clients   *repositories.ClientRepository
	assistant ai.Assistant
	validate  *validator.Validate
}

func NewQuoteService(
	quotes *repositories.QuoteRepository,
	services *repositories.ServiceRepository,
	products *repositories.ProductRepository,
	clients *repositories.ClientRepository,
	assistant ai.Assistant,
) *QuoteService {
	return &QuoteService{
		quotes:    quotes,
		services:  services,
		products:  products,
		clients:   clients,
		assistant: assistant,
		validate:  validator.New(),
	}
}

// CreateQuoteInput is the payload for a new quote.
type CreateQuoteInput struct {
	ClientID string             `json:"clientId" validate:"required"`
	Items    []models.QuoteItem `json:"items"`
	Discount decimal.Decimal    `json:"discount"`
	Notes    string             `json:"notes"`
}

func (s *QuoteService) loadCatalog(ctx context.Context) (*Catalog, error) {
	svcs, err := s.services.List(ctx)
	if err != nil {
		return nil, err
	}
	prods, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	return NewCatalog(svcs, prods), nil
}

// Create registers a new draft quote valid for 15 days.
func (s *QuoteService) Create(ctx context.Context, input CreateQuoteInput) (*models.Quote, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid quote: %w", err)
	}
	if len(input.Items) == 0 {
		return nil, fmt.Errorf("quote needs at least one item")
	}
	if _, err := s.clients.GetByID(ctx, input.ClientID); err != nil {
		return nil, err
	}
	for _, item := range input.Items {
		if !item.Type.Valid() {
			return nil, fmt.Errorf("invalid item type %q", item.Type)
		}
	}

	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	quote := &models.Quote{
		ID:         models.NewID(),
		ClientID:   input.ClientID,
		Items:      input.Items,
		Discount:   input.Discount,
		Status:     models.QuoteDraft,
		Date:       now,
		ValidUntil: now.AddDate(0, 0, models.QuoteValidityDays),
		Total:      catalog.QuoteTotal(input.Items, input.Discount),
		Notes:      input.Notes,
	}

	if err := s.quotes.Create(ctx, quote); err != nil {
		return nil, err
	}
	return quote, nil
}

func (s *QuoteService) List(ctx context.Context) ([]*models.Quote, error) {
	return s.quotes.List(ctx)
}

func (s *QuoteService) Get(ctx context.Context, id string) (*models.Quote, error) {
	return s.quotes.GetByID(ctx, id)
}

// mutate loads a quote, applies fn, recomputes the total and persists.
func (s *QuoteService) mutate(ctx context.Context, id string, fn func(*models.Quote) error) (*models.Quote, error) {
	quote, err := s.quotes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(quote); err != nil {
		return nil, err
	}

	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	quote.Total = catalog.QuoteTotal(quote.Items, quote.Discount)

	if err := s.quotes.Update(ctx, quote); err != nil {
		return nil, err
	}
	return quote, nil
}

// AddItem appends a line. Quantity defaults to 1 when unset.
func (s *QuoteService) AddItem(ctx context.Context, id string, item models.QuoteItem) (*models.Quote, error) {
	if !item.Type.Valid() {
		return nil, fmt.Errorf("invalid item type %q", item.Type)
	}
	if item.Quantity <= 0 {
		item.Quantity = 1
	}
	return s.mutate(ctx, id, func(q *models.Quote) error {
		q.Items = append(q.Items, item)
		return nil
	})
}

func (s *QuoteService) RemoveItem(ctx context.Context, id string, index int) (*models.Quote, error) {
	return s.mutate(ctx, id, func(q *models.Quote) error {
		if index < 0 || index >= len(q.Items) {
			return fmt.Errorf("item index %d out of range", index)
		}
		q.Items = append(q.Items[:index], q.Items[index+1:]...)
		return nil
	})
}

func (s *QuoteService) SetItemQuantity(ctx context.Context, id string, index, quantity int) (*models.Quote, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1")
	}
	return s.mutate(ctx, id, func(q *models.Quote) error {
		if index < 0 || index >= len(q.Items) {
			return fmt.Errorf("item index %d out of range", index)
		}
		q.Items[index].Quantity = quantity
		return nil
	})
}

// SetItemOverride pins a manual unit price on one line. A nil override
// restores the catalog price; an explicit zero is a real override.
func (s *QuoteService) SetItemOverride(ctx context.Context, id string, index int, override *decimal.Decimal) (*models.Quote, error) {
	if override != nil && override.IsNegative() {
		return nil, fmt.Errorf("price override cannot be negative")
	}
	return s.mutate(ctx, id, func(q *models.Quote) error {
		if index < 0 || index >= len(q.Items) {
			return fmt.Errorf("item index %d out of range", index)
		}
		q.Items[index].PriceOverride = override
		return nil
	})
}

func (s *QuoteService) SetDiscount(ctx context.Context, id string, discount decimal.Decimal) (*models.Quote, error) {
	if discount.IsNegative() {
		return nil, fmt.Errorf("discount cannot be negative")
	}
	return s.mutate(ctx, id, func(q *models.Quote) error {
		q.Discount = discount
		return nil
	})
}

func (s *QuoteService) SetNotes(ctx context.Context, id string, notes string) (*models.Quote, error) {
	return s.mutate(ctx, id, func(q *models.Quote) error {
		q.Notes = notes
		return nil
	})
}

// AttachItemImage stores an evidence photo on one line.
func (s *QuoteService) AttachItemImage(ctx context.Context, id string, index int, dataURI string) (*models.Quote, error) {
	return s.mutate(ctx, id, func(q *models.Quote) error {
		if index < 0 || index >= len(q.Items) {
			return fmt.Errorf("item index %d out of range", index)
		}
		q.Items[index].Image = dataURI
		return nil
	})
}

// UpdateStatus moves a quote to any valid status. No transition graph is
// enforced; a rejected quote can be re-approved.
func (s *QuoteService) UpdateStatus(ctx context.Context, id string, status models.QuoteStatus) (*models.Quote, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("invalid quote status %q", status)
	}
	return s.mutate(ctx, id, func(q *models.Quote) error {
		q.Status = status
		return nil
	})
}

// ComposeMessage drafts a short message to accompany the quote. Always
// returns usable text; assistant failures fall back silently.
func (s *QuoteService) ComposeMessage(ctx context.Context, id string) (string, error) {
	quote, err := s.quotes.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	clientName := FallbackClientName
	if client, err := s.clients.GetByID(ctx, quote.ClientID); err == nil {
		clientName = client.Name
	}

	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return "", err
	}
	names := make([]string, 0, len(quote.Items))
	for _, item := range quote.Items {
		names = append(names, catalog.ResolveLine(item).Name)
	}

	return s.assistant.ComposeQuoteMessage(ctx, clientName, money.FormatBRL(quote.Total), names), nil
}

func (s *QuoteService) Delete(ctx context.Context, id string) error {
	if _, err := s.quotes.GetByID(ctx, id); err != nil {
		return err
	}
	return s.quotes.Delete(ctx, id)
}
