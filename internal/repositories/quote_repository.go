package repositories

import (
	"context"
	"fmt"

	"gestor-backend/internal/models"
	"gestor-backend/internal/store"
)

type QuoteRepository struct {
	Store store.Store
}

func NewQuoteRepository(s store.Store) *QuoteRepository {
	return &QuoteRepository{Store: s}
}

func (r *QuoteRepository) List(ctx context.Context) ([]*models.Quote, error) {
	quotes := []*models.Quote{}
	if err := loadInto(ctx, r.Store, store.KeyQuotes, &quotes); err != nil {
		return nil, err
	}
	return quotes, nil
}

func (r *QuoteRepository) GetByID(ctx context.Context, id string) (*models.Quote, error) {
	quotes, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, q := range quotes {
		if q.ID == id {
			return q, nil
		}
	}
	return nil, fmt.Errorf("quote %s not found", id)
}

func (r *QuoteRepository) Create(ctx context.Context, quote *models.Quote) error {
	quotes, err := r.List(ctx)
	if err != nil {
		return err
	}
	quotes = append([]*models.Quote{quote}, quotes...)
	return saveAll(ctx, r.Store, store.KeyQuotes, quotes)
}

func (r *QuoteRepository) Update(ctx context.Context, quote *models.Quote) error {
	quotes, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i, q := range quotes {
		if q.ID == quote.ID {
			quotes[i] = quote
			return saveAll(ctx, r.Store, store.KeyQuotes, quotes)
		}
	}
	return fmt.Errorf("quote %s not found", quote.ID)
}

func (r *QuoteRepository) Delete(ctx context.Context, id string) error {
	quotes, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := quotes[:0]
	for _, q := range quotes {
		if q.ID != id {
			kept = append(kept, q)
		}
	}
	return saveAll(ctx, r.Store, store.KeyQuotes, kept)
}
