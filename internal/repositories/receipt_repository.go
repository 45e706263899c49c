package repositories

import (
	"context"
	"fmt"

	"gestor-backend/internal/models"
	"gestor-backend/internal/store"
)

type ReceiptRepository struct {
	Store store.Store
}

func NewReceiptRepository(s store.Store) *ReceiptRepository {
	return &ReceiptRepository{Store: s}
}

func (r *ReceiptRepository) List(ctx context.Context) ([]*models.Receipt, error) {
	receipts := []*models.Receipt{}
	if err := loadInto(ctx, r.Store, store.KeyReceipts, &receipts); err != nil {
		return nil, err
	}
	return receipts, nil
}

func (r *ReceiptRepository) GetByID(ctx context.Context, id string) (*models.Receipt, error) {
	receipts, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, rec := range receipts {
		if rec.ID == id {
			return rec, nil
		}
	}
	return nil, fmt.Errorf("receipt %s not found", id)
}

func (r *ReceiptRepository) Create(ctx context.Context, receipt *models.Receipt) error {
	receipts, err := r.List(ctx)
	if err != nil {
		return err
	}
	receipts = append([]*models.Receipt{receipt}, receipts...)
	return saveAll(ctx, r.Store, store.KeyReceipts, receipts)
}

func (r *ReceiptRepository) Delete(ctx context.Context, id string) error {
	receipts, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := receipts[:0]
	for _, rec := range receipts {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	return saveAll(ctx, r.Store, store.KeyReceipts, kept)
}
