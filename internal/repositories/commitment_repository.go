package repositories

import (
	"context"
	"fmt"

	"gestor-backend/internal/models"
	"gestor-backend/internal/store"
)

type CommitmentRepository struct {
	Store store.Store
}

func NewCommitmentRepository(s store.Store) *CommitmentRepository {
	return &CommitmentRepository{Store: s}
}

func (r *CommitmentRepository) List(ctx context.Context) ([]*models.Commitment, error) {
	commitments := []*models.Commitment{}
	if err := loadInto(ctx, r.Store, store.KeyCommitments, &commitments); err != nil {
		return nil, err
	}
	return commitments, nil
}

func (r *CommitmentRepository) GetByID(ctx context.Context, id string) (*models.Commitment, error) {
	commitments, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range commitments {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, fmt.Errorf("commitment %s not found", id)
}

// Upsert replaces an existing record by ID or prepends a new one.
func (r *CommitmentRepository) Upsert(ctx context.Context, commitment *models.Commitment) error {
	commitments, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i, c := range commitments {
		if c.ID == commitment.ID {
			commitments[i] = commitment
			return saveAll(ctx, r.Store, store.KeyCommitments, commitments)
		}
	}
	commitments = append([]*models.Commitment{commitment}, commitments...)
	return saveAll(ctx, r.Store, store.KeyCommitments, commitments)
}

func (r *CommitmentRepository) Delete(ctx context.Context, id string) error {
	commitments, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := commitments[:0]
	for _, c := range commitments {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	return saveAll(ctx, r.Store, store.KeyCommitments, kept)
}
