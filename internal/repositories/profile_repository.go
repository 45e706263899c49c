package repositories

import (
	"context"

	"gestor-backend/internal/models"
	"gestor-backend/internal/store"
)

type ProfileRepository struct {
	Store store.Store
}

func NewProfileRepository(s store.Store) *ProfileRepository {
	return &ProfileRepository{Store: s}
}

// Get returns the stored company profile, or the default one when nothing
// has been saved yet.
func (r *ProfileRepository) Get(ctx context.Context) (*models.CompanyProfile, error) {
	profile := models.DefaultProfile()
	if err := loadInto(ctx, r.Store, store.KeyProfile, &profile); err != nil {
		return nil, err
	}
	if profile.Name == "" {
		profile.Name = models.DefaultProfile().Name
	}
	return &profile, nil
}

func (r *ProfileRepository) Save(ctx context.Context, profile *models.CompanyProfile) error {
	return saveAll(ctx, r.Store, store.KeyProfile, profile)
}
