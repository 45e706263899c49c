package services

import (
	"context"
	"fmt"
	"strings"

	"gestor-backend/internal/models"
	"gestor-backend/internal/repositories"
)

// ProfileService manages the single company profile used on rendered
// documents.
type ProfileService struct {
	profile *repositories.ProfileRepository
}

func NewProfileService(profile *repositories.ProfileRepository) *ProfileService {
	return &ProfileService{profile: profile}
}

func (s *ProfileService) Get(ctx context.Context) (*models.CompanyProfile, error) {
	return s.profile.Get(ctx)
}

func (s *ProfileService) Save(ctx context.Context, profile *models.CompanyProfile) (*models.CompanyProfile, error) {
	if strings.TrimSpace(profile.Name) == "" {
		return nil, fmt.Errorf("company name is required")
	}
	if err := s.profile.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
