package repositories

import (
	"context"
	"fmt"

	"gestor-backend/internal/models"
	"gestor-backend/internal/store"
)

type ServiceRepository struct {
	Store store.Store
}

func NewServiceRepository(s store.Store) *ServiceRepository {
	return &ServiceRepository{Store: s}
}

func (r *ServiceRepository) List(ctx context.Context) ([]*models.Service, error) {
	services := []*models.Service{}
	if err := loadInto(ctx, r.Store, store.KeyServices, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (r *ServiceRepository) GetByID(ctx context.Context, id string) (*models.Service, error) {
	services, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, s := range services {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, fmt.Errorf("service %s not found", id)
}

// Create prepends so listings show the newest entry first.
func (r *ServiceRepository) Create(ctx context.Context, service *models.Service) error {
	services, err := r.List(ctx)
	if err != nil {
		return err
	}
	services = append([]*models.Service{service}, services...)
	return saveAll(ctx, r.Store, store.KeyServices, services)
}

func (r *ServiceRepository) Update(ctx context.Context, service *models.Service) error {
	services, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i, s := range services {
		if s.ID == service.ID {
			services[i] = service
			return saveAll(ctx, r.Store, store.KeyServices, services)
		}
	}
	return fmt.Errorf("service %s not found", service.ID)
}

func (r *ServiceRepository) Delete(ctx context.Context, id string) error {
	services, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := services[:0]
	for _, s := range services {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	return saveAll(ctx, r.Store, store.KeyServices, kept)
}
