package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"gestor-backend/internal/ai"
	"gestor-backend/internal/models"
	"gestor-backend/internal/repositories"
)

// CatalogService manages the service and product catalogs plus their
// category lists.
type CatalogService struct {
	services   *repositories.ServiceRepository
	products   *repositories.ProductRepository
	categories *repositories.CategoryRepository
	assistant  ai.Assistant
	validate   *validator.Validate
}

func NewCatalogService(
	services *repositories.ServiceRepository,
	products *repositories.ProductRepository,
	categories *repositories.CategoryRepository,
	assistant ai.Assistant,
) *CatalogService {
	return &CatalogService{
		services:   services,
		products:   products,
		categories: categories,
		assistant:  assistant,
		validate:   validator.New(),
	}
}

type ServiceInput struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Unit        string          `json:"unit"`
	Category    string          `json:"category"`
	Status      string          `json:"status"`
	Image       string          `json:"image"`
	IsFavorite  bool            `json:"isFavorite"`
}

func (s *CatalogService) buildService(input ServiceInput) (*models.Service, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid service: %w", err)
	}
	if input.Price.IsNegative() {
		return nil, fmt.Errorf("service price cannot be negative")
	}

	unit := models.ServiceUnit(input.Unit)
	if input.Unit == "" {
		unit = models.UnitFlatFee
	}
	if !unit.Valid() {
		return nil, fmt.Errorf("invalid service unit %q", input.Unit)
	}

	status := models.ServiceStatus(input.Status)
	if input.Status == "" {
		status = models.ServiceActive
	}
	if !status.Valid() {
		return nil, fmt.Errorf("invalid service status %q", input.Status)
	}

	category := input.Category
	if category == "" {
		category = models.DefaultCategory
	}

	return &models.Service{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Unit:        unit,
		Category:    category,
		Status:      status,
		Image:       input.Image,
		IsFavorite:  input.IsFavorite,
	}, nil
}

func (s *CatalogService) CreateService(ctx context.Context, input ServiceInput) (*models.Service, error) {
	service, err := s.buildService(input)
	if err != nil {
		return nil, err
	}
	service.ID = models.NewID()
	if err := s.services.Create(ctx, service); err != nil {
		return nil, err
	}
	return service, nil
}

func (s *CatalogService) UpdateService(ctx context.Context, id string, input ServiceInput) (*models.Service, error) {
	if _, err := s.services.GetByID(ctx, id); err != nil {
		return nil, err
	}
	service, err := s.buildService(input)
	if err != nil {
		return nil, err
	}
	service.ID = id
	if err := s.services.Update(ctx, service); err != nil {
		return nil, err
	}
	return service, nil
}

func (s *CatalogService) ListServices(ctx context.Context) ([]*models.Service, error) {
	return s.services.List(ctx)
}

func (s *CatalogService) GetService(ctx context.Context, id string) (*models.Service, error) {
	return s.services.GetByID(ctx, id)
}

// DeleteService removes a catalog entry. Quotes referencing it keep the id
// and resolve against fallbacks from then on.
func (s *CatalogService) DeleteService(ctx context.Context, id string) error {
	if _, err := s.services.GetByID(ctx, id); err != nil {
		return err
	}
	return s.services.Delete(ctx, id)
}

// ToggleServiceFavorite flips the favorite flag and returns the new state.
func (s *CatalogService) ToggleServiceFavorite(ctx context.Context, id string) (*models.Service, error) {
	service, err := s.services.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	service.IsFavorite = !service.IsFavorite
	if err := s.services.Update(ctx, service); err != nil {
		return nil, err
	}
	return service, nil
}

// ImproveServiceDescription asks the assistant for a polished rewrite. The
// catalog entry itself is untouched; the caller decides whether to apply it.
func (s *CatalogService) ImproveServiceDescription(ctx context.Context, name, current string) string {
	return s.assistant.ImproveDescription(ctx, name, current)
}

type ProductInput struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Unit        string          `json:"unit"`
	Category    string          `json:"category"`
}

func (s *CatalogService) buildProduct(input ProductInput) (*models.Product, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid product: %w", err)
	}
	if input.Price.IsNegative() {
		return nil, fmt.Errorf("product price cannot be negative")
	}
	if input.Stock < 0 {
		return nil, fmt.Errorf("product stock cannot be negative")
	}

	category := input.Category
	if category == "" {
		category = models.DefaultCategory
	}

	return &models.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		Unit:        input.Unit,
		Category:    category,
	}, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, input ProductInput) (*models.Product, error) {
	product, err := s.buildProduct(input)
	if err != nil {
		return nil, err
	}
	product.ID = models.NewID()
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id string, input ProductInput) (*models.Product, error) {
	if _, err := s.products.GetByID(ctx, id); err != nil {
		return nil, err
	}
	product, err := s.buildProduct(input)
	if err != nil {
		return nil, err
	}
	product.ID = id
	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]*models.Product, error) {
	return s.products.List(ctx)
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.products.GetByID(ctx, id)
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	if _, err := s.products.GetByID(ctx, id); err != nil {
		return err
	}
	return s.products.Delete(ctx, id)
}

// AdjustStock applies a delta to a product's stock, clamped at zero.
func (s *CatalogService) AdjustStock(ctx context.Context, id string, delta int) (*models.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	product.Stock += delta
	if product.Stock < 0 {
		product.Stock = 0
	}
	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *CatalogService) ListCategories(ctx context.Context, kind repositories.CategoryKind) ([]string, error) {
	return s.categories.List(ctx, kind)
}

func (s *CatalogService) AddCategory(ctx context.Context, kind repositories.CategoryKind, name string) ([]string, error) {
	return s.categories.Add(ctx, kind, name)
}

func (s *CatalogService) RemoveCategory(ctx context.Context, kind repositories.CategoryKind, name string) ([]string, error) {
	return s.categories.Remove(ctx, kind, name)
}
