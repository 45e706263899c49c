package repositories

import (
	"context"
	"fmt"

	"gestor-backend/internal/models"
	"gestor-backend/internal/store"
)

type ProductRepository struct {
	Store store.Store
}

func NewProductRepository(s store.Store) *ProductRepository {
	return &ProductRepository{Store: s}
}

func (r *ProductRepository) List(ctx context.Context) ([]*models.Product, error) {
	products := []*models.Product{}
	if err := loadInto(ctx, r.Store, store.KeyProducts, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	products, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("product %s not found", id)
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	products, err := r.List(ctx)
	if err != nil {
		return err
	}
	products = append([]*models.Product{product}, products...)
	return saveAll(ctx, r.Store, store.KeyProducts, products)
}

func (r *ProductRepository) Update(ctx context.Context, product *models.Product) error {
	products, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i, p := range products {
		if p.ID == product.ID {
			products[i] = product
			return saveAll(ctx, r.Store, store.KeyProducts, products)
		}
	}
	return fmt.Errorf("product %s not found", product.ID)
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	products, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return saveAll(ctx, r.Store, store.KeyProducts, kept)
}
