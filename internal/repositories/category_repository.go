package repositories

import (
	"context"
	"fmt"
	"strings"

	"gestor-backend/internal/models"
	"gestor-backend/internal/store"
)

// CategoryKind selects which catalog's category list an operation targets.
type CategoryKind string

const (
	CategoryKindService CategoryKind = "service"
	CategoryKindProduct CategoryKind = "product"
)

type CategoryRepository struct {
	Store store.Store
}

func NewCategoryRepository(s store.Store) *CategoryRepository {
	return &CategoryRepository{Store: s}
}

func (r *CategoryRepository) keyAndDefaults(kind CategoryKind) (string, []string, error) {
	switch kind {
	case CategoryKindService:
		return store.KeyCategories, models.DefaultServiceCategories, nil
	case CategoryKindProduct:
		return store.KeyProductCategories, models.DefaultProductCategories, nil
	}
	return "", nil, fmt.Errorf("unknown category kind %q", kind)
}

// List seeds the defaults on first access so both catalogs always offer at
// least the built-in set.
func (r *CategoryRepository) List(ctx context.Context, kind CategoryKind) ([]string, error) {
	key, defaults, err := r.keyAndDefaults(kind)
	if err != nil {
		return nil, err
	}
	categories := []string{}
	if err := loadInto(ctx, r.Store, key, &categories); err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		categories = append(categories, defaults...)
	}
	return categories, nil
}

func (r *CategoryRepository) Add(ctx context.Context, kind CategoryKind, name string) ([]string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}
	key, _, err := r.keyAndDefaults(kind)
	if err != nil {
		return nil, err
	}
	categories, err := r.List(ctx, kind)
	if err != nil {
		return nil, err
	}
	for _, c := range categories {
		if strings.EqualFold(c, name) {
			return categories, nil
		}
	}
	categories = append(categories, name)
	if err := saveAll(ctx, r.Store, key, categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) Remove(ctx context.Context, kind CategoryKind, name string) ([]string, error) {
	key, _, err := r.keyAndDefaults(kind)
	if err != nil {
		return nil, err
	}
	categories, err := r.List(ctx, kind)
	if err != nil {
		return nil, err
	}
	kept := categories[:0]
	for _, c := range categories {
		if !strings.EqualFold(c, name) {
			kept = append(kept, c)
		}
	}
	if err := saveAll(ctx, r.Store, key, kept); err != nil {
		return nil, err
	}
	return kept, nil
}
