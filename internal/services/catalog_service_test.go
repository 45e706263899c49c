package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"gestor-backend/internal/models"
	"gestor-backend/internal/repositories"
)

func TestCreateServiceDefaults(t *testing.T) {
	env := newTestEnv(t)

	service, err := env.catalog.CreateService(context.Background(), ServiceInput{
		Name:  "Troca de chuveiro",
		Price: dec("120"),
	})
	require.NoError(t, err)
	require.Len(t, service.ID, 9)
	require.Equal(t, models.UnitFlatFee, service.Unit)
	require.Equal(t, models.ServiceActive, service.Status)
	require.Equal(t, models.DefaultCategory, service.Category)
}

func TestCreateServiceValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.catalog.CreateService(ctx, ServiceInput{Price: dec("10")})
	require.Error(t, err)

	_, err = env.catalog.CreateService(ctx, ServiceInput{Name: "X", Price: dec("-1")})
	require.Error(t, err)

	_, err = env.catalog.CreateService(ctx, ServiceInput{Name: "X", Unit: "litro"})
	require.Error(t, err)
}

func TestServiceListNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.mustService(t, "Primeiro", "10", "Geral")
	env.mustService(t, "Segundo", "20", "Geral")

	services, err := env.catalog.ListServices(ctx)
	require.NoError(t, err)
	require.Len(t, services, 2)
	require.Equal(t, "Segundo", services[0].Name)
}

func TestToggleServiceFavorite(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	service := env.mustService(t, "Poda", "80", "Geral")
	require.False(t, service.IsFavorite)

	service, err := env.catalog.ToggleServiceFavorite(ctx, service.ID)
	require.NoError(t, err)
	require.True(t, service.IsFavorite)

	service, err = env.catalog.ToggleServiceFavorite(ctx, service.ID)
	require.NoError(t, err)
	require.False(t, service.IsFavorite)
}

func TestAdjustStockClampsAtZero(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	product := env.mustProduct(t, "Cabo", "10", 5, "Material")

	product, err := env.catalog.AdjustStock(ctx, product.ID, -3)
	require.NoError(t, err)
	require.Equal(t, 2, product.Stock)

	product, err = env.catalog.AdjustStock(ctx, product.ID, -10)
	require.NoError(t, err)
	require.Equal(t, 0, product.Stock)
}

func TestCategoriesSeedDefaults(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	serviceCats, err := env.catalog.ListCategories(ctx, repositories.CategoryKindService)
	require.NoError(t, err)
	require.Equal(t, models.DefaultServiceCategories, serviceCats)

	productCats, err := env.catalog.ListCategories(ctx, repositories.CategoryKindProduct)
	require.NoError(t, err)
	require.Equal(t, models.DefaultProductCategories, productCats)
}

func TestCategoriesAddAndRemove(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	cats, err := env.catalog.AddCategory(ctx, repositories.CategoryKindService, "Jardinagem")
	require.NoError(t, err)
	require.Contains(t, cats, "Jardinagem")

	// Duplicate adds are ignored case-insensitively.
	cats, err = env.catalog.AddCategory(ctx, repositories.CategoryKindService, "jardinagem")
	require.NoError(t, err)
	require.Len(t, cats, len(models.DefaultServiceCategories)+1)

	cats, err = env.catalog.RemoveCategory(ctx, repositories.CategoryKindService, "Jardinagem")
	require.NoError(t, err)
	require.NotContains(t, cats, "Jardinagem")

	_, err = env.catalog.AddCategory(ctx, repositories.CategoryKindService, "   ")
	require.Error(t, err)
}

func TestImproveServiceDescriptionFallsBack(t *testing.T) {
	env := newTestEnv(t)

	out := env.catalog.ImproveServiceDescription(context.Background(), "Troca de chuveiro", "troco chuveiro")
	require.Equal(t, "troco chuveiro", out)
}
