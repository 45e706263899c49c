package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"gestor-backend/internal/models"
)

func TestDashboardRevenue(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	client := env.mustClient(t, "Dona Maria")
	service := env.mustService(t, "Elétrica geral", "300", "Elétrica")

	_, err := env.receipts.Create(ctx, CreateReceiptInput{ClientID: client.ID, Amount: dec("150")})
	require.NoError(t, err)
	_, err = env.receipts.Create(ctx, CreateReceiptInput{ClientID: client.ID, Amount: dec("50.50")})
	require.NoError(t, err)

	approved, err := env.quotes.Create(ctx, CreateQuoteInput{
		ClientID: client.ID,
		Items:    []models.QuoteItem{{ItemID: service.ID, Type: models.ItemService, Quantity: 1}},
	})
	require.NoError(t, err)
	_, err = env.quotes.UpdateStatus(ctx, approved.ID, models.QuoteApproved)
	require.NoError(t, err)

	// Draft quote must not count toward projected revenue.
	_, err = env.quotes.Create(ctx, CreateQuoteInput{
		ClientID: client.ID,
		Items:    []models.QuoteItem{{ItemID: service.ID, Type: models.ItemService, Quantity: 5}},
	})
	require.NoError(t, err)

	m, err := env.dashboard.Metrics(ctx)
	require.NoError(t, err)

	require.True(t, m.RealizedRevenue.Equal(dec("200.50")), "got %s", m.RealizedRevenue)
	require.True(t, m.ProjectedRevenue.Equal(dec("300")), "got %s", m.ProjectedRevenue)
	require.Equal(t, 2, m.QuoteCount)
	require.Equal(t, 1, m.QuotesByStatus[models.QuoteApproved])
	require.True(t, m.ConversionRate.Equal(dec("50")), "got %s", m.ConversionRate)
}

func TestDashboardLowStock(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.mustProduct(t, "Cabo 2.5mm", "10", 0, "Material")
	env.mustProduct(t, "Tomada", "8", 2, "Material")
	env.mustProduct(t, "Disjuntor", "50", 9, "Material")

	m, err := env.dashboard.Metrics(ctx)
	require.NoError(t, err)

	require.Len(t, m.LowStockProducts, 2)
	names := []string{m.LowStockProducts[0].Name, m.LowStockProducts[1].Name}
	require.Contains(t, names, "Cabo 2.5mm")
	require.Contains(t, names, "Tomada")
}

func TestDashboardCategoryBreakdown(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	client := env.mustClient(t, "Cliente")
	svcA := env.mustService(t, "Serviço A", "300", "Alfa")
	svcB := env.mustService(t, "Serviço B", "300", "Beta")
	svcC := env.mustService(t, "Serviço C", "100", "Gama")

	quote, err := env.quotes.Create(ctx, CreateQuoteInput{
		ClientID: client.ID,
		Items: []models.QuoteItem{
			{ItemID: svcA.ID, Type: models.ItemService, Quantity: 1},
			{ItemID: svcB.ID, Type: models.ItemService, Quantity: 1},
			{ItemID: svcC.ID, Type: models.ItemService, Quantity: 1},
		},
	})
	require.NoError(t, err)
	_, err = env.quotes.UpdateStatus(ctx, quote.ID, models.QuoteApproved)
	require.NoError(t, err)

	m, err := env.dashboard.Metrics(ctx)
	require.NoError(t, err)

	require.Len(t, m.RevenueByCategory, 3)
	// Tied categories keep first-appearance order.
	require.Equal(t, "Alfa", m.RevenueByCategory[0].Category)
	require.Equal(t, "Beta", m.RevenueByCategory[1].Category)
	require.Equal(t, "Gama", m.RevenueByCategory[2].Category)
	require.True(t, m.RevenueByCategory[0].Revenue.Equal(dec("300")))
}

func TestDashboardCategoryBreakdownCap(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	client := env.mustClient(t, "Cliente")
	items := []models.QuoteItem{}
	for i := 0; i < 8; i++ {
		svc := env.mustService(t, fmt.Sprintf("Serviço %d", i), fmt.Sprintf("%d", (i+1)*10), fmt.Sprintf("Cat%d", i))
		items = append(items, models.QuoteItem{ItemID: svc.ID, Type: models.ItemService, Quantity: 1})
	}

	quote, err := env.quotes.Create(ctx, CreateQuoteInput{ClientID: client.ID, Items: items})
	require.NoError(t, err)
	_, err = env.quotes.UpdateStatus(ctx, quote.ID, models.QuoteApproved)
	require.NoError(t, err)

	m, err := env.dashboard.Metrics(ctx)
	require.NoError(t, err)

	require.Len(t, m.RevenueByCategory, 6)
	// Highest-earning category first.
	require.Equal(t, "Cat7", m.RevenueByCategory[0].Category)
}

func TestDashboardPendingCommitments(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.commitments.Save(ctx, SaveCommitmentInput{Authority: "Prefeitura A", CommitmentNumber: "NE1", Value: "1000", Status: string(models.CommitmentCommitted)})
	require.NoError(t, err)
	_, err = env.commitments.Save(ctx, SaveCommitmentInput{Authority: "Prefeitura B", CommitmentNumber: "NE2", Value: "500", Status: string(models.CommitmentLiquidated)})
	require.NoError(t, err)
	_, err = env.commitments.Save(ctx, SaveCommitmentInput{Authority: "Prefeitura C", CommitmentNumber: "NE3", Value: "9000", Status: string(models.CommitmentPaid)})
	require.NoError(t, err)

	m, err := env.dashboard.Metrics(ctx)
	require.NoError(t, err)
	require.True(t, m.PendingCommitments.Equal(dec("1500")), "got %s", m.PendingCommitments)
}
