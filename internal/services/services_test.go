package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"gestor-backend/internal/ai"
	"gestor-backend/internal/models"
	"gestor-backend/internal/repositories"
	"gestor-backend/internal/store"
)

// testEnv wires every service over a throwaway file store.
type testEnv struct {
	store       store.Store
	catalog     *CatalogService
	clients     *ClientService
	quotes      *QuoteService
	receipts    *ReceiptService
	commitments *CommitmentService
	dashboard   *DashboardService
	reports     *ReportService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	st, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)

	serviceRepo := repositories.NewServiceRepository(st)
	productRepo := repositories.NewProductRepository(st)
	clientRepo := repositories.NewClientRepository(st)
	quoteRepo := repositories.NewQuoteRepository(st)
	receiptRepo := repositories.NewReceiptRepository(st)
	commitmentRepo := repositories.NewCommitmentRepository(st)
	categoryRepo := repositories.NewCategoryRepository(st)
	profileRepo := repositories.NewProfileRepository(st)
	appointmentRepo := repositories.NewAppointmentRepository(st)

	assistant := ai.NoopAssistant{}

	return &testEnv{
		store:       st,
		catalog:     NewCatalogService(serviceRepo, productRepo, categoryRepo, assistant),
		clients:     NewClientService(clientRepo, appointmentRepo),
		quotes:      NewQuoteService(quoteRepo, serviceRepo, productRepo, clientRepo, assistant),
		receipts:    NewReceiptService(receiptRepo, clientRepo),
		commitments: NewCommitmentService(commitmentRepo),
		dashboard:   NewDashboardService(clientRepo, serviceRepo, productRepo, quoteRepo, receiptRepo, commitmentRepo),
		reports:     NewReportService(quoteRepo, receiptRepo, commitmentRepo, clientRepo, serviceRepo, productRepo, profileRepo),
	}
}

func (e *testEnv) mustClient(t *testing.T, name string) *models.Client {
	t.Helper()
	client, err := e.clients.Create(context.Background(), ClientInput{Name: name})
	require.NoError(t, err)
	return client
}

func (e *testEnv) mustService(t *testing.T, name, price, category string) *models.Service {
	t.Helper()
	service, err := e.catalog.CreateService(context.Background(), ServiceInput{
		Name:     name,
		Price:    decimal.RequireFromString(price),
		Category: category,
	})
	require.NoError(t, err)
	return service
}

func (e *testEnv) mustProduct(t *testing.T, name, price string, stock int, category string) *models.Product {
	t.Helper()
	product, err := e.catalog.CreateProduct(context.Background(), ProductInput{
		Name:     name,
		Price:    decimal.RequireFromString(price),
		Stock:    stock,
		Category: category,
	})
	require.NoError(t, err)
	return product
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
