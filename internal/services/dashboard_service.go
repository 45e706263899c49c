package services

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"gestor-backend/internal/models"
	"gestor-backend/internal/repositories"
)

// topCategories caps the dashboard revenue breakdown.
const topCategories = 6

// CategoryRevenue is one slice of the revenue-by-category breakdown.
type CategoryRevenue struct {
	Category  string          `json:"category"`
	Revenue   decimal.Decimal `json:"revenue"`
	ItemCount int             `json:"itemCount"`
}

// DashboardMetrics is the aggregate snapshot the overview screen renders.
type DashboardMetrics struct {
	ClientCount  int `json:"clientCount"`
	ServiceCount int `json:"serviceCount"`
	ProductCount int `json:"productCount"`
	QuoteCount   int `json:"quoteCount"`
	ReceiptCount int `json:"receiptCount"`

	// RealizedRevenue sums every receipt regardless of quote linkage.
	RealizedRevenue decimal.Decimal `json:"realizedRevenue"`
	// ProjectedRevenue sums the totals of approved quotes.
	ProjectedRevenue decimal.Decimal `json:"projectedRevenue"`
	// PendingCommitments sums commitments not yet paid or cancelled.
	PendingCommitments decimal.Decimal `json:"pendingCommitments"`

	// ConversionRate is approved quotes over all quotes, in percent.
	ConversionRate decimal.Decimal `json:"conversionRate"`

	QuotesByStatus map[models.QuoteStatus]int `json:"quotesByStatus"`

	// LowStockProducts lists products at or below the restock threshold.
	LowStockProducts []*models.Product `json:"lowStockProducts"`

	// RevenueByCategory breaks approved-quote revenue down by catalog
	// category, largest first, capped at six entries.
	RevenueByCategory []CategoryRevenue `json:"revenueByCategory"`
}

// DashboardService aggregates across every collection.
type DashboardService struct {
	clients     *repositories.ClientRepository
	services    *repositories.ServiceRepository
	products    *repositories.ProductRepository
	quotes      *repositories.QuoteRepository
	receipts    *repositories.ReceiptRepository
	commitments *repositories.CommitmentRepository
}

func NewDashboardService(
	clients *repositories.ClientRepository,
	services *repositories.ServiceRepository,
	products *repositories.ProductRepository,
	quotes *repositories.QuoteRepository,
	receipts *repositories.ReceiptRepository,
	commitments *repositories.CommitmentRepository,
) *DashboardService {
	return &DashboardService{
		clients:     clients,
		services:    services,
		products:    products,
		quotes:      quotes,
		receipts:    receipts,
		commitments: commitments,
	}
}

// Metrics recomputes the full snapshot from the store. Nothing is cached;
// the collections are small enough that a fresh pass per request is fine.
func (s *DashboardService) Metrics(ctx context.Context) (*DashboardMetrics, error) {
	clients, err := s.clients.List(ctx)
	if err != nil {
		return nil, err
	}
	services, err := s.services.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	quotes, err := s.quotes.List(ctx)
	if err != nil {
		return nil, err
	}
	receipts, err := s.receipts.List(ctx)
	if err != nil {
		return nil, err
	}
	commitments, err := s.commitments.List(ctx)
	if err != nil {
		return nil, err
	}

	m := &DashboardMetrics{
		ClientCount:       len(clients),
		ServiceCount:      len(services),
		ProductCount:      len(products),
		QuoteCount:        len(quotes),
		ReceiptCount:      len(receipts),
		QuotesByStatus:    map[models.QuoteStatus]int{},
		LowStockProducts:  []*models.Product{},
		RevenueByCategory: []CategoryRevenue{},
	}

	for _, r := range receipts {
		m.RealizedRevenue = m.RealizedRevenue.Add(r.Amount)
	}

	for _, c := range commitments {
		if c.Status == models.CommitmentCommitted || c.Status == models.CommitmentLiquidated {
			m.PendingCommitments = m.PendingCommitments.Add(c.Value)
		}
	}

	for _, p := range products {
		if p.Stock <= models.LowStockThreshold {
			m.LowStockProducts = append(m.LowStockProducts, p)
		}
	}

	catalog := NewCatalog(services, products)
	approved := 0
	byCategory := map[string]decimal.Decimal{}
	countByCategory := map[string]int{}
	order := []string{}
	for _, q := range quotes {
		m.QuotesByStatus[q.Status]++
		if q.Status != models.QuoteApproved {
			continue
		}
		approved++
		m.ProjectedRevenue = m.ProjectedRevenue.Add(q.Total)
		for _, item := range q.Items {
			line := catalog.ResolveLine(item)
			if _, seen := byCategory[line.Category]; !seen {
				order = append(order, line.Category)
			}
			byCategory[line.Category] = byCategory[line.Category].Add(line.Subtotal)
			countByCategory[line.Category]++
		}
	}

	if len(quotes) > 0 {
		m.ConversionRate = decimal.NewFromInt(int64(approved)).
			Div(decimal.NewFromInt(int64(len(quotes)))).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}

	for _, category := range order {
		m.RevenueByCategory = append(m.RevenueByCategory, CategoryRevenue{
			Category:  category,
			Revenue:   byCategory[category],
			ItemCount: countByCategory[category],
		})
	}
	// Largest first; equal categories keep first-appearance order.
	sort.SliceStable(m.RevenueByCategory, func(i, j int) bool {
		return m.RevenueByCategory[i].Revenue.GreaterThan(m.RevenueByCategory[j].Revenue)
	})
	if len(m.RevenueByCategory) > topCategories {
		m.RevenueByCategory = m.RevenueByCategory[:topCategories]
	}

	return m, nil
}
