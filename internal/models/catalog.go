package models

import "github.com/shopspring/decimal"

// ServiceUnit is the unit of measure a service is billed by.
type ServiceUnit string

const (
	UnitHour        ServiceUnit = "hora"
	UnitPiece       ServiceUnit = "unidade"
	UnitSquareMeter ServiceUnit = "m2"
	UnitFlatFee     ServiceUnit = "global"
)

func (u ServiceUnit) Valid() bool {
	switch u {
	case UnitHour, UnitPiece, UnitSquareMeter, UnitFlatFee:
		return true
	}
	return false
}

// ServiceStatus marks whether a service is currently offered.
type ServiceStatus string

const (
	ServiceActive      ServiceStatus = "ativo"
	ServiceMaintenance ServiceStatus = "manutenção"
)

func (s ServiceStatus) Valid() bool {
	return s == ServiceActive || s == ServiceMaintenance
}

// DefaultCategory is the fallback when a catalog entry has no category or
// a line item references a deleted entry.
const DefaultCategory = "Geral"

// Service is a catalog entry billed by unit of measure.
type Service struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Unit        ServiceUnit     `json:"unit"`
	Category    string          `json:"category"`
	Status      ServiceStatus   `json:"status,omitempty"`
	Image       string          `json:"image,omitempty"` // data URI
	IsFavorite  bool            `json:"isFavorite,omitempty"`
}

// Product is a catalog entry with tracked stock.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Unit        string          `json:"unit"`
	Category    string          `json:"category"`
}

// LowStockThreshold is the stock level at or below which a product is
// flagged on the dashboard.
const LowStockThreshold = 2

// DefaultServiceCategories seeds sp_categories on first run.
var DefaultServiceCategories = []string{"Manutenção", "Elétrica", "Limpeza", "Hidráulica", "Geral"}

// DefaultProductCategories seeds sp_prod_categories on first run.
var DefaultProductCategories = []string{"Material", "Peças", "Equipamentos", "Geral"}
