package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// MetalMarketRate is one spot-price observation for a precious metal.
//
// Storage model (DynamoDB):
//   - PK: rate_key ("metal#<company_id>#<metal_type>")
//   - SK: effective_at (RFC3339Nano)
//
// Lookups always take the most recent active entry per key. Rates older than
// the staleness window still price, but the engine flags them.
type MetalMarketRate struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"company_id"`
	MetalType   MetalType       `json:"metal_type"`
	RatePerGram decimal.Decimal `json:"rate_per_gram"`
	EffectiveAt time.Time       `json:"effective_at"`
	Active      bool            `json:"active"`
}

// LaborRate is the hourly bench rate for one labor role.
//
// Storage model (DynamoDB):
//   - PK: rate_key ("labor#<company_id>#<role>")
//   - SK: effective_at (RFC3339Nano)
type LaborRate struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"company_id"`
	Role        LaborRole       `json:"role"`
	HourlyRate  decimal.Decimal `json:"hourly_rate"`
	EffectiveAt time.Time       `json:"effective_at"`
	Active      bool            `json:"active"`
}
