package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricingFormula is the markup recipe a PricingRule applies.
//
// The markup fields are multiplier factors, not additive percentages: a
// metalMarkupPercentage of 2.0 doubles the metal cost. Field names keep the
// legacy camelCase spelling because formula blobs written by the previous
// system are loaded as-is.
type PricingFormula struct {
	MetalMarkupPercentage decimal.Decimal  `json:"metalMarkupPercentage"`
	LaborMarkupPercentage decimal.Decimal  `json:"laborMarkupPercentage"`
	FixedFee              decimal.Decimal  `json:"fixedFee"`
	RushMultiplier        decimal.Decimal  `json:"rushMultiplier"`
	MinimumCharge         *decimal.Decimal `json:"minimumCharge,omitempty"`
}

// PricingRule binds a formula to a company.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (company_id-index): company_id
//
// A ServiceType may reference a rule directly; otherwise the company's active
// default rule applies. Version tags every priced quote so a later formula
// edit never silently changes what a guest was quoted.
type PricingRule struct {
	ID        string         `json:"id"`
	CompanyID string         `json:"company_id"`
	Name      string         `json:"name"`
	Formula   PricingFormula `json:"formula"`
	IsDefault bool           `json:"is_default"`
	Active    bool           `json:"active"`
	Version   string         `json:"version"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
