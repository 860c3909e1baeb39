package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quote is the service quote (jewelry/watch repair, appraisal) persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id (canonical quote ID, e.g. Q-2026-000123)
//   - GSI1 (company_id-index): company_id, sorted by id
//
// Monetary representation:
//   - All money is fixed-point decimal, persisted as strings.
//   - Total is always Subtotal + Tax; UpdateTotal is the only writer.
//
// Concurrency:
//   - Version is a per-quote write counter. Every repository mutation is
//     conditional on the version read by the caller, so concurrent transitions
//     and line-item edits cannot interleave.
type Quote struct {
	ID              string          `json:"id"`
	CompanyID       string          `json:"company_id"`
	StoreID         string          `json:"store_id"`
	GuestID         string          `json:"guest_id"`
	Status          QuoteStatus     `json:"status"`
	Priority        QuotePriority   `json:"priority"`
	ServiceCategory ServiceCategory `json:"service_category"`
	RushType        RushType        `json:"rush_type"`

	Subtotal              decimal.Decimal `json:"subtotal"`
	TaxRate               decimal.Decimal `json:"tax_rate"`
	Tax                   decimal.Decimal `json:"tax"`
	Total                 decimal.Decimal `json:"total"`
	RushMultiplierApplied decimal.Decimal `json:"rush_multiplier_applied"`
	PricingVersion        string          `json:"pricing_version"`

	ApprovalRequired bool       `json:"approval_required"`
	EstimateApproved bool       `json:"estimate_approved"`
	PromisedDueDate  *time.Time `json:"promised_due_date,omitempty"`
	ValidUntil       time.Time  `json:"valid_until"`

	LineItems []QuoteLineItem `json:"line_items"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateTotal sets the monetary fields keeping Total = Subtotal + Tax.
func (q *Quote) UpdateTotal(subtotal, tax decimal.Decimal) {
	q.Subtotal = subtotal
	q.Tax = tax
	q.Total = subtotal.Add(tax)
}

// Editable reports whether line items may still be added or overridden.
// Once a quote is presented to the guest its composition is frozen.
func (q *Quote) Editable() bool {
	return q.Status == QuoteStatusDraft
}

// ItemsSubtotal sums the effective retail of every line item.
func (q *Quote) ItemsSubtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, li := range q.LineItems {
		sum = sum.Add(li.FinalRetail())
	}
	return sum
}

// QuoteLineItem is one priced service on a quote.
//
// CalculatedRetail is what the pricing engine produced; ManualOverrideRetail,
// when set, wins over it. FinalRetail never goes below zero.
type QuoteLineItem struct {
	ID                   string           `json:"id"`
	ServiceTypeID        string           `json:"service_type_id"`
	Description          string           `json:"description,omitempty"`
	MetalType            MetalType        `json:"metal_type,omitempty"`
	MetalWeightGrams     decimal.Decimal  `json:"metal_weight_grams"`
	LaborMinutes         int              `json:"labor_minutes"`
	BaseCost             decimal.Decimal  `json:"base_cost"`
	BaseRetail           decimal.Decimal  `json:"base_retail"`
	CalculatedRetail     decimal.Decimal  `json:"calculated_retail"`
	ManualOverrideRetail *decimal.Decimal `json:"manual_override_retail,omitempty"`
	IsRush               bool             `json:"is_rush"`
	RushMultiplier       decimal.Decimal  `json:"rush_multiplier"`
	CreatedAt            time.Time        `json:"created_at"`
}

// FinalRetail resolves the amount the guest is actually charged for the item.
func (li QuoteLineItem) FinalRetail() decimal.Decimal {
	v := li.CalculatedRetail
	if li.ManualOverrideRetail != nil {
		v = *li.ManualOverrideRetail
	}
	if v.IsNegative() {
		return decimal.Zero
	}
	return v
}

// WorkflowPatch is what a status transition writes back to a quote.
// Nil pointer fields leave the stored attribute untouched.
type WorkflowPatch struct {
	Status           QuoteStatus
	Priority         QuotePriority
	PromisedDueDate  *time.Time
	EstimateApproved *bool
}

// QuoteTotals is the monetary snapshot written together with line items.
type QuoteTotals struct {
	Subtotal              decimal.Decimal
	TaxRate               decimal.Decimal
	Tax                   decimal.Decimal
	Total                 decimal.Decimal
	RushMultiplierApplied decimal.Decimal
	PricingVersion        string
	ApprovalRequired      bool
}
