package request

import (
	"strings"

	"joalheria_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// CreateQuoteRequest opens a draft quote for a guest.
//
// rush_type is optional and defaults to standard turnaround.
type CreateQuoteRequest struct {
	CompanyID       string `json:"company_id" binding:"required"`
	StoreID         string `json:"store_id"`
	GuestID         string `json:"guest_id" binding:"required"`
	ServiceCategory string `json:"service_category" binding:"required"`
	RushType        string `json:"rush_type"`
}

func (r CreateQuoteRequest) ResolveServiceCategory() entities.ServiceCategory {
	return entities.ServiceCategory(strings.TrimSpace(r.ServiceCategory))
}

func (r CreateQuoteRequest) ResolveRushType() entities.RushType {
	if v := strings.TrimSpace(r.RushType); v != "" {
		return entities.RushType(v)
	}
	return entities.RushTypeStandard
}

// QuoteLineItemRequest adds one priced service to a draft quote.
//
// Decimal fields accept JSON numbers or strings; amounts are re-derived by
// the pricing engine, the caller never sends final money values except the
// explicit manual override.
type QuoteLineItemRequest struct {
	ServiceTypeID        string           `json:"service_type_id" binding:"required"`
	Description          string           `json:"description"`
	MetalType            string           `json:"metal_type"`
	MetalWeightGrams     decimal.Decimal  `json:"metal_weight_grams"`
	LaborMinutes         int              `json:"labor_minutes"`
	IsRush               bool             `json:"is_rush"`
	PartnerPurchase      bool             `json:"partner_purchase"`
	SizingCategory       string           `json:"sizing_category"`
	ManualOverrideRetail *decimal.Decimal `json:"manual_override_retail"`
}

func (r QuoteLineItemRequest) ResolveMetalType() entities.MetalType {
	return entities.MetalType(strings.TrimSpace(r.MetalType))
}

// LineItemOverrideRequest sets or clears the manual retail override on one
// line item. A null override restores the calculated retail.
type LineItemOverrideRequest struct {
	ManualOverrideRetail *decimal.Decimal `json:"manual_override_retail"`
}

// RecalculateTotalsRequest re-runs quote totals, optionally switching the tax
// rate. A null tax_rate keeps the rate already on the quote.
type RecalculateTotalsRequest struct {
	TaxRate *decimal.Decimal `json:"tax_rate"`
}

// QuoteTransitionRequest moves a quote through the workflow state machine.
type QuoteTransitionRequest struct {
	TargetStatus string `json:"target_status" binding:"required"`
	ActorID      string `json:"actor_id" binding:"required"`
	Notes        string `json:"notes"`
}

func (r QuoteTransitionRequest) ResolveTargetStatus() entities.QuoteStatus {
	return entities.QuoteStatus(strings.TrimSpace(r.TargetStatus))
}
