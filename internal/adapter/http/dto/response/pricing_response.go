package response

import (
	"joalheria_xpto/internal/domain/entities"
	"joalheria_xpto/internal/usecase"
)

type CostBreakdownResponse struct {
	MetalCost      string `json:"metal_cost"`
	LaborCost      string `json:"labor_cost"`
	FixedFee       string `json:"fixed_fee"`
	MaterialMarkup string `json:"material_markup"`
	LaborMarkup    string `json:"labor_markup"`
	CatalogPricing bool   `json:"catalog_pricing"`
}

type PricingResponse struct {
	RuleID                  string                `json:"rule_id"`
	PricingVersion          string                `json:"pricing_version"`
	BaseCost                string                `json:"base_cost"`
	BaseRetail              string                `json:"base_retail"`
	FinalRetail             string                `json:"final_retail"`
	RushMultiplier          string                `json:"rush_multiplier"`
	Breakdown               CostBreakdownResponse `json:"breakdown"`
	RequiresManagerApproval bool                  `json:"requires_manager_approval"`
	Notes                   []string              `json:"notes,omitempty"`
	Warnings                []string              `json:"warnings,omitempty"`
}

func FromPricingResult(r usecase.PricingResult) PricingResponse {
	return PricingResponse{
		RuleID:         r.RuleID,
		PricingVersion: r.PricingVersion,
		BaseCost:       r.BaseCost.StringFixed(2),
		BaseRetail:     r.BaseRetail.StringFixed(2),
		FinalRetail:    r.FinalRetail.StringFixed(2),
		RushMultiplier: r.RushMultiplier.String(),
		Breakdown: CostBreakdownResponse{
			MetalCost:      r.Breakdown.MetalCost.StringFixed(2),
			LaborCost:      r.Breakdown.LaborCost.StringFixed(2),
			FixedFee:       r.Breakdown.FixedFee.StringFixed(2),
			MaterialMarkup: r.Breakdown.MaterialMarkup.StringFixed(2),
			LaborMarkup:    r.Breakdown.LaborMarkup.StringFixed(2),
			CatalogPricing: r.Breakdown.CatalogPricing,
		},
		RequiresManagerApproval: r.RequiresManagerApproval,
		Notes:                   r.Notes,
		Warnings:                r.Warnings,
	}
}

// LineItemPricedResponse pairs the refreshed quote with the pricing detail of
// the line that was just added, so clients can show the breakdown without a
// second call.
type LineItemPricedResponse struct {
	Quote   QuoteResponse   `json:"quote"`
	Pricing PricingResponse `json:"pricing"`
}

func FromQuoteAndPricing(q entities.Quote, r usecase.PricingResult) LineItemPricedResponse {
	return LineItemPricedResponse{Quote: FromQuote(q), Pricing: FromPricingResult(r)}
}
