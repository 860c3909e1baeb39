package request

import (
	"strings"

	"joalheria_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// PricingRequest asks for a standalone price calculation without touching a
// quote. Counter staff use it to answer "what would this run" questions.
type PricingRequest struct {
	CompanyID        string          `json:"company_id" binding:"required"`
	ServiceTypeID    string          `json:"service_type_id" binding:"required"`
	MetalType        string          `json:"metal_type"`
	MetalWeightGrams decimal.Decimal `json:"metal_weight_grams"`
	LaborMinutes     int             `json:"labor_minutes"`
	RushType         string          `json:"rush_type"`
	PartnerPurchase  bool            `json:"partner_purchase"`
	SizingCategory   string          `json:"sizing_category"`
}

func (r PricingRequest) ResolveMetalType() entities.MetalType {
	return entities.MetalType(strings.TrimSpace(r.MetalType))
}

func (r PricingRequest) ResolveRushType() entities.RushType {
	if v := strings.TrimSpace(r.RushType); v != "" {
		return entities.RushType(v)
	}
	return entities.RushTypeStandard
}
