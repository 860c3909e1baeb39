package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceCategory groups service types for scheduling and due-date promises.

type ServiceCategory string

const (
	ServiceCategoryJewelryRepair ServiceCategory = "jewelryRepair"
	ServiceCategoryWatchService  ServiceCategory = "watchService"
	ServiceCategoryAppraisal     ServiceCategory = "appraisal"
	ServiceCategoryCustom        ServiceCategory = "custom"
)

func (c ServiceCategory) IsValid() bool {
	switch c {
	case ServiceCategoryJewelryRepair, ServiceCategoryWatchService,
		ServiceCategoryAppraisal, ServiceCategoryCustom:
		return true
	}
	return false
}

// PromiseDays is the standard due-date promise, in business days.
func (c ServiceCategory) PromiseDays() int {
	switch c {
	case ServiceCategoryJewelryRepair:
		return 3
	case ServiceCategoryWatchService:
		return 5
	case ServiceCategoryAppraisal:
		return 7
	default:
		return 5
	}
}

// MetalType identifies the metal a repair works on. Precious metals are
// priced from the live market rate table; base metals carry no metal cost.

type MetalType string

const (
	MetalTypeGold           MetalType = "gold"
	MetalTypeSilver         MetalType = "silver"
	MetalTypePlatinum       MetalType = "platinum"
	MetalTypePalladium      MetalType = "palladium"
	MetalTypeStainlessSteel MetalType = "stainlessSteel"
	MetalTypeTitanium       MetalType = "titanium"
	MetalTypeBrass          MetalType = "brass"
)

func (m MetalType) RequiresMarketRate() bool {
	switch m {
	case MetalTypeGold, MetalTypeSilver, MetalTypePlatinum, MetalTypePalladium:
		return true
	}
	return false
}

// RushType is the turnaround the guest asked for.

type RushType string

const (
	RushTypeStandard      RushType = "standard"
	RushTypeSameDay       RushType = "sameDay"
	RushTypeWithin48Hours RushType = "within48Hours"
)

func (r RushType) IsRush() bool {
	return r == RushTypeSameDay || r == RushTypeWithin48Hours
}

// LaborRole selects which hourly rate applies to a service's bench time.

type LaborRole string

const (
	LaborRoleBenchJeweler LaborRole = "benchJeweler"
	LaborRoleWatchmaker   LaborRole = "watchmaker"
	LaborRoleAppraiser    LaborRole = "appraiser"
	LaborRoleEngraver     LaborRole = "engraver"
)

// ServiceType is a catalog entry: one offerable service with its defaults.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Catalog entries are immutable per company: changing one means writing a new
// record with Version+1 and deactivating the old one, so priced quotes keep
// pointing at the exact definition they were priced against.
//
// BaseCost/BaseRetail non-zero means the SKU is catalog-priced: the pricing
// engine takes these amounts as-is instead of computing metal/labor markups.
type ServiceType struct {
	ID                      string          `json:"id"`
	CompanyID               string          `json:"company_id"`
	Name                    string          `json:"name"`
	SKU                     string          `json:"sku"`
	Category                ServiceCategory `json:"category"`
	DefaultLaborMinutes     int             `json:"default_labor_minutes"`
	DefaultMetalType        MetalType       `json:"default_metal_type,omitempty"`
	DefaultMetalWeightGrams decimal.Decimal `json:"default_metal_weight_grams"`
	BaseCost                decimal.Decimal `json:"base_cost"`
	BaseRetail              decimal.Decimal `json:"base_retail"`
	LaborRole               LaborRole       `json:"labor_role,omitempty"`
	PricingRuleID           string          `json:"pricing_rule_id,omitempty"`
	IsGenericSKU            bool            `json:"is_generic_sku"`
	RequiresPartnerCheck    bool            `json:"requires_partner_check"`
	SupportsRush            bool            `json:"supports_rush"`
	Version                 int             `json:"version"`
	Active                  bool            `json:"active"`
	CreatedAt               time.Time       `json:"created_at"`
}

// CatalogPriced reports whether the SKU carries fixed catalog amounts.
func (st ServiceType) CatalogPriced() bool {
	return st.BaseCost.IsPositive() || st.BaseRetail.IsPositive()
}

// EffectiveLaborRole falls back to the bench jeweler rate when the catalog
// entry doesn't pin a role.
func (st ServiceType) EffectiveLaborRole() LaborRole {
	if st.LaborRole == "" {
		return LaborRoleBenchJeweler
	}
	return st.LaborRole
}
