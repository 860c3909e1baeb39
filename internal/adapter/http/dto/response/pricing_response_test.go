package response

import (
	"testing"

	"joalheria_xpto/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestFromPricingResult(t *testing.T) {
	r := usecase.PricingResult{
		RuleID:         "RULE1",
		PricingVersion: "2026-01",
		BaseCost:       decimal.RequireFromString("90.00"),
		BaseRetail:     decimal.RequireFromString("235.00"),
		FinalRetail:    decimal.RequireFromString("352.50"),
		RushMultiplier: decimal.RequireFromString("1.5"),
		Breakdown: usecase.CostBreakdown{
			MetalCost:      decimal.RequireFromString("50.00"),
			LaborCost:      decimal.RequireFromString("30.00"),
			FixedFee:       decimal.RequireFromString("10.00"),
			MaterialMarkup: decimal.RequireFromString("100.00"),
			LaborMarkup:    decimal.RequireFromString("45.00"),
		},
		RequiresManagerApproval: true,
		Notes:                   []string{"rush applied"},
		Warnings:                []string{"market rate for gold is 10 days old; refresh rates"},
	}

	res := FromPricingResult(r)
	if res.RuleID != "RULE1" || res.PricingVersion != "2026-01" {
		t.Fatalf("unexpected rule fields: %+v", res)
	}
	if res.BaseCost != "90.00" || res.BaseRetail != "235.00" || res.FinalRetail != "352.50" {
		t.Fatalf("unexpected money fields: %+v", res)
	}
	if res.RushMultiplier != "1.5" {
		t.Fatalf("unexpected multiplier: %q", res.RushMultiplier)
	}
	if res.Breakdown.MetalCost != "50.00" || res.Breakdown.MaterialMarkup != "100.00" {
		t.Fatalf("unexpected breakdown: %+v", res.Breakdown)
	}
	if !res.RequiresManagerApproval || len(res.Notes) != 1 || len(res.Warnings) != 1 {
		t.Fatalf("unexpected flags: %+v", res)
	}
}

func TestFromAppraisalResult(t *testing.T) {
	r := usecase.AppraisalResult{
		Type:                  "insurance",
		ItemCount:             3,
		BandMultiplier:        decimal.RequireFromString("1.3"),
		BaseFee:               decimal.RequireFromString("390.00"),
		UpdateDiscountApplied: false,
		ReportFee:             decimal.RequireFromString("50.00"),
		ExpediteMultiplier:    decimal.RequireFromString("1.5"),
		TotalFee:              decimal.RequireFromString("660.00"),
		Notes:                 []string{"detailed written report included"},
	}

	res := FromAppraisalResult(r)
	if res.Type != "insurance" || res.ItemCount != 3 {
		t.Fatalf("unexpected type fields: %+v", res)
	}
	if res.BandMultiplier != "1.3" || res.ExpediteMultiplier != "1.5" {
		t.Fatalf("unexpected multipliers: %+v", res)
	}
	if res.BaseFee != "390.00" || res.ReportFee != "50.00" || res.TotalFee != "660.00" {
		t.Fatalf("unexpected fees: %+v", res)
	}
}
