package entities

import "github.com/shopspring/decimal"

// AppraisalType selects the fee tier for an appraisal engagement.

type AppraisalType string

const (
	AppraisalTypeInsurance   AppraisalType = "insurance"
	AppraisalTypeEstate      AppraisalType = "estate"
	AppraisalTypeFairMarket  AppraisalType = "fairMarket"
	AppraisalTypeLiquidation AppraisalType = "liquidation"
)

func (t AppraisalType) IsValid() bool {
	switch t {
	case AppraisalTypeInsurance, AppraisalTypeEstate, AppraisalTypeFairMarket, AppraisalTypeLiquidation:
		return true
	}
	return false
}

// CaratBand scales appraisal fees by the largest stone on the engagement.
// Bands are ordered ascending and the last band is a catch-all whose
// MaxCarats no real stone reaches.
type CaratBand struct {
	MaxCarats  decimal.Decimal `json:"max_carats"`
	Multiplier decimal.Decimal `json:"multiplier"`
}

// AppraisalPricingTier is the fee schedule for one appraisal type.
//
// The schedule is fixed at build time: appraisal fees change rarely and a
// mispriced tier is a code review concern, not a data entry one.
type AppraisalPricingTier struct {
	Type              AppraisalType   `json:"type"`
	FirstItemBase     decimal.Decimal `json:"first_item_base"`
	AdditionalItemFee decimal.Decimal `json:"additional_item_fee"`
	CaratBands        []CaratBand     `json:"carat_bands"`
}

// BandMultiplier resolves the multiplier for the largest carat weight on the
// engagement. Weights at a band boundary take that band (1.0 ct is still the
// first band). Falls back to the catch-all band.
func (t AppraisalPricingTier) BandMultiplier(largestCarats decimal.Decimal) decimal.Decimal {
	for _, b := range t.CaratBands {
		if largestCarats.LessThanOrEqual(b.MaxCarats) {
			return b.Multiplier
		}
	}
	if n := len(t.CaratBands); n > 0 {
		return t.CaratBands[n-1].Multiplier
	}
	return decimal.NewFromInt(1)
}
