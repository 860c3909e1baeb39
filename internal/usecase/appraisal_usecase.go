package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"joalheria_xpto/internal/domain/entities"
	"joalheria_xpto/internal/observability/metrics"

	"github.com/shopspring/decimal"
)

var ErrInvalidAppraisalType = errors.New("invalid appraisal type")

// appraisalReportFee is the flat charge for the bound detailed report.
var appraisalReportFee = decimal.RequireFromString("50.00")

// appraisalExpediteMultiplier covers the whole engagement, report included.
var appraisalExpediteMultiplier = decimal.RequireFromString("1.5")

// appraisalUpdateWindowYears: updates of an appraisal we issued within this
// many years bill half the base fee. The boundary day still qualifies.
const appraisalUpdateWindowYears = 10

// appraisalTiers is the fee schedule per appraisal type. Bands are ordered
// ascending on MaxCarats and each list ends with a catch-all band.
var appraisalTiers = map[entities.AppraisalType]entities.AppraisalPricingTier{
	entities.AppraisalTypeInsurance: {
		Type:              entities.AppraisalTypeInsurance,
		FirstItemBase:     decimal.RequireFromString("150.00"),
		AdditionalItemFee: decimal.RequireFromString("75.00"),
		CaratBands: []entities.CaratBand{
			{MaxCarats: decimal.RequireFromString("1.0"), Multiplier: decimal.RequireFromString("1.0")},
			{MaxCarats: decimal.RequireFromString("2.0"), Multiplier: decimal.RequireFromString("1.3")},
			{MaxCarats: decimal.RequireFromString("5.0"), Multiplier: decimal.RequireFromString("1.6")},
			{MaxCarats: decimal.RequireFromString("10000"), Multiplier: decimal.RequireFromString("2.0")},
		},
	},
	entities.AppraisalTypeEstate: {
		Type:              entities.AppraisalTypeEstate,
		FirstItemBase:     decimal.RequireFromString("200.00"),
		AdditionalItemFee: decimal.RequireFromString("95.00"),
		CaratBands: []entities.CaratBand{
			{MaxCarats: decimal.RequireFromString("1.0"), Multiplier: decimal.RequireFromString("1.0")},
			{MaxCarats: decimal.RequireFromString("2.0"), Multiplier: decimal.RequireFromString("1.25")},
			{MaxCarats: decimal.RequireFromString("5.0"), Multiplier: decimal.RequireFromString("1.5")},
			{MaxCarats: decimal.RequireFromString("10000"), Multiplier: decimal.RequireFromString("1.9")},
		},
	},
	entities.AppraisalTypeFairMarket: {
		Type:              entities.AppraisalTypeFairMarket,
		FirstItemBase:     decimal.RequireFromString("125.00"),
		AdditionalItemFee: decimal.RequireFromString("60.00"),
		CaratBands: []entities.CaratBand{
			{MaxCarats: decimal.RequireFromString("1.0"), Multiplier: decimal.RequireFromString("1.0")},
			{MaxCarats: decimal.RequireFromString("2.0"), Multiplier: decimal.RequireFromString("1.2")},
			{MaxCarats: decimal.RequireFromString("5.0"), Multiplier: decimal.RequireFromString("1.45")},
			{MaxCarats: decimal.RequireFromString("10000"), Multiplier: decimal.RequireFromString("1.8")},
		},
	},
	entities.AppraisalTypeLiquidation: {
		Type:              entities.AppraisalTypeLiquidation,
		FirstItemBase:     decimal.RequireFromString("175.00"),
		AdditionalItemFee: decimal.RequireFromString("80.00"),
		CaratBands: []entities.CaratBand{
			{MaxCarats: decimal.RequireFromString("1.0"), Multiplier: decimal.RequireFromString("1.0")},
			{MaxCarats: decimal.RequireFromString("2.0"), Multiplier: decimal.RequireFromString("1.3")},
			{MaxCarats: decimal.RequireFromString("5.0"), Multiplier: decimal.RequireFromString("1.55")},
			{MaxCarats: decimal.RequireFromString("10000"), Multiplier: decimal.RequireFromString("1.9")},
		},
	},
}

// AppraisalInput describes one appraisal engagement.
type AppraisalInput struct {
	Type                  entities.AppraisalType
	ItemCount             int
	LargestCaratWeight    decimal.Decimal
	IsUpdate              bool
	OriginalAppraisalDate *time.Time
	DetailedReport        bool
	Expedited             bool
}

// AppraisalResult is the fee quote for an engagement.
type AppraisalResult struct {
	Type                  entities.AppraisalType `json:"type"`
	ItemCount             int                    `json:"item_count"`
	BandMultiplier        decimal.Decimal        `json:"band_multiplier"`
	BaseFee               decimal.Decimal        `json:"base_fee"`
	UpdateDiscountApplied bool                   `json:"update_discount_applied"`
	ReportFee             decimal.Decimal        `json:"report_fee"`
	ExpediteMultiplier    decimal.Decimal        `json:"expedite_multiplier"`
	TotalFee              decimal.Decimal        `json:"total_fee"`
	Notes                 []string               `json:"notes,omitempty"`
	Warnings              []string               `json:"warnings,omitempty"`
}

// IAppraisalUseCase exposes the appraisal fee calculation.
//
// Fee assembly order: per-item fees scaled by the carat band, update discount,
// report fee, expedite multiplier over the whole total.

type IAppraisalUseCase interface {
	CalculateFee(ctx context.Context, in AppraisalInput) (AppraisalResult, error)
}

type AppraisalUseCase struct {
	metrics *metrics.Registry

	now func() time.Time
}

var _ IAppraisalUseCase = (*AppraisalUseCase)(nil)

func NewAppraisalUseCase(reg *metrics.Registry) *AppraisalUseCase {
	return &AppraisalUseCase{metrics: reg, now: time.Now}
}

func (u *AppraisalUseCase) CalculateFee(_ context.Context, in AppraisalInput) (AppraisalResult, error) {
	tier, ok := appraisalTiers[in.Type]
	if !ok {
		return AppraisalResult{}, ErrInvalidAppraisalType
	}

	res := AppraisalResult{
		Type:               in.Type,
		ItemCount:          in.ItemCount,
		BandMultiplier:     decimal.NewFromInt(1),
		ExpediteMultiplier: decimal.NewFromInt(1),
	}

	if in.ItemCount <= 0 {
		res.BaseFee = decimal.Zero
		res.TotalFee = decimal.Zero
		res.Notes = append(res.Notes, "no items on the engagement; nothing to charge")
		return res, nil
	}

	carats := in.LargestCaratWeight
	if carats.IsNegative() {
		carats = decimal.Zero
	}
	mult := tier.BandMultiplier(carats)
	res.BandMultiplier = mult

	base := tier.FirstItemBase.Mul(mult)
	if in.ItemCount > 1 {
		additional := tier.AdditionalItemFee.Mul(mult).Mul(decimal.NewFromInt(int64(in.ItemCount - 1)))
		base = base.Add(additional)
	}

	if in.IsUpdate {
		if in.OriginalAppraisalDate == nil {
			res.Warnings = append(res.Warnings, "update requested without original appraisal date; discount not applied")
		} else {
			cutoff := u.now().AddDate(-appraisalUpdateWindowYears, 0, 0)
			if !in.OriginalAppraisalDate.Before(cutoff) {
				base = base.Div(decimal.NewFromInt(2))
				res.UpdateDiscountApplied = true
				res.Notes = append(res.Notes, fmt.Sprintf(
					"update of appraisal from %s; base fee halved", in.OriginalAppraisalDate.Format("2006-01-02")))
			} else {
				res.Notes = append(res.Notes, "original appraisal older than 10 years; billed as new")
			}
		}
	}

	total := base
	if in.DetailedReport {
		res.ReportFee = appraisalReportFee
		total = total.Add(appraisalReportFee)
	}
	if in.Expedited {
		res.ExpediteMultiplier = appraisalExpediteMultiplier
		total = total.Mul(appraisalExpediteMultiplier)
	}

	res.BaseFee = base.Round(2)
	res.TotalFee = total.Round(2)
	u.metrics.IncAppraisalsCalculated()
	return res, nil
}
