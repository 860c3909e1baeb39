package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"joalheria_xpto/internal/domain/entities"
	"joalheria_xpto/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrNoPricingRuleFound  = errors.New("no pricing rule found")
	ErrInvalidPricingInput = errors.New("invalid pricing input")
)

const (
	// metalRateStaleness flags quotes priced from market data nobody refreshed.
	metalRateStaleness = 7 * 24 * time.Hour

	defaultSameDayCutoffHour = 14
)

// defaultBenchHourlyRate prices labor when a company never loaded rates.
var defaultBenchHourlyRate = decimal.RequireFromString("75.00")

// defaultRushMultiplier applies when a formula predates the rushMultiplier field.
var defaultRushMultiplier = decimal.RequireFromString("1.5")

// PricingInput carries everything one calculation needs. The service type is
// passed whole so the engine never reaches back into the catalog mid-pricing.
type PricingInput struct {
	CompanyID        string
	ServiceType      entities.ServiceType
	MetalType        entities.MetalType
	MetalWeightGrams decimal.Decimal
	LaborMinutes     int
	RushType         entities.RushType
	PartnerPurchase  bool
	SizingCategory   string
}

// CostBreakdown itemizes how a retail price was assembled. The markup fields
// hold the marked-up amounts (cost × factor), not the factors themselves.
type CostBreakdown struct {
	MetalCost      decimal.Decimal `json:"metal_cost"`
	LaborCost      decimal.Decimal `json:"labor_cost"`
	FixedFee       decimal.Decimal `json:"fixed_fee"`
	MaterialMarkup decimal.Decimal `json:"material_markup"`
	LaborMarkup    decimal.Decimal `json:"labor_markup"`
	CatalogPricing bool            `json:"catalog_pricing"`
}

// PricingResult is the priced outcome plus everything the counter staff needs
// to explain it. Warnings are non-blocking: a priced result with warnings is
// still a valid quote.
type PricingResult struct {
	RuleID                  string          `json:"rule_id"`
	PricingVersion          string          `json:"pricing_version"`
	BaseCost                decimal.Decimal `json:"base_cost"`
	BaseRetail              decimal.Decimal `json:"base_retail"`
	FinalRetail             decimal.Decimal `json:"final_retail"`
	RushMultiplier          decimal.Decimal `json:"rush_multiplier"`
	Breakdown               CostBreakdown   `json:"breakdown"`
	RequiresManagerApproval bool            `json:"requires_manager_approval"`
	Notes                   []string        `json:"notes,omitempty"`
	Warnings                []string        `json:"warnings,omitempty"`
}

// IPricingUseCase exposes the retail pricing calculation.
//
// Calculation order is fixed: rule resolution, metal cost, labor cost,
// markups (or catalog override), rush handling, minimum charge, approval
// threshold. Reordering changes prices, so it only happens deliberately.

type IPricingUseCase interface {
	CalculatePrice(ctx context.Context, in PricingInput) (PricingResult, error)
	CalculateForServiceType(ctx context.Context, serviceTypeID string, in PricingInput) (PricingResult, error)
}

type PricingUseCase struct {
	ruleRepo interfaces.IPricingRuleRepository
	rateRepo interfaces.IRateRepository
	stRepo   interfaces.IServiceTypeRepository

	sameDayCutoffHour int
	approvalThreshold decimal.Decimal

	now func() time.Time
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(ruleRepo interfaces.IPricingRuleRepository, rateRepo interfaces.IRateRepository, stRepo interfaces.IServiceTypeRepository) *PricingUseCase {
	return &PricingUseCase{
		ruleRepo:          ruleRepo,
		rateRepo:          rateRepo,
		stRepo:            stRepo,
		sameDayCutoffHour: envIntDefault("SAMEDAY_CUTOFF_HOUR", defaultSameDayCutoffHour),
		approvalThreshold: envDecimalDefault("MANAGER_APPROVAL_THRESHOLD", "1500.00"),
		now:               time.Now,
	}
}

// CalculateForServiceType resolves a catalog entry and prices it. It backs
// the standalone calculator endpoint; quotes resolve their own catalog rows.
func (u *PricingUseCase) CalculateForServiceType(ctx context.Context, serviceTypeID string, in PricingInput) (PricingResult, error) {
	serviceTypeID = strings.TrimSpace(serviceTypeID)
	if serviceTypeID == "" {
		return PricingResult{}, ErrServiceTypeNotFound
	}
	st, err := u.stRepo.GetByID(ctx, serviceTypeID)
	if err != nil {
		return PricingResult{}, err
	}
	if st.ID == "" || st.CompanyID != strings.TrimSpace(in.CompanyID) {
		return PricingResult{}, ErrServiceTypeNotFound
	}
	if !st.Active {
		return PricingResult{}, ErrServiceTypeInactive
	}
	in.ServiceType = st
	return u.CalculatePrice(ctx, in)
}

func (u *PricingUseCase) CalculatePrice(ctx context.Context, in PricingInput) (PricingResult, error) {
	if strings.TrimSpace(in.CompanyID) == "" || in.ServiceType.ID == "" {
		return PricingResult{}, ErrInvalidPricingInput
	}
	if in.LaborMinutes < 0 || in.MetalWeightGrams.IsNegative() {
		return PricingResult{}, ErrInvalidPricingInput
	}

	rule, err := u.resolveRule(ctx, in.CompanyID, in.ServiceType)
	if err != nil {
		return PricingResult{}, err
	}
	formula := rule.Formula

	res := PricingResult{
		RuleID:         rule.ID,
		PricingVersion: rule.Version,
		RushMultiplier: decimal.NewFromInt(1),
	}

	// Catalog defaults fill in whatever the request omitted.
	if in.LaborMinutes == 0 {
		in.LaborMinutes = in.ServiceType.DefaultLaborMinutes
	}
	if in.MetalType == "" {
		in.MetalType = in.ServiceType.DefaultMetalType
		in.MetalWeightGrams = in.ServiceType.DefaultMetalWeightGrams
	}

	metalCost, err := u.metalCost(ctx, in, &res)
	if err != nil {
		return PricingResult{}, err
	}
	laborCost, err := u.laborCost(ctx, in, &res)
	if err != nil {
		return PricingResult{}, err
	}

	var baseCost, baseRetail decimal.Decimal
	if in.ServiceType.CatalogPriced() {
		baseCost = in.ServiceType.BaseCost
		baseRetail = in.ServiceType.BaseRetail
		res.Breakdown.CatalogPricing = true
		note := fmt.Sprintf("catalog price applied for SKU %s", in.ServiceType.SKU)
		if in.SizingCategory != "" {
			note += fmt.Sprintf(" (sizing %s)", in.SizingCategory)
		}
		res.Notes = append(res.Notes, note)
	} else {
		materialMarkup := metalCost.Mul(formula.MetalMarkupPercentage)
		laborMarkup := laborCost.Mul(formula.LaborMarkupPercentage)
		baseCost = metalCost.Add(laborCost).Add(formula.FixedFee)
		baseRetail = baseCost.Add(materialMarkup).Add(laborMarkup)

		res.Breakdown.MetalCost = metalCost.Round(2)
		res.Breakdown.LaborCost = laborCost.Round(2)
		res.Breakdown.FixedFee = formula.FixedFee.Round(2)
		res.Breakdown.MaterialMarkup = materialMarkup.Round(2)
		res.Breakdown.LaborMarkup = laborMarkup.Round(2)
	}

	finalRetail := u.applyRush(in, formula, baseRetail, &res)

	if formula.MinimumCharge != nil && finalRetail.LessThan(*formula.MinimumCharge) {
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"final retail %s below minimum charge; raised to %s",
			finalRetail.StringFixed(2), formula.MinimumCharge.StringFixed(2)))
		finalRetail = *formula.MinimumCharge
	}

	if u.approvalThreshold.IsPositive() && finalRetail.GreaterThanOrEqual(u.approvalThreshold) {
		res.RequiresManagerApproval = true
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"final retail %s meets the manager approval threshold %s",
			finalRetail.StringFixed(2), u.approvalThreshold.StringFixed(2)))
	}

	res.BaseCost = baseCost.Round(2)
	res.BaseRetail = baseRetail.Round(2)
	res.FinalRetail = finalRetail.Round(2)
	return res, nil
}

// resolveRule prefers the rule the service type points at; a company default
// backs it up. Neither existing is a configuration error the caller must fix.
func (u *PricingUseCase) resolveRule(ctx context.Context, companyID string, st entities.ServiceType) (entities.PricingRule, error) {
	if st.PricingRuleID != "" {
		rule, err := u.ruleRepo.GetByID(ctx, st.PricingRuleID)
		if err != nil {
			return entities.PricingRule{}, err
		}
		if rule.ID != "" && rule.Active {
			return rule, nil
		}
	}

	rule, err := u.ruleRepo.GetActiveDefault(ctx, companyID)
	if err != nil {
		return entities.PricingRule{}, err
	}
	if rule.ID == "" {
		return entities.PricingRule{}, ErrNoPricingRuleFound
	}
	return rule, nil
}

func (u *PricingUseCase) metalCost(ctx context.Context, in PricingInput, res *PricingResult) (decimal.Decimal, error) {
	if in.MetalType == "" || !in.MetalWeightGrams.IsPositive() {
		return decimal.Zero, nil
	}
	if !in.MetalType.RequiresMarketRate() {
		return decimal.Zero, nil
	}

	rate, err := u.rateRepo.LatestMetalRate(ctx, in.CompanyID, in.MetalType)
	if err != nil {
		return decimal.Zero, err
	}
	if rate.ID == "" {
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"no market rate loaded for %s; metal cost omitted", in.MetalType))
		return decimal.Zero, nil
	}
	if age := u.now().Sub(rate.EffectiveAt); age > metalRateStaleness {
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"market rate for %s is %d days old; refresh rates", in.MetalType, int(age.Hours()/24)))
	}
	return in.MetalWeightGrams.Mul(rate.RatePerGram), nil
}

func (u *PricingUseCase) laborCost(ctx context.Context, in PricingInput, res *PricingResult) (decimal.Decimal, error) {
	if in.LaborMinutes == 0 {
		return decimal.Zero, nil
	}

	role := in.ServiceType.EffectiveLaborRole()
	rate, err := u.rateRepo.LatestLaborRate(ctx, in.CompanyID, role)
	if err != nil {
		return decimal.Zero, err
	}
	hourly := rate.HourlyRate
	if rate.ID == "" {
		hourly = defaultBenchHourlyRate
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"no labor rate loaded for %s; default hourly rate %s applied", role, hourly.StringFixed(2)))
	}
	return decimal.NewFromInt(int64(in.LaborMinutes)).Mul(hourly).Div(decimal.NewFromInt(60)), nil
}

// applyRush resolves the rush policy in precedence order: unsupported service,
// partner-purchase waiver, then the formula multiplier. Same-day requests past
// the cutoff still price; the coordinator decides whether the shop takes them.
func (u *PricingUseCase) applyRush(in PricingInput, formula entities.PricingFormula, baseRetail decimal.Decimal, res *PricingResult) decimal.Decimal {
	if !in.RushType.IsRush() {
		return baseRetail
	}

	if !in.ServiceType.SupportsRush {
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"service %s does not support rush; multiplier not applied", in.ServiceType.SKU))
		return baseRetail
	}

	if in.PartnerPurchase {
		res.Notes = append(res.Notes, "rush fee waived: item originally purchased here")
		if in.ServiceType.RequiresPartnerCheck {
			res.Notes = append(res.Notes, "verify original purchase record before release")
		}
		return baseRetail
	}

	mult := formula.RushMultiplier
	if !mult.IsPositive() {
		mult = defaultRushMultiplier
	}
	if in.RushType == entities.RushTypeSameDay && u.now().Hour() >= u.sameDayCutoffHour {
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"same-day rush requested after %02d:00 cutoff; needs coordinator approval", u.sameDayCutoffHour))
	}
	res.RushMultiplier = mult
	return baseRetail.Mul(mult)
}

func envIntDefault(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envDecimalDefault(key, def string) decimal.Decimal {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		v = def
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.RequireFromString(def)
	}
	return d
}
