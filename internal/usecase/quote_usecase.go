package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"joalheria_xpto/internal/domain/entities"
	"joalheria_xpto/internal/observability/metrics"
	"joalheria_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidGuestID         = errors.New("invalid guest id")
	ErrInvalidServiceCategory = errors.New("invalid service category")
	ErrInvalidRushType        = errors.New("invalid rush type")
	ErrQuoteNotEditable       = errors.New("quote no longer editable")
	ErrServiceTypeNotFound    = errors.New("service type not found")
	ErrServiceTypeInactive    = errors.New("service type inactive")
	ErrLineItemNotFound       = errors.New("line item not found")
	ErrInvalidOverride        = errors.New("invalid manual override")
	ErrInvalidTaxRate         = errors.New("invalid tax rate")
)

// createQuoteMaxAttempts bounds the create loop. The ID generator already
// probes for collisions; the conditional put only loses a race opened in the
// same instant.
const createQuoteMaxAttempts = 3

// CreateQuoteInput opens a draft quote for a guest.
type CreateQuoteInput struct {
	CompanyID       string
	StoreID         string
	GuestID         string
	ServiceCategory entities.ServiceCategory
	RushType        entities.RushType
}

// LineItemInput prices one service onto a draft quote. Zero labor/metal
// fields fall back to the catalog defaults of the service type.
type LineItemInput struct {
	ServiceTypeID        string
	Description          string
	MetalType            entities.MetalType
	MetalWeightGrams     decimal.Decimal
	LaborMinutes         int
	IsRush               bool
	PartnerPurchase      bool
	SizingCategory       string
	ManualOverrideRetail *decimal.Decimal
}

// IQuoteUseCase exposes quote composition: opening drafts, pricing line items
// onto them and keeping totals consistent.

type IQuoteUseCase interface {
	CreateQuote(ctx context.Context, in CreateQuoteInput) (entities.Quote, error)
	AddLineItem(ctx context.Context, quoteID string, in LineItemInput) (entities.Quote, PricingResult, error)
	SetManualOverride(ctx context.Context, quoteID, lineItemID string, override *decimal.Decimal) (entities.Quote, error)
	RecalculateTotals(ctx context.Context, quoteID string, taxRate *decimal.Decimal) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	History(ctx context.Context, quoteID string) ([]entities.StatusChangeLog, error)
}

type QuoteUseCase struct {
	quoteRepo interfaces.IQuoteRepository
	stRepo    interfaces.IServiceTypeRepository
	logRepo   interfaces.IStatusLogRepository
	idGen     IQuoteIDUseCase
	pricing   IPricingUseCase
	metrics   *metrics.Registry

	validDays      int
	defaultTaxRate decimal.Decimal

	now func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	quoteRepo interfaces.IQuoteRepository,
	stRepo interfaces.IServiceTypeRepository,
	logRepo interfaces.IStatusLogRepository,
	idGen IQuoteIDUseCase,
	pricing IPricingUseCase,
	reg *metrics.Registry,
) *QuoteUseCase {
	return &QuoteUseCase{
		quoteRepo:      quoteRepo,
		stRepo:         stRepo,
		logRepo:        logRepo,
		idGen:          idGen,
		pricing:        pricing,
		metrics:        reg,
		validDays:      envIntDefault("QUOTE_VALID_DAYS", 30),
		defaultTaxRate: envDecimalDefault("DEFAULT_TAX_RATE", "0"),
		now:            time.Now,
	}
}

func (u *QuoteUseCase) CreateQuote(ctx context.Context, in CreateQuoteInput) (entities.Quote, error) {
	in.CompanyID = strings.TrimSpace(in.CompanyID)
	if in.CompanyID == "" {
		return entities.Quote{}, ErrInvalidCompanyID
	}
	in.GuestID = strings.TrimSpace(in.GuestID)
	if in.GuestID == "" {
		return entities.Quote{}, ErrInvalidGuestID
	}
	if !in.ServiceCategory.IsValid() {
		return entities.Quote{}, ErrInvalidServiceCategory
	}
	if in.RushType == "" {
		in.RushType = entities.RushTypeStandard
	}
	if in.RushType != entities.RushTypeStandard && !in.RushType.IsRush() {
		return entities.Quote{}, ErrInvalidRushType
	}

	priority := entities.QuotePriorityNormal
	if in.RushType == entities.RushTypeSameDay {
		priority = entities.QuotePriorityHigh
	}

	for attempt := 1; attempt <= createQuoteMaxAttempts; attempt++ {
		id, err := u.idGen.Generate(ctx, in.CompanyID)
		if err != nil {
			return entities.Quote{}, err
		}

		now := u.now().UTC()
		q := entities.Quote{
			ID:                    id,
			CompanyID:             in.CompanyID,
			StoreID:               strings.TrimSpace(in.StoreID),
			GuestID:               in.GuestID,
			Status:                entities.QuoteStatusDraft,
			Priority:              priority,
			ServiceCategory:       in.ServiceCategory,
			RushType:              in.RushType,
			TaxRate:               u.defaultTaxRate,
			RushMultiplierApplied: decimal.NewFromInt(1),
			ValidUntil:            now.AddDate(0, 0, u.validDays),
			LineItems:             []entities.QuoteLineItem{},
			Version:               1,
			CreatedAt:             now,
			UpdatedAt:             now,
		}

		created, err := u.quoteRepo.Create(ctx, q)
		if err != nil {
			return entities.Quote{}, err
		}
		if created.ID != "" {
			u.metrics.IncQuotesCreated()
			return created, nil
		}
		// Lost a create race on this ID; draw the next one.
	}
	return entities.Quote{}, ErrQuoteIDExhausted
}

func (u *QuoteUseCase) AddLineItem(ctx context.Context, quoteID string, in LineItemInput) (entities.Quote, PricingResult, error) {
	q, err := u.editableQuote(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, PricingResult{}, err
	}

	in.ServiceTypeID = strings.TrimSpace(in.ServiceTypeID)
	if in.ServiceTypeID == "" {
		return entities.Quote{}, PricingResult{}, ErrServiceTypeNotFound
	}
	st, err := u.stRepo.GetByID(ctx, in.ServiceTypeID)
	if err != nil {
		return entities.Quote{}, PricingResult{}, err
	}
	if st.ID == "" || st.CompanyID != q.CompanyID {
		return entities.Quote{}, PricingResult{}, ErrServiceTypeNotFound
	}
	if !st.Active {
		return entities.Quote{}, PricingResult{}, ErrServiceTypeInactive
	}
	if in.ManualOverrideRetail != nil && in.ManualOverrideRetail.IsNegative() {
		return entities.Quote{}, PricingResult{}, ErrInvalidOverride
	}

	rushType := entities.RushTypeStandard
	if in.IsRush {
		rushType = q.RushType
	}
	res, err := u.pricing.CalculatePrice(ctx, PricingInput{
		CompanyID:        q.CompanyID,
		ServiceType:      st,
		MetalType:        in.MetalType,
		MetalWeightGrams: in.MetalWeightGrams,
		LaborMinutes:     in.LaborMinutes,
		RushType:         rushType,
		PartnerPurchase:  in.PartnerPurchase,
		SizingCategory:   in.SizingCategory,
	})
	if err != nil {
		return entities.Quote{}, PricingResult{}, err
	}

	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		desc = st.Name
	}
	li := entities.QuoteLineItem{
		ID:                   uuid.NewString(),
		ServiceTypeID:        st.ID,
		Description:          desc,
		MetalType:            in.MetalType,
		MetalWeightGrams:     in.MetalWeightGrams,
		LaborMinutes:         in.LaborMinutes,
		BaseCost:             res.BaseCost,
		BaseRetail:           res.BaseRetail,
		CalculatedRetail:     res.FinalRetail,
		ManualOverrideRetail: in.ManualOverrideRetail,
		IsRush:               in.IsRush,
		RushMultiplier:       res.RushMultiplier,
		CreatedAt:            u.now().UTC(),
	}

	items := append(append([]entities.QuoteLineItem{}, q.LineItems...), li)
	totals := u.totalsFor(q, items)
	if res.RushMultiplier.GreaterThan(totals.RushMultiplierApplied) {
		totals.RushMultiplierApplied = res.RushMultiplier
	}
	if res.PricingVersion != "" {
		totals.PricingVersion = res.PricingVersion
	}
	totals.ApprovalRequired = q.ApprovalRequired || res.RequiresManagerApproval

	updated, err := u.quoteRepo.SaveLineItems(ctx, q.ID, q.Version, items, totals)
	if err != nil {
		return entities.Quote{}, PricingResult{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, PricingResult{}, ErrQuoteConflict
	}
	u.metrics.IncLineItemsPriced()
	return updated, res, nil
}

func (u *QuoteUseCase) SetManualOverride(ctx context.Context, quoteID, lineItemID string, override *decimal.Decimal) (entities.Quote, error) {
	if override != nil && override.IsNegative() {
		return entities.Quote{}, ErrInvalidOverride
	}
	q, err := u.editableQuote(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}

	lineItemID = strings.TrimSpace(lineItemID)
	items := append([]entities.QuoteLineItem{}, q.LineItems...)
	found := false
	for i := range items {
		if items[i].ID == lineItemID {
			items[i].ManualOverrideRetail = override
			found = true
			break
		}
	}
	if !found {
		return entities.Quote{}, ErrLineItemNotFound
	}

	updated, err := u.quoteRepo.SaveLineItems(ctx, q.ID, q.Version, items, u.totalsFor(q, items))
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteConflict
	}
	return updated, nil
}

func (u *QuoteUseCase) RecalculateTotals(ctx context.Context, quoteID string, taxRate *decimal.Decimal) (entities.Quote, error) {
	if taxRate != nil && taxRate.IsNegative() {
		return entities.Quote{}, ErrInvalidTaxRate
	}
	q, err := u.editableQuote(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if taxRate != nil {
		q.TaxRate = *taxRate
	}

	updated, err := u.quoteRepo.UpdateTotals(ctx, q.ID, q.Version, u.totalsFor(q, q.LineItems))
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteConflict
	}
	return updated, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) History(ctx context.Context, quoteID string) ([]entities.StatusChangeLog, error) {
	if _, err := u.GetByID(ctx, quoteID); err != nil {
		return nil, err
	}
	return u.logRepo.ListByQuoteID(ctx, strings.TrimSpace(quoteID))
}

func (u *QuoteUseCase) editableQuote(ctx context.Context, quoteID string) (entities.Quote, error) {
	q, err := u.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if !q.Editable() {
		return entities.Quote{}, ErrQuoteNotEditable
	}
	return q, nil
}

// totalsFor prices the quote envelope from its items: subtotal from effective
// retail, tax from the quote's rate, total from the invariant.
func (u *QuoteUseCase) totalsFor(q entities.Quote, items []entities.QuoteLineItem) entities.QuoteTotals {
	probe := q
	probe.LineItems = items
	subtotal := probe.ItemsSubtotal()
	tax := subtotal.Mul(q.TaxRate).Round(2)
	probe.UpdateTotal(subtotal, tax)

	return entities.QuoteTotals{
		Subtotal:              probe.Subtotal,
		TaxRate:               q.TaxRate,
		Tax:                   probe.Tax,
		Total:                 probe.Total,
		RushMultiplierApplied: q.RushMultiplierApplied,
		PricingVersion:        q.PricingVersion,
		ApprovalRequired:      q.ApprovalRequired,
	}
}
