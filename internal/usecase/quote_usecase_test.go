package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"joalheria_xpto/internal/domain/entities"
	mock_interfaces "joalheria_xpto/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type quoteFixture struct {
	uc        *QuoteUseCase
	quoteRepo *mock_interfaces.MockIQuoteRepository
	stRepo    *mock_interfaces.MockIServiceTypeRepository
	logRepo   *mock_interfaces.MockIStatusLogRepository
	seqRepo   *mock_interfaces.MockISequenceRepository
	ruleRepo  *mock_interfaces.MockIPricingRuleRepository
	rateRepo  *mock_interfaces.MockIRateRepository
}

// newQuoteFixture wires the quote usecase against a real pricing engine and
// id generator; only the ports are mocked.
func newQuoteFixture(t *testing.T) quoteFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := quoteFixture{
		quoteRepo: mock_interfaces.NewMockIQuoteRepository(ctrl),
		stRepo:    mock_interfaces.NewMockIServiceTypeRepository(ctrl),
		logRepo:   mock_interfaces.NewMockIStatusLogRepository(ctrl),
		seqRepo:   mock_interfaces.NewMockISequenceRepository(ctrl),
		ruleRepo:  mock_interfaces.NewMockIPricingRuleRepository(ctrl),
		rateRepo:  mock_interfaces.NewMockIRateRepository(ctrl),
	}

	clock := func() time.Time { return pricingTestClock }

	idGen := NewQuoteIDUseCase(f.seqRepo, f.quoteRepo, nil)
	idGen.now = clock
	pricing := NewPricingUseCase(f.ruleRepo, f.rateRepo, f.stRepo)
	pricing.now = clock

	f.uc = NewQuoteUseCase(f.quoteRepo, f.stRepo, f.logRepo, idGen, pricing, nil)
	f.uc.now = clock
	return f
}

func draftQuote() entities.Quote {
	return entities.Quote{
		ID:                    "Q-2026-000101",
		CompanyID:             "COMP1",
		GuestID:               "GUEST1",
		Status:                entities.QuoteStatusDraft,
		Priority:              entities.QuotePriorityNormal,
		ServiceCategory:       entities.ServiceCategoryJewelryRepair,
		RushType:              entities.RushTypeStandard,
		TaxRate:               decimal.RequireFromString("0.0825"),
		RushMultiplierApplied: decimal.NewFromInt(1),
		LineItems:             []entities.QuoteLineItem{},
		Version:               2,
	}
}

func TestQuoteUseCase_CreateQuote(t *testing.T) {
	t.Run("missing company id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil, nil, nil)
		_, err := uc.CreateQuote(context.Background(), CreateQuoteInput{GuestID: "GUEST1", ServiceCategory: entities.ServiceCategoryCustom})
		if !errors.Is(err, ErrInvalidCompanyID) {
			t.Fatalf("expected ErrInvalidCompanyID, got %v", err)
		}
	})

	t.Run("missing guest id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil, nil, nil)
		_, err := uc.CreateQuote(context.Background(), CreateQuoteInput{CompanyID: "COMP1", ServiceCategory: entities.ServiceCategoryCustom})
		if !errors.Is(err, ErrInvalidGuestID) {
			t.Fatalf("expected ErrInvalidGuestID, got %v", err)
		}
	})

	t.Run("invalid service category", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil, nil, nil)
		_, err := uc.CreateQuote(context.Background(), CreateQuoteInput{CompanyID: "COMP1", GuestID: "GUEST1", ServiceCategory: "resale"})
		if !errors.Is(err, ErrInvalidServiceCategory) {
			t.Fatalf("expected ErrInvalidServiceCategory, got %v", err)
		}
	})

	t.Run("invalid rush type", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil, nil, nil)
		_, err := uc.CreateQuote(context.Background(), CreateQuoteInput{
			CompanyID:       "COMP1",
			GuestID:         "GUEST1",
			ServiceCategory: entities.ServiceCategoryJewelryRepair,
			RushType:        "overnight",
		})
		if !errors.Is(err, ErrInvalidRushType) {
			t.Fatalf("expected ErrInvalidRushType, got %v", err)
		}
	})

	t.Run("opens a draft", func(t *testing.T) {
		t.Setenv("DEFAULT_TAX_RATE", "0.0825")
		f := newQuoteFixture(t)
		f.seqRepo.EXPECT().Next(gomock.Any(), "COMP1", 2026).Return(int64(101), nil)
		f.quoteRepo.EXPECT().GetByID(gomock.Any(), "Q-2026-000101").Return(entities.Quote{}, nil)

		var created entities.Quote
		f.quoteRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).
			DoAndReturn(func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				created = q
				return q, nil
			})

		got, err := f.uc.CreateQuote(context.Background(), CreateQuoteInput{
			CompanyID:       "COMP1",
			StoreID:         "STORE7",
			GuestID:         "GUEST1",
			ServiceCategory: entities.ServiceCategoryJewelryRepair,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "Q-2026-000101" {
			t.Fatalf("expected Q-2026-000101, got %s", got.ID)
		}
		if created.Status != entities.QuoteStatusDraft {
			t.Fatalf("expected draft, got %s", created.Status)
		}
		if created.Priority != entities.QuotePriorityNormal {
			t.Fatalf("expected normal priority, got %s", created.Priority)
		}
		if created.Version != 1 {
			t.Fatalf("expected version 1, got %d", created.Version)
		}
		if created.TaxRate.StringFixed(4) != "0.0825" {
			t.Fatalf("expected tax rate 0.0825, got %s", created.TaxRate)
		}
		wantValid := pricingTestClock.AddDate(0, 0, 30)
		if !created.ValidUntil.Equal(wantValid) {
			t.Fatalf("expected valid until %s, got %s", wantValid, created.ValidUntil)
		}
		if len(created.LineItems) != 0 {
			t.Fatalf("expected no line items, got %d", len(created.LineItems))
		}
		if created.StoreID != "STORE7" || created.GuestID != "GUEST1" {
			t.Fatalf("unexpected store/guest: %+v", created)
		}
	})

	t.Run("same day rush opens high priority", func(t *testing.T) {
		f := newQuoteFixture(t)
		f.seqRepo.EXPECT().Next(gomock.Any(), "COMP1", 2026).Return(int64(101), nil)
		f.quoteRepo.EXPECT().GetByID(gomock.Any(), "Q-2026-000101").Return(entities.Quote{}, nil)
		f.quoteRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				return q, nil
			})

		got, err := f.uc.CreateQuote(context.Background(), CreateQuoteInput{
			CompanyID:       "COMP1",
			GuestID:         "GUEST1",
			ServiceCategory: entities.ServiceCategoryJewelryRepair,
			RushType:        entities.RushTypeSameDay,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Priority != entities.QuotePriorityHigh {
			t.Fatalf("expected high priority, got %s", got.Priority)
		}
	})

	t.Run("create race draws the next id", func(t *testing.T) {
		f := newQuoteFixture(t)
		gomock.InOrder(
			f.seqRepo.EXPECT().Next(gomock.Any(), "COMP1", 2026).Return(int64(101), nil),
			f.quoteRepo.EXPECT().GetByID(gomock.Any(), "Q-2026-000101").Return(entities.Quote{}, nil),
			f.quoteRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Quote{}, nil),
			f.seqRepo.EXPECT().Next(gomock.Any(), "COMP1", 2026).Return(int64(102), nil),
			f.quoteRepo.EXPECT().GetByID(gomock.Any(), "Q-2026-000102").Return(entities.Quote{}, nil),
			f.quoteRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, q entities.Quote) (entities.Quote, error) {
					return q, nil
				}),
		)

		got, err := f.uc.CreateQuote(context.Background(), CreateQuoteInput{
			CompanyID:       "COMP1",
			GuestID:         "GUEST1",
			ServiceCategory: entities.ServiceCategoryJewelryRepair,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "Q-2026-000102" {
			t.Fatalf("expected the retry to land on Q-2026-000102, got %s", got.ID)
		}
	})

	t.Run("id generation error", func(t *testing.T) {
		f := newQuoteFixture(t)
		f.seqRepo.EXPECT().Next(gomock.Any(), "COMP1", 2026).Return(int64(0), errors.New("db"))

		_, err := f.uc.CreateQuote(context.Background(), CreateQuoteInput{
			CompanyID:       "COMP1",
			GuestID:         "GUEST1",
			ServiceCategory: entities.ServiceCategoryJewelryRepair,
		})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestQuoteUseCase_AddLineItem(t *testing.T) {
	lineInput := func() LineItemInput {
		return LineItemInput{
			ServiceTypeID:    "ST1",
			MetalType:        entities.MetalTypeGold,
			MetalWeightGrams: decimal.RequireFromString("2.5"),
			LaborMinutes:     24,
		}
	}

	t.Run("quote not found", func(t *testing.T) {
		f := newQuoteFixture(t)
		f.quoteRepo.EXPECT().GetByID(gomock.Any(), "Q-2026-000101").Return(entities.Quote{}, nil)

		_, _, err := f.uc.AddLineItem(context.Background(), "Q-2026-000101", lineInput())
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("quote no longer editable", func(t *testing.T) {
		f := newQuoteFixture(t)
		q := draftQuote()
		q.Status = entities.QuoteStatusPresented
		f.quoteRepo.EXPECT().GetByID(gomock.Any(), "Q-2026-000101").Return(q, nil)

		_, _, err := f.uc.AddLineItem(context.Background(), "Q-2026-000101", lineInput())
		if !errors.Is(err, ErrQuoteNotEditable) {
			t.Fatalf("expected ErrQuoteNotEditable, got %v", err)
		}
	})

	t.Run("service type not found", func(t *testing.T) {
		f := newQuoteFixture(t)
		f.quoteRepo.EXPECT().GetByID(gomock.Any(), "Q-2026-000101").Return(draftQuote(), nil)
		f.stRepo.EXPECT().GetByID(gomock.Any(), "ST1").Return(entities.ServiceType{}, nil)

		_, _, err := f.uc.AddLineItem(context.Background(), "Q-2026-000101", lineInput())
		if !errors.Is(err, ErrServiceTypeNotFound) {
			t.Fatalf("expected ErrServiceTypeNotFound, got %v", err)
		}
	})

	t.Run("service type from another company", func(t *testing.T) {
		f := newQuoteFixture(t)
		f.quoteRepo.EXPECT().GetByID(gomock.Any(), "Q-2026-000101").Return(draftQuote(), nil)
		st := repairServiceType()
		st.CompanyID = "COMP2"
		f.stRepo.EXPECT().GetByID(gomock.Any(), "ST1").Return(st, nil)

		_, _, err := f.uc.AddLineItem(context.Background(), "Q-2026-000101", lineInput())
		if !errors.Is(err, ErrServiceTypeNotFound) {
			t.Fatalf("expected ErrServiceTypeNotFound, got %v", err)
		}
	})

	t.Run("service type inactive", func(t *testing.T) {
		f := newQuoteFixture(t)
		f.quoteRepo.EXPECT().GetByID(gomock.Any(), "Q-2026-000101").Return(draftQuote(), nil)
		st := repairServiceType()
		st.Active = false
		f.stRepo.EXPECT().GetByID(gomock.Any(), "ST1").Return(st, nil)

		_, _, err := f.uc.AddLineItem(context.Background(), "Q-2026-000101", lineInput())
		if !errors.Is(err, ErrServiceTypeInactive) {
			t.Fatalf("expected ErrServiceTypeInactive, got %v", err)
		}
	})

	t.Run("negative override rejected", func(t *testing.T) {
		f := newQuoteFixture(t)
		f.quoteRepo.EXPECT().GetByID(gomock.Any(), "Q-2026-000101").Return(draftQuote(), nil)
		f.stRepo.EXPECT().GetByID(gomock.Any(), "ST1").Return(repairServiceType(), nil)

		in := lineInput()
		neg := decimal.RequireFromString("-10")
		in.ManualOverrideRetail = &neg
		_, _, err := f.uc.AddLineItem(context.Background(), "Q-2026-000101", in)
		if !errors.Is(err, ErrInvalidOverride) {
			t.Fatalf("expected ErrInvalidOverride, got %v", err)
		}
	})

	t.Run("prices the item and totals", func(t *testing.T) {
		f := newQuoteFixture(t)
		f.quoteRepo.EXPECT().GetByID(gomock.Any(), "Q-2026-000101").Return(draftQuote(), nil)
		f.stRepo.EXPECT().GetByID(gomock.Any(), "ST1").Return(repairServiceType(), nil)
		expectDefaultRule(f.ruleRepo)
		expectFreshRates(f.rateRepo)

		var savedItems []entities.QuoteLineItem
		var savedTotals entities.QuoteTotals
		f.quoteRepo.EXPECT().SaveLineItems(gomock.Any(), "Q-2026-000101", int64(2), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ int64, items []entities.QuoteLineItem, totals entities.QuoteTotals) (entities.Quote, error) {
				savedItems = items
				savedTotals = totals
				q := draftQuote()
				q.LineItems = items
				q.Version = 3
				return q, nil
			})

		updated, res, err := f.uc.AddLineItem(context.Background(), "Q-2026-000101", lineInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.FinalRetail.StringFixed(2) != "235.00" {
			t.Fatalf("expected priced retail 235.00, got %s", res.FinalRetail.StringFixed(2))
		}
		if len(savedItems) != 1 {
			t.Fatalf("expected one line item, got %d", len(savedItems))
		}
		li := savedItems[0]
		if li.ID == "" {
			t.Fatal("expected a line item id")
		}
		if li.Description != "ring shank repair" {
			t.Fatalf("expected the catalog name as description, got %q", li.Description)
		}
		if li.CalculatedRetail.StringFixed(2) != "235.00" || li.BaseCost.StringFixed(2) != "90.00" {
			t.Fatalf("unexpected item amounts: %+v", li)
		}
		if savedTotals.Subtotal.StringFixed(2) != "235.00" {
			t.Fatalf("expected subtotal 235.00, got %s", savedTotals.Subtotal.StringFixed(2))
		}
		if savedTotals.Tax.StringFixed(2) != "19.39" {
			t.Fatalf("expected tax 19.39, got %s", savedTotals.Tax.StringFixed(2))
		}
		if savedTotals.Total.StringFixed(2) != "254.39" {
			t.Fatalf("expected total 254.39, got %s", savedTotals.Total.StringFixed(2))
		}
		if savedTotals.PricingVersion != "2026-01" {
			t.Fatalf("expected pricing version 2026-01, got %s", savedTotals.PricingVersion)
		}
		if savedTotals.ApprovalRequired {
			t.Fatal("expected no approval requirement below threshold")
		}
		if updated.Version != 3 {
			t.Fatalf("expected the committed quote back, got %+v", updated)
		}
	})

	t.Run("rush item escalates the quote multiplier", func(t *testing.T) {
		f := newQuoteFixture(t)
		q := draftQuote()
		q.RushType = entities.RushTypeSameDay
		f.quoteRepo.EXPECT().GetByID(gomock.Any(), "Q-2026-000101").Return(q, nil)
		f.stRepo.EXPECT().GetByID(gomock.Any(), "ST1").Return(repairServiceType(), nil)
		expectDefaultRule(f.ruleRepo)
		expectFreshRates(f.rateRepo)

		var savedTotals entities.QuoteTotals
		f.quoteRepo.EXPECT().SaveLineItems(gomock.Any(), "Q-2026-000101", int64(2), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ int64, items []entities.QuoteLineItem, totals entities.QuoteTotals) (entities.Quote, error) {
				savedTotals = totals
				q.LineItems = items
				q.Version = 3
				return q, nil
			})

		in := lineInput()
		in.IsRush = true
		_, res, err := f.uc.AddLineItem(context.Background(), "Q-2026-000101", in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.FinalRetail.StringFixed(2) != "352.50" {
			t.Fatalf("expected rush retail 352.50, got %s", res.FinalRetail.StringFixed(2))
		}
		if savedTotals.RushMultiplierApplied.StringFixed(1) != "1.5" {
			t.Fatalf("expected quote multiplier 1.5, got %s", savedTotals.RushMultiplierApplied)
		}
	})

	t.Run("threshold marks the quote for approval", func(t *testing.T) {
		t.Setenv("MANAGER_APPROVAL_THRESHOLD", "200.00")
		f := newQuoteFixture(t)
		f.quoteRepo.EXPECT().GetByID(gomock.Any(), "Q-2026-000101").Return(draftQuote(), nil)
		f.stRepo.EXPECT().GetByID(gomock.Any(), "ST1").Return(repairServiceType(), nil)
		expectDefaultRule(f.ruleRepo)
		expectFreshRates(f.rateRepo)

		var savedTotals entities.QuoteTotals
		f.quoteRepo.EXPECT().SaveLineItems(gomock.Any(), "Q-2026-000101", int64(2), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ int64, items []entities.QuoteLineItem, totals entities.QuoteTotals) (entities.Quote, error) {
				savedTotals = totals
				q := draftQuote()
				q.LineItems = items
				return q, nil
			})

		_, res, err := f.uc.AddLineItem(context.Background(), "Q-2026-000101", lineInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.RequiresManagerApproval {
			t.Fatal("expected the pricing result to require approval")
		}
		if !savedTotals.ApprovalRequired {
			t.Fatal("expected the totals to carry the approval flag")
		}
	})

	t.Run("version conflict", func(t *testing.T) {
		f := newQuoteFixture(t)
		f.quoteRepo.EXPECT().GetByID(gomock.Any(), "Q-2026-000101").Return(draftQuote(), nil)
		f.stRepo.EXPECT().GetByID(gomock.Any(), "ST1").Return(repairServiceType(), nil)
		expectDefaultRule(f.ruleRepo)
		expectFreshRates(f.rateRepo)
		f.quoteRepo.EXPECT().SaveLineItems(gomock.Any(), "Q-2026-000101", int64(2), gomock.Any(), gomock.Any()).
			Return(entities.Quote{}, nil)

		_, _, err := f.uc.AddLineItem(context.Background(), "Q-2026-000101", lineInput())
		if !errors.Is(err, ErrQuoteConflict) {
			t.Fatalf("expected ErrQuoteConflict, got %v", err)
		}
	})
}

func TestQuoteUseCase_SetManualOverride(t *testing.T) {
	pricedQuote := func() entities.Quote {
		q := draftQuote()
		q.LineItems = []entities.QuoteLineItem{{
			ID:               "LI1",
			ServiceTypeID:    "ST1",
			CalculatedRetail: decimal.RequireFromString("235.00"),
			RushMultiplier:   decimal.NewFromInt(1),
		}}
		return q
	}

	t.Run("negative override", func(t *testing.T) {
		f := newQuoteFixture(t)
		neg := decimal.RequireFromString("-1")
		_, err := f.uc.SetManualOverride(context.Background(), "Q-2026-000101", "LI1", &neg)
		if !errors.Is(err, ErrInvalidOverride) {
			t.Fatalf("expected ErrInvalidOverride, got %v", err)
		}
	})

	t.Run("line item not found", func(t *testing.T) {
		f := newQuoteFixture(t)
		f.quoteRepo.EXPECT().GetByID(gomock.Any(), "Q-2026-000101").Return(pricedQuote(), nil)

		override := decimal.RequireFromString("200.00")
		_, err := f.uc.SetManualOverride(context.Background(), "Q-2026-000101", "LI9", &override)
		if !errors.Is(err, ErrLineItemNotFound) {
			t.Fatalf("expected ErrLineItemNotFound, got %v", err)
		}
	})

	t.Run("override wins over calculated", func(t *testing.T) {
		f := newQuoteFixture(t)
		f.quoteRepo.EXPECT().GetByID(gomock.Any(), "Q-2026-000101").Return(pricedQuote(), nil)

		var savedItems []entities.QuoteLineItem
		var savedTotals entities.QuoteTotals
		f.quoteRepo.EXPECT().SaveLineItems(gomock.Any(), "Q-2026-000101", int64(2), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ int64, items []entities.QuoteLineItem, totals entities.QuoteTotals) (entities.Quote, error) {
				savedItems = items
				savedTotals = totals
				q := pricedQuote()
				q.LineItems = items
				q.Version = 3
				return q, nil
			})

		override := decimal.RequireFromString("200.00")
		_, err := f.uc.SetManualOverride(context.Background(), "Q-2026-000101", "LI1", &override)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if savedItems[0].ManualOverrideRetail == nil || savedItems[0].ManualOverrideRetail.StringFixed(2) != "200.00" {
			t.Fatalf("expected override 200.00 on the item, got %+v", savedItems[0])
		}
		if savedTotals.Subtotal.StringFixed(2) != "200.00" {
			t.Fatalf("expected subtotal 200.00, got %s", savedTotals.Subtotal.StringFixed(2))
		}
		if savedTotals.Tax.StringFixed(2) != "16.50" || savedTotals.Total.StringFixed(2) != "216.50" {
			t.Fatalf("expected tax 16.50 total 216.50, got %s / %s", savedTotals.Tax.StringFixed(2), savedTotals.Total.StringFixed(2))
		}
	})

	t.Run("clearing the override restores the calculated price", func(t *testing.T) {
		f := newQuoteFixture(t)
		q := pricedQuote()
		override := decimal.RequireFromString("200.00")
		q.LineItems[0].ManualOverrideRetail = &override
		f.quoteRepo.EXPECT().GetByID(gomock.Any(), "Q-2026-000101").Return(q, nil)

		var savedTotals entities.QuoteTotals
		f.quoteRepo.EXPECT().SaveLineItems(gomock.Any(), "Q-2026-000101", int64(2), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ int64, items []entities.QuoteLineItem, totals entities.QuoteTotals) (entities.Quote, error) {
				savedTotals = totals
				q.LineItems = items
				return q, nil
			})

		_, err := f.uc.SetManualOverride(context.Background(), "Q-2026-000101", "LI1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if savedTotals.Subtotal.StringFixed(2) != "235.00" {
			t.Fatalf("expected subtotal back at 235.00, got %s", savedTotals.Subtotal.StringFixed(2))
		}
	})
}

func TestQuoteUseCase_RecalculateTotals(t *testing.T) {
	pricedQuote := func() entities.Quote {
		q := draftQuote()
		q.LineItems = []entities.QuoteLineItem{{
			ID:               "LI1",
			CalculatedRetail: decimal.RequireFromString("235.00"),
			RushMultiplier:   decimal.NewFromInt(1),
		}}
		return q
	}

	t.Run("negative tax rate", func(t *testing.T) {
		f := newQuoteFixture(t)
		neg := decimal.RequireFromString("-0.05")
		_, err := f.uc.RecalculateTotals(context.Background(), "Q-2026-000101", &neg)
		if !errors.Is(err, ErrInvalidTaxRate) {
			t.Fatalf("expected ErrInvalidTaxRate, got %v", err)
		}
	})

	t.Run("new tax rate", func(t *testing.T) {
		f := newQuoteFixture(t)
		f.quoteRepo.EXPECT().GetByID(gomock.Any(), "Q-2026-000101").Return(pricedQuote(), nil)

		var savedTotals entities.QuoteTotals
		f.quoteRepo.EXPECT().UpdateTotals(gomock.Any(), "Q-2026-000101", int64(2), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ int64, totals entities.QuoteTotals) (entities.Quote, error) {
				savedTotals = totals
				q := pricedQuote()
				q.Version = 3
				return q, nil
			})

		rate := decimal.RequireFromString("0.10")
		_, err := f.uc.RecalculateTotals(context.Background(), "Q-2026-000101", &rate)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if savedTotals.TaxRate.StringFixed(2) != "0.10" {
			t.Fatalf("expected tax rate 0.10, got %s", savedTotals.TaxRate)
		}
		if savedTotals.Tax.StringFixed(2) != "23.50" || savedTotals.Total.StringFixed(2) != "258.50" {
			t.Fatalf("expected tax 23.50 total 258.50, got %s / %s", savedTotals.Tax.StringFixed(2), savedTotals.Total.StringFixed(2))
		}
	})

	t.Run("nil tax rate keeps the current one", func(t *testing.T) {
		f := newQuoteFixture(t)
		f.quoteRepo.EXPECT().GetByID(gomock.Any(), "Q-2026-000101").Return(pricedQuote(), nil)

		var savedTotals entities.QuoteTotals
		f.quoteRepo.EXPECT().UpdateTotals(gomock.Any(), "Q-2026-000101", int64(2), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ int64, totals entities.QuoteTotals) (entities.Quote, error) {
				savedTotals = totals
				return pricedQuote(), nil
			})

		_, err := f.uc.RecalculateTotals(context.Background(), "Q-2026-000101", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if savedTotals.Tax.StringFixed(2) != "19.39" {
			t.Fatalf("expected tax 19.39 at the stored rate, got %s", savedTotals.Tax.StringFixed(2))
		}
	})
}

func TestQuoteUseCase_GetByIDAndHistory(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		f := newQuoteFixture(t)
		_, err := f.uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		f := newQuoteFixture(t)
		f.quoteRepo.EXPECT().GetByID(gomock.Any(), "Q-2026-000101").Return(entities.Quote{}, nil)
		_, err := f.uc.GetByID(context.Background(), "Q-2026-000101")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("history lists the audit trail", func(t *testing.T) {
		f := newQuoteFixture(t)
		f.quoteRepo.EXPECT().GetByID(gomock.Any(), "Q-2026-000101").Return(draftQuote(), nil)
		f.logRepo.EXPECT().ListByQuoteID(gomock.Any(), "Q-2026-000101").Return([]entities.StatusChangeLog{
			{ID: "L1", QuoteID: "Q-2026-000101", PreviousStatus: entities.QuoteStatusDraft, NewStatus: entities.QuoteStatusPresented},
		}, nil)

		logs, err := f.uc.History(context.Background(), "Q-2026-000101")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(logs) != 1 || logs[0].ID != "L1" {
			t.Fatalf("unexpected history: %+v", logs)
		}
	})

	t.Run("history for a missing quote", func(t *testing.T) {
		f := newQuoteFixture(t)
		f.quoteRepo.EXPECT().GetByID(gomock.Any(), "Q-2026-000101").Return(entities.Quote{}, nil)

		_, err := f.uc.History(context.Background(), "Q-2026-000101")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})
}
