package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"joalheria_xpto/internal/adapter/http/handlers/mocks"
	"joalheria_xpto/internal/domain/entities"
	"joalheria_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func draftQuoteFixture() entities.Quote {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	return entities.Quote{
		ID:                    "Q-2026-000123",
		CompanyID:             "COMP1",
		StoreID:               "S1",
		GuestID:               "GUEST1",
		Status:                entities.QuoteStatusDraft,
		Priority:              entities.QuotePriorityNormal,
		ServiceCategory:       entities.ServiceCategoryJewelryRepair,
		RushType:              entities.RushTypeStandard,
		TaxRate:               decimal.RequireFromString("0.0825"),
		RushMultiplierApplied: decimal.NewFromInt(1),
		ValidUntil:            now.AddDate(0, 0, 30),
		LineItems:             []entities.QuoteLineItem{},
		Version:               1,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}

func TestQuoteHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing guest id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"company_id":"COMP1","service_category":"jewelryRepair"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		uc.EXPECT().CreateQuote(gomock.Any(), gomock.Any()).Return(entities.Quote{}, usecase.ErrInvalidRushType)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"company_id":"COMP1","guest_id":"GUEST1","service_category":"jewelryRepair","rush_type":"bogus"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		uc.EXPECT().CreateQuote(gomock.Any(), usecase.CreateQuoteInput{
			CompanyID:       "COMP1",
			StoreID:         "S1",
			GuestID:         "GUEST1",
			ServiceCategory: entities.ServiceCategoryJewelryRepair,
			RushType:        entities.RushTypeStandard,
		}).Return(draftQuoteFixture(), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"company_id":"COMP1","store_id":"S1","guest_id":"GUEST1","service_category":"jewelryRepair"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["quote_id"] != "Q-2026-000123" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if body["status"] != "draft" {
			t.Fatalf("unexpected status in body: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_GetQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/:quote_id", h.GetQuote)

		uc.EXPECT().GetByID(gomock.Any(), "Q-2026-000404").Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/Q-2026-000404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/:quote_id", h.GetQuote)

		uc.EXPECT().GetByID(gomock.Any(), "Q-2026-000123").Return(draftQuoteFixture(), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/Q-2026-000123", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["quote_id"] != "Q-2026-000123" || body["tax_rate"] != "0.0825" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_AddLineItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:quote_id/line-items", h.AddLineItem)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/Q-2026-000123/line-items", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing service type id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:quote_id/line-items", h.AddLineItem)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/Q-2026-000123/line-items", bytes.NewBufferString(`{"labor_minutes":20}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("quote not editable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:quote_id/line-items", h.AddLineItem)

		uc.EXPECT().AddLineItem(gomock.Any(), "Q-2026-000123", gomock.Any()).Return(entities.Quote{}, usecase.PricingResult{}, usecase.ErrQuoteNotEditable)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/Q-2026-000123/line-items", bytes.NewBufferString(`{"service_type_id":"ST1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("no pricing rule", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:quote_id/line-items", h.AddLineItem)

		uc.EXPECT().AddLineItem(gomock.Any(), "Q-2026-000123", gomock.Any()).Return(entities.Quote{}, usecase.PricingResult{}, usecase.ErrNoPricingRuleFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/Q-2026-000123/line-items", bytes.NewBufferString(`{"service_type_id":"ST1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:quote_id/line-items", h.AddLineItem)

		priced := usecase.PricingResult{
			RuleID:         "RULE1",
			PricingVersion: "2026-03",
			BaseCost:       decimal.RequireFromString("90.00"),
			BaseRetail:     decimal.RequireFromString("235.00"),
			FinalRetail:    decimal.RequireFromString("235.00"),
			RushMultiplier: decimal.NewFromInt(1),
		}
		uc.EXPECT().AddLineItem(gomock.Any(), "Q-2026-000123", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, in usecase.LineItemInput) (entities.Quote, usecase.PricingResult, error) {
				if in.ServiceTypeID != "ST1" || in.LaborMinutes != 24 {
					t.Fatalf("unexpected input: %+v", in)
				}
				if !in.MetalWeightGrams.Equal(decimal.RequireFromString("2.5")) {
					t.Fatalf("unexpected metal weight: %s", in.MetalWeightGrams)
				}
				return draftQuoteFixture(), priced, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/Q-2026-000123/line-items", bytes.NewBufferString(`{"service_type_id":"ST1","metal_type":"gold","metal_weight_grams":2.5,"labor_minutes":24}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		pricing, _ := body["pricing"].(map[string]any)
		if pricing["rule_id"] != "RULE1" || pricing["final_retail"] != "235.00" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		quote, _ := body["quote"].(map[string]any)
		if quote["quote_id"] != "Q-2026-000123" {
			t.Fatalf("unexpected quote in body: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_SetLineItemOverride(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/:quote_id/line-items/:line_item_id", h.SetLineItemOverride)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/Q-2026-000123/line-items/li-1", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("line item not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/:quote_id/line-items/:line_item_id", h.SetLineItemOverride)

		uc.EXPECT().SetManualOverride(gomock.Any(), "Q-2026-000123", "li-404", gomock.Any()).Return(entities.Quote{}, usecase.ErrLineItemNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/Q-2026-000123/line-items/li-404", bytes.NewBufferString(`{"manual_override_retail":"200.00"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("sets the override", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/:quote_id/line-items/:line_item_id", h.SetLineItemOverride)

		uc.EXPECT().SetManualOverride(gomock.Any(), "Q-2026-000123", "li-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _ string, override *decimal.Decimal) (entities.Quote, error) {
				if override == nil || override.StringFixed(2) != "200.00" {
					t.Fatalf("unexpected override: %v", override)
				}
				return draftQuoteFixture(), nil
			})

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/Q-2026-000123/line-items/li-1", bytes.NewBufferString(`{"manual_override_retail":200.00}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("null clears the override", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/:quote_id/line-items/:line_item_id", h.SetLineItemOverride)

		uc.EXPECT().SetManualOverride(gomock.Any(), "Q-2026-000123", "li-1", gomock.Nil()).Return(draftQuoteFixture(), nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/Q-2026-000123/line-items/li-1", bytes.NewBufferString(`{"manual_override_retail":null}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_RecalculateTotals(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:quote_id/recalculate", h.RecalculateTotals)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/Q-2026-000123/recalculate", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty body keeps the current rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:quote_id/recalculate", h.RecalculateTotals)

		uc.EXPECT().RecalculateTotals(gomock.Any(), "Q-2026-000123", gomock.Nil()).Return(draftQuoteFixture(), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/Q-2026-000123/recalculate", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("switches the tax rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:quote_id/recalculate", h.RecalculateTotals)

		uc.EXPECT().RecalculateTotals(gomock.Any(), "Q-2026-000123", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, taxRate *decimal.Decimal) (entities.Quote, error) {
				if taxRate == nil || taxRate.String() != "0.1" {
					t.Fatalf("unexpected tax rate: %v", taxRate)
				}
				return draftQuoteFixture(), nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/Q-2026-000123/recalculate", bytes.NewBufferString(`{"tax_rate":"0.1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("version conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:quote_id/recalculate", h.RecalculateTotals)

		uc.EXPECT().RecalculateTotals(gomock.Any(), "Q-2026-000123", gomock.Nil()).Return(entities.Quote{}, usecase.ErrQuoteConflict)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/Q-2026-000123/recalculate", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_GetQuoteHistory(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("quote not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/:quote_id/history", h.GetQuoteHistory)

		uc.EXPECT().History(gomock.Any(), "Q-2026-000404").Return(nil, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/Q-2026-000404/history", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/:quote_id/history", h.GetQuoteHistory)

		now := time.Now().UTC()
		uc.EXPECT().History(gomock.Any(), "Q-2026-000123").Return([]entities.StatusChangeLog{
			{ID: "log-1", QuoteID: "Q-2026-000123", PreviousStatus: entities.QuoteStatusDraft, NewStatus: entities.QuoteStatusPresented, ActorID: "emp1", CreatedAt: now},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/Q-2026-000123/history", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["new_status"] != "presented" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestMapQuoteError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidQuoteID, http.StatusBadRequest},
		{usecase.ErrInvalidCompanyID, http.StatusBadRequest},
		{usecase.ErrInvalidGuestID, http.StatusBadRequest},
		{usecase.ErrInvalidServiceCategory, http.StatusBadRequest},
		{usecase.ErrInvalidRushType, http.StatusBadRequest},
		{usecase.ErrInvalidOverride, http.StatusBadRequest},
		{usecase.ErrInvalidTaxRate, http.StatusBadRequest},
		{usecase.ErrInvalidPricingInput, http.StatusBadRequest},
		{usecase.ErrQuoteNotFound, http.StatusNotFound},
		{usecase.ErrServiceTypeNotFound, http.StatusNotFound},
		{usecase.ErrLineItemNotFound, http.StatusNotFound},
		{usecase.ErrServiceTypeInactive, http.StatusConflict},
		{usecase.ErrQuoteNotEditable, http.StatusConflict},
		{usecase.ErrQuoteConflict, http.StatusConflict},
		{usecase.ErrNoPricingRuleFound, http.StatusUnprocessableEntity},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapQuoteError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
