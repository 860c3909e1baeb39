package handlers

import (
	"errors"
	"io"
	request "joalheria_xpto/internal/adapter/http/dto/request"
	response "joalheria_xpto/internal/adapter/http/dto/response"
	"joalheria_xpto/internal/usecase"
	"joalheria_xpto/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for quote composition: drafts, line
// items, overrides and totals.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuote opens a draft quote for a guest.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.CreateQuote(c.Request.Context(), usecase.CreateQuoteInput{
		CompanyID:       payload.CompanyID,
		StoreID:         payload.StoreID,
		GuestID:         payload.GuestID,
		ServiceCategory: payload.ResolveServiceCategory(),
		RushType:        payload.ResolveRushType(),
	})
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

// GetQuote returns one quote with its line items and totals.
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetByID(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// AddLineItem prices one service onto a draft quote and returns the refreshed
// quote together with the pricing breakdown of the new line.
func (h *QuoteHandler) AddLineItem(c *gin.Context) {
	var payload request.QuoteLineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, priced, err := h.usecase.AddLineItem(c.Request.Context(), c.Param("quote_id"), usecase.LineItemInput{
		ServiceTypeID:        payload.ServiceTypeID,
		Description:          payload.Description,
		MetalType:            payload.ResolveMetalType(),
		MetalWeightGrams:     payload.MetalWeightGrams,
		LaborMinutes:         payload.LaborMinutes,
		IsRush:               payload.IsRush,
		PartnerPurchase:      payload.PartnerPurchase,
		SizingCategory:       payload.SizingCategory,
		ManualOverrideRetail: payload.ManualOverrideRetail,
	})
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuoteAndPricing(quote, priced))
}

// SetLineItemOverride sets or clears the manual retail override on one line.
func (h *QuoteHandler) SetLineItemOverride(c *gin.Context) {
	var payload request.LineItemOverrideRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.SetManualOverride(c.Request.Context(), c.Param("quote_id"), c.Param("line_item_id"), payload.ManualOverrideRetail)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// RecalculateTotals re-runs quote totals, optionally switching the tax rate.
// The body is optional; an empty body keeps the rate already on the quote.
func (h *QuoteHandler) RecalculateTotals(c *gin.Context) {
	var payload request.RecalculateTotalsRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.RecalculateTotals(c.Request.Context(), c.Param("quote_id"), payload.TaxRate)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// GetQuoteHistory returns the status audit trail of a quote, oldest first.
func (h *QuoteHandler) GetQuoteHistory(c *gin.Context) {
	logs, err := h.usecase.History(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStatusChangeLogs(logs))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, usecase.ErrInvalidCompanyID),
		errors.Is(err, usecase.ErrInvalidGuestID),
		errors.Is(err, usecase.ErrInvalidServiceCategory),
		errors.Is(err, usecase.ErrInvalidRushType),
		errors.Is(err, usecase.ErrInvalidOverride),
		errors.Is(err, usecase.ErrInvalidTaxRate),
		errors.Is(err, usecase.ErrInvalidPricingInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceTypeNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_TYPE_NOT_FOUND", "Service type not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLineItemNotFound):
		return pkg.NewDomainErrorSimple("LINE_ITEM_NOT_FOUND", "Line item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceTypeInactive):
		return pkg.NewDomainErrorSimple("SERVICE_TYPE_INACTIVE", "Service type is inactive", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotEditable):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_EDITABLE", "Quote is no longer editable", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteConflict):
		return pkg.NewDomainErrorSimple("QUOTE_CONFLICT", "Quote was modified concurrently", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoPricingRuleFound):
		return pkg.NewDomainErrorSimple("NO_PRICING_RULE", "No pricing rule configured for this service", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
