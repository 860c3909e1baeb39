package handlers

import (
	"errors"
	request "joalheria_xpto/internal/adapter/http/dto/request"
	response "joalheria_xpto/internal/adapter/http/dto/response"
	"joalheria_xpto/internal/usecase"
	"joalheria_xpto/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPricingPayload = pkg.NewDomainErrorSimple("INVALID_PRICING_INPUT", "Invalid pricing payload", http.StatusBadRequest)
)

// PricingHandler handles standalone price calculations.

type PricingHandler struct {
	usecase usecase.IPricingUseCase
}

func NewPricingHandler(uc usecase.IPricingUseCase) *PricingHandler {
	return &PricingHandler{usecase: uc}
}

// CalculatePrice prices a catalog service without touching a quote. Counter
// staff use it to answer "what would this run" questions.
func (h *PricingHandler) CalculatePrice(c *gin.Context) {
	var payload request.PricingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.CalculateForServiceType(c.Request.Context(), payload.ServiceTypeID, usecase.PricingInput{
		CompanyID:        payload.CompanyID,
		MetalType:        payload.ResolveMetalType(),
		MetalWeightGrams: payload.MetalWeightGrams,
		LaborMinutes:     payload.LaborMinutes,
		RushType:         payload.ResolveRushType(),
		PartnerPurchase:  payload.PartnerPurchase,
		SizingCategory:   payload.SizingCategory,
	})
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPricingResult(res))
}

func mapPricingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPricingInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceTypeNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_TYPE_NOT_FOUND", "Service type not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceTypeInactive):
		return pkg.NewDomainErrorSimple("SERVICE_TYPE_INACTIVE", "Service type is inactive", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoPricingRuleFound):
		return pkg.NewDomainErrorSimple("NO_PRICING_RULE", "No pricing rule configured for this service", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
