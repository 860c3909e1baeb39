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
	errInvalidAppraisalPayload = pkg.NewDomainErrorSimple("INVALID_APPRAISAL_INPUT", "Invalid appraisal payload", http.StatusBadRequest)
)

// AppraisalHandler handles appraisal fee calculations.

type AppraisalHandler struct {
	usecase usecase.IAppraisalUseCase
}

func NewAppraisalHandler(uc usecase.IAppraisalUseCase) *AppraisalHandler {
	return &AppraisalHandler{usecase: uc}
}

// CalculateAppraisal quotes the fee for an appraisal engagement.
func (h *AppraisalHandler) CalculateAppraisal(c *gin.Context) {
	var payload request.AppraisalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAppraisalPayload.HTTPStatus, errInvalidAppraisalPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.CalculateFee(c.Request.Context(), usecase.AppraisalInput{
		Type:                  payload.ResolveType(),
		ItemCount:             payload.ItemCount,
		LargestCaratWeight:    payload.LargestCaratWeight,
		IsUpdate:              payload.IsUpdate,
		OriginalAppraisalDate: payload.OriginalAppraisalDate,
		DetailedReport:        payload.DetailedReport,
		Expedited:             payload.Expedited,
	})
	if err != nil {
		appErr := mapAppraisalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAppraisalResult(res))
}

func mapAppraisalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAppraisalType):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
