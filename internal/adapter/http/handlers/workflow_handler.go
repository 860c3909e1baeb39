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
	errInvalidTransitionPayload = pkg.NewDomainErrorSimple("INVALID_TRANSITION_INPUT", "Invalid transition payload", http.StatusBadRequest)
)

// WorkflowHandler handles quote status transitions.

type WorkflowHandler struct {
	usecase usecase.IWorkflowUseCase
}

func NewWorkflowHandler(uc usecase.IWorkflowUseCase) *WorkflowHandler {
	return &WorkflowHandler{usecase: uc}
}

// TransitionQuote moves a quote to the requested status using quote_id in path.
func (h *WorkflowHandler) TransitionQuote(c *gin.Context) {
	var payload request.QuoteTransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTransitionPayload.HTTPStatus, errInvalidTransitionPayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.Transition(c.Request.Context(), usecase.TransitionInput{
		QuoteID:      c.Param("quote_id"),
		TargetStatus: payload.ResolveTargetStatus(),
		ActorID:      payload.ActorID,
		Notes:        payload.Notes,
	})
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func mapWorkflowError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, usecase.ErrInvalidQuoteStatus),
		errors.Is(err, usecase.ErrInvalidActorID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrEstimateNotApproved):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_APPROVED", "Estimate not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrWorkCannotStart):
		return pkg.NewDomainErrorSimple("WORK_CANNOT_START", "Work cannot start before approval", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoActiveWork):
		return pkg.NewDomainErrorSimple("NO_ACTIVE_WORK", "No active work to review", http.StatusConflict)
	case errors.Is(err, usecase.ErrQualityControlRequired):
		return pkg.NewDomainErrorSimple("QUALITY_CONTROL_REQUIRED", "Quality control must pass before pickup", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteConflict):
		return pkg.NewDomainErrorSimple("QUOTE_CONFLICT", "Quote was modified concurrently", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
