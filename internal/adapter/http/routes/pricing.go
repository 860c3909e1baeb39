package routes

import (
	"joalheria_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPricing    = "/pricing"
	PathAppraisals = "/appraisals"
)

func addPricingRoutes(rg *gin.RouterGroup, pricingHandler *handlers.PricingHandler, appraisalHandler *handlers.AppraisalHandler) {
	pricing := rg.Group(PathPricing)
	{
		pricing.POST("/calculate", pricingHandler.CalculatePrice)
	}

	appraisals := rg.Group(PathAppraisals)
	{
		appraisals.POST("/calculate", appraisalHandler.CalculateAppraisal)
	}
}
