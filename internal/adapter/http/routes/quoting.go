package routes

import (
	"joalheria_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes = "/quotes"
)

func addQuotingRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, workflowHandler *handlers.WorkflowHandler, depositHandler *handlers.DepositHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("/:quote_id", quoteHandler.GetQuote)
		quotes.POST("/:quote_id/line-items", quoteHandler.AddLineItem)
		quotes.PATCH("/:quote_id/line-items/:line_item_id", quoteHandler.SetLineItemOverride)
		quotes.POST("/:quote_id/recalculate", quoteHandler.RecalculateTotals)
		quotes.PATCH("/:quote_id/status", workflowHandler.TransitionQuote)
		quotes.GET("/:quote_id/history", quoteHandler.GetQuoteHistory)

		quotes.POST("/:quote_id/deposit", depositHandler.CollectDeposit)
		quotes.GET("/:quote_id/deposit", depositHandler.GetDepositByQuoteID)
	}
}
