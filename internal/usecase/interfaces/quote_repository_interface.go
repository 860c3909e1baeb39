package interfaces

import (
	"context"

	"joalheria_xpto/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// The quoting-service must be able to:
//   - create a quote under a freshly generated ID (conditional: ID collisions
//     with imported historical data must surface, never overwrite)
//   - resolve a quote by ID
//   - find the highest issued ID for a company/year (counter re-seeding)
//   - apply workflow and line-item writes guarded by the quote version
//
// Version-guarded writes return the zero Quote with a nil error when the
// stored version no longer matches; callers map that to a conflict.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	HighestQuoteID(ctx context.Context, companyID string, year int) (string, error)
	UpdateWorkflow(ctx context.Context, id string, expectedVersion int64, patch entities.WorkflowPatch) (entities.Quote, error)
	SaveLineItems(ctx context.Context, id string, expectedVersion int64, items []entities.QuoteLineItem, totals entities.QuoteTotals) (entities.Quote, error)
	UpdateTotals(ctx context.Context, id string, expectedVersion int64, totals entities.QuoteTotals) (entities.Quote, error)
}
