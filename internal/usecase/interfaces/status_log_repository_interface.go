package interfaces

import (
	"context"

	"joalheria_xpto/internal/domain/entities"
)

// IStatusLogRepository abstracts DynamoDB persistence for the transition audit log.

type IStatusLogRepository interface {
	Append(ctx context.Context, log entities.StatusChangeLog) (entities.StatusChangeLog, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.StatusChangeLog, error)
}
