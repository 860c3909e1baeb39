package interfaces

import (
	"context"

	"joalheria_xpto/internal/domain/entities"
)

// IDepositRepository abstracts DynamoDB persistence for Deposit.

type IDepositRepository interface {
	Create(ctx context.Context, d entities.Deposit) (entities.Deposit, error)
	GetByID(ctx context.Context, id string) (entities.Deposit, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.Deposit, error)
}
