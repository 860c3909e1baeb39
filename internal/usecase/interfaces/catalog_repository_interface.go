package interfaces

import (
	"context"

	"joalheria_xpto/internal/domain/entities"
)

// IServiceTypeRepository abstracts DynamoDB persistence for the service catalog.

type IServiceTypeRepository interface {
	GetByID(ctx context.Context, id string) (entities.ServiceType, error)
}

// IPricingRuleRepository abstracts DynamoDB persistence for pricing rules.
//
// Rule resolution order during pricing:
//   - the rule the service type points at, when it exists and is active
//   - otherwise the company's active default rule

type IPricingRuleRepository interface {
	GetByID(ctx context.Context, id string) (entities.PricingRule, error)
	GetActiveDefault(ctx context.Context, companyID string) (entities.PricingRule, error)
}
