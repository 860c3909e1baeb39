package interfaces

import (
	"context"

	"joalheria_xpto/internal/domain/entities"
)

// IRateRepository abstracts lookups of market and labor rates.
//
// Both lookups return the most recent active entry for the key, or the zero
// value when the company never loaded one. Missing rates are a pricing
// warning, not an error, so the signature stays error-for-infrastructure-only.

type IRateRepository interface {
	LatestMetalRate(ctx context.Context, companyID string, metal entities.MetalType) (entities.MetalMarketRate, error)
	LatestLaborRate(ctx context.Context, companyID string, role entities.LaborRole) (entities.LaborRate, error)
}
