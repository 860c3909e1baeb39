package request

import (
	"strings"
	"time"

	"joalheria_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// AppraisalRequest asks for an appraisal fee calculation. No quote is
// touched; appraisals are fee-scheduled work, not priced repairs.
type AppraisalRequest struct {
	Type                  string          `json:"type" binding:"required"`
	ItemCount             int             `json:"item_count"`
	LargestCaratWeight    decimal.Decimal `json:"largest_carat_weight"`
	IsUpdate              bool            `json:"is_update"`
	OriginalAppraisalDate *time.Time      `json:"original_appraisal_date"`
	DetailedReport        bool            `json:"detailed_report"`
	Expedited             bool            `json:"expedited"`
}

func (r AppraisalRequest) ResolveType() entities.AppraisalType {
	return entities.AppraisalType(strings.TrimSpace(r.Type))
}
