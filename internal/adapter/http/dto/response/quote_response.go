package response

import (
	"time"

	"joalheria_xpto/internal/domain/entities"
)

// Money and multiplier fields render as strings so clients never re-round
// what the pricing engine already settled.

type QuoteLineItemResponse struct {
	ID                   string    `json:"id"`
	ServiceTypeID        string    `json:"service_type_id"`
	Description          string    `json:"description,omitempty"`
	MetalType            string    `json:"metal_type,omitempty"`
	MetalWeightGrams     string    `json:"metal_weight_grams"`
	LaborMinutes         int       `json:"labor_minutes"`
	BaseCost             string    `json:"base_cost"`
	BaseRetail           string    `json:"base_retail"`
	CalculatedRetail     string    `json:"calculated_retail"`
	ManualOverrideRetail string    `json:"manual_override_retail,omitempty"`
	FinalRetail          string    `json:"final_retail"`
	IsRush               bool      `json:"is_rush"`
	RushMultiplier       string    `json:"rush_multiplier"`
	CreatedAt            time.Time `json:"created_at"`
}

type QuoteResponse struct {
	QuoteID         string `json:"quote_id"`
	ID              string `json:"id"`
	CompanyID       string `json:"company_id"`
	StoreID         string `json:"store_id,omitempty"`
	GuestID         string `json:"guest_id"`
	Status          string `json:"status"`
	Priority        string `json:"priority"`
	ServiceCategory string `json:"service_category"`
	RushType        string `json:"rush_type"`

	Subtotal              string `json:"subtotal"`
	TaxRate               string `json:"tax_rate"`
	Tax                   string `json:"tax"`
	Total                 string `json:"total"`
	RushMultiplierApplied string `json:"rush_multiplier_applied"`
	PricingVersion        string `json:"pricing_version,omitempty"`

	ApprovalRequired bool       `json:"approval_required"`
	EstimateApproved bool       `json:"estimate_approved"`
	PromisedDueDate  *time.Time `json:"promised_due_date,omitempty"`
	ValidUntil       time.Time  `json:"valid_until"`

	LineItems []QuoteLineItemResponse `json:"line_items"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	items := make([]QuoteLineItemResponse, 0, len(q.LineItems))
	for _, li := range q.LineItems {
		items = append(items, fromQuoteLineItem(li))
	}

	return QuoteResponse{
		QuoteID:               q.ID,
		ID:                    q.ID,
		CompanyID:             q.CompanyID,
		StoreID:               q.StoreID,
		GuestID:               q.GuestID,
		Status:                string(q.Status),
		Priority:              string(q.Priority),
		ServiceCategory:       string(q.ServiceCategory),
		RushType:              string(q.RushType),
		Subtotal:              q.Subtotal.StringFixed(2),
		TaxRate:               q.TaxRate.String(),
		Tax:                   q.Tax.StringFixed(2),
		Total:                 q.Total.StringFixed(2),
		RushMultiplierApplied: q.RushMultiplierApplied.String(),
		PricingVersion:        q.PricingVersion,
		ApprovalRequired:      q.ApprovalRequired,
		EstimateApproved:      q.EstimateApproved,
		PromisedDueDate:       q.PromisedDueDate,
		ValidUntil:            q.ValidUntil,
		LineItems:             items,
		Version:               q.Version,
		CreatedAt:             q.CreatedAt,
		UpdatedAt:             q.UpdatedAt,
	}
}

func fromQuoteLineItem(li entities.QuoteLineItem) QuoteLineItemResponse {
	override := ""
	if li.ManualOverrideRetail != nil {
		override = li.ManualOverrideRetail.StringFixed(2)
	}

	return QuoteLineItemResponse{
		ID:                   li.ID,
		ServiceTypeID:        li.ServiceTypeID,
		Description:          li.Description,
		MetalType:            string(li.MetalType),
		MetalWeightGrams:     li.MetalWeightGrams.String(),
		LaborMinutes:         li.LaborMinutes,
		BaseCost:             li.BaseCost.StringFixed(2),
		BaseRetail:           li.BaseRetail.StringFixed(2),
		CalculatedRetail:     li.CalculatedRetail.StringFixed(2),
		ManualOverrideRetail: override,
		FinalRetail:          li.FinalRetail().StringFixed(2),
		IsRush:               li.IsRush,
		RushMultiplier:       li.RushMultiplier.String(),
		CreatedAt:            li.CreatedAt,
	}
}

type StatusChangeLogResponse struct {
	ID             string    `json:"id"`
	QuoteID        string    `json:"quote_id"`
	PreviousStatus string    `json:"previous_status"`
	NewStatus      string    `json:"new_status"`
	ActorID        string    `json:"actor_id"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromStatusChangeLog(l entities.StatusChangeLog) StatusChangeLogResponse {
	return StatusChangeLogResponse{
		ID:             l.ID,
		QuoteID:        l.QuoteID,
		PreviousStatus: string(l.PreviousStatus),
		NewStatus:      string(l.NewStatus),
		ActorID:        l.ActorID,
		Notes:          l.Notes,
		CreatedAt:      l.CreatedAt,
	}
}

func FromStatusChangeLogs(logs []entities.StatusChangeLog) []StatusChangeLogResponse {
	out := make([]StatusChangeLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, FromStatusChangeLog(l))
	}
	return out
}
