package response

import (
	"joalheria_xpto/internal/usecase"
)

type AppraisalResponse struct {
	Type                  string   `json:"type"`
	ItemCount             int      `json:"item_count"`
	BandMultiplier        string   `json:"band_multiplier"`
	BaseFee               string   `json:"base_fee"`
	UpdateDiscountApplied bool     `json:"update_discount_applied"`
	ReportFee             string   `json:"report_fee"`
	ExpediteMultiplier    string   `json:"expedite_multiplier"`
	TotalFee              string   `json:"total_fee"`
	Notes                 []string `json:"notes,omitempty"`
	Warnings              []string `json:"warnings,omitempty"`
}

func FromAppraisalResult(r usecase.AppraisalResult) AppraisalResponse {
	return AppraisalResponse{
		Type:                  string(r.Type),
		ItemCount:             r.ItemCount,
		BandMultiplier:        r.BandMultiplier.String(),
		BaseFee:               r.BaseFee.StringFixed(2),
		UpdateDiscountApplied: r.UpdateDiscountApplied,
		ReportFee:             r.ReportFee.StringFixed(2),
		ExpediteMultiplier:    r.ExpediteMultiplier.String(),
		TotalFee:              r.TotalFee.StringFixed(2),
		Notes:                 r.Notes,
		Warnings:              r.Warnings,
	}
}
