package entities

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestQuoteIDFormatParse(t *testing.T) {
	t.Run("round trip preserves year and sequence", func(t *testing.T) {
		id := FormatQuoteID(2026, 123)
		if id != "Q-2026-000123" {
			t.Fatalf("unexpected id: %s", id)
		}
		year, seq, err := ParseQuoteID(id)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if year != 2026 || seq != 123 {
			t.Fatalf("round trip mismatch: year=%d seq=%d", year, seq)
		}
	})

	t.Run("sequence keeps leading zeros", func(t *testing.T) {
		if got := FormatQuoteID(2025, 1); got != "Q-2025-000001" {
			t.Fatalf("unexpected id: %s", got)
		}
		if got := FormatQuoteID(2025, MaxQuoteSequence); got != "Q-2025-999999" {
			t.Fatalf("unexpected id: %s", got)
		}
	})

	t.Run("malformed ids return error", func(t *testing.T) {
		for _, id := range []string{
			"",
			"Q-2026-1234",
			"Q-2026-1234567",
			"q-2026-000123",
			"Q-26-000123",
			"QT-2026-000123",
			"Q-2026-00012a",
			"Q-2026-000123 ",
		} {
			if _, _, err := ParseQuoteID(id); err == nil {
				t.Fatalf("expected error for %q", id)
			}
			if IsValidQuoteID(id) {
				t.Fatalf("expected %q to be invalid", id)
			}
		}
	})

	t.Run("valid id passes validation", func(t *testing.T) {
		if !IsValidQuoteID("Q-2026-000001") {
			t.Fatalf("expected valid id")
		}
	})
}

func TestQuoteLineItemFinalRetail(t *testing.T) {
	t.Run("uses calculated retail by default", func(t *testing.T) {
		li := QuoteLineItem{CalculatedRetail: decimal.RequireFromString("235.00")}
		if !li.FinalRetail().Equal(decimal.RequireFromString("235.00")) {
			t.Fatalf("unexpected final retail: %s", li.FinalRetail())
		}
	})

	t.Run("manual override wins", func(t *testing.T) {
		override := decimal.RequireFromString("180.00")
		li := QuoteLineItem{
			CalculatedRetail:     decimal.RequireFromString("235.00"),
			ManualOverrideRetail: &override,
		}
		if !li.FinalRetail().Equal(override) {
			t.Fatalf("unexpected final retail: %s", li.FinalRetail())
		}
	})

	t.Run("never goes negative", func(t *testing.T) {
		override := decimal.RequireFromString("-10.00")
		li := QuoteLineItem{
			CalculatedRetail:     decimal.RequireFromString("50.00"),
			ManualOverrideRetail: &override,
		}
		if !li.FinalRetail().IsZero() {
			t.Fatalf("expected zero, got %s", li.FinalRetail())
		}
	})
}

func TestQuoteUpdateTotal(t *testing.T) {
	q := Quote{}
	q.UpdateTotal(decimal.RequireFromString("235.00"), decimal.RequireFromString("19.39"))
	if !q.Total.Equal(decimal.RequireFromString("254.39")) {
		t.Fatalf("total must equal subtotal+tax, got %s", q.Total)
	}
}

func TestAppraisalTierBandMultiplier(t *testing.T) {
	tier := AppraisalPricingTier{
		CaratBands: []CaratBand{
			{MaxCarats: decimal.RequireFromString("1.0"), Multiplier: decimal.RequireFromString("1.0")},
			{MaxCarats: decimal.RequireFromString("2.0"), Multiplier: decimal.RequireFromString("1.3")},
			{MaxCarats: decimal.RequireFromString("10000"), Multiplier: decimal.RequireFromString("2.0")},
		},
	}

	cases := []struct {
		carats string
		want   string
	}{
		{"0.5", "1.0"},
		{"1.0", "1.0"},
		{"1.01", "1.3"},
		{"2.0", "1.3"},
		{"9.75", "2.0"},
	}
	for _, tc := range cases {
		got := tier.BandMultiplier(decimal.RequireFromString(tc.carats))
		if !got.Equal(decimal.RequireFromString(tc.want)) {
			t.Fatalf("carats %s: expected %s got %s", tc.carats, tc.want, got)
		}
	}
}
