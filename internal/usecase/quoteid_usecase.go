package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"joalheria_xpto/internal/domain/entities"
	"joalheria_xpto/internal/observability/metrics"
	"joalheria_xpto/internal/usecase/interfaces"
)

var (
	ErrInvalidCompanyID = errors.New("invalid company id")
	ErrQuoteIDExhausted = errors.New("quote id space exhausted")
)

// quoteIDMaxAttempts bounds collision recovery. Hitting the bound means the
// counter keeps landing on taken IDs even after re-seeding, which is an
// operational problem, not something to retry forever.
const quoteIDMaxAttempts = 5

// IQuoteIDUseCase hands out canonical quote IDs (Q-YYYY-NNNNNN).
//
// IDs are unique per company and year. The atomic counter makes duplicates
// impossible between live writers; the collision probe covers counters that
// fell behind imported historical quotes.

type IQuoteIDUseCase interface {
	Generate(ctx context.Context, companyID string) (string, error)
}

type QuoteIDUseCase struct {
	seqRepo   interfaces.ISequenceRepository
	quoteRepo interfaces.IQuoteRepository
	metrics   *metrics.Registry

	now func() time.Time
}

var _ IQuoteIDUseCase = (*QuoteIDUseCase)(nil)

func NewQuoteIDUseCase(seqRepo interfaces.ISequenceRepository, quoteRepo interfaces.IQuoteRepository, reg *metrics.Registry) *QuoteIDUseCase {
	return &QuoteIDUseCase{seqRepo: seqRepo, quoteRepo: quoteRepo, metrics: reg, now: time.Now}
}

func (u *QuoteIDUseCase) Generate(ctx context.Context, companyID string) (string, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return "", ErrInvalidCompanyID
	}
	year := u.now().UTC().Year()

	for attempt := 1; attempt <= quoteIDMaxAttempts; attempt++ {
		seq, err := u.seqRepo.Next(ctx, companyID, year)
		if err != nil {
			return "", err
		}
		if seq > entities.MaxQuoteSequence {
			log.Printf("[quoteid][usecase] sequence space exhausted company_id=%s year=%d seq=%d", companyID, year, seq)
			return "", ErrQuoteIDExhausted
		}

		id := entities.FormatQuoteID(year, seq)
		existing, err := u.quoteRepo.GetByID(ctx, id)
		if err != nil {
			return "", err
		}
		if existing.ID == "" {
			return id, nil
		}

		// Counter is behind quotes imported from the legacy system. Re-seed
		// it past the highest issued ID and draw again.
		u.metrics.IncQuoteIDCollisions()
		log.Printf("[quoteid][usecase] id collision company_id=%s id=%s attempt=%d; re-seeding counter", companyID, id, attempt)
		if err := u.reseed(ctx, companyID, year); err != nil {
			return "", err
		}
	}

	log.Printf("[quoteid][usecase] giving up after %d attempts company_id=%s year=%d", quoteIDMaxAttempts, companyID, year)
	return "", ErrQuoteIDExhausted
}

func (u *QuoteIDUseCase) reseed(ctx context.Context, companyID string, year int) error {
	highest, err := u.quoteRepo.HighestQuoteID(ctx, companyID, year)
	if err != nil {
		return err
	}
	if highest == "" {
		return nil
	}
	_, seq, err := entities.ParseQuoteID(highest)
	if err != nil {
		log.Printf("[quoteid][usecase] unparseable highest id company_id=%s id=%q err=%v", companyID, highest, err)
		return err
	}
	return u.seqRepo.EnsureAtLeast(ctx, companyID, year, seq)
}
