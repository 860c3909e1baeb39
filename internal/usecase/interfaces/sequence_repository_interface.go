package interfaces

import "context"

// ISequenceRepository abstracts the per-company, per-year quote ID counter.
//
// Next must be atomic: two concurrent calls may never observe the same value.
// EnsureAtLeast raises the counter after a collision with imported historical
// quotes; it is a no-op when the counter is already past the floor.

type ISequenceRepository interface {
	Next(ctx context.Context, companyID string, year int) (int64, error)
	EnsureAtLeast(ctx context.Context, companyID string, year int, floor int64) error
}
