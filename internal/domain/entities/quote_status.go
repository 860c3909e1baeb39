package entities

// QuoteStatus represents the lifecycle of a service quote.
//
// Domain notes:
//   - The quoting-service is the source of truth for quote state.
//   - Transitions are applied only through the workflow use case, which owns
//     the adjacency table and the guard rules.
//
//go:generate stringer -type=QuoteStatus

type QuoteStatus string

const (
	QuoteStatusDraft            QuoteStatus = "draft"
	QuoteStatusPresented        QuoteStatus = "presented"
	QuoteStatusAwaitingApproval QuoteStatus = "awaitingApproval"
	QuoteStatusApproved         QuoteStatus = "approved"
	QuoteStatusDeclined         QuoteStatus = "declined"
	QuoteStatusInShop           QuoteStatus = "inShop"
	QuoteStatusAtVendor         QuoteStatus = "atVendor"
	QuoteStatusQualityReview    QuoteStatus = "qualityReview"
	QuoteStatusQualityFailed    QuoteStatus = "qualityFailed"
	QuoteStatusRework           QuoteStatus = "rework"
	QuoteStatusReadyForPickup   QuoteStatus = "readyForPickup"
	QuoteStatusCompleted        QuoteStatus = "completed"
	QuoteStatusClosed           QuoteStatus = "closed"
	QuoteStatusCancelled        QuoteStatus = "cancelled"
)

func (s QuoteStatus) IsValid() bool {
	switch s {
	case QuoteStatusDraft, QuoteStatusPresented, QuoteStatusAwaitingApproval,
		QuoteStatusApproved, QuoteStatusDeclined, QuoteStatusInShop,
		QuoteStatusAtVendor, QuoteStatusQualityReview, QuoteStatusQualityFailed,
		QuoteStatusRework, QuoteStatusReadyForPickup, QuoteStatusCompleted,
		QuoteStatusClosed, QuoteStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition leaves this status.
func (s QuoteStatus) IsTerminal() bool {
	return s == QuoteStatusClosed || s == QuoteStatusCancelled
}

// IsActiveWork reports whether the piece is physically being worked on.
func (s QuoteStatus) IsActiveWork() bool {
	return s == QuoteStatusInShop || s == QuoteStatusAtVendor || s == QuoteStatusRework
}

// QuotePriority is the shop-floor scheduling hint attached to a quote.

type QuotePriority string

const (
	QuotePriorityLow    QuotePriority = "low"
	QuotePriorityNormal QuotePriority = "normal"
	QuotePriorityHigh   QuotePriority = "high"
	QuotePriorityUrgent QuotePriority = "urgent"
)

func (p QuotePriority) IsValid() bool {
	switch p {
	case QuotePriorityLow, QuotePriorityNormal, QuotePriorityHigh, QuotePriorityUrgent:
		return true
	}
	return false
}
