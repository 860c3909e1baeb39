package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"joalheria_xpto/internal/businessdays"
	"joalheria_xpto/internal/domain/entities"
	"joalheria_xpto/internal/observability/metrics"
	"joalheria_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound           = errors.New("quote not found")
	ErrInvalidQuoteID          = errors.New("invalid quote id")
	ErrInvalidQuoteStatus      = errors.New("invalid quote status")
	ErrInvalidActorID          = errors.New("invalid actor id")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrEstimateNotApproved     = errors.New("estimate not approved")
	ErrWorkCannotStart         = errors.New("work cannot start before approval")
	ErrNoActiveWork            = errors.New("no active work to review")
	ErrQualityControlRequired  = errors.New("quality control must pass first")
	ErrQuoteConflict           = errors.New("quote modified concurrently")
)

// quoteTransitions is the full adjacency table of the quote lifecycle.
// Closed and cancelled have no outgoing edges; completed can only close.
var quoteTransitions = map[entities.QuoteStatus][]entities.QuoteStatus{
	entities.QuoteStatusDraft:            {entities.QuoteStatusPresented, entities.QuoteStatusCancelled},
	entities.QuoteStatusPresented:        {entities.QuoteStatusAwaitingApproval, entities.QuoteStatusApproved, entities.QuoteStatusDeclined, entities.QuoteStatusCancelled},
	entities.QuoteStatusAwaitingApproval: {entities.QuoteStatusApproved, entities.QuoteStatusDeclined, entities.QuoteStatusCancelled},
	entities.QuoteStatusApproved:         {entities.QuoteStatusInShop, entities.QuoteStatusAtVendor, entities.QuoteStatusCancelled},
	entities.QuoteStatusDeclined:         {entities.QuoteStatusPresented, entities.QuoteStatusAwaitingApproval, entities.QuoteStatusCancelled},
	entities.QuoteStatusInShop:           {entities.QuoteStatusAtVendor, entities.QuoteStatusQualityReview, entities.QuoteStatusCancelled},
	entities.QuoteStatusAtVendor:         {entities.QuoteStatusInShop, entities.QuoteStatusQualityReview, entities.QuoteStatusCancelled},
	entities.QuoteStatusQualityReview:    {entities.QuoteStatusQualityFailed, entities.QuoteStatusReadyForPickup},
	entities.QuoteStatusQualityFailed:    {entities.QuoteStatusRework, entities.QuoteStatusCancelled},
	entities.QuoteStatusRework:           {entities.QuoteStatusQualityReview, entities.QuoteStatusAtVendor, entities.QuoteStatusCancelled},
	entities.QuoteStatusReadyForPickup:   {entities.QuoteStatusCompleted, entities.QuoteStatusCancelled},
	entities.QuoteStatusCompleted:        {entities.QuoteStatusClosed},
	entities.QuoteStatusClosed:           {},
	entities.QuoteStatusCancelled:        {},
}

// CanTransition reports whether the adjacency table allows from -> to.
func CanTransition(from, to entities.QuoteStatus) bool {
	for _, s := range quoteTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// TransitionsFrom lists the statuses reachable from the given one.
func TransitionsFrom(from entities.QuoteStatus) []entities.QuoteStatus {
	out := make([]entities.QuoteStatus, len(quoteTransitions[from]))
	copy(out, quoteTransitions[from])
	return out
}

// TransitionInput is one requested workflow step.
type TransitionInput struct {
	QuoteID      string
	TargetStatus entities.QuoteStatus
	ActorID      string
	Notes        string
}

// IWorkflowUseCase applies quote status transitions.
//
// Every applied transition:
//   - passes the guard rules, then the adjacency table
//   - commits exactly one version-guarded write (side effects included)
//   - appends one StatusChangeLog record
//   - emits at most one notification (best effort)

type IWorkflowUseCase interface {
	Transition(ctx context.Context, in TransitionInput) (entities.Quote, error)
}

type WorkflowUseCase struct {
	quoteRepo interfaces.IQuoteRepository
	logRepo   interfaces.IStatusLogRepository
	notifier  interfaces.INotifier
	metrics   *metrics.Registry

	now func() time.Time
}

var _ IWorkflowUseCase = (*WorkflowUseCase)(nil)

// NewWorkflowUseCase wires the state machine. notifier may be nil; the
// workflow then skips notifications entirely.
func NewWorkflowUseCase(quoteRepo interfaces.IQuoteRepository, logRepo interfaces.IStatusLogRepository, notifier interfaces.INotifier, reg *metrics.Registry) *WorkflowUseCase {
	return &WorkflowUseCase{quoteRepo: quoteRepo, logRepo: logRepo, notifier: notifier, metrics: reg, now: time.Now}
}

func (u *WorkflowUseCase) Transition(ctx context.Context, in TransitionInput) (entities.Quote, error) {
	log.Printf("[workflow][usecase] transition start quote_id=%q target=%q actor=%q", in.QuoteID, in.TargetStatus, in.ActorID)

	in.QuoteID = strings.TrimSpace(in.QuoteID)
	if in.QuoteID == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	if !in.TargetStatus.IsValid() {
		return entities.Quote{}, ErrInvalidQuoteStatus
	}
	in.ActorID = strings.TrimSpace(in.ActorID)
	if in.ActorID == "" {
		return entities.Quote{}, ErrInvalidActorID
	}

	q, err := u.quoteRepo.GetByID(ctx, in.QuoteID)
	if err != nil {
		log.Printf("[workflow][usecase] failed loading quote quote_id=%s err=%v", in.QuoteID, err)
		return entities.Quote{}, err
	}
	if q.ID == "" {
		log.Printf("[workflow][usecase] quote not found quote_id=%s", in.QuoteID)
		return entities.Quote{}, ErrQuoteNotFound
	}

	if err := checkTransitionGuards(q, in.TargetStatus); err != nil {
		log.Printf("[workflow][usecase] transition rejected quote_id=%s from=%s to=%s err=%v", q.ID, q.Status, in.TargetStatus, err)
		u.metrics.IncTransitionsRejected()
		return entities.Quote{}, err
	}
	if !CanTransition(q.Status, in.TargetStatus) {
		log.Printf("[workflow][usecase] transition rejected quote_id=%s from=%s to=%s (not adjacent)", q.ID, q.Status, in.TargetStatus)
		u.metrics.IncTransitionsRejected()
		return entities.Quote{}, ErrInvalidStatusTransition
	}

	patch := u.buildPatch(q, in.TargetStatus)
	updated, err := u.quoteRepo.UpdateWorkflow(ctx, q.ID, q.Version, patch)
	if err != nil {
		log.Printf("[workflow][usecase] workflow write failed quote_id=%s err=%v", q.ID, err)
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		log.Printf("[workflow][usecase] version conflict quote_id=%s expected_version=%d", q.ID, q.Version)
		return entities.Quote{}, ErrQuoteConflict
	}
	log.Printf("[workflow][usecase] transition applied quote_id=%s from=%s to=%s version=%d", q.ID, q.Status, updated.Status, updated.Version)
	u.metrics.IncTransitionsApplied()

	entry := entities.StatusChangeLog{
		ID:             uuid.NewString(),
		QuoteID:        q.ID,
		PreviousStatus: q.Status,
		NewStatus:      in.TargetStatus,
		ActorID:        in.ActorID,
		Notes:          in.Notes,
		CreatedAt:      u.now().UTC(),
	}
	if _, err := u.logRepo.Append(ctx, entry); err != nil {
		// The transition already committed; the caller must know the audit
		// trail has a hole.
		log.Printf("[workflow][usecase] status log append failed quote_id=%s from=%s to=%s err=%v", q.ID, q.Status, in.TargetStatus, err)
		return updated, err
	}

	u.notify(ctx, updated, q.Status)
	return updated, nil
}

// checkTransitionGuards enforces the business rules that are stronger than
// adjacency, so callers get the specific refusal instead of a generic one.
func checkTransitionGuards(q entities.Quote, target entities.QuoteStatus) error {
	switch target {
	case entities.QuoteStatusApproved:
		// Coming from awaitingApproval is the approval act itself.
		if q.ApprovalRequired && !q.EstimateApproved && q.Status != entities.QuoteStatusAwaitingApproval {
			return ErrEstimateNotApproved
		}
	case entities.QuoteStatusInShop:
		if q.Status != entities.QuoteStatusApproved && q.Status != entities.QuoteStatusAtVendor {
			return ErrWorkCannotStart
		}
	case entities.QuoteStatusQualityReview:
		if !q.Status.IsActiveWork() {
			return ErrNoActiveWork
		}
	case entities.QuoteStatusReadyForPickup:
		if q.Status != entities.QuoteStatusQualityReview {
			return ErrQualityControlRequired
		}
	}
	return nil
}

// buildPatch computes the side effects that land in the same write as the
// status itself.
func (u *WorkflowUseCase) buildPatch(q entities.Quote, target entities.QuoteStatus) entities.WorkflowPatch {
	patch := entities.WorkflowPatch{
		Status:   target,
		Priority: q.Priority,
	}

	switch target {
	case entities.QuoteStatusApproved:
		approved := true
		patch.EstimateApproved = &approved
		if q.PromisedDueDate == nil {
			days := q.ServiceCategory.PromiseDays()
			if q.RushType == entities.RushTypeSameDay {
				days = 1
			}
			due := businessdays.Add(u.now(), days)
			patch.PromisedDueDate = &due
		}
	case entities.QuoteStatusInShop:
		if q.RushType == entities.RushTypeSameDay {
			patch.Priority = entities.QuotePriorityHigh
		}
	case entities.QuoteStatusQualityFailed:
		patch.Priority = entities.QuotePriorityUrgent
	case entities.QuoteStatusCompleted:
		patch.Priority = entities.QuotePriorityLow
	}
	return patch
}

// notify emits the per-status notification, when the status has one.
// Failures never unwind an applied transition.
func (u *WorkflowUseCase) notify(ctx context.Context, q entities.Quote, previous entities.QuoteStatus) {
	if u.notifier == nil {
		return
	}

	n, ok := notificationFor(q)
	if !ok {
		return
	}
	if err := u.notifier.Notify(ctx, n); err != nil {
		log.Printf("[workflow][usecase] notification failed quote_id=%s from=%s to=%s channel=%s err=%v", q.ID, previous, q.Status, n.Channel, err)
		return
	}
	log.Printf("[workflow][usecase] notification sent quote_id=%s to=%s channel=%s", q.ID, q.Status, n.Channel)
}

func notificationFor(q entities.Quote) (entities.Notification, bool) {
	n := entities.Notification{QuoteID: q.ID, Event: q.Status}

	switch q.Status {
	case entities.QuoteStatusPresented:
		n.Channel = entities.NotificationChannelCustomer
		n.Message = fmt.Sprintf("Your quote %s is ready for review.", q.ID)
	case entities.QuoteStatusApproved:
		n.Channel = entities.NotificationChannelCustomer
		n.Message = fmt.Sprintf("Quote %s approved; work is being scheduled.", q.ID)
		if q.PromisedDueDate != nil {
			n.Message = fmt.Sprintf("Quote %s approved; promised for %s.", q.ID, q.PromisedDueDate.Format("2006-01-02"))
		}
	case entities.QuoteStatusReadyForPickup:
		n.Channel = entities.NotificationChannelCustomer
		n.Message = fmt.Sprintf("Your item on quote %s is ready for pickup.", q.ID)
	case entities.QuoteStatusCompleted:
		n.Channel = entities.NotificationChannelCustomer
		n.Message = fmt.Sprintf("Quote %s completed. Thank you!", q.ID)
	case entities.QuoteStatusAwaitingApproval:
		n.Channel = entities.NotificationChannelInternal
		n.Message = fmt.Sprintf("Quote %s needs manager approval.", q.ID)
	case entities.QuoteStatusQualityFailed:
		n.Channel = entities.NotificationChannelInternal
		n.Message = fmt.Sprintf("Quote %s failed quality review; rework queued.", q.ID)
	case entities.QuoteStatusCancelled:
		n.Channel = entities.NotificationChannelInternal
		n.Message = fmt.Sprintf("Quote %s was cancelled.", q.ID)
	default:
		return entities.Notification{}, false
	}
	return n, true
}
