package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"brightcover/internal/domain/entities"
	"brightcover/internal/premium"
	"brightcover/internal/usecase/interfaces"
)

var (
	ErrQuoteNotFound           = errors.New("quote request not found")
	ErrInvalidReference        = errors.New("invalid reference")
	ErrDuplicateSubmission     = errors.New("duplicate submission within cooldown window")
	ErrInvalidStatus           = errors.New("unknown status")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)

// IQuoteUseCase exposes the quote-submission pipeline and the admin
// operations over stored quote requests.
//
//   - Submit: estimate premium, reserve the cooldown slot, persist, notify.
//   - Estimate: premium preview without persistence.
//   - List/GetByReference/UpdateStatus/Summary: admin tooling.

type IQuoteUseCase interface {
	Submit(ctx context.Context, draft entities.QuoteRequest) (entities.QuoteRequest, error)
	Estimate(draft entities.QuoteRequest) (premium.Quote, error)
	GetByReference(ctx context.Context, reference string) (entities.QuoteRequest, error)
	List(ctx context.Context, filter entities.QuoteFilter) ([]entities.QuoteRequest, error)
	UpdateStatus(ctx context.Context, reference string, status entities.QuoteStatus, notes string) (entities.QuoteRequest, error)
	Summary(ctx context.Context) (entities.QuoteSummary, error)
}

type QuoteUseCase struct {
	repo     interfaces.IQuoteRepository
	guard    interfaces.ISubmissionGuard
	notifier interfaces.INotifier

	// notifyAsync is disabled in tests so notification expectations are not
	// racy; production wiring keeps the HTTP response off the SMTP path.
	notifyAsync   bool
	notifyTimeout time.Duration
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

const defaultNotifyTimeout = 15 * time.Second

func NewQuoteUseCase(repo interfaces.IQuoteRepository, guard interfaces.ISubmissionGuard, notifier interfaces.INotifier, notifyTimeout time.Duration) *QuoteUseCase {
	if notifyTimeout <= 0 {
		notifyTimeout = defaultNotifyTimeout
	}
	return &QuoteUseCase{
		repo:          repo,
		guard:         guard,
		notifier:      notifier,
		notifyAsync:   true,
		notifyTimeout: notifyTimeout,
	}
}

// Submit runs the full pipeline for a validated, normalized draft. The
// estimated premium is always recomputed server-side; whatever the caller
// put in the premium fields is discarded.
func (u *QuoteUseCase) Submit(ctx context.Context, draft entities.QuoteRequest) (entities.QuoteRequest, error) {
	est, err := u.Estimate(draft)
	if err != nil {
		return entities.QuoteRequest{}, err
	}

	reserved, err := u.guard.Reserve(ctx, draft.Email, draft.Product)
	if err != nil {
		// A guard outage must not block lead capture.
		log.Printf("[quote][usecase] cooldown guard unavailable, admitting submission email=%s product=%s err=%v", draft.Email, draft.Product, err)
	} else if !reserved {
		return entities.QuoteRequest{}, ErrDuplicateSubmission
	}

	now := time.Now().UTC()
	draft.ID = uuid.NewString()
	draft.Reference = newReference(quoteReferencePrefix)
	draft.EstimatedPremium = est.Annual
	draft.MonthlyPremium = est.Monthly
	draft.Status = entities.QuoteStatusPending
	draft.CreatedAt = now
	draft.UpdatedAt = now

	created, err := u.repo.Create(ctx, draft)
	if err != nil {
		if rErr := u.guard.Release(ctx, draft.Email, draft.Product); rErr != nil {
			log.Printf("[quote][usecase] cooldown release failed email=%s product=%s err=%v", draft.Email, draft.Product, rErr)
		}
		return entities.QuoteRequest{}, fmt.Errorf("failed to save quote request: %w", err)
	}
	log.Printf("[quote][usecase] submission stored reference=%s product=%s premium=%d", created.Reference, created.Product, created.EstimatedPremium)

	u.dispatchNotification(created)

	return created, nil
}

// Estimate recomputes the premium for a draft without side effects.
func (u *QuoteUseCase) Estimate(draft entities.QuoteRequest) (premium.Quote, error) {
	vehicleAge := 0
	if draft.Vehicle != nil {
		vehicleAge = time.Now().UTC().Year() - draft.Vehicle.Year
		if vehicleAge < 0 {
			vehicleAge = 0
		}
	}
	return premium.Estimate(premium.FromQuoteRequest(draft, vehicleAge))
}

func (u *QuoteUseCase) GetByReference(ctx context.Context, reference string) (entities.QuoteRequest, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return entities.QuoteRequest{}, ErrInvalidReference
	}

	q, err := u.repo.GetByReference(ctx, reference)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if q.Reference == "" {
		return entities.QuoteRequest{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) List(ctx context.Context, filter entities.QuoteFilter) ([]entities.QuoteRequest, error) {
	if filter.Limit <= 0 || filter.Limit > 200 {
		filter.Limit = 50
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return u.repo.List(ctx, filter)
}

var validQuoteStatuses = map[entities.QuoteStatus]struct{}{
	entities.QuoteStatusPending:   {},
	entities.QuoteStatusContacted: {},
	entities.QuoteStatusQuoted:    {},
	entities.QuoteStatusConverted: {},
	entities.QuoteStatusClosed:    {},
}

func (u *QuoteUseCase) UpdateStatus(ctx context.Context, reference string, status entities.QuoteStatus, notes string) (entities.QuoteRequest, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return entities.QuoteRequest{}, ErrInvalidReference
	}
	if _, ok := validQuoteStatuses[status]; !ok {
		return entities.QuoteRequest{}, ErrInvalidStatus
	}

	current, err := u.repo.GetByReference(ctx, reference)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if current.Reference == "" {
		return entities.QuoteRequest{}, ErrQuoteNotFound
	}
	if !current.Status.CanTransitionTo(status) {
		return entities.QuoteRequest{}, ErrInvalidStatusTransition
	}

	updated, err := u.repo.UpdateStatusByReference(ctx, reference, status, strings.TrimSpace(notes))
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if updated.Reference == "" {
		return entities.QuoteRequest{}, ErrQuoteNotFound
	}
	return updated, nil
}

func (u *QuoteUseCase) Summary(ctx context.Context) (entities.QuoteSummary, error) {
	return u.repo.Summary(ctx)
}

// dispatchNotification sends the confirmation/alert mails without ever
// failing the submission. The record is already durable at this point.
func (u *QuoteUseCase) dispatchNotification(q entities.QuoteRequest) {
	send := func() {
		ctx, cancel := context.WithTimeout(context.Background(), u.notifyTimeout)
		defer cancel()
		if err := u.notifier.QuoteSubmitted(ctx, q); err != nil {
			log.Printf("[quote][usecase] notification failed reference=%s err=%v", q.Reference, err)
		}
	}
	if u.notifyAsync {
		go send()
		return
	}
	send()
}
