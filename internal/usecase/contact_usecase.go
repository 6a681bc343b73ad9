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
	"brightcover/internal/usecase/interfaces"
)

var ErrContactNotFound = errors.New("contact message not found")

// IContactUseCase exposes contact-message submission and triage operations.

type IContactUseCase interface {
	Submit(ctx context.Context, draft entities.ContactMessage) (entities.ContactMessage, error)
	GetByReference(ctx context.Context, reference string) (entities.ContactMessage, error)
	List(ctx context.Context, filter entities.ContactFilter) ([]entities.ContactMessage, error)
	UpdateStatus(ctx context.Context, reference string, status entities.ContactStatus) (entities.ContactMessage, error)
}

type ContactUseCase struct {
	repo     interfaces.IContactRepository
	notifier interfaces.INotifier

	notifyAsync   bool
	notifyTimeout time.Duration
}

var _ IContactUseCase = (*ContactUseCase)(nil)

func NewContactUseCase(repo interfaces.IContactRepository, notifier interfaces.INotifier, notifyTimeout time.Duration) *ContactUseCase {
	if notifyTimeout <= 0 {
		notifyTimeout = defaultNotifyTimeout
	}
	return &ContactUseCase{
		repo:          repo,
		notifier:      notifier,
		notifyAsync:   true,
		notifyTimeout: notifyTimeout,
	}
}

func (u *ContactUseCase) Submit(ctx context.Context, draft entities.ContactMessage) (entities.ContactMessage, error) {
	now := time.Now().UTC()
	draft.ID = uuid.NewString()
	draft.Reference = newReference(contactReferencePrefix)
	draft.Status = entities.ContactStatusNew
	draft.CreatedAt = now
	draft.UpdatedAt = now

	created, err := u.repo.Create(ctx, draft)
	if err != nil {
		return entities.ContactMessage{}, fmt.Errorf("failed to save contact message: %w", err)
	}
	log.Printf("[contact][usecase] message stored reference=%s subject=%s", created.Reference, created.Subject)

	send := func() {
		nctx, cancel := context.WithTimeout(context.Background(), u.notifyTimeout)
		defer cancel()
		if err := u.notifier.ContactReceived(nctx, created); err != nil {
			log.Printf("[contact][usecase] notification failed reference=%s err=%v", created.Reference, err)
		}
	}
	if u.notifyAsync {
		go send()
	} else {
		send()
	}

	return created, nil
}

func (u *ContactUseCase) GetByReference(ctx context.Context, reference string) (entities.ContactMessage, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return entities.ContactMessage{}, ErrInvalidReference
	}

	m, err := u.repo.GetByReference(ctx, reference)
	if err != nil {
		return entities.ContactMessage{}, err
	}
	if m.Reference == "" {
		return entities.ContactMessage{}, ErrContactNotFound
	}
	return m, nil
}

func (u *ContactUseCase) List(ctx context.Context, filter entities.ContactFilter) ([]entities.ContactMessage, error) {
	if filter.Limit <= 0 || filter.Limit > 200 {
		filter.Limit = 50
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return u.repo.List(ctx, filter)
}

var validContactStatuses = map[entities.ContactStatus]struct{}{
	entities.ContactStatusNew:     {},
	entities.ContactStatusRead:    {},
	entities.ContactStatusReplied: {},
	entities.ContactStatusClosed:  {},
}

func (u *ContactUseCase) UpdateStatus(ctx context.Context, reference string, status entities.ContactStatus) (entities.ContactMessage, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return entities.ContactMessage{}, ErrInvalidReference
	}
	if _, ok := validContactStatuses[status]; !ok {
		return entities.ContactMessage{}, ErrInvalidStatus
	}

	current, err := u.repo.GetByReference(ctx, reference)
	if err != nil {
		return entities.ContactMessage{}, err
	}
	if current.Reference == "" {
		return entities.ContactMessage{}, ErrContactNotFound
	}
	if !current.Status.CanTransitionTo(status) {
		return entities.ContactMessage{}, ErrInvalidStatusTransition
	}

	updated, err := u.repo.UpdateStatusByReference(ctx, reference, status)
	if err != nil {
		return entities.ContactMessage{}, err
	}
	if updated.Reference == "" {
		return entities.ContactMessage{}, ErrContactNotFound
	}
	return updated, nil
}
