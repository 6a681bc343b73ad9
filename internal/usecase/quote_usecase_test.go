package usecase

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"brightcover/internal/domain/entities"
	mock_interfaces "brightcover/internal/usecase/interfaces/mocks"
)

var quoteReferencePattern = regexp.MustCompile(`^QT\d{12}[A-Z0-9]{6}$`)

func newQuoteUseCaseForTest(repo *mock_interfaces.MockIQuoteRepository, guard *mock_interfaces.MockISubmissionGuard, notifier *mock_interfaces.MockINotifier) *QuoteUseCase {
	uc := NewQuoteUseCase(repo, guard, notifier, 5*time.Second)
	uc.notifyAsync = false
	return uc
}

func TestNewQuoteUseCase_NotifyTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	guard := mock_interfaces.NewMockISubmissionGuard(ctrl)
	notifier := mock_interfaces.NewMockINotifier(ctrl)

	uc := NewQuoteUseCase(repo, guard, notifier, 3*time.Second)
	if uc.notifyTimeout != 3*time.Second {
		t.Fatalf("expected configured timeout 3s, got %v", uc.notifyTimeout)
	}

	uc = NewQuoteUseCase(repo, guard, notifier, 0)
	if uc.notifyTimeout != defaultNotifyTimeout {
		t.Fatalf("expected default timeout %v, got %v", defaultNotifyTimeout, uc.notifyTimeout)
	}
}

func validQuoteDraft() entities.QuoteRequest {
	return entities.QuoteRequest{
		FirstName:      "Asha",
		LastName:       "Patel",
		Email:          "asha.patel@example.com",
		Phone:          "9876543210",
		Age:            30,
		Product:        entities.ProductHealth,
		PlanType:       "individual",
		CoverageAmount: 500_000,
		CityTier:       1,
	}
}

func TestQuoteUseCase_Submit(t *testing.T) {
	t.Run("stores quote with computed premium and notifies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		guard := mock_interfaces.NewMockISubmissionGuard(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := newQuoteUseCaseForTest(repo, guard, notifier)

		draft := validQuoteDraft()

		guard.EXPECT().Reserve(gomock.Any(), draft.Email, draft.Product).Return(true, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error) {
				return q, nil
			})
		notifier.EXPECT().QuoteSubmitted(gomock.Any(), gomock.Any()).Return(nil)

		created, err := uc.Submit(context.Background(), draft)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if created.ID == "" {
			t.Fatal("expected generated id")
		}
		if !quoteReferencePattern.MatchString(created.Reference) {
			t.Fatalf("unexpected reference format: %q", created.Reference)
		}
		if created.Status != entities.QuoteStatusPending {
			t.Fatalf("expected status pending, got %s", created.Status)
		}
		// health 500000 @ 9/mille, age 30, individual plan, tier-1 city.
		if created.EstimatedPremium != 5400 {
			t.Fatalf("expected annual premium 5400, got %d", created.EstimatedPremium)
		}
		if created.MonthlyPremium != 450 {
			t.Fatalf("expected monthly premium 450, got %d", created.MonthlyPremium)
		}
		if created.CreatedAt.IsZero() || !created.CreatedAt.Equal(created.UpdatedAt) {
			t.Fatal("expected created_at and updated_at to be set and equal")
		}
	})

	t.Run("rejects duplicate submission within cooldown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		guard := mock_interfaces.NewMockISubmissionGuard(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := newQuoteUseCaseForTest(repo, guard, notifier)

		draft := validQuoteDraft()
		guard.EXPECT().Reserve(gomock.Any(), draft.Email, draft.Product).Return(false, nil)

		_, err := uc.Submit(context.Background(), draft)
		if !errors.Is(err, ErrDuplicateSubmission) {
			t.Fatalf("expected ErrDuplicateSubmission, got %v", err)
		}
	})

	t.Run("admits submission when guard is unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		guard := mock_interfaces.NewMockISubmissionGuard(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := newQuoteUseCaseForTest(repo, guard, notifier)

		draft := validQuoteDraft()
		guard.EXPECT().Reserve(gomock.Any(), draft.Email, draft.Product).Return(false, errors.New("redis down"))
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error) {
				return q, nil
			})
		notifier.EXPECT().QuoteSubmitted(gomock.Any(), gomock.Any()).Return(nil)

		if _, err := uc.Submit(context.Background(), draft); err != nil {
			t.Fatalf("expected submission to be admitted, got %v", err)
		}
	})

	t.Run("releases cooldown slot when persistence fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		guard := mock_interfaces.NewMockISubmissionGuard(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := newQuoteUseCaseForTest(repo, guard, notifier)

		draft := validQuoteDraft()
		guard.EXPECT().Reserve(gomock.Any(), draft.Email, draft.Product).Return(true, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.QuoteRequest{}, errors.New("dynamodb unavailable"))
		guard.EXPECT().Release(gomock.Any(), draft.Email, draft.Product).Return(nil)

		_, err := uc.Submit(context.Background(), draft)
		if err == nil {
			t.Fatal("expected error when persistence fails")
		}
	})

	t.Run("does not reach the guard for an invalid draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		guard := mock_interfaces.NewMockISubmissionGuard(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := newQuoteUseCaseForTest(repo, guard, notifier)

		draft := validQuoteDraft()
		draft.CoverageAmount = 10 // below product minimum

		if _, err := uc.Submit(context.Background(), draft); err == nil {
			t.Fatal("expected estimation error")
		}
	})

	t.Run("notification failure does not fail the submission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		guard := mock_interfaces.NewMockISubmissionGuard(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := newQuoteUseCaseForTest(repo, guard, notifier)

		draft := validQuoteDraft()
		guard.EXPECT().Reserve(gomock.Any(), draft.Email, draft.Product).Return(true, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error) {
				return q, nil
			})
		notifier.EXPECT().QuoteSubmitted(gomock.Any(), gomock.Any()).Return(errors.New("smtp timeout"))

		if _, err := uc.Submit(context.Background(), draft); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})
}

func TestQuoteUseCase_GetByReference(t *testing.T) {
	t.Run("returns stored quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newQuoteUseCaseForTest(repo, mock_interfaces.NewMockISubmissionGuard(ctrl), mock_interfaces.NewMockINotifier(ctrl))

		repo.EXPECT().GetByReference(gomock.Any(), "QT240101120000ABCDEF").
			Return(entities.QuoteRequest{Reference: "QT240101120000ABCDEF"}, nil)

		q, err := uc.GetByReference(context.Background(), "QT240101120000ABCDEF")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if q.Reference != "QT240101120000ABCDEF" {
			t.Fatalf("unexpected reference %q", q.Reference)
		}
	})

	t.Run("maps empty entity to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newQuoteUseCaseForTest(repo, mock_interfaces.NewMockISubmissionGuard(ctrl), mock_interfaces.NewMockINotifier(ctrl))

		repo.EXPECT().GetByReference(gomock.Any(), "QT000000000000ZZZZZZ").
			Return(entities.QuoteRequest{}, nil)

		_, err := uc.GetByReference(context.Background(), "QT000000000000ZZZZZZ")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("rejects blank reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := newQuoteUseCaseForTest(mock_interfaces.NewMockIQuoteRepository(ctrl), mock_interfaces.NewMockISubmissionGuard(ctrl), mock_interfaces.NewMockINotifier(ctrl))

		_, err := uc.GetByReference(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidReference) {
			t.Fatalf("expected ErrInvalidReference, got %v", err)
		}
	})
}

func TestQuoteUseCase_List(t *testing.T) {
	t.Run("clamps page size defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newQuoteUseCaseForTest(repo, mock_interfaces.NewMockISubmissionGuard(ctrl), mock_interfaces.NewMockINotifier(ctrl))

		repo.EXPECT().List(gomock.Any(), entities.QuoteFilter{Limit: 50}).Return(nil, nil)

		if _, err := uc.List(context.Background(), entities.QuoteFilter{Limit: 1000, Offset: -3}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})
}

func TestQuoteUseCase_UpdateStatus(t *testing.T) {
	t.Run("applies valid transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newQuoteUseCaseForTest(repo, mock_interfaces.NewMockISubmissionGuard(ctrl), mock_interfaces.NewMockINotifier(ctrl))

		ref := "QT240101120000ABCDEF"
		repo.EXPECT().GetByReference(gomock.Any(), ref).
			Return(entities.QuoteRequest{Reference: ref, Status: entities.QuoteStatusPending}, nil)
		repo.EXPECT().UpdateStatusByReference(gomock.Any(), ref, entities.QuoteStatusContacted, "called twice").
			Return(entities.QuoteRequest{Reference: ref, Status: entities.QuoteStatusContacted, Notes: "called twice"}, nil)

		updated, err := uc.UpdateStatus(context.Background(), ref, entities.QuoteStatusContacted, " called twice ")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if updated.Status != entities.QuoteStatusContacted {
			t.Fatalf("expected status contacted, got %s", updated.Status)
		}
	})

	t.Run("rejects backwards transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newQuoteUseCaseForTest(repo, mock_interfaces.NewMockISubmissionGuard(ctrl), mock_interfaces.NewMockINotifier(ctrl))

		ref := "QT240101120000ABCDEF"
		repo.EXPECT().GetByReference(gomock.Any(), ref).
			Return(entities.QuoteRequest{Reference: ref, Status: entities.QuoteStatusQuoted}, nil)

		_, err := uc.UpdateStatus(context.Background(), ref, entities.QuoteStatusPending, "")
		if !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := newQuoteUseCaseForTest(mock_interfaces.NewMockIQuoteRepository(ctrl), mock_interfaces.NewMockISubmissionGuard(ctrl), mock_interfaces.NewMockINotifier(ctrl))

		_, err := uc.UpdateStatus(context.Background(), "QT240101120000ABCDEF", entities.QuoteStatus("archived"), "")
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("rejects transition out of a terminal status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newQuoteUseCaseForTest(repo, mock_interfaces.NewMockISubmissionGuard(ctrl), mock_interfaces.NewMockINotifier(ctrl))

		ref := "QT240101120000ABCDEF"
		repo.EXPECT().GetByReference(gomock.Any(), ref).
			Return(entities.QuoteRequest{Reference: ref, Status: entities.QuoteStatusClosed}, nil)

		_, err := uc.UpdateStatus(context.Background(), ref, entities.QuoteStatusContacted, "")
		if !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})
}

func TestQuoteUseCase_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	uc := newQuoteUseCaseForTest(repo, mock_interfaces.NewMockISubmissionGuard(ctrl), mock_interfaces.NewMockINotifier(ctrl))

	want := entities.QuoteSummary{
		Total:     3,
		ByStatus:  map[entities.QuoteStatus]int64{entities.QuoteStatusPending: 2, entities.QuoteStatusQuoted: 1},
		ByProduct: map[entities.ProductType]int64{entities.ProductHealth: 3},
	}
	repo.EXPECT().Summary(gomock.Any()).Return(want, nil)

	got, err := uc.Summary(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Total != want.Total {
		t.Fatalf("expected total %d, got %d", want.Total, got.Total)
	}
}
