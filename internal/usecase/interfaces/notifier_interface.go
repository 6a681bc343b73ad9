package interfaces

import (
	"context"

	"brightcover/internal/domain/entities"
)

// INotifier delivers the confirmation/alert emails for a stored record.
// Failures are never fatal to the submission; callers log and move on.
type INotifier interface {
	QuoteSubmitted(ctx context.Context, q entities.QuoteRequest) error
	ContactReceived(ctx context.Context, m entities.ContactMessage) error
}
