package interfaces

import (
	"context"

	"brightcover/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for QuoteRequest.
//
// The service must be able to:
//   - create a record once per submission (reference uniqueness enforced)
//   - fetch by the human-shareable reference
//   - list/filter/paginate and aggregate for the admin tooling
//   - apply staff status/notes updates

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error)
	GetByReference(ctx context.Context, reference string) (entities.QuoteRequest, error)
	List(ctx context.Context, filter entities.QuoteFilter) ([]entities.QuoteRequest, error)
	UpdateStatusByReference(ctx context.Context, reference string, status entities.QuoteStatus, notes string) (entities.QuoteRequest, error)
	Summary(ctx context.Context) (entities.QuoteSummary, error)
}
