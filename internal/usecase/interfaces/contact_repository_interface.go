package interfaces

import (
	"context"

	"brightcover/internal/domain/entities"
)

// IContactRepository abstracts DynamoDB persistence for ContactMessage.

type IContactRepository interface {
	Create(ctx context.Context, m entities.ContactMessage) (entities.ContactMessage, error)
	GetByReference(ctx context.Context, reference string) (entities.ContactMessage, error)
	List(ctx context.Context, filter entities.ContactFilter) ([]entities.ContactMessage, error)
	UpdateStatusByReference(ctx context.Context, reference string, status entities.ContactStatus) (entities.ContactMessage, error)
}
