package interfaces

import (
	"context"

	"brightcover/internal/domain/entities"
)

// ISubmissionGuard is the duplicate-submission cooldown.
//
// Reserve returns false when the same (email, product) pair already holds a
// reservation inside the cooldown window. Release is a best-effort rollback
// used when the record write fails after a successful reservation; the race
// between concurrent identical submissions is acceptable for lead capture.
type ISubmissionGuard interface {
	Reserve(ctx context.Context, email string, product entities.ProductType) (bool, error)
	Release(ctx context.Context, email string, product entities.ProductType) error
}
