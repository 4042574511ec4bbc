package ports

import (
	"context"

	"github.com/lawwise/lawwise-api/internal/core/domain"
)

// CaseRepository defines persistence operations for tracked cases.
type CaseRepository interface {
	Create(ctx context.Context, c *domain.Case) error
	FindAll(ctx context.Context) ([]*domain.Case, error)
}
