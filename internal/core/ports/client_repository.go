package ports

import (
	"context"

	"github.com/lawwise/lawwise-api/internal/core/domain"
)

// ClientRepository defines persistence operations for client accounts.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	FindByEmail(ctx context.Context, email string) (*domain.Client, error)
}
