package ports

import (
	"context"

	"github.com/lawwise/lawwise-api/internal/core/domain"
)

// NotificationRepository defines persistence for the append-only notification
// collection.
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	FindByID(ctx context.Context, id string) (*domain.Notification, error)
	// FindByRecipient returns every notification addressed to lawyerID,
	// most recent first.
	FindByRecipient(ctx context.Context, lawyerID string) ([]*domain.Notification, error)
	// UpdateStatus writes the decision onto a notification that is still
	// pending. A notification that exists but is already resolved yields
	// domain.ErrInvalidTransition, so a concurrent double-respond loses
	// cleanly at the store.
	UpdateStatus(ctx context.Context, id string, status domain.NotificationStatus) error
	// FindAcceptedInvolving returns accepted connection_request and
	// reminder notifications where lawyerID is either party.
	FindAcceptedInvolving(ctx context.Context, lawyerID string) ([]*domain.Notification, error)
}
