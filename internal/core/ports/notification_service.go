package ports

import (
	"context"

	"github.com/lawwise/lawwise-api/internal/core/domain"
)

// CreateNotificationInput carries the fields for a generic (non-connection)
// notification such as a reminder.
type CreateNotificationInput struct {
	ToLawyerID string
	Kind       domain.NotificationKind
	Message    string
	Status     domain.NotificationStatus // defaults to pending when empty
}

// Connection is one entry in the derived accepted-connections view: the other
// party's display name and specialization tag.
type Connection struct {
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
}

// NotificationService manages connection requests between lawyers and the
// derived connections view.
type NotificationService interface {
	Create(ctx context.Context, in CreateNotificationInput) (*domain.Notification, error)
	Send(ctx context.Context, fromLawyerID, toLawyerID, message string) (*domain.Notification, error)
	ListFor(ctx context.Context, lawyerID string) ([]*domain.Notification, error)
	Respond(ctx context.Context, notificationID string, decision domain.NotificationStatus) error
	ConnectionsFor(ctx context.Context, lawyerID string) ([]Connection, error)
}
