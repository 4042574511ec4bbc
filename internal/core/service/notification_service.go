package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lawwise/lawwise-api/internal/core/domain"
	"github.com/lawwise/lawwise-api/internal/core/ports"
)

// fallbackLawyerName labels a sender whose account cannot be resolved.
const fallbackLawyerName = "Lawyer"

// NotificationService implements the connection-request workflow over the
// append-only notification collection. Connections are never stored as their
// own records; they are computed from accepted notifications, which means one
// accepted exchange normally yields two entries in ConnectionsFor (the
// original request plus the reverse receipt). That fan-out is expected.
type NotificationService struct {
	notifications ports.NotificationRepository
	lawyers       ports.LawyerRepository
	logger        zerolog.Logger
}

func NewNotificationService(notifications ports.NotificationRepository, lawyers ports.LawyerRepository, logger zerolog.Logger) *NotificationService {
	return &NotificationService{notifications: notifications, lawyers: lawyers, logger: logger}
}

// Create stores a generic notification such as a reminder. Status defaults to
// pending when unset.
func (s *NotificationService) Create(ctx context.Context, in ports.CreateNotificationInput) (*domain.Notification, error) {
	if in.ToLawyerID == "" || in.Kind == "" || in.Message == "" {
		return nil, fmt.Errorf("%w: missing required fields", domain.ErrValidation)
	}

	status := in.Status
	if status == "" {
		status = domain.StatusPending
	}

	return s.notifications.Create(ctx, &domain.Notification{
		ToLawyerID: in.ToLawyerID,
		Kind:       in.Kind,
		Message:    in.Message,
		Status:     status,
		CreatedAt:  time.Now().UTC(),
	})
}

// Send creates a pending connection request addressed to toLawyerID. The
// sender's display name is snapshotted onto the notification at creation time
// and never refreshed. No duplicate prevention is applied: a sender may hold
// several pending requests to the same recipient.
func (s *NotificationService) Send(ctx context.Context, fromLawyerID, toLawyerID, message string) (*domain.Notification, error) {
	if fromLawyerID == "" || toLawyerID == "" || message == "" {
		return nil, fmt.Errorf("%w: missing required fields", domain.ErrValidation)
	}

	notification, err := s.notifications.Create(ctx, &domain.Notification{
		FromLawyerID:   fromLawyerID,
		ToLawyerID:     toLawyerID,
		FromLawyerName: s.displayName(ctx, fromLawyerID),
		Message:        message,
		Kind:           domain.KindConnectionRequest,
		Status:         domain.StatusPending,
		CreatedAt:      time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("from", fromLawyerID).
		Str("to", toLawyerID).
		Str("notification_id", notification.ID).
		Msg("connection request sent")
	return notification, nil
}

// ListFor returns every notification addressed to lawyerID, most recent
// first. An empty subject is a valid query and yields an empty list.
func (s *NotificationService) ListFor(ctx context.Context, lawyerID string) ([]*domain.Notification, error) {
	if lawyerID == "" {
		return []*domain.Notification{}, nil
	}
	return s.notifications.FindByRecipient(ctx, lawyerID)
}

// Respond resolves a pending connection request exactly once and creates the
// reverse receipt back to the original sender. The receipt is created already
// resolved with the same decision, so the sender cannot respond to it in
// turn. If storing the receipt fails, the already-persisted status write is
// not rolled back; the error is surfaced instead.
func (s *NotificationService) Respond(ctx context.Context, notificationID string, decision domain.NotificationStatus) error {
	if notificationID == "" || !decision.IsDecision() {
		return domain.ErrInvalidDecision
	}

	notification, err := s.notifications.FindByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if !notification.Pending() {
		return domain.ErrInvalidTransition
	}

	// The store re-checks pending, so a concurrent responder cannot
	// double-apply the receipt below.
	if err := s.notifications.UpdateStatus(ctx, notificationID, decision); err != nil {
		return err
	}

	if notification.FromLawyerID == "" {
		// System reminders have no originating peer to notify.
		return nil
	}

	// Fresh lookup on purpose: the receipt names the responder as they are
	// now, not as any stale snapshot has them.
	responderName := s.displayName(ctx, notification.ToLawyerID)

	_, err = s.notifications.Create(ctx, &domain.Notification{
		FromLawyerID:   notification.ToLawyerID,
		ToLawyerID:     notification.FromLawyerID,
		FromLawyerName: responderName,
		Message:        fmt.Sprintf("Your connection request was %s by %s.", decision, responderName),
		Kind:           domain.KindConnectionRequest,
		Status:         decision,
		CreatedAt:      time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error().Err(err).
			Str("notification_id", notificationID).
			Msg("status recorded but reverse receipt failed")
		return fmt.Errorf("create reverse receipt: %w", err)
	}

	s.logger.Info().
		Str("notification_id", notificationID).
		Str("decision", string(decision)).
		Msg("connection request resolved")
	return nil
}

// ConnectionsFor computes the accepted-connections view: one entry per
// accepted connection_request or reminder where lawyerID is either party,
// projecting the other party's display name and specialization. Entries are
// not deduplicated; callers wanting a unique peer list must collapse the
// fan-out themselves.
func (s *NotificationService) ConnectionsFor(ctx context.Context, lawyerID string) ([]ports.Connection, error) {
	if lawyerID == "" {
		return []ports.Connection{}, nil
	}

	accepted, err := s.notifications.FindAcceptedInvolving(ctx, lawyerID)
	if err != nil {
		return nil, err
	}

	connections := make([]ports.Connection, 0, len(accepted))
	for _, n := range accepted {
		otherID := n.FromLawyerID
		if otherID == lawyerID {
			otherID = n.ToLawyerID
		}

		conn := ports.Connection{Name: fallbackLawyerName}
		if lawyer, err := s.lawyers.FindByID(ctx, otherID); err == nil {
			if name := lawyer.DisplayName(); name != "" {
				conn.Name = name
			}
			conn.Specialization = lawyer.Specialization
		}
		connections = append(connections, conn)
	}
	return connections, nil
}

func (s *NotificationService) displayName(ctx context.Context, lawyerID string) string {
	lawyer, err := s.lawyers.FindByID(ctx, lawyerID)
	if err != nil {
		return fallbackLawyerName
	}
	if name := lawyer.DisplayName(); name != "" {
		return name
	}
	return fallbackLawyerName
}
