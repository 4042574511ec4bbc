package domain

import (
	"errors"
	"time"
)

// NotificationKind classifies a notification.
type NotificationKind string

const (
	KindConnectionRequest NotificationKind = "connection_request"
	KindReminder          NotificationKind = "reminder"
)

// NotificationStatus is the resolution state of a notification.
type NotificationStatus string

const (
	StatusPending  NotificationStatus = "pending"
	StatusAccepted NotificationStatus = "accepted"
	StatusRejected NotificationStatus = "rejected"
)

var ErrNotificationNotFound = errors.New("notification not found")
var ErrInvalidTransition = errors.New("notification already resolved")
var ErrInvalidDecision = errors.New("invalid response decision")

// IsDecision reports whether s is a terminal state a recipient may choose.
func (s NotificationStatus) IsDecision() bool {
	return s == StatusAccepted || s == StatusRejected
}

// Notification is an append-only message between two lawyers. The only field
// ever mutated after creation is Status, and only once: pending → accepted or
// pending → rejected.
type Notification struct {
	ID string `json:"id"`
	// FromLawyerID is empty for system-generated reminders with no
	// originating peer.
	FromLawyerID string `json:"from_lawyer_id,omitempty"`
	ToLawyerID   string `json:"to_lawyer_id"`
	// FromLawyerName is a snapshot of the sender's display name taken at
	// creation time. It is intentionally not kept in sync with later
	// profile edits.
	FromLawyerName string             `json:"from_lawyer_name,omitempty"`
	Message        string             `json:"message"`
	Kind           NotificationKind   `json:"type"`
	Status         NotificationStatus `json:"status"`
	CreatedAt      time.Time          `json:"created_at"`
}

// Pending reports whether the notification can still be responded to.
func (n *Notification) Pending() bool {
	return n.Status == StatusPending
}
