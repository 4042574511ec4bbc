package ports

import (
	"context"
	"time"

	"github.com/lawwise/lawwise-api/internal/core/domain"
)

// LawyerSearchFilter carries all query parameters for directory search.
type LawyerSearchFilter struct {
	Query         string  // optional: text search over name and bio
	PracticeArea  string  // optional: exact match on a practice area
	City          string  // optional: case-insensitive match
	MinExperience int     // optional: years_of_experience >= MinExperience
	MaxRate       float64 // optional: hourly_rate <= MaxRate
	AvailableOnly bool    // optional: only lawyers flagged available
	Page          int     // 1-based
	Limit         int     // max rows per page (capped by the service)
}

// LawyerRepository defines persistence operations for lawyer accounts.
//
// IncrementLoginAttempts must be an atomic increment-and-fetch at the store so
// concurrent failed logins for the same account cannot lose updates.
// SetLockUntil must only take effect while the stored counter is at or above
// threshold, making the lock write idempotent under races.
type LawyerRepository interface {
	Create(ctx context.Context, lawyer *domain.Lawyer) (*domain.Lawyer, error)
	FindByID(ctx context.Context, id string) (*domain.Lawyer, error)
	FindByEmail(ctx context.Context, email string) (*domain.Lawyer, error)
	FindByBarNumber(ctx context.Context, barNumber string) (*domain.Lawyer, error)
	// ListActive returns active lawyers, newest first.
	ListActive(ctx context.Context) ([]*domain.Lawyer, error)
	// Search returns a page of complete profiles matching filter and the total count.
	Search(ctx context.Context, filter LawyerSearchFilter) ([]*domain.Lawyer, int64, error)
	// UpdateProfile persists profile fields only; credential and lockout
	// state are untouched.
	UpdateProfile(ctx context.Context, lawyer *domain.Lawyer) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error

	IncrementLoginAttempts(ctx context.Context, id string) (int, error)
	SetLockUntil(ctx context.Context, id string, threshold int, until time.Time) error
	// ResetLockout zeroes the attempt counter, clears any lock, and records
	// the successful login time.
	ResetLockout(ctx context.Context, id string, lastLogin time.Time) error
}
