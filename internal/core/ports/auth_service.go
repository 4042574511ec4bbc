package ports

import (
	"context"

	"github.com/lawwise/lawwise-api/internal/core/domain"
)

// RegisterInput carries the fields required to open a lawyer account.
type RegisterInput struct {
	FullName        string
	Email           string
	Password        string
	ConfirmPassword string
	BarNumber       string
	Specialization  string
}

// TokenIssuer mints and verifies signed session assertions. Issue and
// Validate are pure functions of their inputs and the configured secret;
// neither touches storage.
type TokenIssuer interface {
	Issue(id, name, email string) (string, error)
	// Validate returns the subject lawyer id, or one of
	// domain.ErrTokenMalformed, domain.ErrTokenSignature,
	// domain.ErrTokenExpired.
	Validate(token string) (string, error)
}

// AuthService implements account registration and credential checking for
// lawyers and clients.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (string, *domain.Lawyer, error)
	Login(ctx context.Context, email, password string) (string, *domain.Lawyer, error)
	Profile(ctx context.Context, lawyerID string) (*domain.Lawyer, error)
	UpdateProfile(ctx context.Context, lawyerID, fullName, specialization string) (*domain.Lawyer, error)
	ChangePassword(ctx context.Context, lawyerID, current, next, confirm string) error

	RegisterClient(ctx context.Context, fullName, email, password string) (*domain.Client, error)
	LoginClient(ctx context.Context, email, password string) (*domain.Client, error)
}
