package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/lawwise/lawwise-api/internal/core/domain"
	"github.com/lawwise/lawwise-api/internal/core/ports"
)

const (
	maxLoginAttempts  = 5
	lockDuration      = 30 * time.Minute
	minPasswordLength = 8

	// Lawyer credentials get a higher cost than client credentials; the
	// original deployment shipped with this split and stored hashes depend
	// on it.
	lawyerHashCost = 12
)

// AuthService implements registration, login with account lockout, and
// password management for lawyers and clients.
type AuthService struct {
	lawyers ports.LawyerRepository
	clients ports.ClientRepository
	tokens  ports.TokenIssuer
	logger  zerolog.Logger
}

func NewAuthService(lawyers ports.LawyerRepository, clients ports.ClientRepository, tokens ports.TokenIssuer, logger zerolog.Logger) *AuthService {
	return &AuthService{lawyers: lawyers, clients: clients, tokens: tokens, logger: logger}
}

// Register opens a lawyer account and returns a session token for it.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (string, *domain.Lawyer, error) {
	if in.FullName == "" || in.Email == "" || in.Password == "" || in.ConfirmPassword == "" || in.BarNumber == "" || in.Specialization == "" {
		return "", nil, fmt.Errorf("%w: all fields are required", domain.ErrValidation)
	}
	if in.Password != in.ConfirmPassword {
		return "", nil, fmt.Errorf("%w: passwords do not match", domain.ErrValidation)
	}
	if len(in.Password) < minPasswordLength {
		return "", nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLength)
	}

	email := normalizeEmail(in.Email)

	if _, err := s.lawyers.FindByEmail(ctx, email); err == nil {
		return "", nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrLawyerNotFound) {
		return "", nil, err
	}
	if _, err := s.lawyers.FindByBarNumber(ctx, in.BarNumber); err == nil {
		return "", nil, domain.ErrBarNumberTaken
	} else if !errors.Is(err, domain.ErrLawyerNotFound) {
		return "", nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), lawyerHashCost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	lawyer := &domain.Lawyer{
		FullName:       strings.TrimSpace(in.FullName),
		Email:          email,
		PasswordHash:   string(hash),
		BarNumber:      in.BarNumber,
		Specialization: in.Specialization,
		ProfessionalInfo: domain.ProfessionalInfo{
			IsAvailable: true,
		},
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.lawyers.Create(ctx, lawyer)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(created.ID, created.FullName, created.Email)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("lawyer_id", created.ID).Msg("lawyer registered")
	return token, created, nil
}

// Login runs the credential check through the lockout state machine:
//
//   - a missing account reports invalid credentials, never "not found"
//   - an inactive account never authenticates
//   - an account with an unexpired lock rejects immediately, without
//     checking the password
//   - a wrong password increments the attempt counter atomically at the
//     store; crossing maxLoginAttempts sets a lockDuration lock
//   - a correct password resets the counter, clears the lock, and stamps
//     the login time before a token is issued
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Lawyer, error) {
	if email == "" || password == "" {
		return "", nil, fmt.Errorf("%w: email and password are required", domain.ErrValidation)
	}

	lawyer, err := s.lawyers.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrLawyerNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !lawyer.IsActive {
		return "", nil, domain.ErrAccountDisabled
	}

	now := time.Now().UTC()
	if lawyer.Locked(now) {
		return "", nil, domain.ErrAccountLocked
	}

	if bcrypt.CompareHashAndPassword([]byte(lawyer.PasswordHash), []byte(password)) != nil {
		attempts, incErr := s.lawyers.IncrementLoginAttempts(ctx, lawyer.ID)
		if incErr != nil {
			return "", nil, incErr
		}
		if attempts >= maxLoginAttempts {
			until := now.Add(lockDuration)
			if lockErr := s.lawyers.SetLockUntil(ctx, lawyer.ID, maxLoginAttempts, until); lockErr != nil {
				return "", nil, lockErr
			}
			s.logger.Warn().Str("lawyer_id", lawyer.ID).Int("attempts", attempts).Time("until", until).Msg("account locked")
			return "", nil, domain.ErrAccountLocked
		}
		return "", nil, domain.ErrInvalidCredentials
	}

	if err := s.lawyers.ResetLockout(ctx, lawyer.ID, now); err != nil {
		// Without the durable reset the login cannot be confirmed;
		// retrying here would risk double-counting attempts elsewhere.
		return "", nil, err
	}
	lawyer.LoginAttempts = 0
	lawyer.LockUntil = nil
	lawyer.LastLogin = &now

	token, err := s.tokens.Issue(lawyer.ID, lawyer.FullName, lawyer.Email)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("lawyer_id", lawyer.ID).Msg("lawyer logged in")
	return token, lawyer, nil
}

// Profile returns the account for a lawyer id.
func (s *AuthService) Profile(ctx context.Context, lawyerID string) (*domain.Lawyer, error) {
	return s.lawyers.FindByID(ctx, lawyerID)
}

// UpdateProfile updates the basic account fields. Empty inputs leave the
// current value in place.
func (s *AuthService) UpdateProfile(ctx context.Context, lawyerID, fullName, specialization string) (*domain.Lawyer, error) {
	lawyer, err := s.lawyers.FindByID(ctx, lawyerID)
	if err != nil {
		return nil, err
	}

	if fullName != "" {
		lawyer.FullName = strings.TrimSpace(fullName)
	}
	if specialization != "" {
		lawyer.Specialization = specialization
	}
	lawyer.UpdatedAt = time.Now().UTC()

	if err := s.lawyers.UpdateProfile(ctx, lawyer); err != nil {
		return nil, err
	}
	return lawyer, nil
}

// ChangePassword verifies the current password before storing a new hash.
func (s *AuthService) ChangePassword(ctx context.Context, lawyerID, current, next, confirm string) error {
	if current == "" || next == "" || confirm == "" {
		return fmt.Errorf("%w: all password fields are required", domain.ErrValidation)
	}
	if next != confirm {
		return fmt.Errorf("%w: new passwords do not match", domain.ErrValidation)
	}
	if len(next) < minPasswordLength {
		return fmt.Errorf("%w: new password must be at least %d characters", domain.ErrValidation, minPasswordLength)
	}

	lawyer, err := s.lawyers.FindByID(ctx, lawyerID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(lawyer.PasswordHash), []byte(current)) != nil {
		return fmt.Errorf("%w: current password is incorrect", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), lawyerHashCost)
	if err != nil {
		return err
	}
	if err := s.lawyers.UpdatePassword(ctx, lawyerID, string(hash)); err != nil {
		return err
	}

	s.logger.Info().Str("lawyer_id", lawyerID).Msg("password changed")
	return nil
}

// RegisterClient opens a client account. Clients are not issued tokens.
func (s *AuthService) RegisterClient(ctx context.Context, fullName, email, password string) (*domain.Client, error) {
	if fullName == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: all fields are required", domain.ErrValidation)
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLength)
	}

	normalized := normalizeEmail(email)
	if _, err := s.clients.FindByEmail(ctx, normalized); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrClientNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	client := &domain.Client{
		FullName:     strings.TrimSpace(fullName),
		Email:        normalized,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	return s.clients.Create(ctx, client)
}

// LoginClient checks client credentials. No lockout state is kept for
// clients and no token is issued.
func (s *AuthService) LoginClient(ctx context.Context, email, password string) (*domain.Client, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", domain.ErrValidation)
	}

	client, err := s.clients.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(client.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return client, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
