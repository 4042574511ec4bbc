package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/lawwise/lawwise-api/internal/core/domain"
	"github.com/lawwise/lawwise-api/internal/core/ports"
)

type stubLawyerRepo struct {
	lawyers map[string]*domain.Lawyer
	seq     int
}

func newStubLawyerRepo() *stubLawyerRepo {
	return &stubLawyerRepo{lawyers: make(map[string]*domain.Lawyer)}
}

func cloneLawyer(l *domain.Lawyer) *domain.Lawyer {
	if l == nil {
		return nil
	}
	clone := *l
	return &clone
}

func (r *stubLawyerRepo) Create(_ context.Context, lawyer *domain.Lawyer) (*domain.Lawyer, error) {
	r.seq++
	copy := cloneLawyer(lawyer)
	copy.ID = fmt.Sprintf("lawyer_%d", r.seq)
	r.lawyers[copy.ID] = cloneLawyer(copy)
	return copy, nil
}

func (r *stubLawyerRepo) FindByID(_ context.Context, id string) (*domain.Lawyer, error) {
	l, ok := r.lawyers[id]
	if !ok {
		return nil, domain.ErrLawyerNotFound
	}
	return cloneLawyer(l), nil
}

func (r *stubLawyerRepo) FindByEmail(_ context.Context, email string) (*domain.Lawyer, error) {
	for _, l := range r.lawyers {
		if l.Email == email {
			return cloneLawyer(l), nil
		}
	}
	return nil, domain.ErrLawyerNotFound
}

func (r *stubLawyerRepo) FindByBarNumber(_ context.Context, barNumber string) (*domain.Lawyer, error) {
	for _, l := range r.lawyers {
		if l.BarNumber == barNumber {
			return cloneLawyer(l), nil
		}
	}
	return nil, domain.ErrLawyerNotFound
}

func (r *stubLawyerRepo) ListActive(_ context.Context) ([]*domain.Lawyer, error) {
	out := make([]*domain.Lawyer, 0, len(r.lawyers))
	for _, l := range r.lawyers {
		if l.IsActive {
			out = append(out, cloneLawyer(l))
		}
	}
	return out, nil
}

func (r *stubLawyerRepo) Search(_ context.Context, filter ports.LawyerSearchFilter) ([]*domain.Lawyer, int64, error) {
	matched := make([]*domain.Lawyer, 0)
	for _, l := range r.lawyers {
		if l.IsProfileComplete {
			matched = append(matched, cloneLawyer(l))
		}
	}
	total := int64(len(matched))
	start := (filter.Page - 1) * filter.Limit
	if start >= len(matched) {
		return []*domain.Lawyer{}, total, nil
	}
	end := start + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *stubLawyerRepo) UpdateProfile(_ context.Context, lawyer *domain.Lawyer) error {
	stored, ok := r.lawyers[lawyer.ID]
	if !ok {
		return domain.ErrLawyerNotFound
	}
	updated := cloneLawyer(lawyer)
	updated.PasswordHash = stored.PasswordHash
	updated.LoginAttempts = stored.LoginAttempts
	updated.LockUntil = stored.LockUntil
	r.lawyers[lawyer.ID] = updated
	return nil
}

func (r *stubLawyerRepo) UpdatePassword(_ context.Context, id, passwordHash string) error {
	l, ok := r.lawyers[id]
	if !ok {
		return domain.ErrLawyerNotFound
	}
	l.PasswordHash = passwordHash
	return nil
}

func (r *stubLawyerRepo) IncrementLoginAttempts(_ context.Context, id string) (int, error) {
	l, ok := r.lawyers[id]
	if !ok {
		return 0, domain.ErrLawyerNotFound
	}
	l.LoginAttempts++
	return l.LoginAttempts, nil
}

func (r *stubLawyerRepo) SetLockUntil(_ context.Context, id string, threshold int, until time.Time) error {
	l, ok := r.lawyers[id]
	if !ok {
		return domain.ErrLawyerNotFound
	}
	if l.LoginAttempts >= threshold {
		u := until
		l.LockUntil = &u
	}
	return nil
}

func (r *stubLawyerRepo) ResetLockout(_ context.Context, id string, lastLogin time.Time) error {
	l, ok := r.lawyers[id]
	if !ok {
		return domain.ErrLawyerNotFound
	}
	l.LoginAttempts = 0
	l.LockUntil = nil
	t := lastLogin
	l.LastLogin = &t
	return nil
}

type stubClientRepo struct {
	clients map[string]*domain.Client
	seq     int
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{clients: make(map[string]*domain.Client)}
}

func (r *stubClientRepo) Create(_ context.Context, client *domain.Client) (*domain.Client, error) {
	r.seq++
	copy := *client
	copy.ID = fmt.Sprintf("client_%d", r.seq)
	r.clients[copy.ID] = &copy
	stored := copy
	return &stored, nil
}

func (r *stubClientRepo) FindByEmail(_ context.Context, email string) (*domain.Client, error) {
	for _, c := range r.clients {
		if c.Email == email {
			copy := *c
			return &copy, nil
		}
	}
	return nil, domain.ErrClientNotFound
}

func newAuthService(lawyers *stubLawyerRepo, clients *stubClientRepo) *AuthService {
	return NewAuthService(lawyers, clients, NewTokenService("secret", time.Hour), zerolog.Nop())
}

// seedLawyer stores an account directly, bypassing Register, so tests can use
// a cheap hash cost.
func seedLawyer(t *testing.T, repo *stubLawyerRepo, email, password string) *domain.Lawyer {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	created, err := repo.Create(context.Background(), &domain.Lawyer{
		FullName:     "Seed Lawyer",
		Email:        email,
		PasswordHash: string(hash),
		BarNumber:    "BAR-" + email,
		IsActive:     true,
	})
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	return created
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubLawyerRepo()
	svc := newAuthService(repo, newStubClientRepo())

	token, lawyer, err := svc.Register(context.Background(), ports.RegisterInput{
		FullName:        "Alice Advocate",
		Email:           "Alice@Example.com",
		Password:        "longenough",
		ConfirmPassword: "longenough",
		BarNumber:       "BAR123",
		Specialization:  "Family Law",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if lawyer.Email != "alice@example.com" {
		t.Fatalf("expected normalized email, got %q", lawyer.Email)
	}
	if !lawyer.IsActive {
		t.Fatalf("expected new account to be active")
	}
	if !lawyer.ProfessionalInfo.IsAvailable {
		t.Fatalf("expected new account to be available")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(lawyer.PasswordHash), []byte("longenough")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newAuthService(newStubLawyerRepo(), newStubClientRepo())

	cases := []ports.RegisterInput{
		{},
		{FullName: "A", Email: "a@b.c", Password: "longenough", ConfirmPassword: "different", BarNumber: "B1", Specialization: "Tax"},
		{FullName: "A", Email: "a@b.c", Password: "short", ConfirmPassword: "short", BarNumber: "B1", Specialization: "Tax"},
	}
	for i, in := range cases {
		if _, _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("case %d: expected ErrValidation, got %v", i, err)
		}
	}
}

func TestAuthService_Register_Duplicates(t *testing.T) {
	repo := newStubLawyerRepo()
	svc := newAuthService(repo, newStubClientRepo())
	seedLawyer(t, repo, "taken@example.com", "longenough")

	_, _, err := svc.Register(context.Background(), ports.RegisterInput{
		FullName: "B", Email: "taken@example.com", Password: "longenough",
		ConfirmPassword: "longenough", BarNumber: "OTHER", Specialization: "Tax",
	})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	_, _, err = svc.Register(context.Background(), ports.RegisterInput{
		FullName: "B", Email: "new@example.com", Password: "longenough",
		ConfirmPassword: "longenough", BarNumber: "BAR-taken@example.com", Specialization: "Tax",
	})
	if !errors.Is(err, domain.ErrBarNumberTaken) {
		t.Fatalf("expected ErrBarNumberTaken, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubLawyerRepo()
	svc := newAuthService(repo, newStubClientRepo())
	seeded := seedLawyer(t, repo, "carol@example.com", "s3cretpass")

	token, lawyer, err := svc.Login(context.Background(), "Carol@Example.com", "s3cretpass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if lawyer.ID != seeded.ID {
		t.Fatalf("unexpected lawyer: %+v", lawyer)
	}
	if lawyer.LastLogin == nil {
		t.Fatalf("expected last login to be stamped")
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := newAuthService(newStubLawyerRepo(), newStubClientRepo())

	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_Inactive(t *testing.T) {
	repo := newStubLawyerRepo()
	svc := newAuthService(repo, newStubClientRepo())
	seeded := seedLawyer(t, repo, "gone@example.com", "s3cretpass")
	repo.lawyers[seeded.ID].IsActive = false

	if _, _, err := svc.Login(context.Background(), "gone@example.com", "s3cretpass"); !errors.Is(err, domain.ErrAccountDisabled) {
		t.Fatalf("expected ErrAccountDisabled, got %v", err)
	}
}

func TestAuthService_Login_LocksAfterMaxAttempts(t *testing.T) {
	repo := newStubLawyerRepo()
	svc := newAuthService(repo, newStubClientRepo())
	seeded := seedLawyer(t, repo, "dave@example.com", "rightpass1")

	for i := 1; i < maxLoginAttempts; i++ {
		if _, _, err := svc.Login(context.Background(), "dave@example.com", "wrongpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("attempt %d: expected ErrInvalidCredentials, got %v", i, err)
		}
	}

	// The attempt that reaches the threshold reports locked, not invalid.
	if _, _, err := svc.Login(context.Background(), "dave@example.com", "wrongpass"); !errors.Is(err, domain.ErrAccountLocked) {
		t.Fatalf("expected ErrAccountLocked on attempt %d, got %v", maxLoginAttempts, err)
	}
	if repo.lawyers[seeded.ID].LockUntil == nil {
		t.Fatalf("expected lock to be set")
	}

	// While locked even the correct password is rejected and the hash is
	// never consulted.
	if _, _, err := svc.Login(context.Background(), "dave@example.com", "rightpass1"); !errors.Is(err, domain.ErrAccountLocked) {
		t.Fatalf("expected ErrAccountLocked with correct password, got %v", err)
	}
}

func TestAuthService_Login_ExpiredLockAdmitsAndResets(t *testing.T) {
	repo := newStubLawyerRepo()
	svc := newAuthService(repo, newStubClientRepo())
	seeded := seedLawyer(t, repo, "erin@example.com", "rightpass1")

	past := time.Now().UTC().Add(-time.Minute)
	repo.lawyers[seeded.ID].LoginAttempts = maxLoginAttempts
	repo.lawyers[seeded.ID].LockUntil = &past

	_, lawyer, err := svc.Login(context.Background(), "erin@example.com", "rightpass1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if lawyer.LoginAttempts != 0 || lawyer.LockUntil != nil {
		t.Fatalf("expected lockout state cleared, got attempts=%d lock=%v", lawyer.LoginAttempts, lawyer.LockUntil)
	}
	if repo.lawyers[seeded.ID].LoginAttempts != 0 {
		t.Fatalf("expected stored attempts reset")
	}
}

func TestAuthService_Login_SuccessResetsCounter(t *testing.T) {
	repo := newStubLawyerRepo()
	svc := newAuthService(repo, newStubClientRepo())
	seeded := seedLawyer(t, repo, "frank@example.com", "rightpass1")

	for i := 0; i < maxLoginAttempts-1; i++ {
		_, _, _ = svc.Login(context.Background(), "frank@example.com", "wrongpass")
	}
	if _, _, err := svc.Login(context.Background(), "frank@example.com", "rightpass1"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if repo.lawyers[seeded.ID].LoginAttempts != 0 {
		t.Fatalf("expected counter reset, got %d", repo.lawyers[seeded.ID].LoginAttempts)
	}

	// The budget is fresh again after a successful login.
	if _, _, err := svc.Login(context.Background(), "frank@example.com", "wrongpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	repo := newStubLawyerRepo()
	svc := newAuthService(repo, newStubClientRepo())
	seeded := seedLawyer(t, repo, "grace@example.com", "oldpassword")

	if err := svc.ChangePassword(context.Background(), seeded.ID, "wrongcurrent", "newpassword", "newpassword"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for wrong current password, got %v", err)
	}
	if err := svc.ChangePassword(context.Background(), seeded.ID, "oldpassword", "newpassword", "different"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for mismatch, got %v", err)
	}

	if err := svc.ChangePassword(context.Background(), seeded.ID, "oldpassword", "newpassword", "newpassword"); err != nil {
		t.Fatalf("change password failed: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "grace@example.com", "newpassword"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
}

func TestAuthService_RegisterClient(t *testing.T) {
	clients := newStubClientRepo()
	svc := newAuthService(newStubLawyerRepo(), clients)

	client, err := svc.RegisterClient(context.Background(), "Cathy Client", "Cathy@Example.com", "longenough")
	if err != nil {
		t.Fatalf("register client failed: %v", err)
	}
	if client.Email != "cathy@example.com" {
		t.Fatalf("expected normalized email, got %q", client.Email)
	}

	if _, err := svc.RegisterClient(context.Background(), "Copy Cat", "cathy@example.com", "longenough"); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_LoginClient_NoLockout(t *testing.T) {
	clients := newStubClientRepo()
	svc := newAuthService(newStubLawyerRepo(), clients)

	if _, err := svc.RegisterClient(context.Background(), "Cathy Client", "cathy@example.com", "longenough"); err != nil {
		t.Fatalf("register client failed: %v", err)
	}

	// Client accounts never lock, no matter how many failures.
	for i := 0; i < maxLoginAttempts+2; i++ {
		if _, err := svc.LoginClient(context.Background(), "cathy@example.com", "wrongpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("attempt %d: expected ErrInvalidCredentials, got %v", i, err)
		}
	}
	if _, err := svc.LoginClient(context.Background(), "cathy@example.com", "longenough"); err != nil {
		t.Fatalf("client login failed: %v", err)
	}
}
