package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/lawwise/lawwise-api/internal/core/domain"
	"github.com/lawwise/lawwise-api/internal/core/ports"
)

const (
	defaultSearchLimit = 10
	maxSearchLimit     = 100
)

// LawyerService implements directory listing, search, and the full profile
// editor.
type LawyerService struct {
	lawyers ports.LawyerRepository
	logger  zerolog.Logger
}

func NewLawyerService(lawyers ports.LawyerRepository, logger zerolog.Logger) *LawyerService {
	return &LawyerService{lawyers: lawyers, logger: logger}
}

// SaveProfile replaces the nested profile sections of the lawyer's own
// account and marks the profile complete. It never creates a new account.
func (s *LawyerService) SaveProfile(ctx context.Context, lawyerID string, in ports.SaveProfileInput) (*domain.Lawyer, error) {
	lawyer, err := s.lawyers.FindByID(ctx, lawyerID)
	if err != nil {
		return nil, err
	}

	lawyer.PersonalInfo = in.PersonalInfo
	lawyer.ProfessionalInfo = in.ProfessionalInfo
	lawyer.Qualifications = in.Qualifications
	lawyer.Experience = in.Experience
	lawyer.IsProfileComplete = true
	lawyer.UpdatedAt = time.Now().UTC()

	if err := s.lawyers.UpdateProfile(ctx, lawyer); err != nil {
		return nil, err
	}

	s.logger.Info().Str("lawyer_id", lawyerID).Msg("profile saved")
	return lawyer, nil
}

// Search returns a page of complete lawyer profiles matching filter.
func (s *LawyerService) Search(ctx context.Context, filter ports.LawyerSearchFilter) (*ports.LawyerSearchResult, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultSearchLimit
	}
	if filter.Limit > maxSearchLimit {
		filter.Limit = maxSearchLimit
	}

	lawyers, total, err := s.lawyers.Search(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return &ports.LawyerSearchResult{
		Lawyers:    lawyers,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}

// Get returns a single lawyer profile by id.
func (s *LawyerService) Get(ctx context.Context, id string) (*domain.Lawyer, error) {
	return s.lawyers.FindByID(ctx, id)
}

// ListActive returns every active lawyer, newest first.
func (s *LawyerService) ListActive(ctx context.Context) ([]*domain.Lawyer, error) {
	return s.lawyers.ListActive(ctx)
}
