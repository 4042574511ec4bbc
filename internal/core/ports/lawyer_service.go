package ports

import (
	"context"

	"github.com/lawwise/lawwise-api/internal/core/domain"
)

// SaveProfileInput carries the nested profile sections submitted from the
// profile editor. File paths for the picture and certificates are resolved by
// the transport layer before the service is called.
type SaveProfileInput struct {
	PersonalInfo     domain.PersonalInfo
	ProfessionalInfo domain.ProfessionalInfo
	Qualifications   []domain.Qualification
	Experience       []domain.Experience
}

// LawyerSearchResult is a page of directory search results.
type LawyerSearchResult struct {
	Lawyers    []*domain.Lawyer
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// LawyerService implements directory listing, search, and profile editing.
type LawyerService interface {
	SaveProfile(ctx context.Context, lawyerID string, in SaveProfileInput) (*domain.Lawyer, error)
	Search(ctx context.Context, filter LawyerSearchFilter) (*LawyerSearchResult, error)
	Get(ctx context.Context, id string) (*domain.Lawyer, error)
	ListActive(ctx context.Context) ([]*domain.Lawyer, error)
}
