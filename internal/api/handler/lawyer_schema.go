package handler

import "github.com/lawwise/lawwise-api/internal/core/domain"

// profilePayload is the JSON document submitted in the "profileData" field of
// the multipart profile form. Uploaded file paths are attached server-side.
type profilePayload struct {
	PersonalInfo     domain.PersonalInfo     `json:"personal_info"`
	ProfessionalInfo domain.ProfessionalInfo `json:"professional_info"`
	Qualifications   []domain.Qualification  `json:"qualifications"`
	Experience       []domain.Experience     `json:"experience"`
}

type lawyerResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	Lawyer  *domain.Lawyer `json:"lawyer"`
}

type lawyerListResponse struct {
	Success bool             `json:"success"`
	Count   int              `json:"count"`
	Lawyers []*domain.Lawyer `json:"lawyers"`
}

type searchPagination struct {
	CurrentPage  int   `json:"current_page"`
	TotalPages   int   `json:"total_pages"`
	TotalResults int64 `json:"total_results"`
	HasNext      bool  `json:"has_next"`
}

type searchResponse struct {
	Success    bool             `json:"success"`
	Lawyers    []*domain.Lawyer `json:"lawyers"`
	Pagination searchPagination `json:"pagination"`
}
