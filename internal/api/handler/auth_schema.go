package handler

import (
	"time"

	"github.com/lawwise/lawwise-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type registerRequest struct {
	FullName        string `json:"full_name"        validate:"required,min=2"`
	Email           string `json:"email"            validate:"required,email"`
	Password        string `json:"password"         validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	BarNumber       string `json:"bar_number"       validate:"required"`
	Specialization  string `json:"specialization"   validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// lawyerSummary is the trimmed account view returned from auth endpoints.
type lawyerSummary struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Specialization string     `json:"specialization"`
	BarNumber      string     `json:"bar_number"`
	LastLogin      *time.Time `json:"last_login,omitempty"`
}

type authResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	Token   string         `json:"token,omitempty"`
	Lawyer  *lawyerSummary `json:"lawyer,omitempty"`
}

type updateProfileRequest struct {
	FullName       string `json:"full_name"`
	Specialization string `json:"specialization"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=NewPassword"`
}

type profileResponse struct {
	Success bool           `json:"success"`
	Lawyer  *domain.Lawyer `json:"lawyer"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func toLawyerSummary(l *domain.Lawyer) *lawyerSummary {
	return &lawyerSummary{
		ID:             l.ID,
		Name:           l.FullName,
		Email:          l.Email,
		Specialization: l.Specialization,
		BarNumber:      l.BarNumber,
		LastLogin:      l.LastLogin,
	}
}
