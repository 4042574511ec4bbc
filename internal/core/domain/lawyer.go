package domain

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrAccountLocked = errors.New("account temporarily locked")
var ErrAccountDisabled = errors.New("account is deactivated")
var ErrLawyerNotFound = errors.New("lawyer not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrBarNumberTaken = errors.New("bar number already registered")
var ErrValidation = errors.New("validation failed")

// Token validation failures. The auth gate collapses all of these into a
// single unauthorized response so callers cannot distinguish them.
var ErrTokenMalformed = errors.New("malformed token")
var ErrTokenSignature = errors.New("token signature invalid")
var ErrTokenExpired = errors.New("token expired")

// PersonalInfo holds the lawyer-editable identity fields shown on a profile.
type PersonalInfo struct {
	FirstName      string `json:"first_name,omitempty" bson:"first_name,omitempty"`
	LastName       string `json:"last_name,omitempty" bson:"last_name,omitempty"`
	Phone          string `json:"phone,omitempty" bson:"phone,omitempty"`
	Bio            string `json:"bio,omitempty" bson:"bio,omitempty"`
	City           string `json:"city,omitempty" bson:"city,omitempty"`
	State          string `json:"state,omitempty" bson:"state,omitempty"`
	ProfilePicture string `json:"profile_picture,omitempty" bson:"profile_picture,omitempty"`
}

// ProfessionalInfo holds practice details used by directory search.
type ProfessionalInfo struct {
	YearsOfExperience     int      `json:"years_of_experience" bson:"years_of_experience"`
	HourlyRate            float64  `json:"hourly_rate" bson:"hourly_rate"`
	PracticeAreas         []string `json:"practice_areas,omitempty" bson:"practice_areas,omitempty"`
	BarRegistrationNumber string   `json:"bar_registration_number,omitempty" bson:"bar_registration_number,omitempty"`
	IsAvailable           bool     `json:"is_available" bson:"is_available"`
}

// Qualification is a degree or certification on a lawyer profile.
type Qualification struct {
	Degree          string `json:"degree" bson:"degree"`
	Institution     string `json:"institution" bson:"institution"`
	Year            int    `json:"year" bson:"year"`
	CertificateFile string `json:"certificate_file,omitempty" bson:"certificate_file,omitempty"`
}

// Experience is a single work-history entry on a lawyer profile.
type Experience struct {
	Title        string     `json:"title" bson:"title"`
	Organization string     `json:"organization" bson:"organization"`
	StartDate    *time.Time `json:"start_date,omitempty" bson:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty" bson:"end_date,omitempty"`
	IsCurrent    bool       `json:"is_current" bson:"is_current"`
	Description  string     `json:"description,omitempty" bson:"description,omitempty"`
}

// Lawyer is the registered account aggregate. PasswordHash, LoginAttempts and
// LockUntil are credential state owned by the auth service and are never
// serialized to clients.
type Lawyer struct {
	ID                string           `json:"id"`
	FullName          string           `json:"full_name"`
	Email             string           `json:"email"`
	PasswordHash      string           `json:"-"`
	BarNumber         string           `json:"bar_number"`
	Specialization    string           `json:"specialization"`
	PersonalInfo      PersonalInfo     `json:"personal_info"`
	ProfessionalInfo  ProfessionalInfo `json:"professional_info"`
	Qualifications    []Qualification  `json:"qualifications,omitempty"`
	Experience        []Experience     `json:"experience,omitempty"`
	IsActive          bool             `json:"is_active"`
	IsProfileComplete bool             `json:"is_profile_complete"`
	LoginAttempts     int              `json:"-"`
	LockUntil         *time.Time       `json:"-"`
	LastLogin         *time.Time       `json:"last_login,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// Locked reports whether an unexpired lockout is in effect. Lock expiry is
// lazy: once LockUntil passes, the account behaves as unlocked without an
// explicit unlock write.
func (l *Lawyer) Locked(now time.Time) bool {
	return l.LockUntil != nil && l.LockUntil.After(now)
}

// DisplayName returns the best available human-readable name, preferring the
// registered full name over the profile first/last pair. Empty when neither
// is set; callers supply their own placeholder.
func (l *Lawyer) DisplayName() string {
	if l.FullName != "" {
		return l.FullName
	}
	return strings.TrimSpace(l.PersonalInfo.FirstName + " " + l.PersonalInfo.LastName)
}
