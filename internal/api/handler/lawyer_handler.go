package handler

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/lawwise/lawwise-api/internal/core/ports"
)

// FileStore persists uploaded files and returns their stored paths.
type FileStore interface {
	Save(prefix, originalName string, r io.Reader) (string, error)
}

// LawyerHandler handles directory and profile-editor endpoints.
type LawyerHandler struct {
	service ports.LawyerService
	files   FileStore
}

func NewLawyerHandler(service ports.LawyerService, files FileStore) *LawyerHandler {
	return &LawyerHandler{service: service, files: files}
}

// SaveProfile replaces the authenticated lawyer's nested profile sections.
// The request is multipart: a "profileData" JSON field plus optional
// "profilePicture" and "certificate" files. Certificates map positionally
// onto the submitted qualifications.
//
// @Summary      Save the full lawyer profile
// @Tags         lawyers
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        profileData  formData  string  true  "Profile sections as JSON"
// @Success      200  {object}  lawyerResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/lawyer/profile [post]
func (h *LawyerHandler) SaveProfile(c echo.Context) error {
	lawyer, err := ctxLawyer(c)
	if err != nil {
		return err
	}

	raw := c.FormValue("profileData")
	if raw == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "profileData is required")
	}

	var payload profilePayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid profileData")
	}

	if fh, err := c.FormFile("profilePicture"); err == nil {
		path, err := h.storeUpload("picture", fh.Filename, fh)
		if err != nil {
			return err
		}
		payload.PersonalInfo.ProfilePicture = path
	}

	if form, err := c.MultipartForm(); err == nil {
		for i, fh := range form.File["certificate"] {
			if i >= len(payload.Qualifications) {
				break
			}
			path, err := h.storeUpload("certificate", fh.Filename, fh)
			if err != nil {
				return err
			}
			payload.Qualifications[i].CertificateFile = path
		}
	}

	updated, err := h.service.SaveProfile(c.Request().Context(), lawyer.ID, ports.SaveProfileInput{
		PersonalInfo:     payload.PersonalInfo,
		ProfessionalInfo: payload.ProfessionalInfo,
		Qualifications:   payload.Qualifications,
		Experience:       payload.Experience,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, lawyerResponse{
		Success: true,
		Message: "Profile saved successfully",
		Lawyer:  updated,
	})
}

func (h *LawyerHandler) storeUpload(prefix, filename string, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()
	return h.files.Save(prefix, filename, src)
}

// Search returns a page of complete lawyer profiles.
//
// @Summary      Search lawyers
// @Tags         lawyers
// @Produce      json
// @Param        query           query     string  false  "Text search on name and bio"
// @Param        practice_area   query     string  false  "Practice area"
// @Param        city            query     string  false  "City"
// @Param        min_experience  query     int     false  "Minimum years of experience"
// @Param        max_rate        query     number  false  "Maximum hourly rate"
// @Param        available       query     bool    false  "Only available lawyers"
// @Param        page            query     int     false  "Page (1-based)"
// @Param        limit           query     int     false  "Page size"
// @Success      200  {object}  searchResponse
// @Router       /api/lawyer/search [get]
func (h *LawyerHandler) Search(c echo.Context) error {
	filter := ports.LawyerSearchFilter{
		Query:        c.QueryParam("query"),
		PracticeArea: c.QueryParam("practice_area"),
		City:         c.QueryParam("city"),
	}
	filter.MinExperience, _ = strconv.Atoi(c.QueryParam("min_experience"))
	filter.MaxRate, _ = strconv.ParseFloat(c.QueryParam("max_rate"), 64)
	filter.AvailableOnly = c.QueryParam("available") == "true"
	filter.Page, _ = strconv.Atoi(c.QueryParam("page"))
	filter.Limit, _ = strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.Search(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, searchResponse{
		Success: true,
		Lawyers: result.Lawyers,
		Pagination: searchPagination{
			CurrentPage:  result.Page,
			TotalPages:   result.TotalPages,
			TotalResults: result.Total,
			HasNext:      int64(result.Page*result.Limit) < result.Total,
		},
	})
}

// Get returns a single public lawyer profile.
//
// @Summary      Get a lawyer profile
// @Tags         lawyers
// @Produce      json
// @Param        id   path      string  true  "Lawyer id"
// @Success      200  {object}  lawyerResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/lawyer/{id} [get]
func (h *LawyerHandler) Get(c echo.Context) error {
	lawyer, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, lawyerResponse{Success: true, Lawyer: lawyer})
}

// List returns all active lawyers, newest first.
//
// @Summary      List active lawyers
// @Tags         lawyers
// @Produce      json
// @Success      200  {object}  lawyerListResponse
// @Router       /api/lawyers [get]
func (h *LawyerHandler) List(c echo.Context) error {
	lawyers, err := h.service.ListActive(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, lawyerListResponse{
		Success: true,
		Count:   len(lawyers),
		Lawyers: lawyers,
	})
}
