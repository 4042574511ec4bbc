package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lawwise/lawwise-api/internal/core/domain"
	"github.com/lawwise/lawwise-api/internal/core/ports"
)

type caseResponse struct {
	Success bool         `json:"success"`
	Case    *domain.Case `json:"case"`
}

type caseListResponse struct {
	Success bool           `json:"success"`
	Count   int            `json:"count"`
	Cases   []*domain.Case `json:"cases"`
}

// CaseHandler handles the case tracker endpoints.
type CaseHandler struct {
	cases ports.CaseRepository
}

func NewCaseHandler(cases ports.CaseRepository) *CaseHandler {
	return &CaseHandler{cases: cases}
}

// Create stores a new tracked case.
//
// @Summary      Create a case
// @Tags         cases
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      domain.Case  true  "Case"
// @Success      201   {object}  caseResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/cases [post]
func (h *CaseHandler) Create(c echo.Context) error {
	var payload domain.Case
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if payload.ID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "id is required")
	}

	if err := h.cases.Create(c.Request().Context(), &payload); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, caseResponse{Success: true, Case: &payload})
}

// List returns all tracked cases.
//
// @Summary      List cases
// @Tags         cases
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  caseListResponse
// @Router       /api/cases [get]
func (h *CaseHandler) List(c echo.Context) error {
	cases, err := h.cases.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, caseListResponse{Success: true, Count: len(cases), Cases: cases})
}
