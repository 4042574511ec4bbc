package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lawwise/lawwise-api/internal/api/middleware"
	"github.com/lawwise/lawwise-api/internal/core/domain"
)

// ctxLawyer extracts the account injected by the Auth middleware. A missing
// account means the middleware did not run on this route; fail closed.
func ctxLawyer(c echo.Context) (*domain.Lawyer, error) {
	lawyer, ok := middleware.LawyerFromContext(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return lawyer, nil
}
