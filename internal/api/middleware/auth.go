package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/lawwise/lawwise-api/internal/core/domain"
)

// lawyerContextKey is where Auth stores the resolved account.
const lawyerContextKey = "lawyer"

// TokenValidator verifies a bearer token and returns the subject lawyer id.
type TokenValidator interface {
	Validate(token string) (string, error)
}

// LawyerLoader re-resolves a token subject to a live account. The token only
// proves identity at issuance time, so every protected call re-checks that
// the account still exists and is still active.
type LawyerLoader interface {
	FindByID(ctx context.Context, id string) (*domain.Lawyer, error)
}

// Auth validates the bearer token, reloads the account, and injects it into
// the request context. All token and account failures collapse into the same
// 401 so callers cannot distinguish malformed, expired, and deactivated.
func Auth(tokens TokenValidator, lawyers LawyerLoader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			id, err := tokens.Validate(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			lawyer, err := lawyers.FindByID(c.Request().Context(), id)
			if err != nil || !lawyer.IsActive {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(lawyerContextKey, lawyer)
			return next(c)
		}
	}
}

// LawyerFromContext returns the account injected by Auth.
func LawyerFromContext(c echo.Context) (*domain.Lawyer, bool) {
	lawyer, ok := c.Get(lawyerContextKey).(*domain.Lawyer)
	return lawyer, ok
}
