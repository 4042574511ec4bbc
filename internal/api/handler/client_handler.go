package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lawwise/lawwise-api/internal/api/metrics"
	"github.com/lawwise/lawwise-api/internal/core/domain"
	"github.com/lawwise/lawwise-api/internal/core/ports"
)

type registerClientRequest struct {
	FullName string `json:"full_name" validate:"required,min=2"`
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=8"`
}

type clientLoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type clientResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	Client  *domain.Client `json:"client"`
}

// ClientHandler handles client account endpoints. Clients have no session
// tokens; both endpoints return the account record only.
type ClientHandler struct {
	authService ports.AuthService
}

func NewClientHandler(authService ports.AuthService) *ClientHandler {
	return &ClientHandler{authService: authService}
}

// Register creates a new client account.
//
// @Summary      Register a new client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        body  body      registerClientRequest  true  "Registration details"
// @Success      201   {object}  clientResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/clients/register [post]
func (h *ClientHandler) Register(c echo.Context) error {
	var req registerClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	client, err := h.authService.RegisterClient(c.Request().Context(), req.FullName, req.Email, req.Password)
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("client").Inc()
	return c.JSON(http.StatusCreated, clientResponse{
		Success: true,
		Message: "Account created successfully",
		Client:  client,
	})
}

// Login verifies client credentials.
//
// @Summary      Client login
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        body  body      clientLoginRequest  true  "Login credentials"
// @Success      200   {object}  clientResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/clients/login [post]
func (h *ClientHandler) Login(c echo.Context) error {
	var req clientLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	client, err := h.authService.LoginClient(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, clientResponse{
		Success: true,
		Message: fmt.Sprintf("Welcome back, %s!", client.FullName),
		Client:  client,
	})
}
