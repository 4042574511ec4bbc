package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lawwise/lawwise-api/internal/api/metrics"
	"github.com/lawwise/lawwise-api/internal/core/domain"
	"github.com/lawwise/lawwise-api/internal/core/ports"
)

// NotificationHandler handles the connection-request workflow endpoints.
type NotificationHandler struct {
	service ports.NotificationService
}

func NewNotificationHandler(service ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// Create stores a generic notification (reminder, case update, etc.).
//
// @Summary      Create a notification
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createNotificationRequest  true  "Notification"
// @Success      200   {object}  notificationResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/notifications [post]
func (h *NotificationHandler) Create(c echo.Context) error {
	var req createNotificationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	notification, err := h.service.Create(c.Request().Context(), ports.CreateNotificationInput{
		ToLawyerID: req.LawyerID,
		Kind:       domain.NotificationKind(req.Type),
		Message:    req.Message,
		Status:     domain.NotificationStatus(req.Status),
	})
	if err != nil {
		return err
	}

	metrics.NotificationsCreatedTotal.WithLabelValues(string(notification.Kind)).Inc()
	return c.JSON(http.StatusOK, notificationResponse{Success: true, Notification: notification})
}

// Send creates a pending connection request.
//
// @Summary      Send a connection request
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      sendConnectionRequest  true  "Connection request"
// @Success      200   {object}  notificationResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/notifications/send [post]
func (h *NotificationHandler) Send(c echo.Context) error {
	var req sendConnectionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	notification, err := h.service.Send(c.Request().Context(), req.FromLawyerID, req.ToLawyerID, req.Message)
	if err != nil {
		return err
	}

	metrics.NotificationsCreatedTotal.WithLabelValues(string(domain.KindConnectionRequest)).Inc()
	return c.JSON(http.StatusOK, notificationResponse{Success: true, Notification: notification})
}

// List returns all notifications addressed to a lawyer, most recent first.
// A missing lawyer id is a valid "no subject" query and yields an empty list.
//
// @Summary      List notifications for a lawyer
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        lawyerId  query     string  false  "Recipient lawyer id"
// @Success      200       {object}  notificationListResponse
// @Router       /api/notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	notifications, err := h.service.ListFor(c.Request().Context(), c.QueryParam("lawyerId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notificationListResponse{Success: true, Notifications: notifications})
}

// Respond resolves a pending connection request.
//
// @Summary      Respond to a connection request
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      respondRequest  true  "Decision"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/notifications/respond [post]
func (h *NotificationHandler) Respond(c echo.Context) error {
	var req respondRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	decision := domain.NotificationStatus(req.Response)
	if err := h.service.Respond(c.Request().Context(), req.NotificationID, decision); err != nil {
		return err
	}

	metrics.ConnectionResponsesTotal.WithLabelValues(string(decision)).Inc()
	return c.JSON(http.StatusOK, messageResponse{Success: true})
}

// Connections returns the derived accepted-connections view. A single
// accepted exchange appears once per accepted notification, so it normally
// shows up twice; callers wanting unique peers must deduplicate.
//
// @Summary      List accepted connections for a lawyer
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        lawyerId  query     string  false  "Lawyer id"
// @Success      200       {object}  connectionListResponse
// @Router       /api/notifications/connections [get]
func (h *NotificationHandler) Connections(c echo.Context) error {
	connections, err := h.service.ConnectionsFor(c.Request().Context(), c.QueryParam("lawyerId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, connectionListResponse{Success: true, Connections: connections})
}
