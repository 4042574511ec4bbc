package handler

import (
	"github.com/lawwise/lawwise-api/internal/core/domain"
	"github.com/lawwise/lawwise-api/internal/core/ports"
)

type createNotificationRequest struct {
	LawyerID string `json:"lawyer_id" validate:"required"`
	Type     string `json:"type"      validate:"required,oneof=connection_request reminder"`
	Message  string `json:"message"   validate:"required"`
	Status   string `json:"status"    validate:"omitempty,oneof=pending accepted rejected"`
}

type sendConnectionRequest struct {
	FromLawyerID string `json:"from_lawyer_id" validate:"required"`
	ToLawyerID   string `json:"to_lawyer_id"   validate:"required"`
	Message      string `json:"message"        validate:"required"`
}

type respondRequest struct {
	NotificationID string `json:"notification_id" validate:"required"`
	Response       string `json:"response"        validate:"required,oneof=accepted rejected"`
}

type notificationResponse struct {
	Success      bool                 `json:"success"`
	Notification *domain.Notification `json:"notification,omitempty"`
}

type notificationListResponse struct {
	Success       bool                   `json:"success"`
	Notifications []*domain.Notification `json:"notifications"`
}

type connectionListResponse struct {
	Success     bool               `json:"success"`
	Connections []ports.Connection `json:"connections"`
}
