package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/lawwise/lawwise-api/internal/core/domain"
	"github.com/lawwise/lawwise-api/internal/core/ports"
)

type stubNotificationService struct {
	createFn      func(ctx context.Context, in ports.CreateNotificationInput) (*domain.Notification, error)
	sendFn        func(ctx context.Context, fromLawyerID, toLawyerID, message string) (*domain.Notification, error)
	listFn        func(ctx context.Context, lawyerID string) ([]*domain.Notification, error)
	respondFn     func(ctx context.Context, notificationID string, decision domain.NotificationStatus) error
	connectionsFn func(ctx context.Context, lawyerID string) ([]ports.Connection, error)
}

func (s *stubNotificationService) Create(ctx context.Context, in ports.CreateNotificationInput) (*domain.Notification, error) {
	return s.createFn(ctx, in)
}

func (s *stubNotificationService) Send(ctx context.Context, fromLawyerID, toLawyerID, message string) (*domain.Notification, error) {
	return s.sendFn(ctx, fromLawyerID, toLawyerID, message)
}

func (s *stubNotificationService) ListFor(ctx context.Context, lawyerID string) ([]*domain.Notification, error) {
	return s.listFn(ctx, lawyerID)
}

func (s *stubNotificationService) Respond(ctx context.Context, notificationID string, decision domain.NotificationStatus) error {
	return s.respondFn(ctx, notificationID, decision)
}

func (s *stubNotificationService) ConnectionsFor(ctx context.Context, lawyerID string) ([]ports.Connection, error) {
	return s.connectionsFn(ctx, lawyerID)
}

func TestNotificationHandler_Send_Success(t *testing.T) {
	stub := &stubNotificationService{
		sendFn: func(_ context.Context, from, to, message string) (*domain.Notification, error) {
			if from != "lawyer_1" || to != "lawyer_2" {
				t.Fatalf("unexpected args: %s %s", from, to)
			}
			return &domain.Notification{
				ID: "notif_1", FromLawyerID: from, ToLawyerID: to,
				Message: message, Kind: domain.KindConnectionRequest, Status: domain.StatusPending,
			}, nil
		},
	}
	handler := NewNotificationHandler(stub)
	body := `{"from_lawyer_id":"lawyer_1","to_lawyer_id":"lawyer_2","message":"hello"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/notifications/send", body)

	if err := handler.Send(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	notification, ok := resp["notification"].(map[string]any)
	if !ok || notification["status"] != "pending" || notification["type"] != "connection_request" {
		t.Fatalf("unexpected notification payload: %+v", notification)
	}
}

func TestNotificationHandler_Send_MissingFields(t *testing.T) {
	stub := &stubNotificationService{
		sendFn: func(context.Context, string, string, string) (*domain.Notification, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewNotificationHandler(stub)
	c, _ := newTestContext(t, http.MethodPost, "/api/notifications/send", `{"from_lawyer_id":"lawyer_1"}`)

	err := handler.Send(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestNotificationHandler_List_PassesSubject(t *testing.T) {
	stub := &stubNotificationService{
		listFn: func(_ context.Context, lawyerID string) ([]*domain.Notification, error) {
			if lawyerID != "lawyer_2" {
				t.Fatalf("unexpected subject: %q", lawyerID)
			}
			return []*domain.Notification{{ID: "notif_1", ToLawyerID: lawyerID}}, nil
		},
	}
	handler := NewNotificationHandler(stub)
	c, rec := newTestContext(t, http.MethodGet, "/api/notifications?lawyerId=lawyer_2", "")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestNotificationHandler_Respond_Success(t *testing.T) {
	var got domain.NotificationStatus
	stub := &stubNotificationService{
		respondFn: func(_ context.Context, notificationID string, decision domain.NotificationStatus) error {
			if notificationID != "notif_1" {
				t.Fatalf("unexpected id: %s", notificationID)
			}
			got = decision
			return nil
		},
	}
	handler := NewNotificationHandler(stub)
	c, rec := newTestContext(t, http.MethodPost, "/api/notifications/respond", `{"notification_id":"notif_1","response":"accepted"}`)

	if err := handler.Respond(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got != domain.StatusAccepted {
		t.Fatalf("expected accepted, got %s", got)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestNotificationHandler_Respond_RejectsBadDecision(t *testing.T) {
	stub := &stubNotificationService{
		respondFn: func(context.Context, string, domain.NotificationStatus) error {
			t.Fatalf("should not be called")
			return nil
		},
	}
	handler := NewNotificationHandler(stub)
	c, _ := newTestContext(t, http.MethodPost, "/api/notifications/respond", `{"notification_id":"notif_1","response":"maybe"}`)

	err := handler.Respond(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestNotificationHandler_Respond_AlreadyResolved(t *testing.T) {
	stub := &stubNotificationService{
		respondFn: func(context.Context, string, domain.NotificationStatus) error {
			return domain.ErrInvalidTransition
		},
	}
	handler := NewNotificationHandler(stub)
	c, _ := newTestContext(t, http.MethodPost, "/api/notifications/respond", `{"notification_id":"notif_1","response":"accepted"}`)

	if err := handler.Respond(c); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition to propagate, got %v", err)
	}
}

func TestNotificationHandler_Connections(t *testing.T) {
	stub := &stubNotificationService{
		connectionsFn: func(_ context.Context, lawyerID string) ([]ports.Connection, error) {
			return []ports.Connection{{Name: "Rita Recipient", Specialization: "Family Law"}}, nil
		},
	}
	handler := NewNotificationHandler(stub)
	c, rec := newTestContext(t, http.MethodGet, "/api/notifications/connections?lawyerId=lawyer_1", "")

	if err := handler.Connections(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	connections, ok := resp["connections"].([]any)
	if !ok || len(connections) != 1 {
		t.Fatalf("unexpected connections payload: %+v", resp)
	}
}

func TestNotificationHandler_Create_Reminder(t *testing.T) {
	stub := &stubNotificationService{
		createFn: func(_ context.Context, in ports.CreateNotificationInput) (*domain.Notification, error) {
			if in.Kind != domain.KindReminder {
				t.Fatalf("unexpected kind: %s", in.Kind)
			}
			return &domain.Notification{ID: "notif_1", ToLawyerID: in.ToLawyerID, Kind: in.Kind, Status: domain.StatusPending}, nil
		},
	}
	handler := NewNotificationHandler(stub)
	c, rec := newTestContext(t, http.MethodPost, "/api/notifications", `{"lawyer_id":"lawyer_1","type":"reminder","message":"Hearing tomorrow"}`)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
