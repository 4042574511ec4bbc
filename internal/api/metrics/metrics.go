// Package metrics defines and registers all custom Prometheus metrics for the
// Lawwise directory API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at init time; the
// router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "lawwise"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts lawyer login attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", "locked", "disabled", "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of lawyer login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts new accounts.
// Label:
//   - account_type: "lawyer" or "client"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered, by account type.",
	},
	[]string{"account_type"},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationsCreatedTotal counts notifications created through the API.
// Label:
//   - type: "connection_request" or "reminder"
var NotificationsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_created_total",
		Help:      "Total number of notifications created, by type.",
	},
	[]string{"type"},
)

// ConnectionResponsesTotal counts resolved connection requests.
// Label:
//   - decision: "accepted" or "rejected"
var ConnectionResponsesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "connection_responses_total",
		Help:      "Total number of connection requests resolved, by decision.",
	},
	[]string{"decision"},
)
