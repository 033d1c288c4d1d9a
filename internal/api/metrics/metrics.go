// Package metrics defines and registers all custom Prometheus metrics for
// the favorites API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at package load;
// the /metrics endpoint exposes them via echoprometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "favorites"

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "created", "duplicate_email", or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok", "not_found", "wrong_password", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokenRejectionsTotal counts requests rejected by the auth gate.
// Label:
//   - reason: "missing", "malformed_scheme", "empty", "expired",
//     "invalid", or "unknown_user"
var TokenRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of requests rejected by the auth gate, by reason.",
	},
	[]string{"reason"},
)

// FavoriteOpsTotal counts favorite operations that reached the store.
// Labels:
//   - op: "list", "add", or "remove"
//   - result: "ok" or "error"
var FavoriteOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "favorite_ops_total",
		Help:      "Total number of favorite operations, by operation and result.",
	},
	[]string{"op", "result"},
)
