// Package metrics defines and registers all custom Prometheus metrics for the
// payd web gateway. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "payd_web"

// ── Upstream API metrics ──────────────────────────────────────────────────────

// UpstreamRequestsTotal counts calls made to the scheduling API.
// Labels:
//   - endpoint: logical call name (e.g. "login", "list_roles")
//   - code: HTTP status code returned, or "error" on transport failure
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of requests sent to the scheduling API.",
	},
	[]string{"endpoint", "code"},
)

// UpstreamRequestDuration measures the round trip of a single upstream call.
// Label:
//   - endpoint: logical call name
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of requests sent to the scheduling API.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"endpoint"},
)

// ── Route guard metrics ───────────────────────────────────────────────────────

// GuardRejectionsTotal counts navigations turned away by a route guard.
// Labels:
//   - guard: "session" or "admin"
//   - reason: "missing_cookie", "invalid_token" or "not_admin"
var GuardRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_rejections_total",
		Help:      "Total number of requests rejected by a route guard.",
	},
	[]string{"guard", "reason"},
)
