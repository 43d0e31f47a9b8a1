// Package metrics defines and registers all custom Prometheus metrics for the
// practice-management API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry at package
// initialisation via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "practice"

// ── Access-control metrics ────────────────────────────────────────────────────

// AccessChecksTotal counts module access decisions made by the gate.
// Labels:
//   - module: the module key being checked (e.g. "clients")
//   - outcome: "granted", "denied", or "error" (permission store unavailable)
var AccessChecksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_checks_total",
		Help:      "Total number of module access checks, by module and outcome.",
	},
	[]string{"module", "outcome"},
)

// PermissionFetchDuration measures how long a permission-set read takes,
// including any cache layer in front of the store.
var PermissionFetchDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "permission_fetch_duration_seconds",
		Help:      "Duration of permission-set fetches from cache and store.",
		Buckets:   prometheus.DefBuckets,
	},
)

// PermissionCacheTotal counts permission cache lookups.
// Label:
//   - result: "hit" or "miss"
var PermissionCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "permission_cache_total",
		Help:      "Total number of permission cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)

// ── Tenant-scope metrics ──────────────────────────────────────────────────────

// ScopeDenialsTotal counts by-ID lookups that resolved to a record owned by
// another firm. These surface to the caller as "not found".
// Label:
//   - resource: the record type ("client", "invoice", "user")
var ScopeDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scope_denials_total",
		Help:      "Total number of cross-tenant record lookups rejected by the scope guard.",
	},
	[]string{"resource"},
)
