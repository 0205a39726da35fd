// Package metrics defines and registers all custom Prometheus metrics for the
// gigboard API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation through promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gigboard"

// ── Job metrics ───────────────────────────────────────────────────────────────

// JobsCreatedTotal counts newly posted jobs.
// Label:
//   - payment_type: "PerHour", "FixedPrice", "WithTips" or "TipBasedMinWage"
var JobsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_created_total",
		Help:      "Total number of jobs posted, by payment type.",
	},
	[]string{"payment_type"},
)

// JobsDeletedTotal counts job removals.
// Label:
//   - mode: "soft" (owner deleted the job) or "purge" (removed for good from history)
var JobsDeletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_deleted_total",
		Help:      "Total number of jobs deleted, by mode.",
	},
	[]string{"mode"},
)

// JobQueryDuration measures how long a job listing takes to build.
// Label:
//   - mode: "active" for the default browse, "date_range" when a window is set,
//     "owner" for the poster's own listings
var JobQueryDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "job_query_duration_seconds",
		Help:      "Duration of job listing queries.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"mode"},
)

// ── Application metrics ───────────────────────────────────────────────────────

// ApplicationsCreatedTotal counts successful applications.
var ApplicationsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_created_total",
		Help:      "Total number of applications submitted.",
	},
)

// ApplicationTransitionsTotal counts status changes.
// Label:
//   - to: the status the application moved into
var ApplicationTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "application_transitions_total",
		Help:      "Total number of application status transitions, by target status.",
	},
	[]string{"to"},
)

// ApplicationErrorsTotal counts rejected apply and transition requests.
// Label:
//   - reason: "self_apply", "job_inactive", "duplicate", "invalid_transition",
//     "not_authorized" or "job_ended"
var ApplicationErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "application_errors_total",
		Help:      "Total number of rejected application operations, by reason.",
	},
	[]string{"reason"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// FilterCacheTotal counts filter-option cache lookups.
// Label:
//   - result: "hit" or "miss"
var FilterCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "filter_cache_total",
		Help:      "Total number of filter-option cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
