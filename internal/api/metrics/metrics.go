// Package metrics defines the custom Prometheus collectors of the job posting
// API. It is the single source of truth for metric names, labels and help
// strings. Collectors register with the default registry on import and are
// exposed by promhttp at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "jobposting"

// ── Account metrics ───────────────────────────────────────────────────────────

// SignupsTotal counts signup attempts.
// Label:
//   - result: "ok", "conflict", "invalid", "email_failed" or "error"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts, by result.",
	},
	[]string{"result"},
)

// VerificationsTotal counts verification link visits.
// Label:
//   - result: "ok", "invalid_token" or "error"
var VerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "verifications_total",
		Help:      "Total number of email verification attempts, by result.",
	},
	[]string{"result"},
)

// SigninsTotal counts signin attempts.
// Label:
//   - result: "ok", "unauthorized", "unverified", "invalid" or "error"
var SigninsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signins_total",
		Help:      "Total number of signin attempts, by result.",
	},
	[]string{"result"},
)

// ── Job metrics ───────────────────────────────────────────────────────────────

// JobsPostedTotal counts persisted job postings.
// Label:
//   - experience_level: "Entry", "Mid-level", "Senior" or "Executive"
var JobsPostedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_posted_total",
		Help:      "Total number of job postings persisted, by experience level.",
	},
	[]string{"experience_level"},
)

// NotificationsTotal counts individual candidate notifications.
// Label:
//   - result: "sent" or "failed"
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "candidate_notifications_total",
		Help:      "Total number of candidate notification emails, by result.",
	},
	[]string{"result"},
)

// FanoutDuration measures how long a posting request spends notifying its
// candidates, from first send to the last settled outcome.
var FanoutDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "notification_fanout_duration_seconds",
		Help:      "Duration of a job posting's candidate notification batch.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 15, 30},
	},
)
