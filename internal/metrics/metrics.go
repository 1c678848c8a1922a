package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	// SubmissionsTotal counts listing submissions by source and outcome.
	SubmissionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "amarjela",
		Subsystem: "content",
		Name:      "submissions_total",
		Help:      "Listing submissions, labeled by source (user, admin) and result (created, invalid, forbidden, error).",
	}, []string{"source", "result"})

	// ModerationTransitionsTotal counts status changes applied by admins.
	ModerationTransitionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "amarjela",
		Subsystem: "moderation",
		Name:      "transitions_total",
		Help:      "Listing status changes, labeled by source and target status.",
	}, []string{"from", "to"})

	ContentDeletedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "amarjela",
		Subsystem: "moderation",
		Name:      "deleted_total",
		Help:      "Listings hard-deleted by admins.",
	})

	ReportsFiledTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "amarjela",
		Subsystem: "reports",
		Name:      "filed_total",
		Help:      "Reports filed by users.",
	})

	// ReportsResolvedTotal counts resolved reports by admin action. A ban resolves every
	// pending report of the listing, so one call can add more than one.
	ReportsResolvedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "amarjela",
		Subsystem: "reports",
		Name:      "resolved_total",
		Help:      "Reports resolved, labeled by action (ignore, ban_content).",
	}, []string{"action"})
)

// Register registers the collectors with the default Prometheus registry.
// Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			SubmissionsTotal,
			ModerationTransitionsTotal,
			ContentDeletedTotal,
			ReportsFiledTotal,
			ReportsResolvedTotal,
		)
	})
}
