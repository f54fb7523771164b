// Package observability provides Prometheus metrics for the application.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kapm_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "kapm_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// PostsPublished counts blog post publish transitions.
	PostsPublished = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kapm_posts_published_total",
		Help: "Total number of blog posts published",
	})

	// PostViews counts public post retrievals.
	PostViews = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kapm_post_views_total",
		Help: "Total number of public blog post views",
	})

	// CommentsModerated counts comment moderation decisions by outcome.
	CommentsModerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kapm_comments_moderated_total",
		Help: "Total number of comment moderation decisions",
	}, []string{"outcome"})

	// MediaUploads counts media uploads by detected file type.
	MediaUploads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kapm_media_uploads_total",
		Help: "Total number of media uploads by file type",
	}, []string{"file_type"})

	// CaseStatusChanges counts case status updates by proceeding kind.
	CaseStatusChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kapm_case_status_changes_total",
		Help: "Total number of case status changes by proceeding kind",
	}, []string{"kind"})
)

// DatabaseMetrics wraps DB access for recording query latency.
type DatabaseMetrics struct {
	db *gorm.DB
}

// NewDatabaseMetrics returns a new DatabaseMetrics instance.
func NewDatabaseMetrics(db *gorm.DB) *DatabaseMetrics {
	return &DatabaseMetrics{db: db}
}

// ObserveQuery records the latency of a database query.
func (m *DatabaseMetrics) ObserveQuery(operation, table string, start time.Time) {
	latency := time.Since(start).Seconds()
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(latency)
}

// TrackQuery returns a function that records query latency when called (e.g. defer).
func (m *DatabaseMetrics) TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		m.ObserveQuery(operation, table, start)
	}
}
