package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all application metrics.
type Metrics struct {
	BookingsSubmitted  prometheus.Counter
	BookingsRejected   *prometheus.CounterVec
	SubmissionDuration prometheus.Histogram

	ArtifactUploads    *prometheus.CounterVec
	ArtifactBytes      prometheus.Counter
	NotificationsSent  *prometheus.CounterVec
	NotificationsEmail *prometheus.CounterVec

	ReviewsCreated prometheus.Counter
	CSVExports     *prometheus.CounterVec
}

// New creates and registers all application metrics with the default registry.
func New(namespace string) *Metrics {
	return &Metrics{
		BookingsSubmitted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_submitted_total",
			Help:      "Total number of bookings successfully persisted",
		}),
		BookingsRejected: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_rejected_total",
			Help:      "Total number of booking submissions rejected, by workflow step",
		}, []string{"step"}),
		SubmissionDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "booking_submission_duration_seconds",
			Help:      "End-to-end duration of the booking submission workflow",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		}),
		ArtifactUploads: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "artifact_uploads_total",
			Help:      "Total number of payment screenshot uploads, by status",
		}, []string{"status"}),
		ArtifactBytes: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "artifact_upload_bytes_total",
			Help:      "Total bytes written to the screenshot store",
		}),
		NotificationsSent: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_processed_total",
			Help:      "Total number of relay invocations, by status",
		}, []string{"status"}),
		NotificationsEmail: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notification_emails_total",
			Help:      "Total number of email delivery attempts, by outcome",
		}, []string{"outcome"}),
		ReviewsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reviews_created_total",
			Help:      "Total number of testimonials submitted",
		}),
		CSVExports: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "csv_exports_total",
			Help:      "Total number of booking CSV exports, by status",
		}, []string{"status"}),
	}
}
