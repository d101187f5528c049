package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	userRegistrationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "user_registrations_total",
			Help: "Total number of user registrations",
		},
	)

	userLoginsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "user_logins_total",
			Help: "Total number of user logins",
		},
	)

	applicationsSubmittedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "applications_submitted_total",
			Help: "Total number of applications submitted",
		},
	)

	messagesSentTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "messages_sent_total",
			Help: "Total number of direct messages sent",
		},
	)

	// Per-collection row counts, refreshed by the stats job.
	recordsTotal = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "records_total",
			Help: "Number of stored records per collection",
		},
		[]string{"collection"},
	)
)

// RecordUserRegistration increments the registration counter
func RecordUserRegistration() {
	userRegistrationsTotal.Inc()
}

// RecordUserLogin increments the login counter (for DAU/MAU estimation)
func RecordUserLogin() {
	userLoginsTotal.Inc()
}

// RecordApplicationSubmitted increments the application counter
func RecordApplicationSubmitted() {
	applicationsSubmittedTotal.Inc()
}

// RecordMessageSent increments the message counter
func RecordMessageSent() {
	messagesSentTotal.Inc()
}

// SetRecordCount sets the stored-row gauge for a collection
func SetRecordCount(collection string, count float64) {
	recordsTotal.WithLabelValues(collection).Set(count)
}
