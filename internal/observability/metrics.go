package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	signupCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "school_activities",
		Subsystem: "registry",
		Name:      "signups_total",
		Help:      "Number of successful signups per activity.",
	}, []string{"activity"})

	unregistrationCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "school_activities",
		Subsystem: "registry",
		Name:      "unregistrations_total",
		Help:      "Number of successful unregistrations per activity.",
	}, []string{"activity"})

	rejectionCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "school_activities",
		Subsystem: "registry",
		Name:      "rejections_total",
		Help:      "Number of rejected roster mutations grouped by reason.",
	}, []string{"reason"})

	lastChangeGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "school_activities",
		Subsystem: "registry",
		Name:      "last_roster_change_timestamp_seconds",
		Help:      "Unix timestamp of the most recent roster mutation.",
	})
)

func init() {
	prometheus.MustRegister(signupCounter, unregistrationCounter, rejectionCounter, lastChangeGauge)
}

// RecordSignup updates counters after a successful signup.
func RecordSignup(activity string) {
	signupCounter.WithLabelValues(activity).Inc()
	lastChangeGauge.Set(float64(time.Now().Unix()))
}

// RecordUnregistration updates counters after a successful unregistration.
func RecordUnregistration(activity string) {
	unregistrationCounter.WithLabelValues(activity).Inc()
	lastChangeGauge.Set(float64(time.Now().Unix()))
}

// RecordRejection counts a rejected mutation by reason.
func RecordRejection(reason string) {
	rejectionCounter.WithLabelValues(reason).Inc()
}
