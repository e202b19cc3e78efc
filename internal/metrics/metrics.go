// Package metrics exposes Prometheus counters for the notification log.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "maxslog"

	ResultOK       = "ok"
	ResultError    = "error"
	ResultRejected = "rejected"
)

var (
	notificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Notifications appended to the log, by severity.",
		},
		[]string{"severity"},
	)

	flushesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flushes_total",
			Help:      "Full document writes to the active target, by result.",
		},
		[]string{"result"},
	)

	activationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "activations_total",
			Help:      "Attempts to activate file logging, by result.",
		},
		[]string{"result"},
	)
)

// RecordNotification counts one appended notification.
func RecordNotification(severity string) {
	notificationsTotal.WithLabelValues(severity).Inc()
}

// RecordFlush counts one mirror write.
func RecordFlush(err error) {
	flushesTotal.WithLabelValues(result(err)).Inc()
}

// RecordActivation counts one activation attempt; result is one of the
// Result* constants.
func RecordActivation(result string) {
	activationsTotal.WithLabelValues(result).Inc()
}

func result(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultOK
}
