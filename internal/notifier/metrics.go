package notifier

import "github.com/prometheus/client_golang/prometheus"

var (
	notificationsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_fulfillment",
			Subsystem: "notifier",
			Name:      "sent_total",
			Help:      "Total number of delivered notifications",
		},
		[]string{"type"},
	)

	notificationsFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_fulfillment",
			Subsystem: "notifier",
			Name:      "failed_total",
			Help:      "Total number of notifications the sender rejected",
		},
		[]string{"type"},
	)

	notificationsDropped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_fulfillment",
			Subsystem: "notifier",
			Name:      "dropped_total",
			Help:      "Total number of notifications dropped because the queue was full or closed",
		},
		[]string{"type"},
	)

	queueLength = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "order_fulfillment",
			Subsystem: "notifier",
			Name:      "queue_length",
			Help:      "Number of notifications waiting in the queue",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		notificationsSent,
		notificationsFailed,
		notificationsDropped,
		queueLength,
	)
}
