package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	paymentsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_fulfillment",
			Subsystem: "payment_consumer",
			Name:      "results_processed_total",
			Help:      "Total number of successfully applied payment results",
		},
	)

	paymentsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_fulfillment",
			Subsystem: "payment_consumer",
			Name:      "results_failed_total",
			Help:      "Total number of payment results that could not be applied",
		},
	)

	paymentsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_fulfillment",
			Subsystem: "payment_consumer",
			Name:      "results_dlq_total",
			Help:      "Total number of payment results written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_fulfillment",
			Subsystem: "payment_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	paymentProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "order_fulfillment",
			Subsystem: "payment_consumer",
			Name:      "processing_duration_seconds",
			Help:      "Histogram of payment result processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	paymentsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "order_fulfillment",
			Subsystem: "payment_consumer",
			Name:      "results_in_progress",
			Help:      "Number of payment results currently being processed",
		},
	)
)

var (
	orderRequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_fulfillment",
			Subsystem: "http",
			Name:      "order_requests_total",
			Help:      "Total number of requests to get order by ID",
		},
		[]string{"status"},
	)

	orderRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "order_fulfillment",
			Subsystem: "http",
			Name:      "order_request_duration_seconds",
			Help:      "Histogram of request durations for get order by ID",
			Buckets:   prometheus.DefBuckets,
		},
	)

	orderRequestsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "order_fulfillment",
			Subsystem: "http",
			Name:      "order_requests_in_progress",
			Help:      "Number of in-progress requests to get order by ID",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		paymentsProcessed,
		paymentsFailed,
		paymentsDLQ,
		commitErrors,
		paymentProcessingDuration,
		paymentsInProgress,

		orderRequestTotal,
		orderRequestDuration,
		orderRequestsInProgress,
	)
}
