package service

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ordersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_fulfillment",
			Subsystem: "checkout",
			Name:      "orders_created_total",
			Help:      "Total number of orders created from carts",
		},
	)

	checkoutFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_fulfillment",
			Subsystem: "checkout",
			Name:      "failures_total",
			Help:      "Total number of failed checkouts by reason",
		},
		[]string{"reason"},
	)

	checkoutDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "order_fulfillment",
			Subsystem: "checkout",
			Name:      "duration_seconds",
			Help:      "Histogram of checkout durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	orderTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_fulfillment",
			Subsystem: "orders",
			Name:      "transitions_total",
			Help:      "Total number of order status transitions by target status",
		},
		[]string{"status"},
	)

	paymentsRecorded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_fulfillment",
			Subsystem: "payments",
			Name:      "recorded_total",
			Help:      "Total number of recorded payment updates by status",
		},
		[]string{"status"},
	)

	stockConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_fulfillment",
			Subsystem: "inventory",
			Name:      "version_conflicts_total",
			Help:      "Total number of stock updates lost to a concurrent writer",
		},
	)

	stockReleaseFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_fulfillment",
			Subsystem: "inventory",
			Name:      "release_failures_total",
			Help:      "Total number of order lines whose stock could not be released",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		ordersCreated,
		checkoutFailures,
		checkoutDuration,
		orderTransitions,
		paymentsRecorded,
		stockConflicts,
		stockReleaseFailures,
	)
}
