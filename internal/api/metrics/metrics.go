// Package metrics defines and registers all custom Prometheus metrics for the
// rental API. It is the single source of truth for metric names, labels, and
// help strings. Metrics register themselves with the default registry at
// package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "vidly"

// RentalsCreatedTotal counts successful checkouts.
var RentalsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rentals_created_total",
		Help:      "Total number of rentals created.",
	},
)

// ReturnsProcessedTotal counts rentals closed through the return workflow.
var ReturnsProcessedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "returns_processed_total",
		Help:      "Total number of rental returns processed.",
	},
)

// RentalFeeCollected observes the fee computed for each processed return.
var RentalFeeCollected = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "rental_fee_collected",
		Help:      "Distribution of rental fees computed at return time.",
		Buckets:   []float64{1, 2, 5, 10, 20, 50, 100},
	},
)

// AuthFailuresTotal counts rejected login attempts (bad email or password).
var AuthFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of failed login attempts.",
	},
)
