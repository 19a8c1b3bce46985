// Package metrics defines and registers all custom Prometheus metrics for the
// DealFourWheel marketplace API. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "marketplace"

// TokensIssuedTotal counts access tokens issued via GET /jwt.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of access tokens issued.",
	},
)

// AuthFailuresTotal counts rejected requests at the authentication and
// authorization guards.
// Label:
//   - reason: "missing_header", "bad_header", "invalid_token",
//     "expired_token", or "insufficient_role"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by the auth guards, by reason.",
	},
	[]string{"reason"},
)

// ProductsCreatedTotal counts newly created product listings.
// Label:
//   - category: the listing category
var ProductsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_created_total",
		Help:      "Total number of product listings created, by category.",
	},
	[]string{"category"},
)

// BookingsCreatedTotal counts newly created bookings.
var BookingsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created.",
	},
)

// BookingsDedupTotal counts idempotency decisions on booking creation.
// Label:
//   - result: "hit" (duplicate, skipped) or "miss" (new booking, written)
var BookingsDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_dedup_total",
		Help:      "Total number of booking idempotency checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
