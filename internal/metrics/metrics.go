package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "marketplace_bookings_created_total",
		Help: "Total number of rental bookings successfully created.",
	})

	OrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "marketplace_orders_created_total",
		Help: "Total number of purchase orders successfully created.",
	})

	CheckoutsStartedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "marketplace_checkouts_started_total",
		Help: "Total number of checkout sessions created, by transaction kind.",
	},
		[]string{"kind"},
	)

	PaymentsSettledTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "marketplace_payments_settled_total",
		Help: "Total number of payment completions applied, by transaction kind.",
	},
		[]string{"kind"},
	)

	WebhookEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "marketplace_webhook_events_total",
		Help: "Total number of payment webhook deliveries, by outcome.",
	},
		[]string{"outcome"},
	)

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "marketplace_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)
)
