package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BillingMetrics holds Prometheus metrics for billing-level observability.
type BillingMetrics struct {
	// Invoices
	InvoicesOpened  prometheus.Counter
	ChargesRecorded prometheus.Counter

	// Subscriptions
	SubscriptionsCreated  *prometheus.CounterVec
	SubscriptionsCanceled prometheus.Counter

	// Payments
	PaymentAttempts   *prometheus.CounterVec
	PaymentsSucceeded *prometheus.CounterVec
	PaymentsFailed    *prometheus.CounterVec
	AmountCollected   prometheus.Counter

	// Ledger health
	ConsistencyFailures prometheus.Counter

	// Webhooks
	WebhookReceived *prometheus.CounterVec
	WebhookFailed   *prometheus.CounterVec
}

// NewBillingMetrics creates and registers all billing metrics on reg.
// Taking the registerer as an argument keeps tests free of global-registry
// collisions.
func NewBillingMetrics(reg prometheus.Registerer) *BillingMetrics {
	const namespace = "ledger"
	const subsystem = "billing"

	factory := promauto.With(reg)

	return &BillingMetrics{
		InvoicesOpened: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "invoices_opened_total",
			Help:      "Total invoices opened by the first charge on an account",
		}),
		ChargesRecorded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "charges_recorded_total",
			Help:      "Total charges added onto open invoices",
		}),

		SubscriptionsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "subscriptions_created_total",
			Help:      "Total subscriptions created",
		}, []string{"kind"}),
		SubscriptionsCanceled: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "subscriptions_canceled_total",
			Help:      "Total subscription cancellations, immediate or deferred",
		}),

		PaymentAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "payment_attempts_total",
			Help:      "Total payment attempts recorded",
		}, []string{"provider"}),
		PaymentsSucceeded: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "payments_succeeded_total",
			Help:      "Total payment attempts finalized as succeeded",
		}, []string{"provider"}),
		PaymentsFailed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "payments_failed_total",
			Help:      "Total payment attempts finalized as failed",
		}, []string{"provider"}),
		AmountCollected: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "amount_collected_total",
			Help:      "Total amount collected through finalized payments",
		}),

		ConsistencyFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "consistency_failures_total",
			Help:      "Total multi-write ledger operations that failed partway",
		}),

		WebhookReceived: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "webhooks_received_total",
			Help:      "Total payment provider webhook events received",
		}, []string{"event_type"}),
		WebhookFailed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "webhooks_failed_total",
			Help:      "Total payment provider webhook events that failed processing",
		}, []string{"event_type"}),
	}
}
