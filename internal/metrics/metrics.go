package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	NotificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payfast_notifications_total",
			Help: "ITN deliveries by reconciliation outcome",
		},
		[]string{"outcome"},
	)

	RejectionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payfast_rejections_total",
			Help: "ITN deliveries rejected by the verifier, by reason",
		},
		[]string{"reason"},
	)

	CheckoutPayloadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_payloads_total",
			Help: "Checkout payload builds by result",
		},
		[]string{"result"},
	)

	ConfirmationDispatchFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "confirmation_dispatch_failures_total",
			Help: "Payment confirmations that could not be queued",
		},
	)

	ConfirmationEmailsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "confirmation_emails_total",
			Help: "Confirmation emails handled by the mail worker, by result",
		},
		[]string{"result"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		NotificationsTotal,
		RejectionsTotal,
		CheckoutPayloadsTotal,
		ConfirmationDispatchFailures,
		ConfirmationEmailsTotal,
	)
}
