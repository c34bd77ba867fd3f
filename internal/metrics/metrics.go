package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orders_processed_total",
		Help: "Order-created events persisted successfully",
	})

	AlertsSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "order_alerts_sent_total",
		Help: "Multicast alert dispatches that reached the push provider",
	})

	AlertSkips = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "order_alert_skips_total",
		Help: "Alert dispatches short-circuited before any send",
	}, []string{"reason"})

	TokensPruned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "device_tokens_pruned_total",
		Help: "Device tokens removed after the provider reported them dead",
	})

	PushSendFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "push_send_failures_total",
		Help: "Multicast calls that failed before per-token results were returned",
	})
)
