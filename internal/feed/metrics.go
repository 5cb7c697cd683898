package feed

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	activeSubscriptions = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "magnetwallet_feed_subscriptions_active",
		Help: "Number of active feed subscriptions.",
	}, []string{"feed"})

	snapshotsDelivered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "magnetwallet_feed_snapshots_delivered_total",
		Help: "Number of snapshots queued for delivery to subscribers.",
	}, []string{"feed"})
)
