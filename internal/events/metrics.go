package events

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	eventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sushi_api",
		Subsystem: "kafka_producer",
		Name:      "order_events_published_total",
		Help:      "Total number of order events published.",
	}, []string{"type"})

	eventsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sushi_api",
		Subsystem: "kafka_producer",
		Name:      "order_events_failed_total",
		Help:      "Total number of order events that failed to publish.",
	}, []string{"type"})
)
