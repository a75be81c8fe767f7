package network

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "eatcli",
			Name:      "http_requests_total",
			Help:      "Requests issued through the API wrapper.",
		},
		[]string{"method"},
	)

	failuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "eatcli",
			Name:      "http_failures_total",
			Help:      "Requests that ended in ErrRequestFailed, by cause.",
		},
		[]string{"method", "reason"},
	)
)
