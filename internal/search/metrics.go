package search

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "eatcli",
			Name:      "search_requests_total",
			Help:      "Queries issued after the settle duration elapsed.",
		},
		[]string{"field"},
	)

	debouncedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "eatcli",
			Name:      "search_debounced_total",
			Help:      "Armed timers cancelled by a newer keystroke.",
		},
		[]string{"field"},
	)

	staleTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "eatcli",
			Name:      "search_stale_total",
			Help:      "Responses dropped because a newer request superseded them.",
		},
		[]string{"field"},
	)
)
