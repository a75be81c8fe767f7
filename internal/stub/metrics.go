package stub

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "eatcli_stub_requests_total",
	Help: "Requests served by the menu stub.",
}, []string{"method", "status"})
