package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameTotalSearchRequests = "total_search_requests"
)

var TotalSearchRequests = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalSearchRequests,
		Help:      "Total vocabulary search requests",
		Namespace: Namespace,
	},
)
