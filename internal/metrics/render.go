package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameTotalRenderRequests = "total_render_requests"
	NameFailedRenders       = "failed_renders"
	NameRenderDuration      = "render_duration_seconds"
	LabelFormat             = "format"
)

var TotalRenderRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameTotalRenderRequests,
		Help:      "Total render requests",
		Namespace: Namespace,
	},
	[]string{LabelFormat},
)

var FailedRenders = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameFailedRenders,
		Help:      "Failed render operations",
		Namespace: Namespace,
	},
	[]string{LabelFormat},
)

var RenderDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:      NameRenderDuration,
		Help:      "External renderer invocation duration",
		Namespace: Namespace,
		Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
	},
	[]string{LabelFormat},
)
