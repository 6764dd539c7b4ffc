package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	pageViews  *prometheus.CounterVec
	linkClicks *prometheus.CounterVec
	requests   *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)
	return &metrics{
		pageViews: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portfolio",
			Name:      "page_views_total",
			Help:      "Rendered portfolio pages.",
		}, []string{"page"}),
		linkClicks: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portfolio",
			Name:      "link_clicks_total",
			Help:      "Outbound project link clicks.",
		}, []string{"project", "link"}),
		requests: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "portfolio",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}
