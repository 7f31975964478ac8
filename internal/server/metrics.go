package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PageRendersTotal counts page shell renders by result.
	PageRendersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "apibanner_page_renders_total",
		Help: "Total number of page shell renders, by result (ok/error).",
	}, []string{"result"})

	// HTTPRequestsTotal counts served requests by route pattern and status code.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "apibanner_http_requests_total",
		Help: "Total number of HTTP requests, by route pattern and status code.",
	}, []string{"route", "code"})
)
