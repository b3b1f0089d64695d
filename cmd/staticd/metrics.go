package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "staticd_requests_total",
		Help: "Requests handled, labeled by HTTP status code.",
	}, []string{"status"})

	bytesServed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "staticd_bytes_served_total",
		Help: "Body bytes written to clients.",
	})
)
