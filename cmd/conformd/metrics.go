// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/negroni"
)

var requestCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "diffeo",
		Subsystem: "conformance",
		Name:      "requests_total",
		Help:      "Count of HTTP requests served",
	},
	[]string{
		"method",
		"status",
	},
)

func init() {
	prometheus.MustRegister(requestCount)
}

// metricsMiddleware counts every request by method and response
// status.
func metricsMiddleware() negroni.Handler {
	return negroni.HandlerFunc(func(w http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
		next(w, r)
		status := http.StatusOK
		if nw, ok := w.(negroni.ResponseWriter); ok && nw.Status() != 0 {
			status = nw.Status()
		}
		requestCount.With(prometheus.Labels{
			"method": r.Method,
			"status": strconv.Itoa(status),
		}).Inc()
	})
}
