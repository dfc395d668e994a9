// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"net/http"

	"github.com/diffeo/go-conformance/conform"
	"github.com/diffeo/go-conformance/restserver"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/urfave/negroni"
)

// HTTP serves HTTP conformance connections.
type HTTP struct {
	service   conform.Service
	laddr     string
	reqLogger *logrus.Logger
}

// Serve runs an HTTP server on the specified local address.  This
// serves connections forever.  Panics on any error in the initial
// setup or in accepting connections.
func (h *HTTP) Serve() {
	r := mux.NewRouter()
	restserver.PopulateRouter(r, h.service)
	r.Handle("/metrics", promhttp.Handler())

	n := negroni.New()
	n.Use(metricsMiddleware())
	if h.reqLogger != nil {
		n.Use(requestLogger(h.reqLogger))
	}
	n.UseHandler(r)
	http.ListenAndServe(h.laddr, n)
}

// requestLogger logs every request at debug level, with its final
// status code.
func requestLogger(logger *logrus.Logger) negroni.Handler {
	return negroni.HandlerFunc(func(w http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
		next(w, r)
		status := http.StatusOK
		if nw, ok := w.(negroni.ResponseWriter); ok && nw.Status() != 0 {
			status = nw.Status()
		}
		logger.WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
			"status": status,
		}).Debug("Request")
	})
}
