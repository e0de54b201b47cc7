// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"io"
	"log/slog"
	"net/http"

	loggermw "github.com/openchoreo/klap/internal/server/middleware/logger"
	"github.com/openchoreo/klap/internal/server/metrics"
	"github.com/openchoreo/klap/pkg/middleware"
)

// Routes builds the service mux: the parse API and health check behind the access log, and
// the metrics endpoint without it.
func Routes(logger *slog.Logger, m *metrics.Metrics) http.Handler {
	mux := http.NewServeMux()
	h := NewHandler(m)

	routes := middleware.NewRouteBuilder(mux).With(loggermw.Middleware(logger))
	routes.HandleFunc("POST /api/v1/parse", h.Parse)
	routes.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, "ok\n")
	})

	mux.Handle("GET /metrics", m.Handler())
	return mux
}
