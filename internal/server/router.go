package server

import (
	"net/http"
	"time"

	"itemcompare/internal/infrastructure/metrics"
	"itemcompare/internal/product/controller"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// NewRouter mounts the product routes, the health check and, when m is not
// nil, the prometheus endpoint.
func NewRouter(productCtrl *controller.ProductsController, m *metrics.HTTPMetrics, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(accessLog(logger))
	r.Use(middleware.Recoverer)
	if m != nil {
		r.Use(m.Middleware)
	}

	// set before Route so the products subrouter inherits it
	r.NotFound(productCtrl.NotFound)
	r.Route("/products", productCtrl.Routes)
	r.Get("/healthz", productCtrl.Health)
	if m != nil {
		r.Method(http.MethodGet, "/metrics", m.Handler())
	}

	return r
}

func accessLog(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("http request",
				zap.String("requestId", middleware.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
