package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/divo662/transactlab-payment-sandbox-sub004/internal/http/auth"
	"github.com/divo662/transactlab-payment-sandbox-sub004/internal/http/transactions"
	"github.com/divo662/transactlab-payment-sandbox-sub004/internal/metrics"
)

func New(
	authV1 *auth.Handler,
	transactionsV1 *transactions.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(metrics.Middleware)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Handle("/metrics", promhttp.Handler())

	router.Route("/auth", authV1.Routes)

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(authV1.Verify)

		r.Route("/transactions", transactionsV1.Routes)
	})

	return router
}
