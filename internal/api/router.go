package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/samandr77/microservices/expenses/docs" //nolint:revive,nolintlint
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	router := chi.NewRouter()

	router.Use(mw.Log, mw.Recover, mw.Metrics, mw.Cors, mw.WithIP)

	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Get("/health", h.Health)
			r.Get("/swagger/*", httpSwagger.WrapHandler)
		})

		r.Group(func(r chi.Router) {
			r.Use(mw.Auth)

			r.Post("/bills", h.CreateBill)
			r.Get("/bills", h.ListBills)
			r.Get("/bills/{id}", h.BillByID)
			r.Patch("/bills/{id}", h.UpdateBill)

			r.With(mw.AdminOnly).Put("/bills/{id}/status", h.ChangeBillStatus)
		})
	})

	return router
}
