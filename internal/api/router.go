package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	_ "github.com/highlandco/docgen/docs" //nolint:revive,nolintlint
	httpSwagger "github.com/swaggo/http-swagger"
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	router := chi.NewRouter()

	router.Use(mw.Log, mw.Recover, mw.Cors, mw.WithIP)

	router.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Get("/health", h.Health)
			r.Get("/swagger/*", httpSwagger.WrapHandler)
		})

		r.Group(func(r chi.Router) {
			r.Get("/company", h.CompanyProfile)
			r.Put("/company", h.SaveCompanyProfile)

			r.Post("/employees", h.CreateEmployee)
			r.Get("/employees", h.ListEmployees)
			r.Post("/employees/finalize", h.FinalizeEmployee)

			r.Post("/invoices", h.CreateInvoice)
			r.Get("/invoices/list", h.InvoicesList)
			r.Get("/invoices/details", h.InvoiceDetails)
			r.Delete("/invoices", h.DeleteInvoice)

			r.Get("/cards/download", h.DownloadIDCard)
			r.Get("/invoices/download", h.DownloadInvoice)
			r.Get("/welcome-package/download", h.DownloadWelcomePackage)
		})
	})

	return router
}
