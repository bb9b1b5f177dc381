package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/bizflow/settlement/docs" // swagger docs
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.Route("/api", func(r chi.Router) {
		r.HandleFunc("/health", h.HealthHandler)
		r.HandleFunc("/swagger/*", httpSwagger.Handler())

		r.Group(func(r chi.Router) {
			r.Use(mw.BearerAuth)

			r.Route("/invoices", func(r chi.Router) {
				r.Post("/", h.CreateInvoice)
				r.Get("/", h.ListInvoices)
				r.Get("/{id}", h.GetInvoice)
			})

			r.Route("/bills", func(r chi.Router) {
				r.Post("/", h.CreateBill)
				r.Get("/", h.ListBills)
				r.Get("/{id}", h.GetBill)
			})

			r.Route("/documents", func(r chi.Router) {
				r.Patch("/{id}/status", h.UpdateDocumentStatus)
				r.Delete("/{id}", h.DeleteDocument)
			})

			r.Route("/payments", func(r chi.Router) {
				r.Post("/", h.ApplyPayment)
				r.Get("/", h.ListPayments)
				r.Get("/{id}", h.GetPayment)
				r.Delete("/{id}", h.ReversePayment)
			})
		})

		r.Route("/shop", func(r chi.Router) {
			r.Post("/{slug}/checkout", h.Checkout)
			r.Get("/callback", h.CheckoutCallback)
			r.Get("/orders/{id}", h.GetOrder)
		})

		r.Route("/webhooks", func(r chi.Router) {
			r.Use(mw.APIKeyAuth, mw.WebhookSignature)
			r.Post("/membership", h.MembershipWebhook)
		})
	})

	return mux
}
