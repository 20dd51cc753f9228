package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	router.Get("/api/assets", h.getAssets)
	router.Get("/api/assets/{group}", h.getAssetGroup)
	router.Get("/api/beneficiaries", h.listBeneficiaries)
	router.Get("/api/beneficiaries/{did}", h.resolveBeneficiary)
	router.Delete("/api/records/{id}", h.deleteRecord)

	// routes with a body
	router.Group(func(r chi.Router) {
		r.Use(h.withBodyLimit, h.withBodyHash)

		r.Post("/api/secrets", h.createSecret)
		r.Post("/api/credentials", h.createCredential)
		r.Post("/api/beneficiaries", h.createBeneficiary)
		r.Put("/api/records/{kind}/{id}", h.updateRecord)
		r.Post("/api/records/{id}/transfer", h.transferRecord)
		r.Post("/api/assets/{group}/transfer", h.transferGroup)
		r.Post("/api/notifications", h.notify)
	})

	if h.metrics != nil {
		router.Handle("/metrics", h.metrics.Handler())
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
