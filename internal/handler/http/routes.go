package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/login", h.login)
		r.Get("/api/version/", h.getServerVersion)
	})

	// any logged in account
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/user/me", h.me)

		r.Get("/api/keys", h.listActiveKeys)
		r.Get("/api/keys/{id}", h.getKey)
		r.Get("/api/keys/{id}/history", h.keyHistory)
		r.Post("/api/keys/{id}/checkout", h.checkoutKey)
		r.Post("/api/keys/{id}/return", h.returnKey)
	})

	// administrators only
	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.adminOnly)

		r.Get("/api/keys/all", h.listAllKeys)
		r.Get("/api/keys/suggest-code", h.suggestCode)
		r.Post("/api/keys", h.createKey)
		r.Patch("/api/keys/{id}", h.renameKey)
		r.Delete("/api/keys/{id}", h.deleteKey)

		r.Get("/api/audit-log", h.auditLog)
		r.Get("/api/audit-log/export", h.exportAuditLog)
		r.Get("/api/audit-log/overdue", h.overdue)
		r.Get("/api/audit-log/{id}/reminder", h.reminder)

		r.Get("/api/accounts", h.listAccounts)
		r.Post("/api/accounts", h.addAccount)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
