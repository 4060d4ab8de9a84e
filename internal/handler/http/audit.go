package http

import (
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-key-keeper/internal/utils"
	"github.com/MKhiriev/go-key-keeper/models"
)

func (h *Handler) auditLog(w http.ResponseWriter, r *http.Request) {
	entries := h.services.AuditService.Entries(r.Context())
	if entries == nil {
		entries = []models.AuditLogView{}
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) overdue(w http.ResponseWriter, r *http.Request) {
	overdue := h.services.AuditService.Overdue(r.Context())
	if overdue == nil {
		overdue = []models.OverdueCheckout{}
	}

	utils.WriteJSON(w, overdue, http.StatusOK)
}

func (h *Handler) reminder(w http.ResponseWriter, r *http.Request) {
	reminder, err := h.services.AuditService.Reminder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, reminder, http.StatusOK)
}

// exportAuditLog sends the log as a JSON attachment named after the export
// date.
func (h *Handler) exportAuditLog(w http.ResponseWriter, r *http.Request) {
	export, err := h.services.AuditService.Export(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": export.FileName}))
	w.WriteHeader(http.StatusOK)
	w.Write(export.Content)
}
