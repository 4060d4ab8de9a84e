package http

import (
	"net/http"

	"github.com/MKhiriev/go-key-keeper/internal/utils"
	"github.com/MKhiriev/go-key-keeper/models"
)

func (h *Handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	accounts := h.services.UserDirectory.ListAccounts(r.Context())
	if accounts == nil {
		accounts = []models.User{}
	}

	utils.WriteJSON(w, accounts, http.StatusOK)
}

func (h *Handler) addAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var request models.AddAccountRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.validator.Validate(ctx, request); err != nil {
		writeError(w, r, err)
		return
	}

	account, err := h.services.UserDirectory.AddAccount(ctx, request.Username, request.Password, request.Phone, request.Role)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, account, http.StatusCreated)
}
