package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/utils"
	"github.com/MKhiriev/go-key-keeper/models"
)

func (h *Handler) listActiveKeys(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, nonNilKeys(h.services.KeyRegistry.ListActiveKeys(r.Context())), http.StatusOK)
}

func (h *Handler) listAllKeys(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, nonNilKeys(h.services.KeyRegistry.ListKeys(r.Context())), http.StatusOK)
}

func (h *Handler) getKey(w http.ResponseWriter, r *http.Request) {
	key, err := h.services.KeyRegistry.GetKey(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, key, http.StatusOK)
}

func (h *Handler) keyHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.services.KeyRegistry.KeyHistory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if history == nil {
		history = []models.CheckoutRecord{}
	}

	utils.WriteJSON(w, history, http.StatusOK)
}

func (h *Handler) suggestCode(w http.ResponseWriter, r *http.Request) {
	code, err := h.services.KeyRegistry.SuggestCode(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SuggestCodeResponse{VisibleCode: code}, http.StatusOK)
}

func (h *Handler) createKey(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.CreateKeyRequest
	if err = decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	key, err := h.services.KeyRegistry.CreateKey(r.Context(), request.VisibleCode, request.Address, request.Color, caller.Username)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, key, http.StatusCreated)
}

func (h *Handler) renameKey(w http.ResponseWriter, r *http.Request) {
	keyID := chi.URLParam(r, "id")

	var request models.RenameKeyRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.KeyRegistry.RenameKey(r.Context(), keyID, request.VisibleCode); err != nil {
		writeError(w, r, err)
		return
	}

	h.writeKey(w, r, keyID)
}

// checkoutKey hands the key to the caller in "self" mode, taking the phone
// from the caller's account, or to the named third party in "other" mode.
func (h *Handler) checkoutKey(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	keyID := chi.URLParam(r, "id")

	caller, err := callerFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.CheckoutRequest
	if err = decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}
	if err = h.validator.Validate(ctx, request); err != nil {
		writeError(w, r, err)
		return
	}

	holderName, holderPhone := request.HolderName, request.HolderPhone
	if request.Mode == models.CheckoutSelf {
		holderName, holderPhone = caller.Username, ""
		if account, accountErr := h.services.UserDirectory.GetAccount(ctx, caller.ID); accountErr == nil {
			holderPhone = account.Phone
		} else {
			logger.FromRequest(r).Warn().Err(accountErr).Str("func", "*Handler.checkoutKey").Msg("caller account not found, checking out without phone")
		}
	}

	if err = h.services.KeyRegistry.CheckoutKey(ctx, keyID, holderName, holderPhone); err != nil {
		writeError(w, r, err)
		return
	}

	h.writeKey(w, r, keyID)
}

func (h *Handler) returnKey(w http.ResponseWriter, r *http.Request) {
	keyID := chi.URLParam(r, "id")

	caller, err := callerFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.KeyRegistry.ReturnKey(r.Context(), keyID, caller.Username); err != nil {
		writeError(w, r, err)
		return
	}

	h.writeKey(w, r, keyID)
}

func (h *Handler) deleteKey(w http.ResponseWriter, r *http.Request) {
	keyID := chi.URLParam(r, "id")

	caller, err := callerFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.DeleteKeyRequest
	if err = decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}
	actor := request.ActorName
	if actor == "" {
		actor = caller.Username
	}

	if err = h.services.KeyRegistry.DeleteKey(r.Context(), keyID, request.Reason, actor); err != nil {
		writeError(w, r, err)
		return
	}

	h.writeKey(w, r, keyID)
}

// writeKey answers a successful transition with the key as stored now.
func (h *Handler) writeKey(w http.ResponseWriter, r *http.Request, keyID string) {
	key, err := h.services.KeyRegistry.GetKey(r.Context(), keyID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, key, http.StatusOK)
}

func nonNilKeys(keys []models.Key) []models.Key {
	if keys == nil {
		return []models.Key{}
	}
	return keys
}
