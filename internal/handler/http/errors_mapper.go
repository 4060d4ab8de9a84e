package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-key-keeper/internal/app"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/service"
	"github.com/MKhiriev/go-key-keeper/internal/store"
	"github.com/MKhiriev/go-key-keeper/internal/utils"
	"github.com/MKhiriev/go-key-keeper/internal/validators"
)

// apiError is the wire code and status an error is reported with.
type apiError struct {
	code   string
	status int
}

// errorStatusMap is ordered by lookup priority: specific sentinels first, so
// an error wrapping both a precise and a general sentinel gets the precise
// code.
var errorStatusMap = []struct {
	target error
	apiError
}{
	{validators.ErrInvalidInput, apiError{app.CodeInvalidInput, http.StatusBadRequest}},
	{ErrInvalidJSON, apiError{app.CodeInvalidInput, http.StatusBadRequest}},

	{service.ErrDuplicateCode, apiError{app.CodeDuplicateCode, http.StatusConflict}},
	{service.ErrInvalidState, apiError{app.CodeInvalidState, http.StatusConflict}},
	{service.ErrNotOverdue, apiError{app.CodeNotOverdue, http.StatusConflict}},
	{service.ErrNoHolderPhone, apiError{app.CodeNoHolderPhone, http.StatusConflict}},

	{service.ErrKeyNotFound, apiError{app.CodeNotFound, http.StatusNotFound}},
	{service.ErrAccountNotFound, apiError{app.CodeNotFound, http.StatusNotFound}},
	{service.ErrLogEntryNotFound, apiError{app.CodeNotFound, http.StatusNotFound}},

	{service.ErrInvalidCredentials, apiError{app.CodeInvalidCredentials, http.StatusUnauthorized}},
	{service.ErrTokenIsExpiredOrInvalid, apiError{app.CodeUnauthorized, http.StatusUnauthorized}},
	{ErrEmptyAuthorizationHeader, apiError{app.CodeUnauthorized, http.StatusUnauthorized}},
	{ErrInvalidAuthorizationHeader, apiError{app.CodeUnauthorized, http.StatusUnauthorized}},
	{ErrNoCaller, apiError{app.CodeUnauthorized, http.StatusUnauthorized}},
	{ErrAdminRequired, apiError{app.CodeForbidden, http.StatusForbidden}},

	{service.ErrPersistState, apiError{app.CodeStorage, http.StatusInternalServerError}},
	{service.ErrStateNotLoaded, apiError{app.CodeStorage, http.StatusServiceUnavailable}},
	{store.ErrBuildingSQLQuery, apiError{app.CodeStorage, http.StatusInternalServerError}},
	{store.ErrExecutingQuery, apiError{app.CodeStorage, http.StatusInternalServerError}},
	{store.ErrBeginningTransaction, apiError{app.CodeStorage, http.StatusInternalServerError}},
	{store.ErrCommitingTransaction, apiError{app.CodeStorage, http.StatusInternalServerError}},
	{store.ErrExecutingStatement, apiError{app.CodeStorage, http.StatusInternalServerError}},
	{store.ErrScanningRows, apiError{app.CodeStorage, http.StatusInternalServerError}},
}

func apiErrorFrom(err error) apiError {
	for _, mapped := range errorStatusMap {
		if errors.Is(err, mapped.target) {
			return mapped.apiError
		}
	}
	return apiError{app.CodeInternal, http.StatusInternalServerError}
}

// writeError logs err and answers with its [models.ErrorResponse]. Server
// side failures are reported without their internal details.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	mapped := apiErrorFrom(err)

	message := err.Error()
	switch mapped.code {
	case app.CodeInternal:
		message = app.MsgInternalServerError
	case app.CodeStorage:
		message = app.MsgStorageFailed
	case app.CodeInvalidCredentials:
		message = app.MsgInvalidLoginPassword
	}

	log := logger.FromRequest(r)
	if mapped.status >= http.StatusInternalServerError {
		log.Err(err).Str("code", mapped.code).Int("status", mapped.status).Msg("request failed")
	} else {
		log.Warn().Err(err).Str("code", mapped.code).Int("status", mapped.status).Msg("request rejected")
	}

	utils.WriteError(w, mapped.code, message, mapped.status)
}
