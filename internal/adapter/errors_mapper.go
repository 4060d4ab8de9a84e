package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-key-keeper/models"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusInternalServerError: ErrInternalServerError,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil || body.Code == "" {
		body = models.ErrorResponse{Message: strings.TrimSpace(string(resp.Body()))}
	}

	return NewAPIError(resp.StatusCode(), body.Code, body.Message)
}

// NewAPIError builds the error for a response with the given status and
// error body. An empty message is replaced with the status text.
func NewAPIError(status int, code, message string) *APIError {
	if message == "" {
		message = http.StatusText(status)
	}

	kind, ok := statusErrors[status]
	if !ok {
		kind = fmt.Errorf("http %d", status)
	}

	return &APIError{Status: status, Code: code, Message: message, kind: kind}
}
