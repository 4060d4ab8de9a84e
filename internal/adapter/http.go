package adapter

import (
	"context"
	"fmt"
	"mime"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-key-keeper/internal/config"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/utils"
	"github.com/MKhiriev/go-key-keeper/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying resty client with it and the request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	logger.Debug().Str("base_url", baseURL).Msg("creating http server adapter")
	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. The token is whitespace-trimmed.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/user/login, keeps the bearer token from the Authorization
// response header and returns the account from the body.
func (h *httpServerAdapter) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&user).
		Post("/api/user/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return user, nil
}

func (h *httpServerAdapter) Me(ctx context.Context) (models.User, error) {
	var user models.User
	err := h.get(ctx, "/api/user/me", &user)
	return user, err
}

// Version implements [ServerAdapter]. GET /api/version/ answers plain text.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) ListKeys(ctx context.Context, all bool) ([]models.Key, error) {
	path := "/api/keys"
	if all {
		path = "/api/keys/all"
	}

	var keys []models.Key
	err := h.get(ctx, path, &keys)
	return keys, err
}

func (h *httpServerAdapter) GetKey(ctx context.Context, keyID string) (models.Key, error) {
	var key models.Key
	err := h.get(ctx, "/api/keys/"+url.PathEscape(keyID), &key)
	return key, err
}

func (h *httpServerAdapter) KeyHistory(ctx context.Context, keyID string) ([]models.CheckoutRecord, error) {
	var history []models.CheckoutRecord
	err := h.get(ctx, "/api/keys/"+url.PathEscape(keyID)+"/history", &history)
	return history, err
}

func (h *httpServerAdapter) SuggestCode(ctx context.Context) (string, error) {
	var suggestion models.SuggestCodeResponse
	err := h.get(ctx, "/api/keys/suggest-code", &suggestion)
	return suggestion.VisibleCode, err
}

func (h *httpServerAdapter) CreateKey(ctx context.Context, request models.CreateKeyRequest) (models.Key, error) {
	var key models.Key
	err := h.send(ctx, resty.MethodPost, "/api/keys", request, &key)
	return key, err
}

func (h *httpServerAdapter) RenameKey(ctx context.Context, keyID string, request models.RenameKeyRequest) (models.Key, error) {
	var key models.Key
	err := h.send(ctx, resty.MethodPatch, "/api/keys/"+url.PathEscape(keyID), request, &key)
	return key, err
}

func (h *httpServerAdapter) CheckoutKey(ctx context.Context, keyID string, request models.CheckoutRequest) (models.Key, error) {
	var key models.Key
	err := h.send(ctx, resty.MethodPost, "/api/keys/"+url.PathEscape(keyID)+"/checkout", request, &key)
	return key, err
}

func (h *httpServerAdapter) ReturnKey(ctx context.Context, keyID string) (models.Key, error) {
	var key models.Key
	err := h.send(ctx, resty.MethodPost, "/api/keys/"+url.PathEscape(keyID)+"/return", nil, &key)
	return key, err
}

func (h *httpServerAdapter) DeleteKey(ctx context.Context, keyID string, request models.DeleteKeyRequest) (models.Key, error) {
	var key models.Key
	err := h.send(ctx, resty.MethodDelete, "/api/keys/"+url.PathEscape(keyID), request, &key)
	return key, err
}

func (h *httpServerAdapter) AuditLog(ctx context.Context) ([]models.AuditLogView, error) {
	var entries []models.AuditLogView
	err := h.get(ctx, "/api/audit-log", &entries)
	return entries, err
}

func (h *httpServerAdapter) Overdue(ctx context.Context) ([]models.OverdueCheckout, error) {
	var overdue []models.OverdueCheckout
	err := h.get(ctx, "/api/audit-log/overdue", &overdue)
	return overdue, err
}

func (h *httpServerAdapter) Reminder(ctx context.Context, entryID string) (models.Reminder, error) {
	var reminder models.Reminder
	err := h.get(ctx, "/api/audit-log/"+url.PathEscape(entryID)+"/reminder", &reminder)
	return reminder, err
}

// ExportAuditLog implements [ServerAdapter]. The file name is taken from the
// Content-Disposition header of GET /api/audit-log/export.
func (h *httpServerAdapter) ExportAuditLog(ctx context.Context) (models.AuditExport, error) {
	resp, err := h.authedRequest(ctx).Get("/api/audit-log/export")
	if err != nil {
		return models.AuditExport{}, fmt.Errorf("export audit log request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuditExport{}, err
	}

	_, params, err := mime.ParseMediaType(resp.Header().Get("Content-Disposition"))
	if err != nil || params["filename"] == "" {
		return models.AuditExport{}, ErrNoFileName
	}

	return models.AuditExport{FileName: params["filename"], Content: resp.Body()}, nil
}

func (h *httpServerAdapter) ListAccounts(ctx context.Context) ([]models.User, error) {
	var accounts []models.User
	err := h.get(ctx, "/api/accounts", &accounts)
	return accounts, err
}

func (h *httpServerAdapter) AddAccount(ctx context.Context, request models.AddAccountRequest) (models.User, error) {
	var account models.User
	err := h.send(ctx, resty.MethodPost, "/api/accounts", request, &account)
	return account, err
}

func (h *httpServerAdapter) get(ctx context.Context, path string, result any) error {
	resp, err := h.authedRequest(ctx).SetResult(result).Get(path)
	if err != nil {
		return fmt.Errorf("GET %s request: %w", path, err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) send(ctx context.Context, method, path string, body, result any) error {
	req := h.authedRequest(ctx).SetResult(result)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s request: %w", method, path, err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
