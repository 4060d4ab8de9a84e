package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-key-keeper/internal/config"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/service"
	"github.com/MKhiriev/go-key-keeper/internal/store"
	"github.com/MKhiriev/go-key-keeper/models"
)

func TestNewHandlers_TableTest(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Server
		wantHTTP bool
		wantGRPC bool
	}{
		{name: "both transports", cfg: config.Server{HTTPAddress: ":8080", GRPCAddress: ":9090"}, wantHTTP: true, wantGRPC: true},
		{name: "http only", cfg: config.Server{HTTPAddress: ":8080"}, wantHTTP: true},
		{name: "grpc only", cfg: config.Server{GRPCAddress: ":9090"}, wantGRPC: true},
		{name: "http with request timeout", cfg: config.Server{HTTPAddress: ":8080", RequestTimeout: 3 * time.Second}, wantHTTP: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// handlers only keep the services pointer at construction time
			h, err := NewHandlers(nil, tt.cfg, logger.Nop())

			require.NoError(t, err)
			assert.Equal(t, tt.wantHTTP, h.HTTP != nil)
			assert.Equal(t, tt.wantGRPC, h.GRPC != nil)
		})
	}
}

func TestNewHandlers_NoAddresses(t *testing.T) {
	h, err := NewHandlers(nil, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

func TestNewHandlers_RouterServesKeys(t *testing.T) {
	cfg := config.StructuredConfig{
		App: config.App{
			TokenSignKey:     "test-sign-key",
			TokenIssuer:      "go-key-keeper",
			TokenDuration:    time.Hour,
			OverdueThreshold: 48 * time.Hour,
			Version:          "1.0.0-test",
		},
		Server: config.Server{HTTPAddress: ":8080", RequestTimeout: time.Second},
	}
	storages := &store.Storages{StateRepository: store.NewMemoryStateRepository()}
	services, err := service.NewServices(context.Background(), storages, cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)

	h, err := NewHandlers(services, cfg.Server, logger.Nop())
	require.NoError(t, err)

	router := h.HTTP.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/keys", nil))
	// the route exists and is guarded
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.0.0-test", rec.Body.String())
}
