package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-key-keeper/internal/adapter"
	"github.com/MKhiriev/go-key-keeper/internal/config"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/service"
	"github.com/MKhiriev/go-key-keeper/internal/store"
	"github.com/MKhiriev/go-key-keeper/internal/tui"
	"github.com/MKhiriev/go-key-keeper/internal/workers"
	"github.com/MKhiriev/go-key-keeper/models"
)

// UI is the interactive front end driven by [App].
type UI interface {
	Run(ctx context.Context, session *models.Session) error
	Refresh(ctx context.Context) error
}

type App struct {
	auth    service.ClientAuthService
	ui      UI
	workers *workers.Workers
	logger  *logger.Logger
}

// NewApp wires the transport, the session file, client services and the TUI.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	sessions, err := store.NewLocalSessionStore(cfg.Storage.SessionPath)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	services := service.NewClientServices(sessions, serverAdapter, logger)

	exportDir, err := os.Getwd()
	if err != nil {
		exportDir = os.TempDir()
	}

	ui := tui.New(services, tui.Options{
		BuildInfo:        buildInfo,
		OverdueThreshold: cfg.App.OverdueThreshold,
		ExportDir:        exportDir,
	}, logger)

	return newApp(services.AuthService, ui, cfg.Workers, logger), nil
}

func newApp(auth service.ClientAuthService, ui UI, cfg config.ClientWorkers, logger *logger.Logger) *App {
	return &App{
		auth:    auth,
		ui:      ui,
		workers: workers.NewWorkers(workers.NewRefreshWorker(ui.Refresh, cfg.RefreshInterval, logger)),
		logger:  logger,
	}
}

// Run restores the saved session, starts the refresh worker and shows the UI
// until the operator quits or the process is signalled.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	session, err := a.restoreSession(ctx)
	if err != nil {
		return err
	}

	a.workers.Run(ctx)
	defer a.workers.Stop()

	err = a.ui.Run(ctx, session)
	if errors.Is(err, tui.ErrUserQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// restoreSession returns nil when the operator has to log in. A server that
// cannot be reached is not fatal: the login screen reports it.
func (a *App) restoreSession(ctx context.Context) (*models.Session, error) {
	session, err := a.auth.RestoreSession(ctx)
	switch {
	case err == nil:
		a.logger.Info().Str("username", session.User.Username).Msg("session restored")
		return &session, nil
	case errors.Is(err, store.ErrLocalSessionNotFound),
		errors.Is(err, service.ErrTokenIsExpiredOrInvalid),
		errors.Is(err, service.ErrServerUnavailable):
		a.logger.Debug().Err(err).Msg("no usable session, asking for login")
		return nil, nil
	default:
		a.logger.Err(err).Str("func", "*App.restoreSession").Msg("error restoring session")
		return nil, fmt.Errorf("restore session: %w", err)
	}
}
