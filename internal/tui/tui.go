// Package tui is the terminal interface of the key registry client.
//
// It only presents data: every operation goes through the client services,
// which validate input and talk to the server.
package tui

import (
	"context"
	"errors"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/service"
	"github.com/MKhiriev/go-key-keeper/models"
)

// ErrNotRunning is returned by [TUI.Refresh] when no program is on screen.
var ErrNotRunning = errors.New("tui is not running")

// Options configures the presentation.
type Options struct {
	BuildInfo models.AppBuildInfo
	// OverdueThreshold decides which checkouts are highlighted in the key
	// list between refreshes.
	OverdueThreshold time.Duration
	// ExportDir receives exported audit logs.
	ExportDir string
}

type TUI struct {
	services *service.ClientServices
	opts     Options

	mu      sync.Mutex
	program *tea.Program

	logger *logger.Logger
}

func New(services *service.ClientServices, opts Options, logger *logger.Logger) *TUI {
	return &TUI{services: services, opts: opts, logger: logger}
}

// Run shows the interface until the operator quits. With a nil session the
// login screen comes first.
func (t *TUI) Run(ctx context.Context, session *models.Session) error {
	program := tea.NewProgram(newAppModel(ctx, t.services, t.opts, session), tea.WithAltScreen(), tea.WithContext(ctx))

	t.mu.Lock()
	t.program = program
	t.mu.Unlock()
	defer func() {
		t.mu.Lock()
		t.program = nil
		t.mu.Unlock()
	}()

	finalModel, err := program.Run()
	if err != nil {
		t.logger.Err(err).Str("func", "*TUI.Run").Msg("tui stopped with error")
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	return result.err
}

// Refresh asks the running interface to re-read what it shows. It is the
// callback of the client refresh worker.
func (t *TUI) Refresh(ctx context.Context) error {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return ErrNotRunning
	}
	program.Send(refreshMsg{})
	return nil
}
