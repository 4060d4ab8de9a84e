package client

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-key-keeper/internal/config"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/service"
	"github.com/MKhiriev/go-key-keeper/internal/store"
	"github.com/MKhiriev/go-key-keeper/internal/tui"
	"github.com/MKhiriev/go-key-keeper/models"
)

type fakeAuth struct {
	session models.Session
	err     error
}

func (f *fakeAuth) RestoreSession(ctx context.Context) (models.Session, error) {
	return f.session, f.err
}

func (f *fakeAuth) Login(ctx context.Context, username, password string) (models.Session, error) {
	return models.Session{}, nil
}

func (f *fakeAuth) Logout(ctx context.Context) error { return nil }

type fakeUI struct {
	session   *models.Session
	ran       bool
	err       error
	wait      time.Duration
	refreshes atomic.Int32
}

func (f *fakeUI) Run(ctx context.Context, session *models.Session) error {
	f.ran = true
	f.session = session
	if f.wait > 0 {
		time.Sleep(f.wait)
	}
	return f.err
}

func (f *fakeUI) Refresh(ctx context.Context) error {
	f.refreshes.Add(1)
	return nil
}

func TestApp_Run_Session(t *testing.T) {
	saved := models.Session{User: models.User{Username: "admin"}, Token: "t"}

	tests := []struct {
		name        string
		restoreErr  error
		wantSession bool
		wantErr     bool
	}{
		{name: "restored", wantSession: true},
		{name: "no saved session", restoreErr: store.ErrLocalSessionNotFound},
		{name: "expired token", restoreErr: service.ErrTokenIsExpiredOrInvalid},
		{name: "server down", restoreErr: service.ErrServerUnavailable},
		{name: "broken session file", restoreErr: errors.New("unexpected end of JSON input"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui := &fakeUI{}
			app := newApp(&fakeAuth{session: saved, err: tt.restoreErr}, ui, config.ClientWorkers{}, logger.Nop())

			err := app.run(context.Background())

			if tt.wantErr {
				require.Error(t, err)
				assert.False(t, ui.ran)
				return
			}
			require.NoError(t, err)
			assert.True(t, ui.ran)
			if tt.wantSession {
				require.NotNil(t, ui.session)
				assert.Equal(t, "admin", ui.session.User.Username)
			} else {
				assert.Nil(t, ui.session)
			}
		})
	}
}

func TestApp_Run_QuitIsNotAnError(t *testing.T) {
	ui := &fakeUI{err: tui.ErrUserQuit}
	app := newApp(&fakeAuth{err: store.ErrLocalSessionNotFound}, ui, config.ClientWorkers{}, logger.Nop())

	assert.NoError(t, app.run(context.Background()))
}

func TestApp_Run_UIErrorIsReturned(t *testing.T) {
	boom := errors.New("terminal lost")
	ui := &fakeUI{err: boom}
	app := newApp(&fakeAuth{err: store.ErrLocalSessionNotFound}, ui, config.ClientWorkers{}, logger.Nop())

	assert.ErrorIs(t, app.run(context.Background()), boom)
}

func TestApp_Run_RefreshesWhileUIIsOpen(t *testing.T) {
	ui := &fakeUI{wait: 200 * time.Millisecond}
	app := newApp(&fakeAuth{err: store.ErrLocalSessionNotFound}, ui, config.ClientWorkers{RefreshInterval: 20 * time.Millisecond}, logger.Nop())

	require.NoError(t, app.run(context.Background()))

	stopped := ui.refreshes.Load()
	assert.Positive(t, stopped)

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, stopped, ui.refreshes.Load(), "refresh worker stops with the UI")
}
