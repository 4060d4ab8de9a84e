package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-key-keeper/internal/adapter"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/store"
	"github.com/MKhiriev/go-key-keeper/internal/validators"
	"github.com/MKhiriev/go-key-keeper/models"
)

type clientAuthService struct {
	sessions  store.SessionStore
	adapter   adapter.ServerAdapter
	validator validators.Validator

	logger *logger.Logger
}

func NewClientAuthService(sessions store.SessionStore, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		sessions:  sessions,
		adapter:   serverAdapter,
		validator: validators.NewRequestValidator(),
		logger:    logger,
	}
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (models.Session, error) {
	session, err := a.sessions.Load()
	if err != nil {
		return models.Session{}, err
	}

	a.adapter.SetToken(session.Token)
	user, err := a.adapter.Me(ctx)
	if err != nil {
		err = mapAdapterError(err, ErrAccountNotFound)
		if errors.Is(err, ErrTokenIsExpiredOrInvalid) || errors.Is(err, ErrAccountNotFound) {
			a.logger.Info().Str("username", session.User.Username).Msg("saved session rejected by server, clearing it")
			a.adapter.SetToken("")
			if clearErr := a.sessions.Clear(); clearErr != nil {
				a.logger.Err(clearErr).Str("func", "*clientAuthService.RestoreSession").Msg("error clearing session")
			}
			return models.Session{}, ErrTokenIsExpiredOrInvalid
		}
		return models.Session{}, err
	}

	session.User = user
	return session, nil
}

func (a *clientAuthService) Login(ctx context.Context, username, password string) (models.Session, error) {
	request := models.LoginRequest{Username: username, Password: password}
	if err := a.validator.Validate(ctx, request); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}

	user, err := a.adapter.Login(ctx, request)
	if err != nil {
		return models.Session{}, mapAdapterError(err, nil)
	}

	session := models.Session{User: user, Token: a.adapter.Token()}
	if err = a.sessions.Save(session); err != nil {
		// the token still works for this run
		a.logger.Err(err).Str("func", "*clientAuthService.Login").Msg("error saving session")
	}

	return session, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.adapter.SetToken("")
	return a.sessions.Clear()
}
