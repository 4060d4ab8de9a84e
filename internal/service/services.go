package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-key-keeper/internal/config"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/store"
	"github.com/MKhiriev/go-key-keeper/internal/utils"
	"github.com/MKhiriev/go-key-keeper/models"
)

type Services struct {
	State *State

	KeyRegistry    KeyRegistry
	AuditService   AuditService
	UserDirectory  UserDirectory
	AuthService    AuthService
	AppInfoService AppInfoService

	Threshold time.Duration
	Clock     Clock
}

// NewServices loads the stored state, seeds it when storage is empty and
// wires every service on top of it.
func NewServices(ctx context.Context, storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	return newServices(ctx, storages.StateRepository, cfg.App, buildInfo, utils.NewUUIDGenerator(), time.Now, logger)
}

func newServices(ctx context.Context, repository store.StateRepository, cfg config.App, buildInfo models.AppBuildInfo, ids utils.IDGenerator, clock Clock, logger *logger.Logger) (*Services, error) {
	state := NewState(repository, logger)
	if err := state.Load(ctx); err != nil {
		return nil, err
	}

	seeded, err := Seed(ctx, state, ids, clock, cfg.SeedDemoKeys)
	if err != nil {
		return nil, err
	}
	if seeded {
		logger.Info().Bool("demo_keys", cfg.SeedDemoKeys).Msg("empty storage seeded with default accounts")
	}

	appInfo, err := NewAppInfoService(cfg, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	threshold := cfg.OverdueThreshold
	if threshold <= 0 {
		threshold = DefaultOverdueThreshold
	}

	directory := NewUserDirectory(state, ids, logger)
	registry := NewKeyRegistryValidationService().Wrap(NewKeyRegistry(state, ids, clock, logger))

	return &Services{
		State:          state,
		KeyRegistry:    registry,
		AuditService:   NewAuditService(state, NewReminderComposer(cfg.OfficeName), clock, threshold, logger),
		UserDirectory:  directory,
		AuthService:    NewAuthService(directory, cfg, logger),
		AppInfoService: appInfo,
		Threshold:      threshold,
		Clock:          clock,
	}, nil
}
