package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-key-keeper/internal/adapter"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/validators"
	"github.com/MKhiriev/go-key-keeper/models"
)

type clientAuditService struct {
	adapter adapter.ServerAdapter

	logger *logger.Logger
}

func NewClientAuditService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuditService {
	return &clientAuditService{adapter: serverAdapter, logger: logger}
}

func (s *clientAuditService) Entries(ctx context.Context) ([]models.AuditLogView, error) {
	entries, err := s.adapter.AuditLog(ctx)
	return entries, mapAdapterError(err, nil)
}

func (s *clientAuditService) Overdue(ctx context.Context) ([]models.OverdueCheckout, error) {
	overdue, err := s.adapter.Overdue(ctx)
	return overdue, mapAdapterError(err, nil)
}

func (s *clientAuditService) Reminder(ctx context.Context, entryID string) (models.Reminder, error) {
	reminder, err := s.adapter.Reminder(ctx, entryID)
	return reminder, mapAdapterError(err, ErrLogEntryNotFound)
}

func (s *clientAuditService) Export(ctx context.Context, dir string) (string, error) {
	export, err := s.adapter.ExportAuditLog(ctx)
	if err != nil {
		return "", mapAdapterError(err, nil)
	}

	// the name comes from the server, keep only its base
	path := filepath.Join(dir, filepath.Base(export.FileName))
	if err = os.WriteFile(path, export.Content, 0o644); err != nil {
		s.logger.Err(err).Str("func", "*clientAuditService.Export").Str("path", path).Msg("error writing export")
		return "", fmt.Errorf("write audit log export: %w", err)
	}

	s.logger.Info().Str("path", path).Msg("audit log exported")
	return path, nil
}

type clientAccountService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator
}

func NewClientAccountService(serverAdapter adapter.ServerAdapter) ClientAccountService {
	return &clientAccountService{adapter: serverAdapter, validator: validators.NewRequestValidator()}
}

func (s *clientAccountService) ListAccounts(ctx context.Context) ([]models.User, error) {
	accounts, err := s.adapter.ListAccounts(ctx)
	return accounts, mapAdapterError(err, nil)
}

func (s *clientAccountService) AddAccount(ctx context.Context, request models.AddAccountRequest) (models.User, error) {
	if err := s.validator.Validate(ctx, request); err != nil {
		return models.User{}, fmt.Errorf("add account: %w", err)
	}

	account, err := s.adapter.AddAccount(ctx, request)
	return account, mapAdapterError(err, nil)
}
