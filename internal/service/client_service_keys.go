package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-key-keeper/internal/adapter"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/validators"
	"github.com/MKhiriev/go-key-keeper/models"
)

type clientKeyService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator

	logger *logger.Logger
}

func NewClientKeyService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientKeyService {
	return &clientKeyService{
		adapter:   serverAdapter,
		validator: validators.NewRequestValidator(),
		logger:    logger,
	}
}

func (s *clientKeyService) ListKeys(ctx context.Context, all bool) ([]models.Key, error) {
	keys, err := s.adapter.ListKeys(ctx, all)
	return keys, mapAdapterError(err, nil)
}

func (s *clientKeyService) GetKey(ctx context.Context, keyID string) (models.Key, error) {
	key, err := s.adapter.GetKey(ctx, keyID)
	return key, mapAdapterError(err, ErrKeyNotFound)
}

func (s *clientKeyService) KeyHistory(ctx context.Context, keyID string) ([]models.CheckoutRecord, error) {
	history, err := s.adapter.KeyHistory(ctx, keyID)
	return history, mapAdapterError(err, ErrKeyNotFound)
}

func (s *clientKeyService) SuggestCode(ctx context.Context) (string, error) {
	code, err := s.adapter.SuggestCode(ctx)
	return code, mapAdapterError(err, nil)
}

func (s *clientKeyService) CreateKey(ctx context.Context, code, address string, color models.KeyColor) (models.Key, error) {
	request := models.CreateKeyRequest{VisibleCode: code, Address: address, Color: color}
	if err := s.validator.Validate(ctx, request); err != nil {
		return models.Key{}, fmt.Errorf("create key: %w", err)
	}

	key, err := s.adapter.CreateKey(ctx, request)
	return key, mapAdapterError(err, nil)
}

func (s *clientKeyService) RenameKey(ctx context.Context, keyID, code string) (models.Key, error) {
	request := models.RenameKeyRequest{VisibleCode: code}
	if err := s.validator.Validate(ctx, request); err != nil {
		return models.Key{}, fmt.Errorf("rename key: %w", err)
	}

	key, err := s.adapter.RenameKey(ctx, keyID, request)
	return key, mapAdapterError(err, ErrKeyNotFound)
}

func (s *clientKeyService) CheckoutSelf(ctx context.Context, keyID string) (models.Key, error) {
	key, err := s.adapter.CheckoutKey(ctx, keyID, models.CheckoutRequest{Mode: models.CheckoutSelf})
	return key, mapAdapterError(err, ErrKeyNotFound)
}

func (s *clientKeyService) CheckoutOther(ctx context.Context, keyID, holderName, holderPhone string) (models.Key, error) {
	request := models.CheckoutRequest{Mode: models.CheckoutOther, HolderName: holderName, HolderPhone: holderPhone}
	if err := s.validator.Validate(ctx, request); err != nil {
		return models.Key{}, fmt.Errorf("checkout key: %w", err)
	}

	key, err := s.adapter.CheckoutKey(ctx, keyID, request)
	return key, mapAdapterError(err, ErrKeyNotFound)
}

func (s *clientKeyService) ReturnKey(ctx context.Context, keyID string) (models.Key, error) {
	key, err := s.adapter.ReturnKey(ctx, keyID)
	return key, mapAdapterError(err, ErrKeyNotFound)
}

func (s *clientKeyService) DeleteKey(ctx context.Context, keyID, reason string) (models.Key, error) {
	request := models.DeleteKeyRequest{Reason: reason}
	if err := s.validator.Validate(ctx, request); err != nil {
		return models.Key{}, fmt.Errorf("delete key: %w", err)
	}

	key, err := s.adapter.DeleteKey(ctx, keyID, request)
	return key, mapAdapterError(err, ErrKeyNotFound)
}
