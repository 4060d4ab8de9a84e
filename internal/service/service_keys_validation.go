package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-key-keeper/internal/validators"
	"github.com/MKhiriev/go-key-keeper/models"
)

// KeyRegistryValidationService checks code, address and color formats before
// delegating to the wrapped registry.
type KeyRegistryValidationService struct {
	inner     KeyRegistry
	validator validators.Validator
}

func NewKeyRegistryValidationService() KeyRegistryWrapper {
	return &KeyRegistryValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *KeyRegistryValidationService) CreateKey(ctx context.Context, code, address string, color models.KeyColor, actor string) (models.Key, error) {
	request := models.CreateKeyRequest{VisibleCode: code, Address: address, Color: color}
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Key{}, fmt.Errorf("error during key validation before creating: %w", err)
	}

	return v.inner.CreateKey(ctx, code, address, color, actor)
}

func (v *KeyRegistryValidationService) RenameKey(ctx context.Context, keyID, newCode string) error {
	if err := v.validator.Validate(ctx, models.RenameKeyRequest{VisibleCode: newCode}); err != nil {
		return fmt.Errorf("error during key validation before renaming: %w", err)
	}

	return v.inner.RenameKey(ctx, keyID, newCode)
}

func (v *KeyRegistryValidationService) CheckoutKey(ctx context.Context, keyID, holderName, holderPhone string) error {
	return v.inner.CheckoutKey(ctx, keyID, holderName, holderPhone)
}

func (v *KeyRegistryValidationService) ReturnKey(ctx context.Context, keyID, returnerName string) error {
	return v.inner.ReturnKey(ctx, keyID, returnerName)
}

func (v *KeyRegistryValidationService) DeleteKey(ctx context.Context, keyID, reason, actorName string) error {
	if err := v.validator.Validate(ctx, models.DeleteKeyRequest{Reason: reason}); err != nil {
		return fmt.Errorf("error during key validation before deleting: %w", err)
	}

	return v.inner.DeleteKey(ctx, keyID, reason, actorName)
}

func (v *KeyRegistryValidationService) GetKey(ctx context.Context, keyID string) (models.Key, error) {
	return v.inner.GetKey(ctx, keyID)
}

func (v *KeyRegistryValidationService) ListActiveKeys(ctx context.Context) []models.Key {
	return v.inner.ListActiveKeys(ctx)
}

func (v *KeyRegistryValidationService) ListKeys(ctx context.Context) []models.Key {
	return v.inner.ListKeys(ctx)
}

func (v *KeyRegistryValidationService) KeyHistory(ctx context.Context, keyID string) ([]models.CheckoutRecord, error) {
	return v.inner.KeyHistory(ctx, keyID)
}

func (v *KeyRegistryValidationService) SuggestCode(ctx context.Context) (string, error) {
	return v.inner.SuggestCode(ctx)
}

func (v *KeyRegistryValidationService) Wrap(registry KeyRegistry) KeyRegistry {
	v.inner = registry
	return v
}
