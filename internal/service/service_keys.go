package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/utils"
	"github.com/MKhiriev/go-key-keeper/models"
)

// Clock returns the current time. Tests replace it with a fixed clock.
type Clock func() time.Time

// keyRegistry implements [KeyRegistry] on top of [State]. Each transition
// mutates the key and appends its log entry inside one [State.Update].
type keyRegistry struct {
	state *State
	ids   utils.IDGenerator
	clock Clock

	logger *logger.Logger
}

func NewKeyRegistry(state *State, ids utils.IDGenerator, clock Clock, logger *logger.Logger) KeyRegistry {
	return &keyRegistry{
		state:  state,
		ids:    ids,
		clock:  clock,
		logger: logger,
	}
}

func (r *keyRegistry) now() time.Time {
	return r.clock().UTC().Truncate(time.Millisecond)
}

// CreateKey registers a new AVAILABLE key. It fails with [ErrDuplicateCode]
// when a non-deleted key already uses code.
func (r *keyRegistry) CreateKey(ctx context.Context, code, address string, color models.KeyColor, actor string) (models.Key, error) {
	log := logger.FromContext(ctx)

	var created models.Key
	err := r.state.Update(ctx, func(tx *Tx) error {
		if _, taken := tx.Keys.ActiveByCode(code); taken {
			return fmt.Errorf("create key %s: %w", code, ErrDuplicateCode)
		}

		created = models.Key{
			ID:          r.ids.Generate(),
			VisibleCode: code,
			Color:       color,
			Address:     address,
			Status:      models.KeyStatusAvailable,
			History:     []models.CheckoutRecord{},
		}
		tx.Keys.Put(created)
		tx.Log.Append(r.entry(models.EventKeyCreated, created, models.LogDetails{
			Actor:      actor,
			KeyAddress: address,
		}))

		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*keyRegistry.CreateKey").Str("code", code).Msg("key was not created")
		return models.Key{}, err
	}

	log.Info().Str("key_id", created.ID).Str("code", code).Str("actor", actor).Msg("key created")
	return created, nil
}

// RenameKey changes the visible code of a non-deleted key. Renames are not
// recorded in the audit log.
func (r *keyRegistry) RenameKey(ctx context.Context, keyID, newCode string) error {
	err := r.state.Update(ctx, func(tx *Tx) error {
		key, ok := tx.Keys.Get(keyID)
		if !ok {
			return fmt.Errorf("rename key %s: %w", keyID, ErrKeyNotFound)
		}
		if !key.IsActive() {
			return fmt.Errorf("rename key %s: %w", keyID, ErrKeyDeleted)
		}
		if holder, taken := tx.Keys.ActiveByCode(newCode); taken && holder.ID != keyID {
			return fmt.Errorf("rename key %s to %s: %w", keyID, newCode, ErrDuplicateCode)
		}

		key.VisibleCode = newCode
		tx.Keys.Put(key)

		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*keyRegistry.RenameKey").Str("key_id", keyID).Msg("key was not renamed")
	}

	return err
}

// CheckoutKey hands an AVAILABLE key to holderName. The record becomes the
// current checkout and is appended to the key history.
func (r *keyRegistry) CheckoutKey(ctx context.Context, keyID, holderName, holderPhone string) error {
	err := r.state.Update(ctx, func(tx *Tx) error {
		key, ok := tx.Keys.Get(keyID)
		if !ok {
			return fmt.Errorf("checkout key %s: %w", keyID, ErrKeyNotFound)
		}
		switch key.Status {
		case models.KeyStatusDeleted:
			return fmt.Errorf("checkout key %s: %w", keyID, ErrKeyDeleted)
		case models.KeyStatusCheckedOut:
			return fmt.Errorf("checkout key %s: %w", keyID, ErrKeyAlreadyCheckedOut)
		}

		record := models.CheckoutRecord{
			PersonName:  holderName,
			PersonPhone: holderPhone,
			Date:        r.now(),
		}
		key.Status = models.KeyStatusCheckedOut
		key.CheckoutLog = &record
		key.History = append(key.History, record)
		tx.Keys.Put(key)

		entry := r.entry(models.EventKeyCheckedOut, key, models.LogDetails{
			Actor:      holderName,
			Phone:      holderPhone,
			KeyAddress: key.Address,
		})
		entry.Date = record.Date
		tx.Log.Append(entry)

		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*keyRegistry.CheckoutKey").Str("key_id", keyID).Msg("key was not checked out")
	}

	return err
}

// ReturnKey brings a CHECKED_OUT key back. returnerName does not need to be
// the holder.
func (r *keyRegistry) ReturnKey(ctx context.Context, keyID, returnerName string) error {
	err := r.state.Update(ctx, func(tx *Tx) error {
		key, ok := tx.Keys.Get(keyID)
		if !ok {
			return fmt.Errorf("return key %s: %w", keyID, ErrKeyNotFound)
		}
		if key.Status != models.KeyStatusCheckedOut {
			return fmt.Errorf("return key %s: %w", keyID, ErrKeyNotCheckedOut)
		}

		key.Status = models.KeyStatusAvailable
		key.CheckoutLog = nil
		tx.Keys.Put(key)
		tx.Log.Append(r.entry(models.EventKeyReturned, key, models.LogDetails{
			Actor:      returnerName,
			KeyAddress: key.Address,
		}))

		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*keyRegistry.ReturnKey").Str("key_id", keyID).Msg("key was not returned")
	}

	return err
}

// DeleteKey soft-deletes a key. A checked-out key may be deleted too; its
// current checkout is closed by the deletion.
func (r *keyRegistry) DeleteKey(ctx context.Context, keyID, reason, actorName string) error {
	err := r.state.Update(ctx, func(tx *Tx) error {
		key, ok := tx.Keys.Get(keyID)
		if !ok {
			return fmt.Errorf("delete key %s: %w", keyID, ErrKeyNotFound)
		}
		if key.Status == models.KeyStatusDeleted {
			return fmt.Errorf("delete key %s: %w", keyID, ErrKeyAlreadyDeleted)
		}

		key.Status = models.KeyStatusDeleted
		key.CheckoutLog = nil
		key.DeletionLog = &models.DeletionRecord{
			Reason:     reason,
			PersonName: actorName,
			Date:       r.now(),
		}
		tx.Keys.Put(key)

		entry := r.entry(models.EventKeyDeleted, key, models.LogDetails{
			Actor:      actorName,
			Reason:     reason,
			KeyAddress: key.Address,
		})
		entry.Date = key.DeletionLog.Date
		tx.Log.Append(entry)

		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*keyRegistry.DeleteKey").Str("key_id", keyID).Msg("key was not deleted")
	}

	return err
}

// GetKey returns a key by id, including deleted keys.
func (r *keyRegistry) GetKey(ctx context.Context, keyID string) (models.Key, error) {
	var (
		key models.Key
		ok  bool
	)
	r.state.Read(func(view View) {
		key, ok = view.Keys.Get(keyID)
	})
	if !ok {
		return models.Key{}, fmt.Errorf("get key %s: %w", keyID, ErrKeyNotFound)
	}

	return key, nil
}

func (r *keyRegistry) ListActiveKeys(ctx context.Context) []models.Key {
	var keys []models.Key
	r.state.Read(func(view View) {
		keys = view.Keys.Active()
	})
	return keys
}

func (r *keyRegistry) ListKeys(ctx context.Context) []models.Key {
	var keys []models.Key
	r.state.Read(func(view View) {
		keys = view.Keys.All()
	})
	return keys
}

// KeyHistory returns every checkout of a key, oldest first.
func (r *keyRegistry) KeyHistory(ctx context.Context, keyID string) ([]models.CheckoutRecord, error) {
	key, err := r.GetKey(ctx, keyID)
	if err != nil {
		return nil, err
	}
	return key.History, nil
}

// SuggestCode returns the first code, in A1, A2 ... Z6 order, never assigned
// to any stored key. Codes of deleted keys are not offered again.
func (r *keyRegistry) SuggestCode(ctx context.Context) (string, error) {
	var used map[string]struct{}
	r.state.Read(func(view View) {
		used = view.Keys.Codes()
	})

	for letter := 'A'; letter <= 'Z'; letter++ {
		for digit := '1'; digit <= '6'; digit++ {
			code := string([]rune{letter, digit})
			if _, taken := used[code]; !taken {
				return code, nil
			}
		}
	}

	return "", fmt.Errorf("suggest code: %w", ErrDuplicateCode)
}

func (r *keyRegistry) entry(event models.EventType, key models.Key, details models.LogDetails) models.LogEntry {
	return models.LogEntry{
		ID:             r.ids.Generate(),
		Date:           r.now(),
		Type:           event,
		KeyID:          key.ID,
		KeyVisibleCode: key.VisibleCode,
		Details:        details,
	}
}
