package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-key-keeper/internal/config"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
)

// Storages groups the server-side storage backends.
type Storages struct {
	StateRepository StateRepository
}

// NewStorages opens the state backend chosen by cfg.Driver. SQL backends are
// migrated before the repository is returned.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("driver", cfg.Driver).Msg("creating new storages...")

	var (
		repository StateRepository
		err        error
	)

	switch cfg.Driver {
	case config.DriverMemory:
		repository = NewMemoryStateRepository()
	case config.DriverFile:
		repository = NewFileStateRepository(cfg.Files.StatePath, logger)
	case config.DriverRedis:
		kv, redisErr := NewRedisKeyValueStore(ctx, cfg.Redis.URL)
		if redisErr != nil {
			return nil, fmt.Errorf("redis connection error: %w", redisErr)
		}
		repository = NewKeyValueStateRepository(kv, cfg.Redis.KeyPrefix, logger)
	case config.DriverSQLite:
		repository, err = newSQLStorage(ctx, NewConnectSQLite, cfg.DB, logger)
	case config.DriverPostgres:
		repository, err = newSQLStorage(ctx, NewConnectPostgres, cfg.DB, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	return &Storages{StateRepository: repository}, nil
}

type connectFunc func(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error)

func newSQLStorage(ctx context.Context, connect connectFunc, cfg config.DB, logger *logger.Logger) (StateRepository, error) {
	db, err := connect(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewSQLStateRepository(db, logger)
}

// Close releases every backend.
func (s *Storages) Close() error {
	return s.StateRepository.Close()
}
