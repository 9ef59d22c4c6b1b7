package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/scan-history/internal/config"
	"github.com/MKhiriev/scan-history/internal/logger"
	"github.com/MKhiriev/scan-history/internal/workers"
)

// Storages aggregates the server's persistence backends.
type Storages struct {
	ScanRepository ScanRepository
	Notifier       ChangeNotifier

	db      *DB
	redis   *redis.Client
	workers []workers.Worker
}

// NewStorages opens the scan database, applies migrations and selects a
// change notifier: redis when an address is configured, in-process otherwise.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, err
	}

	s := &Storages{
		ScanRepository: NewScanRepository(db, log),
		db:             db,
	}

	if cfg.Redis.Address == "" {
		s.Notifier = NewMemoryNotifier(log)
		return s, nil
	}

	s.redis = redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
	})
	if err = s.redis.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewStorages").Str("address", cfg.Redis.Address).Msg("error connecting redis")
		s.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	notifier := NewRedisNotifier(s.redis, cfg.Redis.Channel, log)
	s.Notifier = notifier
	s.workers = append(s.workers, notifier)

	return s, nil
}

// Workers returns the background loops the storages need.
func (s *Storages) Workers() []workers.Worker {
	return s.workers
}

// Close releases the database pool and the redis client.
func (s *Storages) Close() error {
	var errs []error
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	if s.redis != nil {
		errs = append(errs, s.redis.Close())
	}
	return errors.Join(errs...)
}
