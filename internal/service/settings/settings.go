// Package settings manages platform-wide switches stored in the
// platform_settings table, fronted by a short-TTL redis cache.
package settings

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/Bemyself19/sehatynet_backend/internal/repo"
	entsetting "github.com/Bemyself19/sehatynet_backend/internal/repo/platformsetting"
)

const (
	KeyPaymentsEnabled = "payments_enabled"

	cacheKeyPrefix = "setting:"
	cacheTTL       = 30 * time.Second
)

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, updatedBy *uuid.UUID) error
	PaymentsEnabled(ctx context.Context) (bool, error)
	SetPaymentsEnabled(ctx context.Context, enabled bool, updatedBy *uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type settingsService struct {
	db  *repo.Client
	rdb *goredis.Client
}

func New(db *repo.Client, rdb *goredis.Client) Service {
	return &settingsService{db: db, rdb: rdb}
}

func (s *settingsService) Get(ctx context.Context, key string) (string, error) {
	if s.rdb != nil {
		if v, err := s.rdb.Get(ctx, cacheKeyPrefix+key).Result(); err == nil {
			return v, nil
		}
	}

	row, err := s.db.PlatformSetting.Query().
		Where(entsetting.Key(key)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("get setting %s: %w", key, err)
	}

	if s.rdb != nil {
		_ = s.rdb.Set(ctx, cacheKeyPrefix+key, row.Value, cacheTTL).Err()
	}
	return row.Value, nil
}

func (s *settingsService) Set(ctx context.Context, key, value string, updatedBy *uuid.UUID) error {
	existing, err := s.db.PlatformSetting.Query().
		Where(entsetting.Key(key)).
		Only(ctx)
	if err != nil {
		if !repo.IsNotFound(err) {
			return fmt.Errorf("get setting %s: %w", key, err)
		}
		c := s.db.PlatformSetting.Create().
			SetKey(key).
			SetValue(value)
		if updatedBy != nil {
			c = c.SetUpdatedBy(*updatedBy)
		}
		if _, err := c.Save(ctx); err != nil {
			return fmt.Errorf("create setting %s: %w", key, err)
		}
	} else {
		upd := s.db.PlatformSetting.UpdateOne(existing).
			SetValue(value)
		if updatedBy != nil {
			upd = upd.SetUpdatedBy(*updatedBy)
		}
		if err := upd.Exec(ctx); err != nil {
			return fmt.Errorf("update setting %s: %w", key, err)
		}
	}

	if s.rdb != nil {
		_ = s.rdb.Del(ctx, cacheKeyPrefix+key).Err()
	}
	return nil
}

// PaymentsEnabled defaults to true when the row has never been written.
func (s *settingsService) PaymentsEnabled(ctx context.Context) (bool, error) {
	v, err := s.Get(ctx, KeyPaymentsEnabled)
	if err != nil {
		if err == ErrNotFound {
			return true, nil
		}
		return false, err
	}
	return v == "true", nil
}

func (s *settingsService) SetPaymentsEnabled(ctx context.Context, enabled bool, updatedBy *uuid.UUID) error {
	v := "false"
	if enabled {
		v = "true"
	}
	return s.Set(ctx, KeyPaymentsEnabled, v, updatedBy)
}
