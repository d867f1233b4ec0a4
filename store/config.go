package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"
)

// ConfigStore implements jobq.ConfigStore using a SQL backend.
type ConfigStore struct {
	db *bun.DB
}

// NewConfigStore creates a new SQL-backed ConfigStore.
func NewConfigStore(db *bun.DB) *ConfigStore {
	return &ConfigStore{db: db}
}

// GetConfig returns the value for key, or def if key is unset.
func (c *ConfigStore) GetConfig(ctx context.Context, key string, def string) (string, error) {
	var row configModel
	err := c.db.NewSelect().
		Model(&row).
		Where("key = ?", key).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return def, nil
		}
		return "", err
	}
	return row.Value, nil
}

// SetConfig upserts key to value, refreshing its UpdatedAt audit field,
// matching storage.py's INSERT ... ON CONFLICT(key) DO UPDATE.
func (c *ConfigStore) SetConfig(ctx context.Context, key string, value string) error {
	now := nowUTC()
	_, err := c.db.NewInsert().
		Model(&configModel{Key: key, Value: value, UpdatedAt: now}).
		On("CONFLICT (key) DO UPDATE").
		Set("value = EXCLUDED.value").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return err
}

// List returns every config key/value pair as a map, generalizing cli.py's
// `config list` command. The map has no defined iteration order.
func (c *ConfigStore) List(ctx context.Context) (map[string]string, error) {
	var rows []configModel
	if err := c.db.NewSelect().Model(&rows).Order("key ASC").Scan(ctx); err != nil {
		return nil, err
	}
	out := make(map[string]string, len(rows))
	for _, r := range rows {
		out[r.Key] = r.Value
	}
	return out, nil
}
