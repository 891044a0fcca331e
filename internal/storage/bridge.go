// Package storage is the persistence bridge: JSON blobs stored one key
// per collection in a local SQLite table. The domain store only depends
// on the load/save contract; save failures are the caller's to log and
// never roll back in-memory state.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// Bridge stores serialized collections in the app_state table.
type Bridge struct {
	db *sql.DB
}

// NewBridge wraps an open state database.
func NewBridge(db *sql.DB) *Bridge {
	return &Bridge{db: db}
}

// Load reads the raw value stored under key. found is false when the key
// has never been saved.
func (b *Bridge) Load(key string) (value []byte, found bool, err error) {
	var raw string
	err = b.db.QueryRow(`SELECT value FROM app_state WHERE key = ?`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load %s: %w", key, err)
	}
	return []byte(raw), true, nil
}

// Save upserts the raw value under key.
func (b *Bridge) Save(key string, value []byte) error {
	_, err := b.db.Exec(`
INSERT INTO app_state(key, value, updated_at) VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
`, key, string(value))
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// LoadJSON unmarshals the value stored under key into dst.
func (b *Bridge) LoadJSON(key string, dst any) (bool, error) {
	raw, found, err := b.Load(key)
	if err != nil || !found {
		return false, err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// SaveJSON marshals v and stores it under key.
func (b *Bridge) SaveJSON(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return b.Save(key, raw)
}
