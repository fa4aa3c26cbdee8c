// Persistence adapter: the four collections are serialized as JSON blobs
// into one key/value table and always written together. There is no
// per-record storage; load-all and replace-all are the only operations.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"absensi-backend/internal/platform/db"
	"absensi-backend/internal/store"
)

const (
	keyStudents   = "students"
	keyClasses    = "classes"
	keyAttendance = "attendance"
	keySettings   = "settings"
)

type Adapter struct {
	db *sql.DB
}

func New(conn *sql.DB) *Adapter { return &Adapter{db: conn} }

// EnsureSchema creates the collections table on first start.
func (a *Adapter) EnsureSchema(ctx context.Context) error {
	_, err := a.db.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS collections (
		name       VARCHAR(32) NOT NULL PRIMARY KEY,
		payload    LONGTEXT    NOT NULL,
		updated_at TIMESTAMP   NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`)
	if err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// LoadAll reads every collection. A missing key is a zero value, not an
// error: that is what a fresh database looks like.
func (a *Adapter) LoadAll(ctx context.Context) (store.Snapshot, error) {
	var snap store.Snapshot

	if err := a.loadKey(ctx, keyStudents, &snap.Students); err != nil {
		return store.Snapshot{}, err
	}
	if err := a.loadKey(ctx, keyClasses, &snap.Classes); err != nil {
		return store.Snapshot{}, err
	}
	if err := a.loadKey(ctx, keyAttendance, &snap.Attendance); err != nil {
		return store.Snapshot{}, err
	}
	var settings store.Settings
	found, err := a.loadKeyFound(ctx, keySettings, &settings)
	if err != nil {
		return store.Snapshot{}, err
	}
	if found {
		snap.Settings = &settings
	}
	return snap, nil
}

func (a *Adapter) loadKey(ctx context.Context, name string, dst any) error {
	_, err := a.loadKeyFound(ctx, name, dst)
	return err
}

func (a *Adapter) loadKeyFound(ctx context.Context, name string, dst any) (bool, error) {
	var payload []byte
	err := a.db.QueryRowContext(ctx,
		`SELECT payload FROM collections WHERE name = ?`, name,
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load %s: %w", name, err)
	}
	if err := json.Unmarshal(payload, dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", name, err)
	}
	return true, nil
}

// SaveAll replaces all four collections in one transaction, so the stored
// state is never a mix of old and new.
func (a *Adapter) SaveAll(ctx context.Context, snap store.Snapshot) error {
	settings := snap.Settings
	if settings == nil {
		s := store.Settings{}
		settings = &s
	}

	return db.RunInTx(ctx, a.db, nil, func(ctx context.Context, tx db.DBTX) error {
		if err := saveKey(ctx, tx, keyStudents, emptySlice(snap.Students)); err != nil {
			return err
		}
		if err := saveKey(ctx, tx, keyClasses, emptySlice(snap.Classes)); err != nil {
			return err
		}
		if err := saveKey(ctx, tx, keyAttendance, emptySlice(snap.Attendance)); err != nil {
			return err
		}
		return saveKey(ctx, tx, keySettings, settings)
	})
}

func saveKey(ctx context.Context, tx db.DBTX, name string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if _, err := tx.ExecContext(ctx,
		`REPLACE INTO collections (name, payload) VALUES (?, ?)`, name, payload,
	); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}

// emptySlice keeps "no records" serialized as [] rather than null.
func emptySlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// Wipe clears durable storage. In-memory state is reseeded by the caller.
func (a *Adapter) Wipe(ctx context.Context) error {
	if _, err := a.db.ExecContext(ctx, `DELETE FROM collections`); err != nil {
		return fmt.Errorf("wipe: %w", err)
	}
	return nil
}
