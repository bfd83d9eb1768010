package mirror

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Kind names a durable slot, one per entity collection. The values keep the
// storage keys of the original client so an upgraded installation finds its
// old offline copy.
type Kind string

const (
	KindEquipments Kind = "alvs_equipments"
	KindCustomers  Kind = "alvs_customers"
	KindSuppliers  Kind = "alvs_suppliers"
)

// Mirror is a durable write-through cache of the entity store, read only as a
// cold-start fallback. Each slot holds one JSON-serialized collection.
type Mirror struct {
	db *sql.DB
}

// Open opens (creating if needed) the mirror database at path.
func Open(path string) (*Mirror, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating mirror directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening mirror database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("setting pragma %q: %w", p, err)
		}
	}

	if _, err := db.Exec(
		`CREATE TABLE IF NOT EXISTS mirror (
			kind TEXT PRIMARY KEY,
			payload BLOB NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating mirror table: %w", err)
	}

	return &Mirror{db: db}, nil
}

func (m *Mirror) Close() error {
	return m.db.Close()
}

// Save serializes the collection into the slot named by kind, replacing any
// previous contents.
func (m *Mirror) Save(ctx context.Context, kind Kind, collection interface{}) error {
	payload, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("serializing %s: %w", kind, err)
	}

	_, err = m.db.ExecContext(ctx,
		`INSERT INTO mirror (kind, payload, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(kind) DO UPDATE SET payload = excluded.payload, updated_at = CURRENT_TIMESTAMP`,
		string(kind), payload,
	)
	if err != nil {
		return fmt.Errorf("saving %s: %w", kind, err)
	}
	return nil
}

// Load deserializes the slot named by kind into dst. The boolean reports
// whether the slot existed; a missing slot is not an error (first run).
func (m *Mirror) Load(ctx context.Context, kind Kind, dst interface{}) (bool, error) {
	var payload []byte
	err := m.db.QueryRowContext(ctx,
		`SELECT payload FROM mirror WHERE kind = ?`, string(kind),
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("loading %s: %w", kind, err)
	}

	if err := json.Unmarshal(payload, dst); err != nil {
		return false, fmt.Errorf("deserializing %s: %w", kind, err)
	}
	return true, nil
}
