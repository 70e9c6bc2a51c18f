package sqlite

import (
	"context"
	"database/sql"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vatika/pkg/domain/interfaces"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv_store (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

// SQLite keeps persisted state in a single key-value table of a local
// database file.
type SQLite struct {
	db         *sql.DB
	plantState *plantStateRepository
}

var _ interfaces.Repository = &SQLite{}

// New opens (and creates if needed) the database at path
func New(ctx context.Context, path string) (*SQLite, error) {
	if path == "" {
		return nil, goerr.New("sqlite database path is required")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open sqlite database", goerr.V("path", path))
	}
	// a single connection serializes writers and keeps :memory: databases shared
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, goerr.Wrap(err, "failed to create sqlite schema", goerr.V("path", path))
	}

	return &SQLite{
		db:         db,
		plantState: newPlantStateRepository(db),
	}, nil
}

func (s *SQLite) PlantState() interfaces.PlantStateRepository {
	return s.plantState
}

func (s *SQLite) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
