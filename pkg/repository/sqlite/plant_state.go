package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vatika/pkg/domain/model"
)

type plantStateRepository struct {
	db *sql.DB
}

func newPlantStateRepository(db *sql.DB) *plantStateRepository {
	return &plantStateRepository{db: db}
}

func (r *plantStateRepository) Load(ctx context.Context) (*model.PlantState, error) {
	var raw string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM kv_store WHERE key = ?`, model.PlantStateKey,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load plant state")
	}

	var state model.PlantState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, goerr.Wrap(err, "failed to decode plant state", goerr.V("value", raw))
	}
	if state.BookmarkedPlants == nil {
		state.BookmarkedPlants = []model.PlantID{}
	}

	return &state, nil
}

func (r *plantStateRepository) Save(ctx context.Context, state *model.PlantState) error {
	if state == nil {
		return goerr.New("plant state is required")
	}

	raw, err := json.Marshal(state)
	if err != nil {
		return goerr.Wrap(err, "failed to encode plant state")
	}

	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		model.PlantStateKey, string(raw),
	); err != nil {
		return goerr.Wrap(err, "failed to save plant state")
	}

	return nil
}
