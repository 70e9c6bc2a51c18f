package interfaces

import (
	"context"

	"github.com/secmon-lab/vatika/pkg/domain/model"
)

// PlantStateRepository persists the plant store subset that survives restarts
type PlantStateRepository interface {
	// Load returns the persisted state, or nil when nothing has been saved yet
	Load(ctx context.Context) (*model.PlantState, error)

	// Save replaces the persisted state
	Save(ctx context.Context, state *model.PlantState) error
}
