package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vatika/pkg/domain/model"
)

type plantStateRepository struct {
	mu    sync.RWMutex
	state *model.PlantState
}

func newPlantStateRepository() *plantStateRepository {
	return &plantStateRepository{}
}

func (r *plantStateRepository) Load(ctx context.Context) (*model.PlantState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.state.Clone(), nil
}

func (r *plantStateRepository) Save(ctx context.Context, state *model.PlantState) error {
	if state == nil {
		return goerr.New("plant state is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.state = state.Clone()
	return nil
}
