package memory

import (
	"github.com/secmon-lab/vatika/pkg/domain/interfaces"
)

// Memory keeps everything in process memory. Nothing survives a restart, so
// it is meant for development and tests.
type Memory struct {
	plantState *plantStateRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		plantState: newPlantStateRepository(),
	}
}

func (m *Memory) PlantState() interfaces.PlantStateRepository {
	return m.plantState
}

func (m *Memory) Close() error {
	return nil
}
