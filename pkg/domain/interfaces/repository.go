package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	PlantState() PlantStateRepository
	Close() error
}
