package model

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrCatalog means the plant catalog could not be fetched or was unusable
	ErrCatalog = goerr.New("plant catalog unavailable")

	// ErrPlantNotFound means no plant with the given ID is in the catalog
	ErrPlantNotFound = goerr.New("plant not found")
)

// Context keys for error values
const (
	PlantIDKey = "plant_id"
)
