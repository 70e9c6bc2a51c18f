package usecase

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vatika/pkg/domain/model"
)

// Sentinel errors for use case layer
var (
	// ErrValidation means the request was rejected before any provider was called
	ErrValidation = goerr.New("invalid request")

	// ErrProcessing means an unexpected failure occurred while answering
	ErrProcessing = goerr.New("failed to process request")

	// Catalog errors are owned by the domain model so that catalog sources can
	// return them without importing the use case layer
	ErrCatalog       = model.ErrCatalog
	ErrPlantNotFound = model.ErrPlantNotFound
)

// Context keys for error values
const (
	PlantIDKey   = model.PlantIDKey
	RequestIDKey = "request_id"
	KindKey      = "kind"
)
