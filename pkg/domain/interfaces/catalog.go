package interfaces

import (
	"context"

	"github.com/secmon-lab/vatika/pkg/domain/model"
)

// CatalogService fetches the full plant catalog from its source of truth
type CatalogService interface {
	FetchPlants(ctx context.Context) ([]*model.Plant, error)
}

// CatalogRepository is a catalog source that can also be written to
type CatalogRepository interface {
	CatalogService
	PutPlants(ctx context.Context, plants []*model.Plant) error
}
