package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vatika/pkg/domain/interfaces"
)

type Firestore struct {
	client     *firestore.Client
	plantState *plantStateRepository
	catalog    *catalogRepository
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

// WithCollectionPrefix prefixes every collection name, e.g. to isolate tests
func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.plantState.collectionPrefix = prefix
		f.catalog.collectionPrefix = prefix
	}
}

func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	if databaseID == "" {
		databaseID = firestore.DefaultDatabaseID
	}

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID),
		)
	}

	f := &Firestore{
		client:     client,
		plantState: newPlantStateRepository(client),
		catalog:    newCatalogRepository(client),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *Firestore) PlantState() interfaces.PlantStateRepository {
	return f.plantState
}

// Catalog returns the plants collection as a catalog source
func (f *Firestore) Catalog() interfaces.CatalogRepository {
	return f.catalog
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
