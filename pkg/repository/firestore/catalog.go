package firestore

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vatika/pkg/domain/model"
	"google.golang.org/api/iterator"
)

const plantsCollection = "plants"

type catalogRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newCatalogRepository(client *firestore.Client) *catalogRepository {
	return &catalogRepository{client: client}
}

// FetchPlants reads the whole plants collection ordered by document ID.
// Documents without an explicit id field take the document ID.
func (r *catalogRepository) FetchPlants(ctx context.Context) ([]*model.Plant, error) {
	iter := r.client.Collection(r.collectionPrefix+plantsCollection).
		OrderBy(firestore.DocumentID, firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var plants []*model.Plant
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(errors.Join(model.ErrCatalog, err), "failed to iterate plants")
		}

		var p model.Plant
		if err := doc.DataTo(&p); err != nil {
			return nil, goerr.Wrap(errors.Join(model.ErrCatalog, err), "failed to unmarshal plant", goerr.V("docID", doc.Ref.ID))
		}
		if p.ID == "" {
			p.ID = model.PlantID(doc.Ref.ID)
		}
		plants = append(plants, &p)
	}

	return plants, nil
}

// PutPlants writes plants into the collection, keyed by plant ID
func (r *catalogRepository) PutPlants(ctx context.Context, plants []*model.Plant) error {
	for _, p := range plants {
		if err := p.Validate(); err != nil {
			return goerr.Wrap(err, "invalid plant")
		}
		ref := r.client.Collection(r.collectionPrefix + plantsCollection).Doc(p.ID.String())
		if _, err := ref.Set(ctx, p); err != nil {
			return goerr.Wrap(err, "failed to put plant to firestore", goerr.V("plantID", p.ID))
		}
	}

	return nil
}
