package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vatika/pkg/domain/model"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const plantStateCollection = "plant_state"

type plantStateRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newPlantStateRepository(client *firestore.Client) *plantStateRepository {
	return &plantStateRepository{client: client}
}

// stateDoc returns the single document holding the persisted state:
// plant_state/vatika-plants-storage
func (r *plantStateRepository) stateDoc() *firestore.DocumentRef {
	return r.client.Collection(r.collectionPrefix + plantStateCollection).Doc(model.PlantStateKey)
}

func (r *plantStateRepository) Load(ctx context.Context) (*model.PlantState, error) {
	doc, err := r.stateDoc().Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to get plant state from firestore")
	}

	var state model.PlantState
	if err := doc.DataTo(&state); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal plant state")
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

	if _, err := r.stateDoc().Set(ctx, state); err != nil {
		return goerr.Wrap(err, "failed to save plant state to firestore")
	}

	return nil
}
