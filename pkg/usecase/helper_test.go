package usecase_test

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vatika/pkg/domain/model"
)

type mockProvider struct {
	name  string
	text  string
	err   error
	panic string

	mu      sync.Mutex
	calls   int
	prompts []string
}

func (p *mockProvider) Name() string { return p.name }

func (p *mockProvider) Generate(ctx context.Context, prompt string) (string, error) {
	p.mu.Lock()
	p.calls++
	p.prompts = append(p.prompts, prompt)
	p.mu.Unlock()

	if p.panic != "" {
		panic(p.panic)
	}
	return p.text, p.err
}

func (p *mockProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func okProvider(name, text string) *mockProvider {
	return &mockProvider{name: name, text: text}
}

func failingProvider(name string) *mockProvider {
	return &mockProvider{name: name, err: goerr.New("provider down", goerr.V("provider", name))}
}

type mockCatalog struct {
	plants []*model.Plant
	err    error
	calls  int
}

func (c *mockCatalog) FetchPlants(ctx context.Context) ([]*model.Plant, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return c.plants, nil
}

type failingStateRepo struct{}

func (failingStateRepo) Load(ctx context.Context) (*model.PlantState, error) {
	return nil, goerr.New("load failed")
}

func (failingStateRepo) Save(ctx context.Context, state *model.PlantState) error {
	return goerr.New("save failed")
}

func newPlant(id, name, scientific string) *model.Plant {
	return &model.Plant{
		ID:             model.PlantID(id),
		Name:           name,
		ScientificName: scientific,
	}
}
