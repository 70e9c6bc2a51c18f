package usecase

import (
	"github.com/secmon-lab/vatika/pkg/domain/interfaces"
	"github.com/secmon-lab/vatika/pkg/domain/types"
)

// UseCases wires the answer pipeline and the plant store over one repository
type UseCases struct {
	providers []interfaces.Provider
	env       types.Environment
	storeOpts []PlantStoreOption
	Answer    *AnswerUseCase
	Plants    *PlantStore
}

type Option func(*UseCases)

// WithProviders sets the provider chain in priority order
func WithProviders(providers ...interfaces.Provider) Option {
	return func(uc *UseCases) {
		uc.providers = providers
	}
}

func WithEnvironment(env types.Environment) Option {
	return func(uc *UseCases) {
		uc.env = env
	}
}

func WithPlantStoreOptions(opts ...PlantStoreOption) Option {
	return func(uc *UseCases) {
		uc.storeOpts = append(uc.storeOpts, opts...)
	}
}

func New(repo interfaces.Repository, catalog interfaces.CatalogService, opts ...Option) *UseCases {
	uc := &UseCases{
		env: types.EnvironmentProduction,
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Answer = NewAnswerUseCase(NewResolver(uc.providers...), uc.env)
	uc.Plants = NewPlantStore(catalog, repo.PlantState(), uc.storeOpts...)

	return uc
}
