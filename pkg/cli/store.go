package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vatika/pkg/cli/config"
	"github.com/secmon-lab/vatika/pkg/domain/interfaces"
	"github.com/secmon-lab/vatika/pkg/usecase"
	"github.com/secmon-lab/vatika/pkg/utils/logging"
)

// openUseCases builds the repository, the catalog source and the use cases
// with the plant state restored and the catalog loaded. The returned
// repository must be closed by the caller.
func openUseCases(ctx context.Context, repoCfg *config.Repository, catalogCfg *config.Catalog, opts ...usecase.Option) (*usecase.UseCases, interfaces.Repository, error) {
	repo, err := repoCfg.Configure(ctx)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to initialize repository")
	}

	catalog, err := catalogCfg.Configure(repo)
	if err != nil {
		closeRepository(repo)
		return nil, nil, goerr.Wrap(err, "failed to initialize catalog")
	}

	uc := usecase.New(repo, catalog, opts...)
	if err := uc.Plants.Restore(ctx); err != nil {
		closeRepository(repo)
		return nil, nil, goerr.Wrap(err, "failed to restore plant state")
	}
	if err := uc.Plants.Initialize(ctx); err != nil {
		closeRepository(repo)
		return nil, nil, goerr.Wrap(err, "failed to load plant catalog")
	}

	return uc, repo, nil
}

func closeRepository(repo interfaces.Repository) {
	if err := repo.Close(); err != nil {
		logging.Default().Error("failed to close repository", "error", err.Error())
	}
}
