package cli

import (
	"context"
	"slices"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vatika/pkg/cli/config"
	"github.com/secmon-lab/vatika/pkg/domain/interfaces"
	"github.com/secmon-lab/vatika/pkg/usecase"
	"github.com/secmon-lab/vatika/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdValidate() *cli.Command {
	var repoCfg config.Repository
	var catalogCfg config.Catalog

	var flags []cli.Flag
	flags = append(flags, catalogCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Fetch the plant catalog and check that it can be loaded",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			// Only the firestore catalog source needs a repository
			var repo interfaces.Repository
			if catalogCfg.Source() == config.CatalogSourceFirestore {
				r, err := repoCfg.Configure(ctx)
				if err != nil {
					return goerr.Wrap(err, "failed to initialize repository")
				}
				defer closeRepository(r)
				repo = r
			}

			catalog, err := catalogCfg.Configure(repo)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize catalog")
			}

			plants, err := catalog.FetchPlants(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to fetch plant catalog")
			}
			if err := usecase.ValidateCatalog(plants); err != nil {
				return goerr.Wrap(err, "catalog validation failed")
			}

			var categories []string
			for _, p := range plants {
				for _, cat := range p.Category {
					if !slices.Contains(categories, cat) {
						categories = append(categories, cat)
					}
				}
			}
			slices.Sort(categories)

			logger.Info("Catalog validation passed",
				"plant_count", len(plants),
				"categories", categories,
			)
			return nil
		},
	}
}
