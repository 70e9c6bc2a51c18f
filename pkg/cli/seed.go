package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vatika/pkg/cli/config"
	"github.com/secmon-lab/vatika/pkg/domain/interfaces"
	"github.com/secmon-lab/vatika/pkg/service/catalog"
	"github.com/secmon-lab/vatika/pkg/usecase"
	"github.com/secmon-lab/vatika/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

type catalogWriter interface {
	Catalog() interfaces.CatalogRepository
}

func cmdSeed() *cli.Command {
	var repoCfg config.Repository
	var path string
	var dryRun bool

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "file",
			Aliases:     []string{"f"},
			Usage:       "Plant catalog file to upload, JSON or TOML",
			Required:    true,
			Sources:     cli.EnvVars("VATIKA_SEED_FILE"),
			Destination: &path,
		},
		&cli.BoolFlag{
			Name:        "dry-run",
			Usage:       "Validate the file without writing to the repository",
			Destination: &dryRun,
		},
	}
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:  "seed",
		Usage: "Upload a plant catalog file into the repository's plants collection",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			src, err := catalog.NewFile(path)
			if err != nil {
				return goerr.Wrap(err, "failed to open catalog file")
			}
			plants, err := src.FetchPlants(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to read catalog file")
			}
			if err := usecase.ValidateCatalog(plants); err != nil {
				return goerr.Wrap(err, "catalog validation failed")
			}

			if dryRun {
				logger.Info("Dry run, catalog not written", "path", path, "plant_count", len(plants))
				return nil
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer closeRepository(repo)

			w, ok := repo.(catalogWriter)
			if !ok {
				return goerr.New("repository backend does not store a plant catalog",
					goerr.V("backend", repoCfg.Backend()))
			}
			if err := w.Catalog().PutPlants(ctx, plants); err != nil {
				return goerr.Wrap(err, "failed to write plant catalog")
			}

			logger.Info("Plant catalog seeded",
				"path", path,
				"plant_count", len(plants),
				"backend", repoCfg.Backend(),
			)
			return nil
		},
	}
}
