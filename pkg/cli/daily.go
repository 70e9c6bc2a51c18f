package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vatika/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

func cmdDaily() *cli.Command {
	var repoCfg config.Repository
	var catalogCfg config.Catalog

	var flags []cli.Flag
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, catalogCfg.Flags()...)

	return &cli.Command{
		Name:    "daily",
		Aliases: []string{"d"},
		Usage:   "Print the plant of the day, rotating it when the day has changed",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, repo, err := openUseCases(ctx, &repoCfg, &catalogCfg)
			if err != nil {
				return err
			}
			defer closeRepository(repo)
			store := uc.Plants

			if _, err := store.RotateDailyPlant(ctx); err != nil {
				return goerr.Wrap(err, "failed to rotate daily plant")
			}

			plant := store.DailyPlant()
			if plant == nil {
				return goerr.New("no daily plant selected")
			}

			w := outputOf(c)
			subtleColor.Fprintf(w, "Plant of the day for %s\n", store.LastRotated())
			printPlant(w, plant)
			if store.IsBookmarked(plant.ID) {
				_, _ = fmt.Fprintln(w, "★ bookmarked")
			}
			return nil
		},
	}
}
