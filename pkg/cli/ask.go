package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vatika/pkg/cli/config"
	"github.com/secmon-lab/vatika/pkg/domain/model"
	"github.com/secmon-lab/vatika/pkg/domain/types"
	"github.com/secmon-lab/vatika/pkg/usecase"
	"github.com/secmon-lab/vatika/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdAsk() *cli.Command {
	var req model.AnswerRequest
	var kind string
	var envCfg config.Environment
	var providersCfg config.Providers

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "plant-name",
			Aliases:     []string{"n"},
			Usage:       "Common name of the plant",
			Destination: &req.PlantName,
		},
		&cli.StringFlag{
			Name:        "scientific-name",
			Aliases:     []string{"s"},
			Usage:       "Scientific name of the plant",
			Destination: &req.ScientificName,
		},
		&cli.StringFlag{
			Name:        "question",
			Aliases:     []string{"q"},
			Usage:       "Question about the plant (required for qa)",
			Destination: &req.Question,
		},
		&cli.StringFlag{
			Name:        "type",
			Aliases:     []string{"t"},
			Usage:       "Answer type (qa or insights)",
			Value:       types.AnswerKindQA.String(),
			Destination: &kind,
		},
	}
	flags = append(flags, envCfg.Flags()...)
	flags = append(flags, providersCfg.Flags()...)

	return &cli.Command{
		Name:    "ask",
		Aliases: []string{"a"},
		Usage:   "Ask the AI providers about a plant and print the answer",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			env, err := envCfg.Configure()
			if err != nil {
				return err
			}
			logging.Default().Debug("ask configuration", "env", slog.GroupValue(envCfg.LogAttrs()...))

			providers, err := providersCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure providers")
			}

			req.Kind = types.AnswerKind(kind)
			uc := usecase.NewAnswerUseCase(usecase.NewResolver(providers...), env)
			envelope := uc.Answer(ctx, &req)

			return printAnswer(outputOf(c), envelope)
		},
	}
}

func printAnswer(w io.Writer, envelope *model.AnswerEnvelope) error {
	if envelope.Succeeded() {
		_, _ = io.WriteString(w, envelope.Data+"\n")
		return nil
	}

	f := envelope.Failure
	errorColor.Fprintf(w, "%s\n", f.Error)
	if f.Details != "" {
		subtleColor.Fprintf(w, "%s\n", f.Details)
	}
	return goerr.New(f.Error, goerr.V("kind", f.Kind), goerr.V("details", f.Details))
}
