package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vatika/pkg/cli/config"
	httpctrl "github.com/secmon-lab/vatika/pkg/controller/http"
	"github.com/secmon-lab/vatika/pkg/service/worker"
	"github.com/secmon-lab/vatika/pkg/usecase"
	"github.com/secmon-lab/vatika/pkg/utils/logging"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

func cmdServe() *cli.Command {
	var addr string
	var answerTimeout time.Duration
	var rotationInterval time.Duration
	var envCfg config.Environment
	var providersCfg config.Providers
	var repoCfg config.Repository
	var catalogCfg config.Catalog
	var sentryCfg config.Sentry

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("VATIKA_ADDR"),
			Destination: &addr,
		},
		&cli.DurationFlag{
			Name:        "answer-timeout",
			Usage:       "Maximum time a single answer request may take",
			Value:       60 * time.Second,
			Sources:     cli.EnvVars("VATIKA_ANSWER_TIMEOUT"),
			Destination: &answerTimeout,
		},
		&cli.DurationFlag{
			Name:        "rotation-interval",
			Usage:       "How often to check whether the plant of the day must rotate",
			Value:       worker.DefaultRotationInterval,
			Sources:     cli.EnvVars("VATIKA_ROTATION_INTERVAL"),
			Destination: &rotationInterval,
		},
	}

	// Add shared config flags
	flags = append(flags, envCfg.Flags()...)
	flags = append(flags, providersCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, catalogCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			env, err := envCfg.Configure()
			if err != nil {
				return err
			}

			if err := sentryCfg.Configure(); err != nil {
				return err
			}
			defer sentry.Flush(2 * time.Second)

			providers, err := providersCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure providers")
			}

			uc, repo, err := openUseCases(ctx, &repoCfg, &catalogCfg,
				usecase.WithProviders(providers...),
				usecase.WithEnvironment(env),
			)
			if err != nil {
				return err
			}
			defer closeRepository(repo)
			store := uc.Plants

			logger.Info("Configuration loaded",
				"env", env,
				"providers", uc.Answer.Providers(),
				"provider_config", slog.GroupValue(providersCfg.LogAttrs()...),
				"repository", slog.GroupValue(repoCfg.LogAttrs()...),
				"catalog", slog.GroupValue(catalogCfg.LogAttrs()...),
				"sentry", slog.GroupValue(sentryCfg.LogAttrs()...),
				"plants", len(store.Plants()),
			)

			rotationWorker := worker.NewDailyRotationWorker(store, rotationInterval)
			if err := rotationWorker.Start(ctx); err != nil {
				return goerr.Wrap(err, "failed to start daily rotation worker")
			}

			httpHandler := httpctrl.New(uc.Answer, store, httpctrl.WithAnswerTimeout(answerTimeout))
			server := &http.Server{
				Addr:              addr,
				Handler:           httpHandler,
				ReadHeaderTimeout: 30 * time.Second,
			}

			sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			eg, egCtx := errgroup.WithContext(sigCtx)
			eg.Go(func() error {
				logger.Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return goerr.Wrap(err, "failed to start server")
				}
				return nil
			})
			eg.Go(func() error {
				<-egCtx.Done()
				logger.Info("Shutting down")

				// Stop the rotation worker first
				rotationWorker.Stop()

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}
				httpHandler.Wait()

				logger.Info("Server shutdown completed")
				return nil
			})

			return eg.Wait()
		},
	}
}
