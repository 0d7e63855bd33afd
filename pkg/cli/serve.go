package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ghbackup/pkg/cli/config"
	"github.com/m-mizutani/ghbackup/pkg/controller/server"
	"github.com/m-mizutani/ghbackup/pkg/utils/errutil"
	"github.com/m-mizutani/ghbackup/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr         string
		writeTimeout time.Duration

		backup  config.Backup
		github  config.GitHub
		storage config.Storage
		sentry  config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("GHBACKUP_ADDR"),
			Destination: &addr,
		},
		&cli.DurationFlag{
			Name:        "write-timeout",
			Usage:       "HTTP write timeout, must cover a whole backup run",
			Value:       time.Hour,
			Sources:     cli.EnvVars("GHBACKUP_WRITE_TIMEOUT"),
			Destination: &writeTimeout,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Run backup on POST /backup",
		Flags: slice.Flatten(
			serveFlags,
			backup.Flags(),
			github.Flags(),
			storage.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				"Addr", addr,
				"Backup", backup,
				"GitHub", github,
				"Storage", storage,
				"Sentry", &sentry,
			)

			flush, err := sentry.Configure(ctx)
			if err != nil {
				return err
			}
			defer flush()

			opts := config.Options{}
			backup.SetOptions(opts)
			github.SetOptions(opts)
			storage.SetOptions(opts)

			cfg, err := resolveConfig(ctx, opts)
			if err != nil {
				errutil.HandleError(ctx, "failed to resolve config", err)
				return err
			}

			uc, closer, err := newUseCase(ctx, cfg)
			if err != nil {
				errutil.HandleError(ctx, "failed to set up backup", err)
				return err
			}
			defer closer()

			s := server.New(uc, &cfg.BackupInput)

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      writeTimeout,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				errutil.HandleError(ctx, "http server stopped", err)
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					err = goerr.Wrap(err, "failed to shutdown server")
					errutil.HandleError(ctx, "shutdown failed", err)
					return err
				}
			}

			return nil
		},
	}
}
