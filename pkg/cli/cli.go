package cli

import (
	"context"
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/m-mizutani/ghbackup/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// ConfigureLogging is exported for testing purposes
var ConfigureLogging = logging.Configure

type CLI struct {
	envFiles []string
}

type Option func(*CLI)

// WithEnvFiles replaces the dotenv files loaded before parsing flags.
func WithEnvFiles(files ...string) Option {
	return func(x *CLI) {
		x.envFiles = files
	}
}

func New(options ...Option) *CLI {
	x := &CLI{
		envFiles: []string{".env"},
	}
	for _, opt := range options {
		opt(x)
	}
	return x
}

// loadEnvFiles sets variables from dotenv files that exist. Variables already
// in the environment are kept.
func (x *CLI) loadEnvFiles() error {
	for _, file := range x.envFiles {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return goerr.Wrap(err, "failed to load env file", goerr.V("file", file))
		}
	}
	return nil
}

func (x *CLI) Run(argv []string) error {
	var (
		logLevel  string
		logFormat string
		logOutput string
	)

	if err := x.loadEnvFiles(); err != nil {
		logging.Default().Error("fatal error", "error", err)
		return err
	}

	app := &cli.Command{
		Name:  "ghbackup",
		Usage: "Back up GitHub repositories to object storage",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "Log level [debug|info|warn|error]",
				Aliases:     []string{"l"},
				Sources:     cli.EnvVars("GHBACKUP_LOG_LEVEL"),
				Destination: &logLevel,
				Value:       "info",
			},
			&cli.StringFlag{
				Name:        "log-format",
				Usage:       "Log format [text|json]",
				Aliases:     []string{"f"},
				Sources:     cli.EnvVars("GHBACKUP_LOG_FORMAT"),
				Destination: &logFormat,
				Value:       "text",
			},
			&cli.StringFlag{
				Name:        "log-output",
				Usage:       "Log output [-|stdout|stderr|<file>]",
				Aliases:     []string{"o"},
				Sources:     cli.EnvVars("GHBACKUP_LOG_OUTPUT"),
				Destination: &logOutput,
				Value:       "-",
			},
		},
		Commands: []*cli.Command{
			backupCommand(),
			serveCommand(),
			lambdaCommand(),
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := ConfigureLogging(logFormat, logLevel, logOutput); err != nil {
				return ctx, err
			}
			return ctx, nil
		},
	}

	if err := app.Run(context.Background(), argv); err != nil {
		logging.Default().Error("fatal error", "error", err)
		return err
	}

	return nil
}
