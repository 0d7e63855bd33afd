package config

import (
	"log/slog"
	"strconv"

	"github.com/urfave/cli/v3"
)

// Backup holds run options. Credentials live in GitHub and Storage.
type Backup struct {
	mode         string
	organisation string
	checkEmpty   bool
	concurrency  int64
}

func (x *Backup) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        KeyBackupMode,
			Usage:       "Backup mode [user|organisation]",
			Category:    "Backup",
			Value:       "user",
			Destination: &x.mode,
			Sources:     cli.EnvVars(EnvVars[KeyBackupMode]),
		},
		&cli.StringFlag{
			Name:        KeyGitHubOrganisation,
			Usage:       "GitHub organisation to back up in organisation mode",
			Category:    "Backup",
			Destination: &x.organisation,
			Sources:     cli.EnvVars(EnvVars[KeyGitHubOrganisation]),
		},
		&cli.BoolFlag{
			Name:        KeyCheckEmptyRepos,
			Usage:       "Skip repositories without any branch before downloading",
			Category:    "Backup",
			Value:       true,
			Destination: &x.checkEmpty,
			Sources:     cli.EnvVars(EnvVars[KeyCheckEmptyRepos]),
		},
		&cli.Int64Flag{
			Name:        KeyConcurrency,
			Usage:       "Max number of repositories processed at once, 0 means no limit",
			Category:    "Backup",
			Destination: &x.concurrency,
			Sources:     cli.EnvVars(EnvVars[KeyConcurrency]),
		},
	}
}

func (x *Backup) SetOptions(opts Options) {
	opts[KeyBackupMode] = x.mode
	opts[KeyGitHubOrganisation] = x.organisation
	opts[KeyCheckEmptyRepos] = strconv.FormatBool(x.checkEmpty)
	opts[KeyConcurrency] = strconv.FormatInt(x.concurrency, 10)
}

func (x Backup) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("mode", x.mode),
		slog.String("organisation", x.organisation),
		slog.Bool("checkEmpty", x.checkEmpty),
		slog.Int64("concurrency", x.concurrency),
	)
}
