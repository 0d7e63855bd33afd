package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/m-mizutani/ghbackup/pkg/cli/config"
	"github.com/m-mizutani/ghbackup/pkg/domain/model"
	"github.com/m-mizutani/ghbackup/pkg/utils/errutil"
	"github.com/m-mizutani/ghbackup/pkg/utils/logging"
	"github.com/m-mizutani/gots/slice"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

func backupCommand() *cli.Command {
	var (
		backup  config.Backup
		github  config.GitHub
		storage config.Storage
		sentry  config.Sentry
		noTable bool
	)

	backupFlags := []cli.Flag{
		&cli.BoolFlag{
			Name:        "no-table",
			Usage:       "Do not print the table of results",
			Destination: &noTable,
			Sources:     cli.EnvVars("GHBACKUP_NO_TABLE"),
		},
	}

	return &cli.Command{
		Name:    "backup",
		Aliases: []string{"b"},
		Usage:   "Back up repositories once and exit",
		Flags: slice.Flatten(
			backupFlags,
			backup.Flags(),
			github.Flags(),
			storage.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting backup",
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

			if err := runBackup(ctx, opts, c.Root().Writer, noTable); err != nil {
				errutil.HandleError(ctx, "backup failed", err)
				return err
			}

			return nil
		},
	}
}

func runBackup(ctx context.Context, opts config.Options, w io.Writer, noTable bool) error {
	cfg, err := resolveConfig(ctx, opts)
	if err != nil {
		return err
	}

	uc, closer, err := newUseCase(ctx, cfg)
	if err != nil {
		return err
	}
	defer closer()

	result, err := uc.BackupRepositories(ctx, &cfg.BackupInput)
	if err != nil {
		return err
	}

	if !noTable {
		renderResult(w, result)
	}

	if err := result.Err(); err != nil {
		return err
	}

	logging.From(ctx).Info("all repos were successfully backed up", "run", result.RunTimestamp)
	return nil
}

func renderResult(w io.Writer, result *model.BackupResult) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Repository", "Status", "Key", "Size", "Reason"})
	table.SetAutoWrapText(false)

	for _, o := range result.Outcomes {
		var size string
		if o.BackedUp() {
			size = fmt.Sprintf("%d", o.Size)
		}
		table.Append([]string{
			o.Repository.FullName(),
			string(o.Status),
			o.Key.String(),
			size,
			o.Reason,
		})
	}

	table.SetFooter([]string{"", "", "", "", result.Summary()})
	table.Render()
}
