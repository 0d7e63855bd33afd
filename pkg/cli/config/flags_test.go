package config_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/ghbackup/pkg/cli/config"
	"github.com/m-mizutani/ghbackup/pkg/domain/model"
	"github.com/m-mizutani/ghbackup/pkg/domain/types"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/gt"
	"github.com/urfave/cli/v3"
)

func parseFlags(t *testing.T, args ...string) config.Options {
	var (
		backup  config.Backup
		github  config.GitHub
		storage config.Storage
		opts    = config.Options{}
	)

	cmd := &cli.Command{
		Name:  "test",
		Flags: slice.Flatten(backup.Flags(), github.Flags(), storage.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			backup.SetOptions(opts)
			github.SetOptions(opts)
			storage.SetOptions(opts)
			return nil
		},
	}
	gt.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...)))
	return opts
}

func TestFlagsToOptions(t *testing.T) {
	t.Run("flag values", func(t *testing.T) {
		opts := parseFlags(t,
			"--github-access-token", "ghp_xxx",
			"--s3-bucket-name", "backup-bucket",
			"--s3-access-key-id", "AKIAXXX",
			"--s3-access-secret-key", "secret",
			"--backup-mode", "organisation",
			"--github-organisation", "acme",
			"--concurrency", "4",
		)

		cfg := gt.R1(config.Resolve(opts)).NoError(t)
		gt.V(t, cfg.Mode).Equal(model.ModeOrganisation)
		gt.V(t, cfg.Organisation).Equal("acme")
		gt.V(t, cfg.Concurrency).Equal(4)
		gt.True(t, cfg.CheckEmpty)
		gt.V(t, cfg.StorageClass).Equal(types.DefaultStorageClass)
	})

	t.Run("environment variables", func(t *testing.T) {
		t.Setenv("GITHUB_ACCESS_TOKEN", "ghp_env")
		t.Setenv("AWS_S3_BUCKET_NAME", "env-bucket")
		t.Setenv("AWS_S3_ACCESS_KEY_ID", "AKIAENV")
		t.Setenv("AWS_S3_ACCESS_SECRET_KEY", "env-secret")
		t.Setenv("AWS_S3_STORAGE_CLASS", "ONEZONE_IA")
		t.Setenv("CHECK_EMPTY_REPOS", "false")

		cfg := gt.R1(config.Resolve(parseFlags(t))).NoError(t)
		gt.V(t, cfg.GitHub.AccessToken).Equal(types.GitHubAccessToken("ghp_env"))
		gt.V(t, cfg.Storage.Bucket).Equal(types.BucketName("env-bucket"))
		gt.V(t, cfg.StorageClass).Equal(types.StorageClass("ONEZONE_IA"))
		gt.False(t, cfg.CheckEmpty)
	})

	t.Run("no options", func(t *testing.T) {
		t.Setenv("GITHUB_ACCESS_TOKEN", "")
		_, err := config.Resolve(parseFlags(t))
		gt.V(t, missingOption(t, err)).Equal(config.KeyGitHubAccessToken)
	})
}
