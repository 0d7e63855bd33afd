package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ghbackup/pkg/cli/config"
	"github.com/m-mizutani/ghbackup/pkg/domain/interfaces"
	"github.com/m-mizutani/ghbackup/pkg/domain/model"
	"github.com/m-mizutani/ghbackup/pkg/domain/types"
	"github.com/m-mizutani/ghbackup/pkg/infra"
	"github.com/m-mizutani/ghbackup/pkg/infra/credential"
	"github.com/m-mizutani/ghbackup/pkg/infra/gcs"
	"github.com/m-mizutani/ghbackup/pkg/infra/github"
	"github.com/m-mizutani/ghbackup/pkg/infra/s3"
	"github.com/m-mizutani/ghbackup/pkg/infra/ssm"
	"github.com/m-mizutani/ghbackup/pkg/usecase"
	"github.com/m-mizutani/ghbackup/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// credentialSource reads the token from SSM only when a parameter name is
// given and no token is set directly.
func credentialSource(ctx context.Context, opts config.Options) (interfaces.CredentialSource, error) {
	name := opts[config.KeyGitHubTokenParameter]
	if name == "" || opts[config.KeyGitHubAccessToken] != "" {
		return credential.Static(opts[config.KeyGitHubAccessToken]), nil
	}

	var options []ssm.Option
	if region := opts[config.KeyAWSRegion]; region != "" {
		options = append(options, ssm.WithRegion(region))
	}

	client, err := ssm.New(ctx, options...)
	if err != nil {
		return nil, err
	}

	return credential.NewSecretStore(client, name), nil
}

func resolveConfig(ctx context.Context, opts config.Options) (*model.BackupConfig, error) {
	src, err := credentialSource(ctx, opts)
	if err != nil {
		return nil, err
	}

	return resolveConfigWith(ctx, src, opts)
}

// resolveConfigWith sets the token given by src into opts and resolves them.
func resolveConfigWith(ctx context.Context, src interfaces.CredentialSource, opts config.Options) (*model.BackupConfig, error) {
	token, err := src.GitHubToken(ctx)
	if err != nil {
		return nil, err
	}
	opts[config.KeyGitHubAccessToken] = string(token)

	cfg, err := config.Resolve(opts)
	if err != nil {
		return nil, err
	}

	logging.From(ctx).Info("configuration resolved",
		slog.Any("input", cfg.BackupInput),
		slog.Any("storage", cfg.Storage),
		slog.Bool("github_app", cfg.GitHub.UseApp()),
	)

	return cfg, nil
}

func newGitHubClient(cfg model.GitHubConfig) (*github.Client, error) {
	var options []github.Option
	if cfg.APIURL != "" {
		options = append(options, github.WithAPIURL(cfg.APIURL))
	}

	if cfg.UseApp() {
		return github.NewWithApp(cfg.AppID, cfg.AppInstallID, cfg.AppPrivateKey, options...)
	}
	return github.NewWithToken(cfg.AccessToken, options...)
}

// newObjectStorage returns the storage client of the configured backend and
// a function to release it.
func newObjectStorage(ctx context.Context, cfg model.StorageConfig) (interfaces.ObjectStorage, func(), error) {
	switch cfg.Backend {
	case types.StorageBackendS3:
		var options []s3.Option
		if cfg.Region != "" {
			options = append(options, s3.WithRegion(cfg.Region))
		}
		if cfg.Endpoint != "" {
			options = append(options, s3.WithEndpoint(cfg.Endpoint))
		}

		client, err := s3.New(ctx, cfg.Bucket, cfg.AccessKeyID, cfg.SecretAccessKey, options...)
		if err != nil {
			return nil, nil, err
		}
		return client, func() {}, nil

	case types.StorageBackendGCS:
		var options []gcs.Option
		if cfg.GCSCredentialsFile != "" {
			options = append(options, gcs.WithCredentialsFile(cfg.GCSCredentialsFile))
		}
		if cfg.GCSKMSKeyName != "" {
			options = append(options, gcs.WithKMSKeyName(cfg.GCSKMSKeyName))
		}

		client, err := gcs.New(ctx, cfg.Bucket, options...)
		if err != nil {
			return nil, nil, err
		}
		return client, func() {
			if err := client.Close(); err != nil {
				logging.From(ctx).Warn("failed to close GCS client", "error", err)
			}
		}, nil

	default:
		return nil, nil, goerr.Wrap(types.ErrInvalidOption, "unsupported storage backend",
			goerr.V("backend", cfg.Backend))
	}
}

func newUseCase(ctx context.Context, cfg *model.BackupConfig) (*usecase.UseCase, func(), error) {
	ghClient, err := newGitHubClient(cfg.GitHub)
	if err != nil {
		return nil, nil, err
	}

	storage, closeStorage, err := newObjectStorage(ctx, cfg.Storage)
	if err != nil {
		return nil, nil, err
	}

	clients := infra.New(
		infra.WithGitHub(ghClient),
		infra.WithObjectStorage(storage),
	)

	return usecase.New(clients), closeStorage, nil
}
