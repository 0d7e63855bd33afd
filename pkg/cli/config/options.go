package config

import (
	"strconv"
	"strings"

	"github.com/m-mizutani/ghbackup/pkg/domain/model"
	"github.com/m-mizutani/ghbackup/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Options holds raw option values keyed by option name. An empty value is
// treated the same as an absent key.
type Options map[string]string

const (
	KeyGitHubAccessToken    = "github-access-token"
	KeyGitHubTokenParameter = "github-token-parameter"
	KeyGitHubAPIURL         = "github-api-url"
	KeyGitHubOrganisation   = "github-organisation"
	KeyGitHubAppID          = "github-app-id"
	KeyGitHubAppPrivateKey  = "github-app-private-key"
	KeyGitHubAppInstallID   = "github-app-installation-id"

	KeyStorageBackend     = "storage-backend"
	KeyS3BucketName       = "s3-bucket-name"
	KeyS3AccessKeyID      = "s3-access-key-id"
	KeyS3AccessSecretKey  = "s3-access-secret-key"
	KeyS3StorageClass     = "s3-storage-class"
	KeyS3Endpoint         = "s3-endpoint"
	KeyAWSRegion          = "aws-region"
	KeyGCSCredentialsFile = "gcs-credentials-file"
	KeyGCSKMSKeyName      = "gcs-kms-key-name"

	KeyBackupMode      = "backup-mode"
	KeyCheckEmptyRepos = "check-empty-repos"
	KeyConcurrency     = "concurrency"
)

const defaultAWSRegion = "us-east-1"

// EnvVars maps option names to the environment variables they are read from.
var EnvVars = map[string]string{
	KeyGitHubAccessToken:    "GITHUB_ACCESS_TOKEN",
	KeyGitHubTokenParameter: "GITHUB_TOKEN_PARAMETER",
	KeyGitHubAPIURL:         "GITHUB_API_URL",
	KeyGitHubOrganisation:   "GITHUB_ORGANISATION",
	KeyGitHubAppID:          "GITHUB_APP_ID",
	KeyGitHubAppPrivateKey:  "GITHUB_APP_PRIVATE_KEY",
	KeyGitHubAppInstallID:   "GITHUB_APP_INSTALLATION_ID",

	KeyStorageBackend:     "STORAGE_BACKEND",
	KeyS3BucketName:       "AWS_S3_BUCKET_NAME",
	KeyS3AccessKeyID:      "AWS_S3_ACCESS_KEY_ID",
	KeyS3AccessSecretKey:  "AWS_S3_ACCESS_SECRET_KEY",
	KeyS3StorageClass:     "AWS_S3_STORAGE_CLASS",
	KeyS3Endpoint:         "AWS_S3_ENDPOINT",
	KeyAWSRegion:          "AWS_REGION",
	KeyGCSCredentialsFile: "GCS_CREDENTIALS_FILE",
	KeyGCSKMSKeyName:      "GCS_KMS_KEY_NAME",

	KeyBackupMode:      "BACKUP_MODE",
	KeyCheckEmptyRepos: "CHECK_EMPTY_REPOS",
	KeyConcurrency:     "BACKUP_CONCURRENCY",
}

// FromEnv collects every known option from lookup, typically os.LookupEnv.
func FromEnv(lookup func(string) (string, bool)) Options {
	opts := Options{}
	for key, env := range EnvVars {
		if v, ok := lookup(env); ok && v != "" {
			opts[key] = v
		}
	}
	return opts
}

func (x Options) get(key string) string {
	return strings.TrimSpace(x[key])
}

func (x Options) require(key string) (string, error) {
	v := x.get(key)
	if v == "" {
		return "", goerr.Wrap(types.ErrMissingOption, "required option is not set",
			goerr.V("option", key),
			goerr.V("env", EnvVars[key]),
		)
	}
	return v, nil
}

// ParseMode returns organisation mode for "organisation" or "organization"
// in any case, and user mode for anything else.
func ParseMode(v string) model.Mode {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "organisation", "organization":
		return model.ModeOrganisation
	default:
		return model.ModeUser
	}
}

// Resolve validates opts and builds the configuration of a run. The first
// missing required option is reported as types.ErrMissingOption.
func Resolve(opts Options) (*model.BackupConfig, error) {
	cfg := &model.BackupConfig{
		BackupInput: model.BackupInput{
			Mode:         ParseMode(opts.get(KeyBackupMode)),
			Organisation: opts.get(KeyGitHubOrganisation),
			StorageClass: types.DefaultStorageClass,
			CheckEmpty:   true,
		},
	}

	if err := resolveGitHub(opts, cfg); err != nil {
		return nil, err
	}
	if err := resolveStorage(opts, cfg); err != nil {
		return nil, err
	}

	if cfg.Mode == model.ModeOrganisation && cfg.Organisation == "" {
		if _, err := opts.require(KeyGitHubOrganisation); err != nil {
			return nil, err
		}
	}

	if v := opts.get(KeyS3StorageClass); v != "" {
		cfg.StorageClass = types.StorageClass(v)
	}

	if v := opts.get(KeyCheckEmptyRepos); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, goerr.Wrap(types.ErrInvalidOption, "check-empty-repos must be boolean",
				goerr.V("value", v))
		}
		cfg.CheckEmpty = b
	}

	if v := opts.get(KeyConcurrency); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, goerr.Wrap(types.ErrInvalidOption, "concurrency must be zero or a positive integer",
				goerr.V("value", v))
		}
		cfg.Concurrency = n
	}

	return cfg, nil
}

func resolveGitHub(opts Options, cfg *model.BackupConfig) error {
	cfg.GitHub.APIURL = opts.get(KeyGitHubAPIURL)

	if opts.get(KeyGitHubAppID) == "" {
		token, err := opts.require(KeyGitHubAccessToken)
		if err != nil {
			return err
		}
		cfg.GitHub.AccessToken = types.GitHubAccessToken(token)
		return nil
	}

	// GitHub App installation tokens can not list repositories of a user
	if cfg.Mode != model.ModeOrganisation {
		return goerr.Wrap(types.ErrInvalidOption, "GitHub App authentication is available only in organisation mode")
	}

	appID, err := parseID(opts, KeyGitHubAppID)
	if err != nil {
		return err
	}
	privateKey, err := opts.require(KeyGitHubAppPrivateKey)
	if err != nil {
		return err
	}
	installID, err := parseID(opts, KeyGitHubAppInstallID)
	if err != nil {
		return err
	}

	cfg.GitHub.AppID = types.GitHubAppID(appID)
	cfg.GitHub.AppPrivateKey = types.GitHubAppPrivateKey(privateKey)
	cfg.GitHub.AppInstallID = types.GitHubAppInstallID(installID)
	return nil
}

func parseID(opts Options, key string) (int64, error) {
	v, err := opts.require(key)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		return 0, goerr.Wrap(types.ErrInvalidOption, "option must be a positive integer",
			goerr.V("option", key),
			goerr.V("value", v),
		)
	}
	return id, nil
}

func resolveStorage(opts Options, cfg *model.BackupConfig) error {
	backend := types.StorageBackend(strings.ToLower(opts.get(KeyStorageBackend)))
	if backend == "" {
		backend = types.StorageBackendS3
	}

	bucket, err := opts.require(KeyS3BucketName)
	if err != nil {
		return err
	}

	cfg.Storage = model.StorageConfig{
		Backend: backend,
		Bucket:  types.BucketName(bucket),
	}

	switch backend {
	case types.StorageBackendS3:
		keyID, err := opts.require(KeyS3AccessKeyID)
		if err != nil {
			return err
		}
		secret, err := opts.require(KeyS3AccessSecretKey)
		if err != nil {
			return err
		}

		cfg.Storage.AccessKeyID = types.AWSAccessKeyID(keyID)
		cfg.Storage.SecretAccessKey = types.AWSSecretAccessKey(secret)
		cfg.Storage.Region = opts.get(KeyAWSRegion)
		if cfg.Storage.Region == "" {
			cfg.Storage.Region = defaultAWSRegion
		}
		cfg.Storage.Endpoint = opts.get(KeyS3Endpoint)

	case types.StorageBackendGCS:
		cfg.Storage.GCSCredentialsFile = opts.get(KeyGCSCredentialsFile)
		cfg.Storage.GCSKMSKeyName = opts.get(KeyGCSKMSKeyName)

	default:
		return goerr.Wrap(types.ErrInvalidOption, "unsupported storage backend",
			goerr.V("backend", backend))
	}

	return nil
}
