package model

import (
	"log/slog"

	"github.com/m-mizutani/ghbackup/pkg/domain/types"
)

type Mode string

const (
	ModeUser         Mode = "user"
	ModeOrganisation Mode = "organisation"
)

// BackupInput drives one run of the orchestrator.
type BackupInput struct {
	Mode         Mode
	Organisation string
	StorageClass types.StorageClass
	CheckEmpty   bool
	// Concurrency limits in-flight repositories. Zero means one goroutine per
	// repository.
	Concurrency int
}

func (x BackupInput) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("mode", string(x.Mode)),
		slog.String("organisation", x.Organisation),
		slog.String("storage_class", string(x.StorageClass)),
		slog.Bool("check_empty", x.CheckEmpty),
		slog.Int("concurrency", x.Concurrency),
	)
}

// BackupConfig is the resolved and validated configuration of a run.
type BackupConfig struct {
	BackupInput

	GitHub  GitHubConfig
	Storage StorageConfig
}

type GitHubConfig struct {
	AccessToken types.GitHubAccessToken `masq:"secret"`
	APIURL      string

	AppID         types.GitHubAppID
	AppPrivateKey types.GitHubAppPrivateKey `masq:"secret"`
	AppInstallID  types.GitHubAppInstallID
}

// UseApp reports whether GitHub App authentication is configured.
func (x GitHubConfig) UseApp() bool {
	return x.AppID != 0 && x.AppPrivateKey != "" && x.AppInstallID != 0
}

type StorageConfig struct {
	Backend types.StorageBackend
	Bucket  types.BucketName

	AccessKeyID     types.AWSAccessKeyID
	SecretAccessKey types.AWSSecretAccessKey `masq:"secret"`
	Region          string
	Endpoint        string

	GCSCredentialsFile string
	GCSKMSKeyName      string
}

func (x StorageConfig) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("backend", string(x.Backend)),
		slog.String("bucket", string(x.Bucket)),
		slog.String("region", x.Region),
		slog.String("endpoint", x.Endpoint),
		slog.Int("secret_access_key.len", len(x.SecretAccessKey)),
	)
}
