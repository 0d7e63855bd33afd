package config

import (
	"log/slog"

	"github.com/m-mizutani/ghbackup/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

type Storage struct {
	backend         string
	bucket          string
	accessKeyID     string
	secretAccessKey types.AWSSecretAccessKey `masq:"secret"`
	storageClass    string
	region          string
	endpoint        string

	gcsCredentialsFile string
	gcsKMSKeyName      string
}

func (x *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        KeyStorageBackend,
			Usage:       "Object storage backend [s3|gcs]",
			Category:    "Storage",
			Value:       string(types.StorageBackendS3),
			Destination: &x.backend,
			Sources:     cli.EnvVars(EnvVars[KeyStorageBackend]),
		},
		&cli.StringFlag{
			Name:        KeyS3BucketName,
			Usage:       "Destination bucket name",
			Category:    "Storage",
			Destination: &x.bucket,
			Sources:     cli.EnvVars(EnvVars[KeyS3BucketName]),
		},
		&cli.StringFlag{
			Name:        KeyS3AccessKeyID,
			Usage:       "AWS access key ID for S3",
			Category:    "Storage",
			Destination: &x.accessKeyID,
			Sources:     cli.EnvVars(EnvVars[KeyS3AccessKeyID]),
		},
		&cli.StringFlag{
			Name:        KeyS3AccessSecretKey,
			Usage:       "AWS secret access key for S3",
			Category:    "Storage",
			Destination: (*string)(&x.secretAccessKey),
			Sources:     cli.EnvVars(EnvVars[KeyS3AccessSecretKey]),
		},
		&cli.StringFlag{
			Name:        KeyS3StorageClass,
			Usage:       "Storage class of uploaded objects",
			Category:    "Storage",
			Value:       string(types.DefaultStorageClass),
			Destination: &x.storageClass,
			Sources:     cli.EnvVars(EnvVars[KeyS3StorageClass]),
		},
		&cli.StringFlag{
			Name:        KeyAWSRegion,
			Usage:       "AWS region of the bucket",
			Category:    "Storage",
			Value:       defaultAWSRegion,
			Destination: &x.region,
			Sources:     cli.EnvVars(EnvVars[KeyAWSRegion]),
		},
		&cli.StringFlag{
			Name:        KeyS3Endpoint,
			Usage:       "Endpoint of S3 compatible storage",
			Category:    "Storage",
			Destination: &x.endpoint,
			Sources:     cli.EnvVars(EnvVars[KeyS3Endpoint]),
		},
		&cli.StringFlag{
			Name:        KeyGCSCredentialsFile,
			Usage:       "Service account credentials file for GCS",
			Category:    "Storage",
			Destination: &x.gcsCredentialsFile,
			Sources:     cli.EnvVars(EnvVars[KeyGCSCredentialsFile]),
		},
		&cli.StringFlag{
			Name:        KeyGCSKMSKeyName,
			Usage:       "Cloud KMS key name to encrypt GCS objects",
			Category:    "Storage",
			Destination: &x.gcsKMSKeyName,
			Sources:     cli.EnvVars(EnvVars[KeyGCSKMSKeyName]),
		},
	}
}

func (x *Storage) SetOptions(opts Options) {
	opts[KeyStorageBackend] = x.backend
	opts[KeyS3BucketName] = x.bucket
	opts[KeyS3AccessKeyID] = x.accessKeyID
	opts[KeyS3AccessSecretKey] = string(x.secretAccessKey)
	opts[KeyS3StorageClass] = x.storageClass
	opts[KeyAWSRegion] = x.region
	opts[KeyS3Endpoint] = x.endpoint
	opts[KeyGCSCredentialsFile] = x.gcsCredentialsFile
	opts[KeyGCSKMSKeyName] = x.gcsKMSKeyName
}

func (x Storage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("backend", x.backend),
		slog.String("bucket", x.bucket),
		slog.String("storageClass", x.storageClass),
		slog.String("region", x.region),
		slog.String("endpoint", x.endpoint),
		slog.Int("secretAccessKey.len", len(x.secretAccessKey)),
	)
}
