package s3

import (
	"context"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/m-mizutani/ghbackup/pkg/domain/interfaces"
	"github.com/m-mizutani/ghbackup/pkg/domain/types"
	"github.com/m-mizutani/ghbackup/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const (
	DefaultRegion = "us-east-1"

	archiveContentType = "application/gzip"
)

// Client uploads archives to a single S3 bucket. Every object is written with
// SSE-S3 (AES256) server-side encryption.
type Client struct {
	uploader *manager.Uploader
	bucket   types.BucketName
}

var _ interfaces.ObjectStorage = (*Client)(nil)

type config struct {
	region   string
	endpoint string
}

type Option func(*config)

func WithRegion(region string) Option {
	return func(cfg *config) {
		cfg.region = region
	}
}

// WithEndpoint points the client at an S3 compatible endpoint. Path-style
// addressing is enabled together with it.
func WithEndpoint(endpoint string) Option {
	return func(cfg *config) {
		cfg.endpoint = endpoint
	}
}

func New(ctx context.Context, bucket types.BucketName, keyID types.AWSAccessKeyID, secret types.AWSSecretAccessKey, options ...Option) (*Client, error) {
	if bucket == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "bucket name is empty")
	}
	if keyID == "" || secret == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "S3 access key is empty")
	}

	cfg := &config{region: DefaultRegion}
	for _, opt := range options {
		opt(cfg)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(string(keyID), string(secret), ""),
		),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load AWS config", goerr.V("region", cfg.region))
	}

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.endpoint)
			o.UsePathStyle = true
		}
	})

	return &Client{
		uploader: manager.NewUploader(s3Client),
		bucket:   bucket,
	}, nil
}

// PutObject implements interfaces.ObjectStorage. The body is streamed by the
// upload manager, large archives are sent as multipart uploads.
func (x *Client) PutObject(ctx context.Context, input *interfaces.PutObjectInput) error {
	storageClass := input.StorageClass
	if storageClass == "" {
		storageClass = types.DefaultStorageClass
	}

	out, err := x.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:               aws.String(x.bucket.String()),
		Key:                  aws.String(input.Key.String()),
		Body:                 input.Body,
		ContentType:          aws.String(archiveContentType),
		StorageClass:         s3types.StorageClass(storageClass),
		ServerSideEncryption: s3types.ServerSideEncryptionAes256,
	})
	if err != nil {
		return goerr.Wrap(err, "failed to upload object",
			goerr.V("bucket", x.bucket),
			goerr.V("key", input.Key),
			goerr.V("storage_class", storageClass),
		)
	}

	logging.From(ctx).Debug("uploaded object",
		slog.String("bucket", x.bucket.String()),
		slog.String("key", input.Key.String()),
		slog.String("location", out.Location),
	)

	return nil
}
