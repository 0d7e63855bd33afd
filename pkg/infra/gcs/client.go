package gcs

import (
	"context"
	"io"
	"log/slog"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/ghbackup/pkg/domain/interfaces"
	"github.com/m-mizutani/ghbackup/pkg/domain/types"
	"github.com/m-mizutani/ghbackup/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/option"
)

const archiveContentType = "application/gzip"

// Client uploads archives to a Cloud Storage bucket. Objects are always
// encrypted at rest by Google; a KMS key name switches to CMEK.
type Client struct {
	client     *storage.Client
	bucket     types.BucketName
	kmsKeyName string
}

var _ interfaces.ObjectStorage = (*Client)(nil)

type config struct {
	kmsKeyName    string
	clientOptions []option.ClientOption
}

type Option func(*config)

func WithKMSKeyName(name string) Option {
	return func(cfg *config) {
		cfg.kmsKeyName = name
	}
}

func WithCredentialsFile(path string) Option {
	return func(cfg *config) {
		cfg.clientOptions = append(cfg.clientOptions, option.WithCredentialsFile(path))
	}
}

func WithClientOptions(opts ...option.ClientOption) Option {
	return func(cfg *config) {
		cfg.clientOptions = append(cfg.clientOptions, opts...)
	}
}

func New(ctx context.Context, bucket types.BucketName, options ...Option) (*Client, error) {
	if bucket == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "bucket name is empty")
	}

	cfg := &config{}
	for _, opt := range options {
		opt(cfg)
	}

	client, err := storage.NewClient(ctx, cfg.clientOptions...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Cloud Storage client", goerr.V("bucket", bucket))
	}

	return &Client{
		client:     client,
		bucket:     bucket,
		kmsKeyName: cfg.kmsKeyName,
	}, nil
}

// PutObject implements interfaces.ObjectStorage.
func (x *Client) PutObject(ctx context.Context, input *interfaces.PutObjectInput) error {
	storageClass := input.StorageClass
	if storageClass == "" {
		storageClass = types.DefaultStorageClass
	}

	// Cancelling the writer context discards the upload instead of saving a
	// truncated object.
	wctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w := x.client.Bucket(x.bucket.String()).Object(input.Key.String()).NewWriter(wctx)
	w.ContentType = archiveContentType
	w.StorageClass = storageClass.String()
	if x.kmsKeyName != "" {
		w.KMSKeyName = x.kmsKeyName
	}

	n, err := io.Copy(w, input.Body)
	if err != nil {
		cancel()
		return goerr.Wrap(err, "failed to write object",
			goerr.V("bucket", x.bucket),
			goerr.V("key", input.Key),
		)
	}
	if err := w.Close(); err != nil {
		return goerr.Wrap(err, "failed to close object writer",
			goerr.V("bucket", x.bucket),
			goerr.V("key", input.Key),
			goerr.V("storage_class", storageClass),
		)
	}

	logging.From(ctx).Debug("uploaded object",
		slog.String("bucket", x.bucket.String()),
		slog.String("key", input.Key.String()),
		slog.Int64("size", n),
	)

	return nil
}

func (x *Client) Close() error {
	return x.client.Close()
}
