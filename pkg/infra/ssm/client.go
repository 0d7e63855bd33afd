package ssm

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/m-mizutani/ghbackup/pkg/domain/interfaces"
	"github.com/m-mizutani/ghbackup/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Client reads SecureString parameters from AWS Systems Manager Parameter Store.
type Client struct {
	client *ssm.Client
}

var _ interfaces.SecretStore = (*Client)(nil)

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

func WithEndpoint(endpoint string) Option {
	return func(cfg *config) {
		cfg.endpoint = endpoint
	}
}

// New uses the default AWS credential chain, e.g. the execution role of a
// Lambda function.
func New(ctx context.Context, options ...Option) (*Client, error) {
	cfg := &config{}
	for _, opt := range options {
		opt(cfg)
	}

	var loadOptions []func(*awsconfig.LoadOptions) error
	if cfg.region != "" {
		loadOptions = append(loadOptions, awsconfig.WithRegion(cfg.region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOptions...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load AWS config")
	}

	client := ssm.NewFromConfig(awsCfg, func(o *ssm.Options) {
		if cfg.endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.endpoint)
		}
	})

	return &Client{client: client}, nil
}

// GetParameter implements interfaces.SecretStore.
func (x *Client) GetParameter(ctx context.Context, name string) (string, error) {
	out, err := x.client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", goerr.Wrap(err, "failed to get parameter", goerr.V("name", name))
	}
	if out.Parameter == nil || out.Parameter.Value == nil {
		return "", goerr.Wrap(types.ErrInvalidOption, "parameter has no value", goerr.V("name", name))
	}

	return *out.Parameter.Value, nil
}
