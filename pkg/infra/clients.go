package infra

import (
	"net/http"

	"github.com/m-mizutani/ghbackup/pkg/domain/interfaces"
)

type Clients struct {
	github     interfaces.GitHub
	storage    interfaces.ObjectStorage
	httpClient HTTPClient
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		httpClient: http.DefaultClient,
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHub {
	return x.github
}
func (x *Clients) ObjectStorage() interfaces.ObjectStorage {
	return x.storage
}
func (x *Clients) HTTPClient() HTTPClient {
	return x.httpClient
}

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.github = client
	}
}

func WithObjectStorage(client interfaces.ObjectStorage) Option {
	return func(x *Clients) {
		x.storage = client
	}
}

func WithHTTPClient(client HTTPClient) Option {
	return func(x *Clients) {
		x.httpClient = client
	}
}
