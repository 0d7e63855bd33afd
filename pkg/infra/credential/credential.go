package credential

import (
	"context"

	"github.com/m-mizutani/ghbackup/pkg/domain/interfaces"
	"github.com/m-mizutani/ghbackup/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Static returns a token given up front, e.g. from the environment.
type Static types.GitHubAccessToken

var _ interfaces.CredentialSource = Static("")

func (x Static) GitHubToken(ctx context.Context) (types.GitHubAccessToken, error) {
	return types.GitHubAccessToken(x), nil
}

// SecretStore reads the token from a named secret store parameter.
type SecretStore struct {
	store interfaces.SecretStore
	name  string
}

var _ interfaces.CredentialSource = (*SecretStore)(nil)

func NewSecretStore(store interfaces.SecretStore, name string) *SecretStore {
	return &SecretStore{store: store, name: name}
}

func (x *SecretStore) GitHubToken(ctx context.Context) (types.GitHubAccessToken, error) {
	value, err := x.store.GetParameter(ctx, x.name)
	if err != nil {
		return "", goerr.Wrap(err, "failed to fetch GitHub access token", goerr.V("parameter", x.name))
	}
	return types.GitHubAccessToken(value), nil
}
