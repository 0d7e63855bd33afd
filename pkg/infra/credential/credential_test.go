package credential_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/ghbackup/pkg/domain/mock"
	"github.com/m-mizutani/ghbackup/pkg/domain/types"
	"github.com/m-mizutani/ghbackup/pkg/infra/credential"
	"github.com/m-mizutani/gt"
)

func TestStatic(t *testing.T) {
	token := gt.R1(credential.Static("ghp_env").GitHubToken(context.Background())).NoError(t)
	gt.V(t, token).Equal(types.GitHubAccessToken("ghp_env"))
}

func TestSecretStore(t *testing.T) {
	ctx := context.Background()

	t.Run("fetch from store", func(t *testing.T) {
		store := &mock.SecretStoreMock{
			GetParameterFunc: func(ctx context.Context, name string) (string, error) {
				gt.V(t, name).Equal("GITHUB_PAT")
				return "ghp_ssm", nil
			},
		}

		token := gt.R1(credential.NewSecretStore(store, "GITHUB_PAT").GitHubToken(ctx)).NoError(t)
		gt.V(t, token).Equal(types.GitHubAccessToken("ghp_ssm"))
		gt.V(t, len(store.GetParameterCalls())).Equal(1)
	})

	t.Run("store error", func(t *testing.T) {
		store := &mock.SecretStoreMock{
			GetParameterFunc: func(ctx context.Context, name string) (string, error) {
				return "", errors.New("access denied")
			},
		}

		_, err := credential.NewSecretStore(store, "GITHUB_PAT").GitHubToken(ctx)
		gt.Error(t, err)
	})
}
