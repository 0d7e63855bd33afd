package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHub ObjectStorage SecretStore CredentialSource

import (
	"context"
	"io"
	"net/url"

	"github.com/m-mizutani/ghbackup/pkg/domain/model"
	"github.com/m-mizutani/ghbackup/pkg/domain/types"
)

type GitHub interface {
	// ListOrgRepos returns every repository of the organization, all pages.
	ListOrgRepos(ctx context.Context, org string) ([]*model.Repository, error)
	// ListUserRepos returns repositories owned by the authenticated user, all pages.
	ListUserRepos(ctx context.Context) ([]*model.Repository, error)
	HasBranch(ctx context.Context, owner, repo string) (bool, error)
	GetArchiveURL(ctx context.Context, input *GetArchiveURLInput) (*url.URL, error)
}

type GetArchiveURLInput struct {
	Owner string
	Repo  string
	// Ref is empty for the default branch
	Ref string
}

type ObjectStorage interface {
	PutObject(ctx context.Context, input *PutObjectInput) error
}

type PutObjectInput struct {
	Key          types.ObjectKey
	Body         io.Reader
	Size         int64
	StorageClass types.StorageClass
}

type SecretStore interface {
	// GetParameter returns the decrypted value of the named parameter.
	GetParameter(ctx context.Context, name string) (string, error)
}

// CredentialSource resolves the GitHub access token for a run.
type CredentialSource interface {
	GitHubToken(ctx context.Context) (types.GitHubAccessToken, error)
}
