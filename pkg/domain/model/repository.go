package model

import (
	"github.com/m-mizutani/ghbackup/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Repository identifies a GitHub repository to be backed up.
type Repository struct {
	Owner         string
	Name          string
	DefaultBranch string
}

// FullName returns "owner/name".
func (x Repository) FullName() string {
	return x.Owner + "/" + x.Name
}

func (x Repository) Validate() error {
	if x.Owner == "" {
		return goerr.Wrap(types.ErrInvalidGitHubData, "repository owner is empty", goerr.V("name", x.Name))
	}
	if x.Name == "" {
		return goerr.Wrap(types.ErrInvalidGitHubData, "repository name is empty", goerr.V("owner", x.Owner))
	}
	return nil
}
