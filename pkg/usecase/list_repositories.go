package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ghbackup/pkg/domain/model"
	"github.com/m-mizutani/ghbackup/pkg/domain/types"
	"github.com/m-mizutani/ghbackup/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// ListRepositories returns every repository to back up in the order GitHub
// returned them. Archived repositories and forks are included. An API error
// aborts the listing, no partial list is returned.
func (x *UseCase) ListRepositories(ctx context.Context, input *model.BackupInput) ([]*model.Repository, error) {
	if x.clients.GitHub() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub client is not configured")
	}

	logger := logging.From(ctx)

	var (
		repos []*model.Repository
		err   error
	)
	switch input.Mode {
	case model.ModeOrganisation:
		if input.Organisation == "" {
			return nil, goerr.Wrap(types.ErrInvalidOption, "organisation is required in organisation mode")
		}
		logger.Info("Running in organisation mode", slog.String("organisation", input.Organisation))

		repos, err = x.clients.GitHub().ListOrgRepos(ctx, input.Organisation)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list organisation repositories",
				goerr.V("organisation", input.Organisation),
			)
		}

	default:
		logger.Info("Running in user mode")

		repos, err = x.clients.GitHub().ListUserRepos(ctx)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list user repositories")
		}
	}

	for _, repo := range repos {
		if repo == nil {
			continue
		}
		if err := repo.Validate(); err != nil {
			return nil, err
		}
	}

	return uniqueRepositories(repos), nil
}

// uniqueRepositories drops repeated owner/name pairs, which show up when pages
// shift while listing. The first occurrence wins.
func uniqueRepositories(repos []*model.Repository) []*model.Repository {
	seen := make(map[string]struct{}, len(repos))
	unique := make([]*model.Repository, 0, len(repos))

	for _, repo := range repos {
		if repo == nil {
			continue
		}
		if _, ok := seen[repo.FullName()]; ok {
			continue
		}
		seen[repo.FullName()] = struct{}{}
		unique = append(unique, repo)
	}

	return unique
}
