package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/m-mizutani/ghbackup/pkg/domain/model"
	"github.com/m-mizutani/ghbackup/pkg/domain/types"
	"github.com/m-mizutani/ghbackup/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"
)

// BackupRepositories lists repositories and backs up each of them in its own
// goroutine. Only configuration and listing errors are returned; a failure of
// one repository is recorded in its outcome and never stops the others.
//
// Archives are held in memory until uploaded, so without input.Concurrency
// memory usage grows with the number of repositories times the archive size.
func (x *UseCase) BackupRepositories(ctx context.Context, input *model.BackupInput) (*model.BackupResult, error) {
	if x.clients.ObjectStorage() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "object storage is not configured")
	}

	repos, err := x.ListRepositories(ctx, input)
	if err != nil {
		return nil, err
	}

	logger := logging.From(ctx)
	ts := types.NewRunTimestamp(logging.CtxTime(ctx))

	logger.Info("Found repos to backup",
		slog.Int("count", len(repos)),
		slog.String("run", ts.String()),
		slog.Any("input", input),
	)

	result := &model.BackupResult{
		RunTimestamp: ts,
		Outcomes:     make([]model.Outcome, len(repos)),
	}

	var eg errgroup.Group
	if input.Concurrency > 0 {
		eg.SetLimit(input.Concurrency)
	}
	for i, repo := range repos {
		eg.Go(func() error {
			result.Outcomes[i] = x.backupRepository(ctx, ts, repo, input)
			return nil
		})
	}
	_ = eg.Wait()

	logger.Info("Completed backup",
		slog.String("run", ts.String()),
		slog.Int("total", result.Total()),
		slog.Int("failed", result.Failed()),
	)

	return result, nil
}

func (x *UseCase) backupRepository(ctx context.Context, ts types.RunTimestamp, repo *model.Repository, input *model.BackupInput) model.Outcome {
	outcome := x.fetchAndUpload(ctx, ts, repo, input)

	if !outcome.BackedUp() {
		logging.From(ctx).Warn(fmt.Sprintf("[✕] %s - not backed up", repo.FullName()),
			slog.String("status", string(outcome.Status)),
			slog.String("reason", outcome.Reason),
		)
	}

	return outcome
}

func (x *UseCase) fetchAndUpload(ctx context.Context, ts types.RunTimestamp, repo *model.Repository, input *model.BackupInput) model.Outcome {
	data, skipped := x.FetchArchive(ctx, repo, input.CheckEmpty)
	if skipped != nil {
		return *skipped
	}

	return x.UploadArchive(ctx, ts, repo, data, input.StorageClass)
}
