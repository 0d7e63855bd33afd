package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/ghbackup/pkg/domain/model"
	"github.com/m-mizutani/ghbackup/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func TestRepositoryValidate(t *testing.T) {
	t.Run("valid repository", func(t *testing.T) {
		repo := model.Repository{Owner: "acme", Name: "api"}
		gt.NoError(t, repo.Validate())
		gt.V(t, repo.FullName()).Equal("acme/api")
	})

	t.Run("missing owner", func(t *testing.T) {
		err := model.Repository{Name: "api"}.Validate()
		gt.True(t, errors.Is(err, types.ErrInvalidGitHubData))
	})

	t.Run("missing name", func(t *testing.T) {
		err := model.Repository{Owner: "acme"}.Validate()
		gt.True(t, errors.Is(err, types.ErrInvalidGitHubData))
	})
}

func TestBackupResult(t *testing.T) {
	ts := types.RunTimestamp("2024-03-01T12:00:00.000Z")
	repoA := model.Repository{Owner: "acme", Name: "a"}
	repoB := model.Repository{Owner: "acme", Name: "b"}
	repoC := model.Repository{Owner: "acme", Name: "c"}

	t.Run("all backed up", func(t *testing.T) {
		result := &model.BackupResult{
			RunTimestamp: ts,
			Outcomes: []model.Outcome{
				model.BackedUp(repoA, types.NewObjectKey(ts, "acme", "a"), 1),
				model.BackedUp(repoB, types.NewObjectKey(ts, "acme", "b"), 2),
			},
		}
		gt.V(t, result.Total()).Equal(2)
		gt.V(t, result.Failed()).Equal(0)
		gt.NoError(t, result.Err())
	})

	t.Run("empty result is success", func(t *testing.T) {
		result := &model.BackupResult{RunTimestamp: ts}
		gt.V(t, result.Total()).Equal(0)
		gt.NoError(t, result.Err())
	})

	t.Run("empty and failed repositories are counted", func(t *testing.T) {
		result := &model.BackupResult{
			RunTimestamp: ts,
			Outcomes: []model.Outcome{
				model.BackedUp(repoA, types.NewObjectKey(ts, "acme", "a"), 1),
				model.EmptySkipped(repoB),
				model.UploadFailed(repoC, errors.New("AccessDenied")),
			},
		}
		gt.V(t, result.Failed()).Equal(2)
		gt.V(t, result.Summary()).Equal("2 of 3 repos were not backed up")

		err := result.Err()
		gt.True(t, errors.Is(err, types.ErrBackupFailed))
		gt.S(t, err.Error()).Contains("2 of 3 repos were not backed up")

		goErr := goerr.Unwrap(err)
		gt.V(t, goErr.Values()["repos"]).Equal([]string{"acme/b", "acme/c"})
	})
}

func TestOutcome(t *testing.T) {
	repo := model.Repository{Owner: "acme", Name: "a"}

	gt.True(t, model.BackedUp(repo, "k", 1).BackedUp())
	gt.False(t, model.EmptySkipped(repo).BackedUp())

	o := model.FetchFailed(repo, errors.New("timeout"))
	gt.V(t, o.Status).Equal(model.OutcomeFetchFailed)
	gt.V(t, o.Reason).Equal("timeout")
	gt.V(t, o.Key).Equal(types.ObjectKey(""))

	gt.V(t, model.UploadFailed(repo, nil).Reason).Equal("")
}
