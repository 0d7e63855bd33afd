package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/ghbackup/pkg/domain/model"
	"github.com/m-mizutani/ghbackup/pkg/domain/types"
	"github.com/m-mizutani/ghbackup/pkg/infra"
	"github.com/m-mizutani/ghbackup/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestUploadArchive(t *testing.T) {
	ctx := context.Background()
	ts := types.NewRunTimestamp(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	repo := &model.Repository{Owner: "alice", Name: "a"}

	t.Run("upload to timestamped key", func(t *testing.T) {
		storage := newRecordingStorage()
		uc := usecase.New(infra.New(infra.WithObjectStorage(storage)))

		outcome := uc.UploadArchive(ctx, ts, repo, []byte("tarball"), "STANDARD_IA")
		gt.True(t, outcome.BackedUp())
		gt.V(t, outcome.Key).Equal(types.ObjectKey("2024-03-01T12:00:00.000Z/alice/a.tar.gz"))
		gt.V(t, outcome.Size).Equal(int64(7))
		gt.V(t, storage.objects["2024-03-01T12:00:00.000Z/alice/a.tar.gz"]).Equal("tarball")
		gt.V(t, storage.classes["2024-03-01T12:00:00.000Z/alice/a.tar.gz"]).Equal("STANDARD_IA")

		calls := storage.PutObjectCalls()
		gt.V(t, len(calls)).Equal(1)
		gt.V(t, calls[0].Input.Size).Equal(int64(7))
	})

	t.Run("storage error is upload failure", func(t *testing.T) {
		storage := newRecordingStorage()
		storage.fail["alice/a.tar.gz"] = errors.New("AccessDenied")
		uc := usecase.New(infra.New(infra.WithObjectStorage(storage)))

		outcome := uc.UploadArchive(ctx, ts, repo, []byte("tarball"), types.DefaultStorageClass)
		gt.False(t, outcome.BackedUp())
		gt.V(t, outcome.Status).Equal(model.OutcomeUploadFailed)
		gt.S(t, outcome.Reason).Contains("AccessDenied")
	})
}
