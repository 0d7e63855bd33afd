package usecase

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/m-mizutani/ghbackup/pkg/domain/interfaces"
	"github.com/m-mizutani/ghbackup/pkg/domain/model"
	"github.com/m-mizutani/ghbackup/pkg/domain/types"
	"github.com/m-mizutani/ghbackup/pkg/utils/logging"
)

// UploadArchive streams data to "<ts>/<owner>/<repo>.tar.gz". The storage
// backend applies server-side encryption.
func (x *UseCase) UploadArchive(ctx context.Context, ts types.RunTimestamp, repo *model.Repository, data []byte, storageClass types.StorageClass) model.Outcome {
	key := types.NewObjectKey(ts, repo.Owner, repo.Name)

	if err := x.clients.ObjectStorage().PutObject(ctx, &interfaces.PutObjectInput{
		Key:          key,
		Body:         bytes.NewReader(data),
		Size:         int64(len(data)),
		StorageClass: storageClass,
	}); err != nil {
		return model.UploadFailed(*repo, err)
	}

	logging.From(ctx).Info(fmt.Sprintf("[✓] %s - backed up", repo.FullName()),
		slog.String("key", key.String()),
		slog.Int("size", len(data)),
	)

	return model.BackedUp(*repo, key, int64(len(data)))
}
