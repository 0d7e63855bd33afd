package lambda

import (
	"context"

	"github.com/m-mizutani/ghbackup/pkg/domain/interfaces"
	"github.com/m-mizutani/ghbackup/pkg/domain/model"
	"github.com/m-mizutani/ghbackup/pkg/utils/errutil"
	"github.com/m-mizutani/ghbackup/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// Response is the payload returned to the Lambda invoker on success.
type Response struct {
	Response string `json:"response"`
}

type Handler struct {
	uc    interfaces.UseCase
	input *model.BackupInput
}

func New(uc interfaces.UseCase, input *model.BackupInput) *Handler {
	return &Handler{uc: uc, input: input}
}

// Invoke runs one backup. If any repository is not backed up, the returned
// error message is "<failed> of <total> repos were not backed up".
func (x *Handler) Invoke(ctx context.Context) (*Response, error) {
	reqID, ctx := logging.CtxRequestID(ctx)
	ctx = logging.With(ctx, logging.From(ctx).With("request_id", reqID))

	result, err := x.uc.BackupRepositories(ctx, x.input)
	if err != nil {
		errutil.HandleError(ctx, "fail to run backup", err)
		return nil, err
	}

	if err := result.Err(); err != nil {
		errutil.HandleError(ctx, "some repositories were not backed up", err)
		return nil, goerr.New(result.Summary())
	}

	logging.From(ctx).Info("all repos were successfully backed up", "run", result.RunTimestamp)
	return &Response{Response: "all repos were successfully backed up"}, nil
}
