package logging_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/m-mizutani/ghbackup/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

func TestFrom(t *testing.T) {
	t.Run("get logger from context with logger", func(t *testing.T) {
		logger := slog.Default()
		ctx := logging.With(context.Background(), logger)

		gt.V(t, logging.From(ctx)).Equal(logger)
	})

	t.Run("get logger from context without logger", func(t *testing.T) {
		retrieved := logging.From(context.Background())
		gt.V(t, retrieved.Handler()).Equal(logging.Default().Handler())
	})
}

func TestCtxRequestID(t *testing.T) {
	reqID1, ctx := logging.CtxRequestID(context.Background())
	gt.V(t, reqID1).NotEqual("")

	reqID2, _ := logging.CtxRequestID(ctx)
	gt.V(t, reqID2).Equal(reqID1)
}

func TestCtxTime(t *testing.T) {
	t.Run("current time without time function", func(t *testing.T) {
		gt.False(t, logging.CtxTime(context.Background()).IsZero())
	})

	t.Run("time function set by CtxWithTime", func(t *testing.T) {
		ctx := logging.CtxWithTime(context.Background(), func() time.Time {
			return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		})
		gt.V(t, logging.CtxTime(ctx).Year()).Equal(2024)
	})
}
