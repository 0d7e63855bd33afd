package safe_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/m-mizutani/ghbackup/pkg/utils/safe"
	"github.com/m-mizutani/gt"
)

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestClose(t *testing.T) {
	t.Run("close valid reader", func(t *testing.T) {
		reader := io.NopCloser(bytes.NewReader([]byte("test")))
		safe.Close(reader)
	})

	t.Run("close nil reader", func(t *testing.T) {
		safe.Close(nil)
	})

	t.Run("close error is swallowed", func(t *testing.T) {
		var called bool
		safe.Close(closerFunc(func() error {
			called = true
			return errors.New("broken pipe")
		}))
		gt.True(t, called)
	})
}
