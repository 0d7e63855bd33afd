package gcs_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"testing/iotest"
	"time"

	"github.com/m-mizutani/ghbackup/pkg/domain/interfaces"
	"github.com/m-mizutani/ghbackup/pkg/domain/types"
	"github.com/m-mizutani/ghbackup/pkg/infra/gcs"
	"github.com/m-mizutani/ghbackup/pkg/utils/safe"
	"github.com/m-mizutani/ghbackup/pkg/utils/testutil"
	"github.com/m-mizutani/gt"
	"google.golang.org/api/option"
)

func TestNew(t *testing.T) {
	_, err := gcs.New(context.Background(), "")
	gt.Error(t, err)
}

// fakeGCS records upload requests whose body was received completely.
type fakeGCS struct {
	mutex     sync.Mutex
	completed []string
}

func (x *fakeGCS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return
	}

	x.mutex.Lock()
	x.completed = append(x.completed, string(body))
	x.mutex.Unlock()

	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, `{"bucket":"backup-bucket","name":"2024-03-01T12:00:00.000Z/acme/api.tar.gz","size":"7"}`)
}

func (x *fakeGCS) uploads() []string {
	x.mutex.Lock()
	defer x.mutex.Unlock()
	return append([]string{}, x.completed...)
}

func newFakeClient(t *testing.T, fake *fakeGCS) *gcs.Client {
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	client := gt.R1(gcs.New(context.Background(), "backup-bucket",
		gcs.WithClientOptions(
			option.WithEndpoint(srv.URL+"/storage/v1/"),
			option.WithoutAuthentication(),
		),
	)).NoError(t)
	t.Cleanup(func() { safe.Close(client) })
	return client
}

func TestPutObject(t *testing.T) {
	key := types.ObjectKey("2024-03-01T12:00:00.000Z/acme/api.tar.gz")

	t.Run("upload with storage class", func(t *testing.T) {
		fake := &fakeGCS{}
		client := newFakeClient(t, fake)

		gt.NoError(t, client.PutObject(context.Background(), &interfaces.PutObjectInput{
			Key:          key,
			Body:         strings.NewReader("archive"),
			Size:         7,
			StorageClass: "NEARLINE",
		}))

		uploads := fake.uploads()
		gt.V(t, len(uploads)).Equal(1)
		gt.S(t, uploads[0]).Contains("archive")
		gt.S(t, uploads[0]).Contains(`"storageClass":"NEARLINE"`)
	})

	t.Run("read error discards the object", func(t *testing.T) {
		fake := &fakeGCS{}
		client := newFakeClient(t, fake)

		err := client.PutObject(context.Background(), &interfaces.PutObjectInput{
			Key:  key,
			Body: io.MultiReader(strings.NewReader("partial"), iotest.ErrReader(errors.New("connection reset"))),
			Size: 7,
		})
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("failed to write object")

		// give an aborted upload time to reach the server if it was sent
		time.Sleep(100 * time.Millisecond)
		for _, body := range fake.uploads() {
			gt.False(t, strings.Contains(body, "partial"))
		}
	})
}

func TestPutObject_Integration(t *testing.T) {
	bucket := testutil.GetEnvOrSkip(t, "TEST_GCS_BUCKET")
	ctx := context.Background()

	client := gt.R1(gcs.New(ctx, types.BucketName(bucket))).NoError(t)
	defer safe.Close(client)

	key := types.NewObjectKey(types.NewRunTimestamp(time.Now()), "ghbackup-test", "repo")
	gt.NoError(t, client.PutObject(ctx, &interfaces.PutObjectInput{
		Key:  key,
		Body: bytes.NewReader([]byte("archive")),
		Size: 7,
	}))
}
