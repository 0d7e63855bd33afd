package types

import (
	"log/slog"
	"time"
)

type (
	BucketName         string
	StorageBackend     string
	StorageClass       string
	ObjectKey          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
)

const (
	StorageBackendS3  StorageBackend = "s3"
	StorageBackendGCS StorageBackend = "gcs"

	DefaultStorageClass StorageClass = "STANDARD"
)

func (x BucketName) String() string     { return string(x) }
func (x StorageClass) String() string   { return string(x) }
func (x ObjectKey) String() string      { return string(x) }
func (x StorageBackend) String() string { return string(x) }

func (x AWSSecretAccessKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x AWSSecretAccessKey) String() string {
	return "***********"
}

// RunTimestamp identifies one backup run. Every object written by the run is
// stored under this prefix.
type RunTimestamp string

// Precision is one millisecond. Runs started within the same millisecond
// share a prefix and overwrite each other's objects.
const runTimestampLayout = "2006-01-02T15:04:05.000Z"

func NewRunTimestamp(t time.Time) RunTimestamp {
	return RunTimestamp(t.UTC().Format(runTimestampLayout))
}

func (x RunTimestamp) String() string { return string(x) }

// NewObjectKey builds "<run timestamp>/<owner>/<repo>.tar.gz".
func NewObjectKey(ts RunTimestamp, owner, repo string) ObjectKey {
	return ObjectKey(string(ts) + "/" + owner + "/" + repo + ".tar.gz")
}
