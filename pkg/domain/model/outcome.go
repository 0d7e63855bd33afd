package model

import "github.com/m-mizutani/ghbackup/pkg/domain/types"

type OutcomeStatus string

const (
	OutcomeBackedUp     OutcomeStatus = "backed_up"
	OutcomeEmpty        OutcomeStatus = "empty"
	OutcomeFetchFailed  OutcomeStatus = "fetch_failed"
	OutcomeUploadFailed OutcomeStatus = "upload_failed"
)

// Outcome is the result of backing up a single repository. Key and Size are
// set only when Status is OutcomeBackedUp, Reason only for failures.
type Outcome struct {
	Repository Repository
	Status     OutcomeStatus
	Key        types.ObjectKey
	Size       int64
	Reason     string
}

func (x Outcome) BackedUp() bool {
	return x.Status == OutcomeBackedUp
}

func BackedUp(repo Repository, key types.ObjectKey, size int64) Outcome {
	return Outcome{Repository: repo, Status: OutcomeBackedUp, Key: key, Size: size}
}

func EmptySkipped(repo Repository) Outcome {
	return Outcome{Repository: repo, Status: OutcomeEmpty, Reason: "repository has no branch"}
}

func FetchFailed(repo Repository, err error) Outcome {
	return Outcome{Repository: repo, Status: OutcomeFetchFailed, Reason: errorText(err)}
}

func UploadFailed(repo Repository, err error) Outcome {
	return Outcome{Repository: repo, Status: OutcomeUploadFailed, Reason: errorText(err)}
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
