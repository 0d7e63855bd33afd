package model

import (
	"fmt"

	"github.com/m-mizutani/ghbackup/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// BackupResult aggregates the outcomes of one run. Outcomes keep the order in
// which repositories were listed.
type BackupResult struct {
	RunTimestamp types.RunTimestamp
	Outcomes     []Outcome
}

func (x *BackupResult) Total() int {
	return len(x.Outcomes)
}

// Failed counts every outcome that is not backed up, including skipped empty
// repositories.
func (x *BackupResult) Failed() int {
	var n int
	for _, o := range x.Outcomes {
		if !o.BackedUp() {
			n++
		}
	}
	return n
}

func (x *BackupResult) Summary() string {
	return fmt.Sprintf("%d of %d repos were not backed up", x.Failed(), x.Total())
}

// Err returns nil if every repository was backed up.
func (x *BackupResult) Err() error {
	if x.Failed() == 0 {
		return nil
	}

	var notBackedUp []string
	for _, o := range x.Outcomes {
		if !o.BackedUp() {
			notBackedUp = append(notBackedUp, o.Repository.FullName())
		}
	}

	return goerr.Wrap(types.ErrBackupFailed, x.Summary(),
		goerr.V("run", x.RunTimestamp),
		goerr.V("failed", x.Failed()),
		goerr.V("total", x.Total()),
		goerr.V("repos", notBackedUp),
	)
}
