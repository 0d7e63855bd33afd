package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption     = goerr.New("invalid option")
	ErrMissingOption     = goerr.New("missing option")
	ErrInvalidGitHubData = goerr.New("invalid GitHub data")
	ErrBackupFailed      = goerr.New("backup failed")
)
