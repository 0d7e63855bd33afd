package usecase

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/m-mizutani/ghbackup/pkg/domain/interfaces"
	"github.com/m-mizutani/ghbackup/pkg/domain/model"
	"github.com/m-mizutani/ghbackup/pkg/domain/types"
	"github.com/m-mizutani/ghbackup/pkg/infra"
	"github.com/m-mizutani/ghbackup/pkg/utils/logging"
	"github.com/m-mizutani/ghbackup/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

// FetchArchive downloads the default branch tarball of repo into memory. If
// the archive can not be backed up, the returned outcome is non-nil and tells
// why: an empty repository (only when checkEmpty is set) or a fetch failure.
// Errors are never returned to the caller.
func (x *UseCase) FetchArchive(ctx context.Context, repo *model.Repository, checkEmpty bool) ([]byte, *model.Outcome) {
	logger := logging.From(ctx).With(slog.String("repo", repo.FullName()))

	if checkEmpty {
		hasBranch, err := x.clients.GitHub().HasBranch(ctx, repo.Owner, repo.Name)
		if err != nil {
			outcome := model.FetchFailed(*repo, err)
			return nil, &outcome
		}
		if !hasBranch {
			logger.Debug("repository has no branch, skip download")
			outcome := model.EmptySkipped(*repo)
			return nil, &outcome
		}
	}

	archiveURL, err := x.clients.GitHub().GetArchiveURL(ctx, &interfaces.GetArchiveURLInput{
		Owner: repo.Owner,
		Repo:  repo.Name,
	})
	if err != nil {
		outcome := model.FetchFailed(*repo, err)
		return nil, &outcome
	}

	data, err := downloadArchive(ctx, x.clients.HTTPClient(), archiveURL)
	if err != nil {
		outcome := model.FetchFailed(*repo, err)
		return nil, &outcome
	}

	logger.Debug("archive downloaded", slog.Int("size", len(data)))

	return data, nil
}

func downloadArchive(ctx context.Context, httpClient infra.HTTPClient, archiveURL *url.URL) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, archiveURL.String(), nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create request for archive", goerr.V("url", archiveURL))
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to download archive", goerr.V("url", archiveURL))
	}
	defer safe.Close(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, goerr.Wrap(types.ErrInvalidGitHubData, "failed to download archive",
			goerr.V("url", archiveURL),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(body)),
		)
	}

	var buf bytes.Buffer
	if resp.ContentLength > 0 {
		buf.Grow(int(resp.ContentLength))
	}
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, goerr.Wrap(err, "failed to read archive", goerr.V("url", archiveURL))
	}

	return buf.Bytes(), nil
}
