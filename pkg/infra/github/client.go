package github

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/ghbackup/pkg/domain/interfaces"
	"github.com/m-mizutani/ghbackup/pkg/domain/model"
	"github.com/m-mizutani/ghbackup/pkg/domain/types"
	"github.com/m-mizutani/ghbackup/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"
)

const perPage = 100

type Client struct {
	client *github.Client
}

var _ interfaces.GitHub = (*Client)(nil)

type config struct {
	apiURL    string
	transport http.RoundTripper
}

type Option func(*config)

// WithAPIURL sets the REST API endpoint, e.g. https://github.example.com/api/v3/
func WithAPIURL(apiURL string) Option {
	return func(cfg *config) {
		cfg.apiURL = apiURL
	}
}

// WithTransport replaces the base transport wrapped by the authenticator.
func WithTransport(tr http.RoundTripper) Option {
	return func(cfg *config) {
		cfg.transport = tr
	}
}

func newConfig(options []Option) *config {
	cfg := &config{transport: http.DefaultTransport}
	for _, opt := range options {
		opt(cfg)
	}
	return cfg
}

// NewWithToken builds a client authenticated with a personal access token.
func NewWithToken(token types.GitHubAccessToken, options ...Option) (*Client, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub access token is empty")
	}
	cfg := newConfig(options)

	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(token)}),
			Base:   cfg.transport,
		},
	}

	return newClient(cfg, httpClient)
}

// NewWithApp builds a client authenticated as a GitHub App installation.
func NewWithApp(appID types.GitHubAppID, installID types.GitHubAppInstallID, pem types.GitHubAppPrivateKey, options ...Option) (*Client, error) {
	if appID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "appID is empty")
	}
	if installID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "installID is empty")
	}
	if pem == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "pem is empty")
	}
	cfg := newConfig(options)

	itr, err := ghinstallation.New(cfg.transport, int64(appID), int64(installID), []byte(pem))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create GitHub App transport")
	}
	if cfg.apiURL != "" {
		itr.BaseURL = strings.TrimSuffix(cfg.apiURL, "/")
	}

	return newClient(cfg, &http.Client{Transport: itr})
}

func newClient(cfg *config, httpClient *http.Client) (*Client, error) {
	if cfg.apiURL == "" {
		return &Client{client: github.NewClient(httpClient)}, nil
	}

	client, err := github.NewEnterpriseClient(cfg.apiURL, cfg.apiURL, httpClient)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create GitHub client", goerr.V("apiURL", cfg.apiURL))
	}
	return &Client{client: client}, nil
}

func toRepository(repo *github.Repository) *model.Repository {
	return &model.Repository{
		Owner:         repo.GetOwner().GetLogin(),
		Name:          repo.GetName(),
		DefaultBranch: repo.GetDefaultBranch(),
	}
}

// ListOrgRepos implements interfaces.GitHub.
func (x *Client) ListOrgRepos(ctx context.Context, org string) ([]*model.Repository, error) {
	var allRepos []*model.Repository
	opts := &github.RepositoryListByOrgOptions{
		Type:        "all",
		ListOptions: github.ListOptions{PerPage: perPage},
	}

	for {
		repos, resp, err := x.client.Repositories.ListByOrg(ctx, org, opts)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list organization repos",
				goerr.V("org", org),
				goerr.V("page", opts.Page),
			)
		}

		for _, repo := range repos {
			allRepos = append(allRepos, toRepository(repo))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	logging.From(ctx).Info("Listed organization repos",
		slog.String("org", org),
		slog.Int("count", len(allRepos)),
	)

	return allRepos, nil
}

// ListUserRepos implements interfaces.GitHub.
func (x *Client) ListUserRepos(ctx context.Context) ([]*model.Repository, error) {
	var allRepos []*model.Repository
	opts := &github.RepositoryListOptions{
		Affiliation: "owner",
		ListOptions: github.ListOptions{PerPage: perPage},
	}

	for {
		// Empty user lists repositories of the authenticated user
		repos, resp, err := x.client.Repositories.List(ctx, "", opts)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list user repos", goerr.V("page", opts.Page))
		}

		for _, repo := range repos {
			allRepos = append(allRepos, toRepository(repo))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	logging.From(ctx).Info("Listed user repos", slog.Int("count", len(allRepos)))

	return allRepos, nil
}

// HasBranch implements interfaces.GitHub. One entry of the first page is
// enough to tell an empty repository apart.
func (x *Client) HasBranch(ctx context.Context, owner, repo string) (bool, error) {
	branches, _, err := x.client.Repositories.ListBranches(ctx, owner, repo, &github.BranchListOptions{
		ListOptions: github.ListOptions{PerPage: 1},
	})
	if err != nil {
		return false, goerr.Wrap(err, "failed to list branches",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
		)
	}

	return len(branches) > 0, nil
}

// GetArchiveURL implements interfaces.GitHub. The returned URL is short-lived
// and can be downloaded without credentials.
func (x *Client) GetArchiveURL(ctx context.Context, input *interfaces.GetArchiveURLInput) (*url.URL, error) {
	var opt *github.RepositoryContentGetOptions
	if input.Ref != "" {
		opt = &github.RepositoryContentGetOptions{Ref: input.Ref}
	}

	// https://docs.github.com/en/rest/repos/contents?apiVersion=2022-11-28#download-a-repository-archive-tar
	archiveURL, r, err := x.client.Repositories.GetArchiveLink(ctx, input.Owner, input.Repo, github.Tarball, opt, false)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get archive link",
			goerr.V("owner", input.Owner),
			goerr.V("repo", input.Repo),
		)
	}
	if r.StatusCode != http.StatusFound {
		body, _ := io.ReadAll(r.Body)
		return nil, goerr.Wrap(types.ErrInvalidGitHubData, "unexpected response of archive link",
			goerr.V("status", r.StatusCode),
			goerr.V("body", string(body)),
		)
	}

	logging.From(ctx).Debug("GetArchiveLink response",
		slog.String("owner", input.Owner),
		slog.String("repo", input.Repo),
		slog.Any("url", archiveURL),
	)

	return archiveURL, nil
}
