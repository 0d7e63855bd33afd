package config

import (
	"log/slog"
	"strconv"

	"github.com/m-mizutani/ghbackup/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// DefaultTokenParameter is the SSM parameter holding the GitHub token when
// running on AWS Lambda.
const DefaultTokenParameter = "GITHUB_PAT"

type GitHub struct {
	accessToken    types.GitHubAccessToken `masq:"secret"`
	tokenParameter string
	apiURL         string

	appID         int64
	appPrivateKey types.GitHubAppPrivateKey `masq:"secret"`
	appInstallID  int64
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        KeyGitHubAccessToken,
			Usage:       "GitHub personal access token",
			Category:    "GitHub",
			Destination: (*string)(&x.accessToken),
			Sources:     cli.EnvVars(EnvVars[KeyGitHubAccessToken]),
		},
		&cli.StringFlag{
			Name:        KeyGitHubTokenParameter,
			Usage:       "Name of SSM parameter holding GitHub access token",
			Category:    "GitHub",
			Destination: &x.tokenParameter,
			Sources:     cli.EnvVars(EnvVars[KeyGitHubTokenParameter]),
		},
		&cli.StringFlag{
			Name:        KeyGitHubAPIURL,
			Usage:       "GitHub Enterprise API URL, e.g. https://github.example.com/api/v3/",
			Category:    "GitHub",
			Destination: &x.apiURL,
			Sources:     cli.EnvVars(EnvVars[KeyGitHubAPIURL]),
		},
		&cli.Int64Flag{
			Name:        KeyGitHubAppID,
			Usage:       "GitHub App ID (organisation mode only)",
			Category:    "GitHub App",
			Destination: &x.appID,
			Sources:     cli.EnvVars(EnvVars[KeyGitHubAppID]),
		},
		&cli.StringFlag{
			Name:        KeyGitHubAppPrivateKey,
			Usage:       "GitHub App private key (PEM)",
			Category:    "GitHub App",
			Destination: (*string)(&x.appPrivateKey),
			Sources:     cli.EnvVars(EnvVars[KeyGitHubAppPrivateKey]),
		},
		&cli.Int64Flag{
			Name:        KeyGitHubAppInstallID,
			Usage:       "GitHub App installation ID",
			Category:    "GitHub App",
			Destination: &x.appInstallID,
			Sources:     cli.EnvVars(EnvVars[KeyGitHubAppInstallID]),
		},
	}
}

// SetOptions copies the flag values into opts.
func (x *GitHub) SetOptions(opts Options) {
	opts[KeyGitHubAccessToken] = string(x.accessToken)
	opts[KeyGitHubTokenParameter] = x.tokenParameter
	opts[KeyGitHubAPIURL] = x.apiURL
	if x.appID != 0 {
		opts[KeyGitHubAppID] = strconv.FormatInt(x.appID, 10)
	}
	opts[KeyGitHubAppPrivateKey] = string(x.appPrivateKey)
	if x.appInstallID != 0 {
		opts[KeyGitHubAppInstallID] = strconv.FormatInt(x.appInstallID, 10)
	}
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("accessToken.len", len(x.accessToken)),
		slog.String("tokenParameter", x.tokenParameter),
		slog.String("apiURL", x.apiURL),
		slog.Int64("appID", x.appID),
		slog.Int("appPrivateKey.len", len(x.appPrivateKey)),
		slog.Int64("appInstallID", x.appInstallID),
	)
}
