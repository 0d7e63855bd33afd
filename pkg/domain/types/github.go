package types

import "log/slog"

type (
	GitHubAccessToken   string
	GitHubAppID         int64
	GitHubAppInstallID  int64
	GitHubAppPrivateKey string
)

func (x GitHubAccessToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAccessToken) String() string {
	return "***********"
}

func (x GitHubAppPrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppPrivateKey) String() string {
	return "***********"
}
