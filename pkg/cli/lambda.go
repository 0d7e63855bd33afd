package cli

import (
	"context"
	"os"

	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/m-mizutani/ghbackup/pkg/cli/config"
	"github.com/m-mizutani/ghbackup/pkg/controller/lambda"
	"github.com/m-mizutani/ghbackup/pkg/utils/errutil"
	"github.com/m-mizutani/ghbackup/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// lambdaOptions reads options from the environment of the function. The
// GitHub token is taken from SSM parameter GITHUB_PAT unless set otherwise.
func lambdaOptions(lookup func(string) (string, bool)) config.Options {
	opts := config.FromEnv(lookup)
	if opts[config.KeyGitHubAccessToken] == "" && opts[config.KeyGitHubTokenParameter] == "" {
		opts[config.KeyGitHubTokenParameter] = config.DefaultTokenParameter
	}
	return opts
}

func lambdaCommand() *cli.Command {
	var sentry config.Sentry

	return &cli.Command{
		Name:  "lambda",
		Usage: "Run as AWS Lambda function, options are read from environment variables",
		Flags: sentry.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting lambda", "Sentry", &sentry)

			flush, err := sentry.Configure(ctx)
			if err != nil {
				return err
			}

			// StartWithOptions never returns, so cleanup is only reachable on
			// the init error paths or through the SIGTERM callbacks.
			cfg, err := resolveConfig(ctx, lambdaOptions(os.LookupEnv))
			if err != nil {
				errutil.HandleError(ctx, "failed to resolve config", err)
				flush()
				return err
			}

			uc, closer, err := newUseCase(ctx, cfg)
			if err != nil {
				errutil.HandleError(ctx, "failed to set up backup", err)
				flush()
				return err
			}

			handler := lambda.New(uc, &cfg.BackupInput)
			awslambda.StartWithOptions(handler.Invoke, awslambda.WithEnableSIGTERM(closer, flush))
			return nil
		},
	}
}
