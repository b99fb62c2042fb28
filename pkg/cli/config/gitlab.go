package config

import (
	"log/slog"
	"time"

	"github.com/secmon-lab/hooksync/pkg/domain/types"
	"github.com/secmon-lab/hooksync/pkg/infra/gitlab"
	"github.com/urfave/cli/v3"
)

type GitLab struct {
	baseURL string
	token   types.AccessToken `masq:"secret"`
	timeout time.Duration
}

func (x *GitLab) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "gitlab-url",
			Usage:       "GitLab API base URL",
			Category:    "GitLab",
			Value:       gitlab.DefaultBaseURL,
			Sources:     cli.EnvVars("HOOKSYNC_GITLAB_URL"),
			Destination: &x.baseURL,
		},
		&cli.StringFlag{
			Name:        "gitlab-token",
			Usage:       "GitLab access token",
			Category:    "GitLab",
			Sources:     cli.EnvVars("HOOKSYNC_GITLAB_TOKEN"),
			Destination: (*string)(&x.token),
			Required:    true,
		},
		&cli.DurationFlag{
			Name:        "timeout",
			Usage:       "HTTP request timeout",
			Category:    "GitLab",
			Value:       30 * time.Second,
			Sources:     cli.EnvVars("HOOKSYNC_TIMEOUT"),
			Destination: &x.timeout,
		},
	}
}

func (x GitLab) New(options ...gitlab.Option) (*gitlab.Client, error) {
	return gitlab.New(x.baseURL, x.token, options...)
}

func (x GitLab) Timeout() time.Duration {
	return x.timeout
}

func (x GitLab) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("BaseURL", x.baseURL),
		slog.Int("Token.len", len(x.token)),
		slog.Duration("Timeout", x.timeout),
	)
}
