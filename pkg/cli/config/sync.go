package config

import (
	"log/slog"
	"net/url"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hooksync/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// DefaultManifestPath is the conventional manifest file name.
const DefaultManifestPath = "repos.txt"

type Sync struct {
	webhookURL   string
	manifestPath string
}

func (x *Sync) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "webhook-url",
			Usage:       "Destination webhook URL set on every repository",
			Category:    "Sync",
			Sources:     cli.EnvVars("HOOKSYNC_WEBHOOK_URL"),
			Destination: &x.webhookURL,
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "manifest",
			Aliases:     []string{"m"},
			Usage:       "Path to the repository manifest file",
			Category:    "Sync",
			Value:       DefaultManifestPath,
			Sources:     cli.EnvVars("HOOKSYNC_MANIFEST"),
			Destination: &x.manifestPath,
		},
	}
}

// Validate checks the destination URL once at startup, before any network
// activity.
func (x *Sync) Validate() error {
	u, err := url.Parse(x.webhookURL)
	if err != nil {
		return goerr.Wrap(err, "webhook URL is not parsable", goerr.V("url", x.webhookURL))
	}
	if !u.IsAbs() || u.Host == "" {
		return goerr.Wrap(types.ErrInvalidOption, "webhook URL must be absolute with a scheme",
			goerr.V("url", x.webhookURL),
		)
	}

	return nil
}

func (x Sync) WebhookURL() string {
	return x.webhookURL
}

func (x Sync) ManifestPath() string {
	return x.manifestPath
}

func (x Sync) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("WebhookURL", x.webhookURL),
		slog.String("ManifestPath", x.manifestPath),
	)
}
