package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/hooksync/pkg/cli/config"
	"github.com/secmon-lab/hooksync/pkg/infra"
	"github.com/secmon-lab/hooksync/pkg/infra/gitlab"
	"github.com/secmon-lab/hooksync/pkg/usecase"
	"github.com/secmon-lab/hooksync/pkg/utils/errutil"
	"github.com/secmon-lab/hooksync/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func syncCommand() *cli.Command {
	var (
		gitlabConfig config.GitLab
		syncConfig   config.Sync
		sentryConfig config.Sentry
	)

	return &cli.Command{
		Name:    "sync",
		Aliases: []string{"s"},
		Usage:   "Reconcile webhooks of every repository in the manifest",
		Flags: slice.Flatten(
			gitlabConfig.Flags(),
			syncConfig.Flags(),
			sentryConfig.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			runID, ctx := logging.CtxRunID(ctx)
			ctx = logging.With(ctx, logging.Default().With("run_id", runID))

			logging.From(ctx).Info("starting sync",
				slog.Any("GitLab", gitlabConfig),
				slog.Any("Sync", syncConfig),
				slog.Any("Sentry", sentryConfig),
			)

			if err := sentryConfig.Configure(ctx); err != nil {
				return err
			}
			defer sentry.Flush(2 * time.Second)

			if err := runSync(ctx, &gitlabConfig, &syncConfig); err != nil {
				errutil.HandleError(ctx, "webhook sync failed", err)
				return err
			}

			return nil
		},
	}
}

func runSync(ctx context.Context, gitlabConfig *config.GitLab, syncConfig *config.Sync) error {
	if err := syncConfig.Validate(); err != nil {
		return err
	}

	lines, err := readManifest(syncConfig.ManifestPath())
	if err != nil {
		return err
	}

	glClient, err := gitlabConfig.New(
		gitlab.WithHTTPClient(&http.Client{Timeout: gitlabConfig.Timeout()}),
	)
	if err != nil {
		return err
	}

	clients := infra.New(
		infra.WithCatalog(glClient),
		infra.WithWebhookService(glClient),
	)

	uc := usecase.New(clients, usecase.WithEventFunc(logSyncEvent))

	return uc.SyncWebhooks(ctx, &usecase.SyncInput{
		ManifestLines:  lines,
		DestinationURL: syncConfig.WebhookURL(),
	})
}

func readManifest(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read manifest file", goerr.V("path", path))
	}

	return strings.Split(string(raw), "\n"), nil
}

// logSyncEvent renders usecase progress events. Verbosity decisions live
// here, not in the usecase.
func logSyncEvent(ctx context.Context, ev *usecase.Event) {
	logger := logging.From(ctx)

	switch ev.Kind {
	case usecase.EventGroupExpanded:
		logger.Info("Expanded manifest group",
			slog.Any("group", ev.Group),
			slog.Int("projects", ev.Projects),
		)
	case usecase.EventHookDeleted:
		logger.Info("Removed stale webhook",
			slog.String("repo", ev.Repo.FullPath()),
			slog.Int64("hook_id", int64(ev.Hook.ID)),
		)
	case usecase.EventHookCreated:
		logger.Debug("Created webhook",
			slog.String("repo", ev.Repo.FullPath()),
			slog.Int64("hook_id", int64(ev.Hook.ID)),
		)
	case usecase.EventRepoReconciled:
		logger.Info("Reconciled repository",
			slog.String("repo", ev.Repo.FullPath()),
		)
	case usecase.EventSyncCompleted:
		logger.Info("Sync completed",
			slog.Int("reconciled", ev.Reconciled),
			slog.Int("deleted_hooks", ev.DeletedHooks),
		)
	}
}
