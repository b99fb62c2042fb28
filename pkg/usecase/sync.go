package usecase

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hooksync/pkg/domain/model"
	"github.com/secmon-lab/hooksync/pkg/domain/types"
	"github.com/secmon-lab/hooksync/pkg/utils/logging"
)

type SyncInput struct {
	ManifestLines  []string
	DestinationURL string
}

func (x *SyncInput) Validate() error {
	u, err := url.Parse(x.DestinationURL)
	if err != nil {
		return goerr.Wrap(err, "destination URL is not parsable", goerr.V("url", x.DestinationURL))
	}
	if !u.IsAbs() || u.Host == "" {
		return goerr.Wrap(types.ErrInvalidOption, "destination URL must be absolute with a scheme",
			goerr.V("url", x.DestinationURL),
		)
	}

	return nil
}

// SyncWebhooks resolves every manifest line and reconciles each resolved
// repository against the destination URL, strictly one repository at a
// time in manifest order. The first failure of any kind aborts the run;
// repositories reconciled before the failure keep their new webhook.
// Repositories named by more than one line are reconciled once per line,
// which is harmless because reconciliation is idempotent.
func (x *UseCase) SyncWebhooks(ctx context.Context, input *SyncInput) error {
	if err := input.Validate(); err != nil {
		return err
	}
	if x.clients.Catalog() == nil || x.clients.WebhookService() == nil {
		return goerr.Wrap(types.ErrInvalidOption, "catalog and webhook clients are required")
	}

	logger := logging.From(ctx)
	logger.Info("Starting webhook sync",
		slog.Int("manifest_lines", len(input.ManifestLines)),
		slog.String("destination", input.DestinationURL),
	)

	var reconciled, deleted int
	err := x.ResolveManifest(ctx, input.ManifestLines, func(ctx context.Context, ref model.RepositoryRef) error {
		logger.Info("Reconciling repository",
			slog.Int("progress", reconciled+1),
			slog.String("repo", ref.FullPath()),
		)

		created, stale, err := x.reconcileRepo(ctx, ref, input.DestinationURL)
		if err != nil {
			return goerr.Wrap(err, "failed to reconcile repository", goerr.V("repo", ref.FullPath()))
		}
		if stale != nil {
			deleted++
		}

		reconciled++
		x.emit(ctx, &Event{Kind: EventRepoReconciled, Repo: ref, Hook: created})
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("Completed webhook sync",
		slog.Int("reconciled", reconciled),
		slog.Int("deleted_hooks", deleted),
	)
	x.emit(ctx, &Event{
		Kind:         EventSyncCompleted,
		Reconciled:   reconciled,
		DeletedHooks: deleted,
	})

	return nil
}
