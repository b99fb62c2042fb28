package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hooksync/pkg/domain/model"
	"github.com/secmon-lab/hooksync/pkg/utils/logging"
)

// webhookToken is the placeholder secret set on every created webhook.
// It is a fixed string local to this tool; rotating it is a code change.
const webhookToken = "hooksync"

// ReconcileWebhook brings one repository to the desired webhook state:
// exactly one webhook pointing at destURL with push, merge-request and
// issue events enabled and SSL verification on.
//
// The sequence is list, delete any webhook whose URL is byte-equal to
// destURL, then create a fresh one. Between the delete and the create the
// repository briefly has no matching webhook, so a delivery arriving in
// that window is lost; this is a known property of the delete-then-create
// approach, not corrected here. A completed delete is never compensated
// when the create fails, which can leave the repository without a
// matching webhook until the next run.
func (x *UseCase) ReconcileWebhook(ctx context.Context, ref model.RepositoryRef, destURL string) (*model.Webhook, error) {
	created, _, err := x.reconcileRepo(ctx, ref, destURL)
	return created, err
}

// reconcileRepo also reports the stale webhook it removed, if any.
func (x *UseCase) reconcileRepo(ctx context.Context, ref model.RepositoryRef, destURL string) (*model.Webhook, *model.Webhook, error) {
	logger := logging.From(ctx)

	hooks, err := x.clients.WebhookService().ListWebhooks(ctx, ref)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to fetch existing webhooks", goerr.V("repo", ref.FullPath()))
	}

	var stale *model.Webhook
	for _, hook := range hooks {
		if hook.URL != destURL {
			continue
		}

		if err := x.clients.WebhookService().DeleteWebhook(ctx, ref, hook.ID); err != nil {
			return nil, nil, goerr.Wrap(err, "failed to delete stale webhook",
				goerr.V("repo", ref.FullPath()),
				goerr.V("hook_id", hook.ID),
			)
		}

		logger.Debug("Deleted stale webhook",
			slog.String("repo", ref.FullPath()),
			slog.Int64("hook_id", int64(hook.ID)),
		)
		x.emit(ctx, &Event{Kind: EventHookDeleted, Repo: ref, Hook: hook})
		stale = hook
		break
	}

	spec := &model.WebhookSpec{
		URL:                   destURL,
		Token:                 webhookToken,
		PushEvents:            true,
		MergeRequestsEvents:   true,
		IssuesEvents:          true,
		EnableSSLVerification: true,
	}

	created, err := x.clients.WebhookService().CreateWebhook(ctx, ref, spec)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to create webhook",
			goerr.V("repo", ref.FullPath()),
			goerr.V("url", destURL),
		)
	}

	x.emit(ctx, &Event{Kind: EventHookCreated, Repo: ref, Hook: created})

	return created, stale, nil
}
