package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . Catalog WebhookService

import (
	"context"

	"github.com/secmon-lab/hooksync/pkg/domain/model"
	"github.com/secmon-lab/hooksync/pkg/domain/types"
)

// CatalogPageSize is the fixed page size of ListGroupProjects. A page
// shorter than this signals end of results; no total-count field is used.
const CatalogPageSize = 100

// Catalog lists projects of a group, including nested subgroups. Pages
// are 1-origin; each call returns a single page.
type Catalog interface {
	ListGroupProjects(ctx context.Context, group types.GroupPath, page int) ([]*model.Project, error)
}

// WebhookService reads and mutates webhooks of a single repository.
type WebhookService interface {
	ListWebhooks(ctx context.Context, ref model.RepositoryRef) ([]*model.Webhook, error)
	CreateWebhook(ctx context.Context, ref model.RepositoryRef, spec *model.WebhookSpec) (*model.Webhook, error)
	DeleteWebhook(ctx context.Context, ref model.RepositoryRef, id types.HookID) error
}
