package usecase

import (
	"context"

	"github.com/secmon-lab/hooksync/pkg/domain/model"
	"github.com/secmon-lab/hooksync/pkg/domain/types"
)

type EventKind string

const (
	// EventGroupExpanded: a wildcard manifest line finished expanding.
	EventGroupExpanded EventKind = "group_expanded"
	// EventHookDeleted: a stale webhook matching the destination URL was removed.
	EventHookDeleted EventKind = "hook_deleted"
	// EventHookCreated: the fresh webhook was created.
	EventHookCreated EventKind = "hook_created"
	// EventRepoReconciled: one repository reached the desired state.
	EventRepoReconciled EventKind = "repo_reconciled"
	// EventSyncCompleted: every manifest-derived repository was reconciled.
	EventSyncCompleted EventKind = "sync_completed"
)

// Event is a structured progress notification. Fields other than Kind are
// set only where they apply.
type Event struct {
	Kind EventKind

	Group    types.GroupPath
	Repo     model.RepositoryRef
	Hook     *model.Webhook
	Projects int

	Reconciled   int
	DeletedHooks int
}

type EventFunc func(ctx context.Context, ev *Event)
