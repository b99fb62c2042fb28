package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hooksync/pkg/domain/interfaces"
	"github.com/secmon-lab/hooksync/pkg/domain/model"
	"github.com/secmon-lab/hooksync/pkg/domain/types"
	"github.com/secmon-lab/hooksync/pkg/utils/logging"
)

// ResolveManifest parses manifest lines and streams one RepositoryRef per
// resolved repository to fn, in manifest-line order. Blank lines are
// skipped after trimming; no other line-level validation happens here, so
// a malformed path surfaces later as an API error.
//
// A direct entry yields its ref without any network call. A wildcard
// entry pages through the group catalog (including subgroups) until a
// short page, and yields one ref per project in server order, derived
// from each project's own namespaced path rather than the wildcard's
// literal prefix. Refs of a page are streamed before the next page is
// requested, so the caller processes each repository before resolution
// continues. Any catalog failure or fn error aborts the remaining lines.
func (x *UseCase) ResolveManifest(ctx context.Context, lines []string, fn func(ctx context.Context, ref model.RepositoryRef) error) error {
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		entry := model.ParseManifestLine(line)
		if !entry.Wildcard() {
			ref := model.RepositoryRef{
				GroupPath: entry.GroupPath,
				RepoName:  types.RepoName(entry.LastSegment),
			}
			if err := fn(ctx, ref); err != nil {
				return err
			}
			continue
		}

		if err := x.expandGroup(ctx, entry, fn); err != nil {
			return err
		}
	}

	return nil
}

func (x *UseCase) expandGroup(ctx context.Context, entry model.ManifestEntry, fn func(ctx context.Context, ref model.RepositoryRef) error) error {
	logger := logging.From(ctx)

	var total int
	for page := 1; ; page++ {
		projects, err := x.clients.Catalog().ListGroupProjects(ctx, entry.GroupPath, page)
		if err != nil {
			return goerr.Wrap(err, "failed to expand wildcard manifest entry",
				goerr.V("group", entry.GroupPath),
				goerr.V("line", entry.Raw),
			)
		}

		logger.Debug("Fetched group projects page",
			slog.Any("group", entry.GroupPath),
			slog.Int("page", page),
			slog.Int("count", len(projects)),
		)

		for _, project := range projects {
			ref := model.RefFromFullPath(project.PathWithNamespace)
			if err := fn(ctx, ref); err != nil {
				return err
			}
		}

		total += len(projects)
		if len(projects) < interfaces.CatalogPageSize {
			break
		}
	}

	x.emit(ctx, &Event{
		Kind:     EventGroupExpanded,
		Group:    entry.GroupPath,
		Projects: total,
	})

	return nil
}
