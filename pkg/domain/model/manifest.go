package model

import (
	"strings"

	"github.com/secmon-lab/hooksync/pkg/domain/types"
)

// ManifestEntry is a single non-blank line of the manifest file.
type ManifestEntry struct {
	Raw         string
	GroupPath   types.GroupPath
	LastSegment string
}

// Wildcard reports whether the entry expands to every project under
// GroupPath, including subgroups.
func (x ManifestEntry) Wildcard() bool {
	return x.LastSegment == "*"
}

// ParseManifestLine splits a manifest line on "/" and takes the final
// segment as the last segment. A line without any "/" yields an empty
// group path and the whole line as the last segment; no validation is
// applied and such paths surface as API errors downstream.
func ParseManifestLine(line string) ManifestEntry {
	segments := strings.Split(line, "/")
	return ManifestEntry{
		Raw:         line,
		GroupPath:   types.GroupPath(strings.Join(segments[:len(segments)-1], "/")),
		LastSegment: segments[len(segments)-1],
	}
}

// RepositoryRef identifies one concrete repository by its group path and
// name.
type RepositoryRef struct {
	GroupPath types.GroupPath
	RepoName  types.RepoName
}

// FullPath returns the namespaced path used to address the repository in
// the API.
func (x RepositoryRef) FullPath() string {
	return string(x.GroupPath) + "/" + string(x.RepoName)
}

// RefFromFullPath derives a RepositoryRef from a project's own namespaced
// path. The final segment becomes the repository name and the remainder
// the group path, so a project discovered through a wildcard keeps its
// actual location rather than the wildcard's literal prefix.
func RefFromFullPath(fullPath string) RepositoryRef {
	segments := strings.Split(fullPath, "/")
	return RepositoryRef{
		GroupPath: types.GroupPath(strings.Join(segments[:len(segments)-1], "/")),
		RepoName:  types.RepoName(segments[len(segments)-1]),
	}
}

// Project is a catalog entry returned by a group listing.
type Project struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	PathWithNamespace string `json:"path_with_namespace"`
	WebURL            string `json:"web_url"`
}
