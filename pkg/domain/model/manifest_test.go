package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/hooksync/pkg/domain/model"
	"github.com/secmon-lab/hooksync/pkg/domain/types"
)

func TestParseManifestLine(t *testing.T) {
	t.Run("direct entry", func(t *testing.T) {
		entry := model.ParseManifestLine("teamA/svcA")
		gt.V(t, entry.GroupPath).Equal(types.GroupPath("teamA"))
		gt.V(t, entry.LastSegment).Equal("svcA")
		gt.False(t, entry.Wildcard())
	})

	t.Run("nested direct entry", func(t *testing.T) {
		entry := model.ParseManifestLine("teamA/sub/svcA")
		gt.V(t, entry.GroupPath).Equal(types.GroupPath("teamA/sub"))
		gt.V(t, entry.LastSegment).Equal("svcA")
		gt.False(t, entry.Wildcard())
	})

	t.Run("wildcard entry", func(t *testing.T) {
		entry := model.ParseManifestLine("teamB/*")
		gt.V(t, entry.GroupPath).Equal(types.GroupPath("teamB"))
		gt.True(t, entry.Wildcard())
	})

	t.Run("nested wildcard entry", func(t *testing.T) {
		entry := model.ParseManifestLine("g/sub/*")
		gt.V(t, entry.GroupPath).Equal(types.GroupPath("g/sub"))
		gt.True(t, entry.Wildcard())
	})

	t.Run("line without slash degenerates to empty group", func(t *testing.T) {
		entry := model.ParseManifestLine("onlyname")
		gt.V(t, entry.GroupPath).Equal(types.GroupPath(""))
		gt.V(t, entry.LastSegment).Equal("onlyname")
		gt.False(t, entry.Wildcard())
	})
}

func TestRepositoryRefFullPath(t *testing.T) {
	ref := model.RepositoryRef{GroupPath: "teamA", RepoName: "svcA"}
	gt.V(t, ref.FullPath()).Equal("teamA/svcA")

	// The degenerate empty group keeps the leading slash so the API call
	// fails server-side instead of being silently skipped.
	degenerate := model.RepositoryRef{GroupPath: "", RepoName: "onlyname"}
	gt.V(t, degenerate.FullPath()).Equal("/onlyname")
}

func TestRefFromFullPath(t *testing.T) {
	t.Run("subgroup project keeps its actual location", func(t *testing.T) {
		ref := model.RefFromFullPath("teamB/sub/x")
		gt.V(t, ref.GroupPath).Equal(types.GroupPath("teamB/sub"))
		gt.V(t, ref.RepoName).Equal(types.RepoName("x"))
	})

	t.Run("top-level project", func(t *testing.T) {
		ref := model.RefFromFullPath("teamB/y")
		gt.V(t, ref.GroupPath).Equal(types.GroupPath("teamB"))
		gt.V(t, ref.RepoName).Equal(types.RepoName("y"))
	})
}
