package config_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/hooksync/pkg/cli/config"
	"github.com/secmon-lab/hooksync/pkg/infra/gitlab"
)

func TestGitLabFlags(t *testing.T) {
	gitlabConfig := &config.GitLab{}
	flags := gitlabConfig.Flags()

	gt.V(t, len(flags)).Equal(3)

	flagNames := make(map[string]bool)
	for _, flag := range flags {
		flagNames[flag.Names()[0]] = true
	}

	gt.True(t, flagNames["gitlab-url"])
	gt.True(t, flagNames["gitlab-token"])
	gt.True(t, flagNames["timeout"])
}

func TestGitLabNew(t *testing.T) {
	t.Run("builds a client with defaults", func(t *testing.T) {
		gitlabConfig := &config.GitLab{}
		app := newFlagApp(gitlabConfig.Flags())
		gt.NoError(t, app.Run(t.Context(), []string{"test", "--gitlab-token", "glpat-x"}))

		client, err := gitlabConfig.New()
		gt.NoError(t, err)
		gt.V(t, client).NotEqual(nil)
		gt.V(t, gitlabConfig.Timeout()).Equal(30 * time.Second)
	})

	t.Run("missing token is rejected at flag level", func(t *testing.T) {
		gitlabConfig := &config.GitLab{}
		app := newFlagApp(gitlabConfig.Flags())
		gt.Error(t, app.Run(t.Context(), []string{"test"}))
	})

	t.Run("default base URL is the public endpoint", func(t *testing.T) {
		gitlabConfig := &config.GitLab{}
		app := newFlagApp(gitlabConfig.Flags())
		gt.NoError(t, app.Run(t.Context(), []string{"test", "--gitlab-token", "glpat-x"}))

		gt.V(t, gitlabConfig.LogValue().Group()[0].Value.String()).Equal(gitlab.DefaultBaseURL)
	})
}
