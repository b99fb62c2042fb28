package config_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/hooksync/pkg/cli/config"
)

func TestSyncFlags(t *testing.T) {
	syncConfig := &config.Sync{}
	flags := syncConfig.Flags()

	gt.V(t, len(flags)).Equal(2)

	flagNames := make(map[string]bool)
	for _, flag := range flags {
		flagNames[flag.Names()[0]] = true
	}

	gt.True(t, flagNames["webhook-url"])
	gt.True(t, flagNames["manifest"])
}

func TestSyncValidate(t *testing.T) {
	parse := func(t *testing.T, args ...string) *config.Sync {
		t.Helper()
		syncConfig := &config.Sync{}
		app := newFlagApp(syncConfig.Flags())
		gt.NoError(t, app.Run(t.Context(), append([]string{"test"}, args...)))
		return syncConfig
	}

	t.Run("valid absolute URL", func(t *testing.T) {
		syncConfig := parse(t, "--webhook-url", "https://hooks.example.com/in")
		gt.NoError(t, syncConfig.Validate())
		gt.V(t, syncConfig.WebhookURL()).Equal("https://hooks.example.com/in")
		gt.V(t, syncConfig.ManifestPath()).Equal(config.DefaultManifestPath)
	})

	t.Run("URL without scheme is rejected", func(t *testing.T) {
		syncConfig := parse(t, "--webhook-url", "hooks.example.com/in")
		gt.Error(t, syncConfig.Validate())
	})

	t.Run("relative path is rejected", func(t *testing.T) {
		syncConfig := parse(t, "--webhook-url", "/relative/only")
		gt.Error(t, syncConfig.Validate())
	})
}
