package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/internal/config"
	"github.com/katalvlaran/mazepath/search"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mazesolve.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_DefaultsWhenAbsent(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	cfg, err = config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeFile(t, `
strategy: dfs
log:
  level: debug
output:
  trace: true
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, search.DepthFirst, cfg.SearchStrategy())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format, "unset keys keep their default")
	assert.True(t, cfg.Output.Trace)
	assert.True(t, cfg.Output.ShowVisited)
}

func TestLoad_Errors(t *testing.T) {
	cases := map[string]string{
		"BadYAML":     "strategy: [",
		"BadStrategy": "strategy: astar\n",
		"BadLevel":    "log:\n  level: loud\n",
		"BadFormat":   "log:\n  format: xml\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, body))
			require.Error(t, err)
		})
	}

	_, err := config.Load(writeFile(t, "strategy: astar\n"))
	require.ErrorIs(t, err, config.ErrInvalid)
}
