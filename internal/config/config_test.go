package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazzalab/pyntacle/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "bfs", cfg.Engine.Mode)
	assert.Equal(t, 1, cfg.KeyPlayer.M)
	assert.Equal(t, uint64(1), cfg.KeyPlayer.Seed)
	assert.Equal(t, 100, cfg.KeyPlayer.MaxIterations)
	assert.Equal(t, 2, cfg.Modules.MinSize)
	assert.Equal(t, 0.85, cfg.Topology.Damping)
	assert.Empty(t, cfg.Validate())
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pyntacle.yaml")
	data := `
engine:
  mode: parallel
  workers: 4
keyplayer:
  m: 2
report:
  format: csv
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	t.Setenv("PYNTACLE_KEYPLAYER_M", "3")
	t.Setenv("PYNTACLE_LOG_LEVEL", "debug")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "parallel", cfg.Engine.Mode)
	assert.Equal(t, 4, cfg.Engine.Workers)
	assert.Equal(t, 3, cfg.KeyPlayer.M)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "csv", cfg.Report.Format)
	assert.Equal(t, 100, cfg.KeyPlayer.MaxIterations)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *config.Config)
		want   string
	}{
		{"mode", func(c *config.Config) { c.Engine.Mode = "gpu" }, "engine mode"},
		{"workers", func(c *config.Config) { c.Engine.Workers = -2 }, "workers"},
		{"m", func(c *config.Config) { c.KeyPlayer.M = 0 }, "keyplayer m"},
		{"iterations", func(c *config.Config) { c.KeyPlayer.MaxIterations = 0 }, "max_iterations"},
		{"min size", func(c *config.Config) { c.Modules.MinSize = 0 }, "min_size"},
		{"resolution", func(c *config.Config) { c.Modules.Resolution = 0 }, "resolution"},
		{"format", func(c *config.Config) { c.Report.Format = "xlsx" }, "report format"},
		{"damping", func(c *config.Config) { c.Topology.Damping = 1.5 }, "damping"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.Load("")
			require.NoError(t, err)
			tt.mutate(cfg)
			warnings := cfg.Validate()
			require.Len(t, warnings, 1)
			assert.True(t, strings.Contains(warnings[0], tt.want), warnings[0])
		})
	}
}
