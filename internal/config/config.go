// Package config loads pyntacle settings from an optional YAML file and
// PYNTACLE_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/mazzalab/pyntacle/engine"
	"github.com/mazzalab/pyntacle/report"
)

// EnvPrefix prefixes every environment override, e.g. PYNTACLE_ENGINE_MODE.
const EnvPrefix = "PYNTACLE"

// Config holds all application configuration.
type Config struct {
	Log       LogConfig       `mapstructure:"log"`
	Engine    EngineConfig    `mapstructure:"engine"`
	KeyPlayer KeyPlayerConfig `mapstructure:"keyplayer"`
	Modules   ModulesConfig   `mapstructure:"modules"`
	Report    ReportConfig    `mapstructure:"report"`
	Topology  TopologyConfig  `mapstructure:"topology"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type EngineConfig struct {
	Mode    string `mapstructure:"mode"`
	Workers int    `mapstructure:"workers"`
}

type KeyPlayerConfig struct {
	M             int    `mapstructure:"m"`
	Seed          uint64 `mapstructure:"seed"`
	MaxIterations int    `mapstructure:"max_iterations"`
	Restarts      int    `mapstructure:"restarts"`
}

type ModulesConfig struct {
	MinSize    int     `mapstructure:"min_size"`
	Resolution float64 `mapstructure:"resolution"`
}

type ReportConfig struct {
	Format string `mapstructure:"format"`
}

type TopologyConfig struct {
	Damping float64 `mapstructure:"damping"`
}

var defaults = map[string]interface{}{
	"log.level":                "info",
	"log.format":               "text",
	"engine.mode":              "bfs",
	"engine.workers":           0,
	"keyplayer.m":              1,
	"keyplayer.seed":           1,
	"keyplayer.max_iterations": 100,
	"keyplayer.restarts":       1,
	"modules.min_size":         2,
	"modules.resolution":       1.0,
	"report.format":            "text",
	"topology.damping":         0.85,
}

// Validate checks configuration for issues and returns warnings.
func (c *Config) Validate() []string {
	var warnings []string

	if _, err := engine.ParseMode(c.Engine.Mode); err != nil {
		warnings = append(warnings, fmt.Sprintf("engine mode %q is unknown, using bfs", c.Engine.Mode))
	}
	if c.Engine.Workers < 0 {
		warnings = append(warnings, fmt.Sprintf("engine workers %d is negative, using the CPU count", c.Engine.Workers))
	}
	if c.KeyPlayer.M < 1 {
		warnings = append(warnings, fmt.Sprintf("keyplayer m %d must be at least 1", c.KeyPlayer.M))
	}
	if c.KeyPlayer.MaxIterations < 1 {
		warnings = append(warnings, fmt.Sprintf("keyplayer max_iterations %d stops the search at its start", c.KeyPlayer.MaxIterations))
	}
	if c.Modules.MinSize < 1 {
		warnings = append(warnings, fmt.Sprintf("modules min_size %d keeps every module", c.Modules.MinSize))
	}
	if c.Modules.Resolution <= 0 {
		warnings = append(warnings, fmt.Sprintf("modules resolution %.2f must be positive", c.Modules.Resolution))
	}
	if _, err := report.ParseFormat(c.Report.Format); err != nil {
		warnings = append(warnings, fmt.Sprintf("report format %q is unknown, using text", c.Report.Format))
	}
	if c.Topology.Damping <= 0 || c.Topology.Damping > 1 {
		warnings = append(warnings, fmt.Sprintf("topology damping %.2f is outside (0, 1]", c.Topology.Damping))
	}

	return warnings
}

// Load reads configuration from defaults, the file at path (skipped when
// path is empty) and the environment, in increasing precedence.
func Load(path string) (*Config, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}
