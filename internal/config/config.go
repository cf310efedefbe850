// Package config loads the covcheck configuration with viper, applying
// documented defaults so the tool runs without any config file present.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// ThresholdConfig holds the minimum percentage per coverage metric.
type ThresholdConfig struct {
	Lines      int `mapstructure:"lines"`
	Statements int `mapstructure:"statements"`
	Functions  int `mapstructure:"functions"`
	Branches   int `mapstructure:"branches"`
}

// ReportConfig locates the two coverage artifacts.
type ReportConfig struct {
	SummaryPath string `mapstructure:"summary_path"`
	DetailPath  string `mapstructure:"detail_path"`
}

// CacheConfig drives the cache-key manager: where the key lives and which
// files feed the hash. The input list is policy: renaming the test-runner
// config without updating it silently changes the key.
type CacheConfig struct {
	Dir        string   `mapstructure:"dir"`
	InputFiles []string `mapstructure:"input_files"`
}

// Config is the root configuration record, threaded explicitly through
// the command constructors.
type Config struct {
	Report     ReportConfig    `mapstructure:"report"`
	Thresholds ThresholdConfig `mapstructure:"thresholds"`
	Cache      CacheConfig     `mapstructure:"cache"`
	Enforce    bool            `mapstructure:"enforce"`
	BarWidth   int             `mapstructure:"bar_width"`
	LogLevel   string          `mapstructure:"log_level"`
}

// LoadConfig reads covcheck.yaml from the working directory or a configs
// subdirectory (with parent-directory fallbacks so tests run from package
// directories still find it). A missing file is not an error: defaults
// apply.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("covcheck")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("configs")
	v.AddConfigPath("../configs")
	v.AddConfigPath("../../configs")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("report.summary_path", "coverage/coverage-summary.json")
	v.SetDefault("report.detail_path", "coverage/coverage-final.json")
	v.SetDefault("thresholds.lines", 80)
	v.SetDefault("thresholds.statements", 80)
	v.SetDefault("thresholds.functions", 80)
	v.SetDefault("thresholds.branches", 80)
	v.SetDefault("cache.dir", ".cache")
	v.SetDefault("cache.input_files", []string{"package-lock.json", "vitest.config.js"})
	v.SetDefault("enforce", false)
	v.SetDefault("bar_width", 20)
	v.SetDefault("log_level", "info")
}
