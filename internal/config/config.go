// Package config loads the tracker configuration from flag defaults, an
// optional YAML file, TRACKER_-prefixed environment variables and
// command-line flags, in increasing order of precedence.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const envPrefix = "TRACKER_"

// Config holds all tunables for the tracker.
type Config struct {
	ProgressFile string `koanf:"progress-file" validate:"required"`
	CatalogFile  string `koanf:"catalog-file" validate:"required"`
	SolutionsDir string `koanf:"solutions-dir" validate:"required"`
	Editor       string `koanf:"editor" validate:"required"`
	WeeklyGoal   int    `koanf:"weekly-goal" validate:"gt=0"`
	HistoryLimit int    `koanf:"history-limit" validate:"gt=0"`
}

// Flags defines the command-line flags with their defaults.
func Flags() *pflag.FlagSet {
	f := pflag.NewFlagSet("leetcode-tracker", pflag.ExitOnError)
	f.String("config", "", "Path to an optional YAML config file")
	f.String("progress-file", "leetcode_progress.json", "Path to the progress JSON file")
	f.String("catalog-file", "NeetCode 150 Personal List.csv", "Path to the problem catalog CSV")
	f.String("solutions-dir", "solutions", "Directory for markdown write-ups")
	f.String("editor", defaultEditor(), "Editor used to capture solution code")
	f.Int("weekly-goal", 5, "Default problems-per-week goal")
	f.Int("history-limit", 10, "Default number of history entries to show")
	return f
}

// defaultEditor honors $EDITOR, falling back to nano.
func defaultEditor() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	return "nano"
}

// Load resolves the configuration from the parsed flag set. Layering:
// flag defaults, then the YAML file (if given), then environment variables,
// then explicitly set flags.
func Load(flags *pflag.FlagSet) (Config, error) {
	k := koanf.New(".")

	if path, _ := flags.GetString("config"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	// TRACKER_PROGRESS_FILE becomes progress-file, and so on.
	envKey := func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", "-")
	}
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load environment config: %w", err)
	}

	if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load flag config: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
