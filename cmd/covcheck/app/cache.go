package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kevinpostal/katamari-devtools/internal/cache"
	"github.com/kevinpostal/katamari-devtools/internal/config"
	"github.com/kevinpostal/katamari-devtools/internal/logger"
)

// NewCacheCommand creates the "cache" subcommand tree.
func NewCacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the CI cache key.",
		Long: `Manage the cache key derived from the dependency lockfile and the
test-runner configuration.

The key is the first 16 hex characters of the SHA-256 digest over the
configured input files, concatenated in order. Absent input files are
skipped. CI jobs compare the stored key against a freshly derived one to
decide whether a cached artifact is still valid.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newCacheKeyCommand())
	cmd.AddCommand(newCacheCheckCommand())
	cmd.AddCommand(newCacheSaveCommand())
	cmd.AddCommand(newCacheCleanCommand())
	cmd.AddCommand(newCacheStatsCommand())

	return cmd
}

func newCacheKeyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "key",
		Short: "Derive and print the current cache key.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			key, err := cache.DeriveKey(cfg.Cache.InputFiles)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), key)
			return nil
		},
	}
}

type checkResult struct {
	Valid bool   `json:"valid"`
	Key   string `json:"key"`
}

func newCacheCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check whether the stored key matches the current inputs.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			key, err := cache.DeriveKey(cfg.Cache.InputFiles)
			if err != nil {
				return err
			}
			valid := cache.NewStore(cfg.Cache.Dir).IsValid(key)
			return printJSON(cmd, checkResult{Valid: valid, Key: key})
		},
	}
}

func newCacheSaveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Persist the current cache key.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			key, err := cache.DeriveKey(cfg.Cache.InputFiles)
			if err != nil {
				return err
			}
			if err := cache.NewStore(cfg.Cache.Dir).Save(key); err != nil {
				return err
			}
			logger.Debug("saved cache key to %s", cfg.Cache.Dir)
			fmt.Fprintln(cmd.OutOrStdout(), key)
			return nil
		},
	}
}

func newCacheCleanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove the cache directory.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			store := cache.NewStore(cfg.Cache.Dir)
			if err := store.Clean(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", store.Dir())
			return nil
		},
	}
}

func newCacheStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print cache directory statistics as JSON.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			stats, err := cache.NewStore(cfg.Cache.Dir).Stats()
			if err != nil {
				return err
			}
			return printJSON(cmd, stats)
		},
	}
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode JSON: %v\n", err)
		return err
	}
	return nil
}
