package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/leetup/internal/config"
	"github.com/roach88/leetup/internal/store"
)

// NewCacheCommand creates the cache command group.
func NewCacheCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the catalog cache",
	}

	cmd.AddCommand(newCacheStatusCommand(rootOpts))
	cmd.AddCommand(newCacheClearCommand(rootOpts))

	return cmd
}

func newCacheStatusCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show cached snapshot age and size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCache(rootOpts, func(ctx context.Context, cfg config.Config, s *store.Store) error {
				problems, fetchedAt, err := s.Get(ctx, cfg.ProblemsURL)
				if errors.Is(err, store.ErrNoSnapshot) {
					fmt.Fprintln(cmd.OutOrStdout(), "cache is empty")
					return nil
				}
				if err != nil {
					return WrapExitError(ExitFailure, "failed to read cache", err)
				}

				ttl, err := cfg.Cache.TTLDuration()
				if err != nil {
					return WrapExitError(ExitCommandError, "invalid config", err)
				}

				freshness := "fresh"
				if time.Since(fetchedAt) > ttl {
					freshness = "stale"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d problems, fetched %s (%s, ttl %s)\n",
					len(problems), fetchedAt.Format(time.RFC3339), freshness, ttl)
				return nil
			})
		},
	}
}

func newCacheClearCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Drop the cached snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCache(rootOpts, func(ctx context.Context, cfg config.Config, s *store.Store) error {
				if err := s.Clear(ctx, cfg.ProblemsURL); err != nil {
					return WrapExitError(ExitFailure, "failed to clear cache", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "cache cleared")
				return nil
			})
		},
	}
}

// withCache loads the config, opens the cache store, and hands both to
// fn, closing the store afterwards.
func withCache(rootOpts *RootOptions, fn func(context.Context, config.Config, *store.Store) error) error {
	cfg, err := config.Load(rootOpts.ConfigPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}

	s, err := store.Open(cfg.Cache.Path)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to open cache", err)
	}
	defer s.Close()

	return fn(context.Background(), cfg, s)
}
