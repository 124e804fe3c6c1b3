package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/leetup/internal/catalog"
	"github.com/roach88/leetup/internal/client"
	"github.com/roach88/leetup/internal/config"
	"github.com/roach88/leetup/internal/render"
	"github.com/roach88/leetup/internal/store"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Order   string
	Query   string
	Keyword string
	Strict  bool
	NoCache bool

	// Fetch overrides the upstream catalog source (for testing).
	// If nil, an HTTP client is built from the config.
	Fetch func(ctx context.Context) ([]catalog.Problem, error)
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List problems, filtered and ordered",
		Long: `List the problem catalog.

Query characters (-q) combine by AND; lowercase selects, uppercase negates:
  e/E easy   m/M medium   h/H hard
  l/L locked d/D done     s/S starred

Order characters (-o) apply left to right, uppercase descends:
  i/I id   t/T title   d/D difficulty

Unrecognized characters are ignored unless --strict is given. The keyword
(-k) matches as a substring of the problem's title slug.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.Order, "order", "o", "", "sort keys, e.g. 'di' or 'Ti'")
	cmd.Flags().StringVarP(&opts.Query, "query", "q", "", "filter characters, e.g. 'eD'")
	cmd.Flags().StringVarP(&opts.Keyword, "keyword", "k", "", "title slug substring")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "reject unrecognized query/order characters")
	cmd.Flags().BoolVar(&opts.NoCache, "no-cache", false, "refetch even if the cached catalog is fresh")

	return cmd
}

func runList(opts *ListOptions, out io.Writer) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}

	keys, clauses, err := parseSpecs(opts)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid list flags", err)
	}

	problems, err := loadProblems(context.Background(), cfg, opts)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to load catalog", err)
	}

	catalog.Sort(problems, keys)

	// With no clauses and no keyword the evaluator is bypassed: the
	// sorted snapshot is rendered as-is instead of being copied into a
	// filtered slice.
	listing := problems
	if len(clauses) > 0 || opts.Keyword != "" {
		listing = catalog.Filter(problems, clauses, opts.Keyword)
	}

	renderOpts := render.Options{Color: !opts.NoColor}
	if err := render.List(out, listing, renderOpts); err != nil {
		return WrapExitError(ExitFailure, "failed to render listing", err)
	}

	return nil
}

// parseSpecs parses the order and query strings, permissively by
// default, strictly under --strict.
func parseSpecs(opts *ListOptions) ([]catalog.SortKey, []catalog.Clause, error) {
	if !opts.Strict {
		return catalog.ParseOrder(opts.Order), catalog.ParseQuery(opts.Query), nil
	}

	keys, err := catalog.ParseOrderStrict(opts.Order)
	if err != nil {
		return nil, nil, err
	}
	clauses, err := catalog.ParseQueryStrict(opts.Query)
	if err != nil {
		return nil, nil, err
	}
	return keys, clauses, nil
}

// loadProblems returns the catalog snapshot, from cache when fresh,
// otherwise from upstream. A fetched snapshot is written back to the
// cache; a failed cache write is logged and the listing proceeds.
func loadProblems(ctx context.Context, cfg config.Config, opts *ListOptions) ([]catalog.Problem, error) {
	fetch := opts.Fetch
	if fetch == nil {
		fetch = client.New(client.Options{
			ProblemsURL:   cfg.ProblemsURL,
			SessionCookie: cfg.Session.Cookie,
		}).FetchProblems
	}

	ttl, err := cfg.Cache.TTLDuration()
	if err != nil {
		return nil, err
	}

	s, err := store.Open(cfg.Cache.Path)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	defer func() {
		if closeErr := s.Close(); closeErr != nil {
			slog.Error("error closing cache", "error", closeErr)
		}
	}()

	if !opts.NoCache {
		problems, fetchedAt, err := s.Get(ctx, cfg.ProblemsURL)
		switch {
		case err == nil && time.Since(fetchedAt) <= ttl:
			slog.Debug("using cached catalog", "problems", len(problems), "fetched_at", fetchedAt)
			return problems, nil
		case err == nil:
			slog.Debug("cached catalog is stale", "fetched_at", fetchedAt, "ttl", ttl)
		case !errors.Is(err, store.ErrNoSnapshot):
			return nil, fmt.Errorf("read cache: %w", err)
		}
	}

	problems, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.Put(ctx, cfg.ProblemsURL, problems, time.Now()); err != nil {
		slog.Warn("failed to cache catalog", "error", err)
	}

	return problems, nil
}
