package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/euclid/internal/cli/config"
	"github.com/leapstack-labs/euclid/pkg/check"
	"github.com/leapstack-labs/euclid/pkg/parser"
)

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "check <proof-file> [proof-file...]",
		Short: "Parse and check proof files",
		Long: `Parse each proof file and check its structure.

A proof passes when it parses against the grammar and its body restates
the goal (hypothesis and consequent for conditional goals). Type
assertions over numeric literals are checked against the builtin
predicates (even, odd, integer).`,
		Example: `  # Check a single proof
  euclid check double_even.prf

  # Check several proofs at once
  euclid check proofs/*.prf

  # Re-check on every save
  euclid check --watch double_even.prf`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if watch {
				return watchFiles(cmd.Context(), cmd, args)
			}
			return checkFiles(cmd.Context(), cmd, args)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-check files when they change")

	return cmd
}

// checkFiles checks all files concurrently and reports per-file results.
// The command fails if any file fails.
func checkFiles(ctx context.Context, cmd *cobra.Command, paths []string) error {
	cfg := ConfigFrom(ctx)
	logger := LoggerFrom(ctx)

	results := make([]error, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = checkFile(path, cfg, logger)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failed := 0
	for i, path := range paths {
		if results[i] != nil {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, results[i])
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: no errors were detected in the proof\n", path)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d proofs failed", failed, len(paths))
	}
	return nil
}

// checkFile parses and checks one proof file.
func checkFile(path string, cfg *config.Config, logger *slog.Logger) error {
	text, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	tokens, err := parser.Tokenize(string(text))
	if err != nil {
		return err
	}
	logger.Debug("tokenized proof", "file", path, "tokens", len(tokens))

	p := parser.NewParserWithDepth(tokens, cfg.MaxDepth)
	proof, err := p.Parse()
	if err != nil {
		return err
	}
	logger.Debug("parsed proof", "file", path, "clauses", len(proof.Clauses))

	findings := check.Check(proof)
	if len(findings) > 0 {
		return fmt.Errorf("%s", findings[0].String())
	}
	return nil
}

// watchFiles re-checks each file whenever it is written. It blocks until
// the context is canceled.
func watchFiles(ctx context.Context, cmd *cobra.Command, paths []string) error {
	if err := checkFiles(ctx, cmd, paths); err != nil {
		// Report but keep watching; the next save may fix it.
		fmt.Fprintf(cmd.ErrOrStderr(), "%v\n", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch directories, not files: editors often replace files on save,
	// which breaks per-file watches.
	watched := make(map[string]bool)
	targets := make(map[string]bool)
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		targets[abs] = true
		dir := filepath.Dir(abs)
		if !watched[dir] {
			if err := watcher.Add(dir); err != nil {
				return fmt.Errorf("failed to watch %s: %w", dir, err)
			}
			watched[dir] = true
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "watching %d file(s) for changes...\n", len(paths))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !targets[abs] {
				continue
			}
			if err := checkFiles(ctx, cmd, []string{event.Name}); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "%v\n", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "watch error: %v\n", err)
		}
	}
}
