package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/backmassage/nametag/internal/args"
	"github.com/backmassage/nametag/internal/config"
	"github.com/backmassage/nametag/internal/display"
	"github.com/backmassage/nametag/internal/lexer"
	"github.com/backmassage/nametag/internal/logging"
	"github.com/backmassage/nametag/internal/naming"
)

// Catalog returns the lexer catalog for cfg: the default catalog, plus the
// args flag spellings as an Arg category when MatchFlags is set.
func Catalog(cfg *config.Config) (*lexer.Catalog, error) {
	if !cfg.MatchFlags {
		return lexer.DefaultCatalog(), nil
	}
	return lexer.DefaultCatalog().WithArgs(args.Spellings()...)
}

// EditsFromConfig collects the edit flags into naming.Edits.
func EditsFromConfig(cfg *config.Config) naming.Edits {
	return naming.Edits{
		YearSet:     cfg.YearSet,
		YearAppend:  cfg.YearAppend,
		LabelSet:    cfg.LabelSet,
		LabelAppend: cfg.LabelAppend,
		Date:        cfg.Date,
	}
}

// Run is the top-level batch entry point. It discovers files, plans and
// executes each rename sequentially, and returns aggregate stats. The error
// is non-nil only when the batch could not start.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) (RunStats, error) {
	var stats RunStats

	cat, err := Catalog(cfg)
	if err != nil {
		return stats, err
	}
	planner, err := naming.NewPlanner(EditsFromConfig(cfg), cat)
	if err != nil {
		return stats, err
	}

	files, err := Discover(cfg.Inputs, cfg.Recursive)
	if err != nil {
		return stats, fmt.Errorf("file discovery failed: %w", err)
	}
	stats.Total = len(files)

	// Every input owns its current path, so no rename in the batch can land
	// on a file that has not moved yet.
	resolver := naming.NewCollisionResolver()
	for _, f := range files {
		resolver.Claim(f)
	}

	log.Info("Found %d files", stats.Total)
	for i, path := range files {
		stats.Current = i + 1
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}
		processFile(cfg, log, planner, resolver, path, &stats)
	}

	logSummary(cfg, log, &stats)
	return stats, nil
}

// processFile handles one file: plan -> resolve target -> rename.
func processFile(
	cfg *config.Config,
	log *logging.Logger,
	planner *naming.Planner,
	resolver *naming.CollisionResolver,
	path string,
	stats *RunStats,
) {
	base := filepath.Base(path)
	log.Debug("[%d/%d] %s", stats.Current, stats.Total, path)

	newName := planner.Plan(base)
	if newName == base {
		log.Debug("Unchanged: %s", base)
		stats.Unchanged++
		return
	}

	target := resolver.Resolve(path, naming.TargetPath(path, newName))
	if target != naming.TargetPath(path, newName) {
		log.Warn("Target %s already claimed in this batch, using %s", newName, filepath.Base(target))
	}

	if !cfg.Force {
		exists, err := occupied(path, target)
		if err != nil {
			log.Error("Cannot check %s: %v", target, err)
			stats.Failed++
			return
		}
		if exists {
			log.Warn("Skip (exists): %s", filepath.Base(target))
			stats.Skipped++
			return
		}
	}

	if cfg.DryRun {
		log.Rename("[DRY] %s -> %s", base, filepath.Base(target))
		stats.Renamed++
		return
	}

	if err := os.Rename(path, target); err != nil {
		log.Error("Rename failed: %v", err)
		stats.Failed++
		return
	}
	log.Rename("%s -> %s", base, filepath.Base(target))
	stats.Renamed++
}

// occupied reports whether target exists as a different file than source.
// A case-only rename on a case-insensitive filesystem is not a conflict.
func occupied(source, target string) (bool, error) {
	ti, err := os.Stat(target)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	si, err := os.Stat(source)
	if err != nil {
		return false, err
	}
	return !os.SameFile(si, ti), nil
}

// Inspect writes the token table of every input to w. Inputs are treated
// as plain strings, so they need not exist on disk.
func Inspect(cfg *config.Config, w io.Writer) error {
	cat, err := Catalog(cfg)
	if err != nil {
		return err
	}
	for i, in := range cfg.Inputs {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := display.WriteTokenTable(w, in, cat.Tokenize(in).Collect()); err != nil {
			return err
		}
	}
	return nil
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	verb := "renamed"
	if cfg.DryRun {
		verb = "would rename"
	}
	log.Info("Done: %d %s, %d unchanged, %d skipped, %d failed",
		stats.Renamed, verb, stats.Unchanged, stats.Skipped, stats.Failed)
	if stats.Processed() < stats.Total {
		log.Warn("  %d of %d files not processed", stats.Total-stats.Processed(), stats.Total)
	}
}
