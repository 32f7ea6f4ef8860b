package sweep

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"subsift/internal/action"
	"subsift/internal/decision"
	"subsift/internal/language"
	"subsift/internal/logging"
	"subsift/internal/textenc"
)

// Runner drives the sequential scan: it walks the configured roots, evaluates
// each matching subtitle file, announces actions on the report stream, and
// applies the run-wide disposition. Files are processed one at a time in
// traversal order; the only concurrency concern is the cancellation token.
type Runner struct {
	engine   *decision.Engine
	executor *action.Executor
	logger   *slog.Logger
	report   io.Writer

	stats Stats
}

// NewRunner wires a runner. The report writer receives one line per flagged
// file; diagnostics go through the logger.
func NewRunner(engine *decision.Engine, executor *action.Executor, logger *slog.Logger, report io.Writer) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{
		engine:   engine,
		executor: executor,
		logger:   logging.WithComponent(logger, "sweep"),
		report:   report,
	}
}

// Run scans every root for files ending in suffix and returns the final
// counters. Cancellation is cooperative: the token is consulted before each
// file and again inside the executor before any mutation. Whether the run was
// cancelled is visible on the token itself; the returned Stats are complete
// either way.
func (r *Runner) Run(ctx context.Context, roots []string, suffix string) Stats {
	for _, root := range roots {
		if stopped := r.walkRoot(ctx, root, suffix); stopped {
			break
		}
	}
	return r.stats
}

// walkRoot returns true when the scan should stop entirely.
func (r *Runner) walkRoot(ctx context.Context, root, suffix string) bool {
	if _, err := os.Stat(root); errors.Is(err, fs.ErrNotExist) {
		r.logger.Debug("skipping missing root", logging.String("root", root))
		return false
	}

	stopped := false
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			r.logger.Warn("cannot traverse entry", logging.String(logging.FieldPath, path), logging.Error(walkErr))
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), suffix) {
			return nil
		}
		if ctx.Err() != nil {
			r.logger.Warn("shutdown requested, stopping scan")
			stopped = true
			return fs.SkipAll
		}
		if err := r.processFile(ctx, path); errors.Is(err, action.ErrCancelled) {
			stopped = true
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		r.logger.Warn("walk aborted", logging.String("root", root), logging.Error(err))
	}
	return stopped
}

// processFile produces exactly one verdict for path and updates the counters.
// Only cancellation propagates; every other fault is isolated to this file.
func (r *Runner) processFile(ctx context.Context, path string) error {
	r.stats.Matched++

	raw, err := os.ReadFile(path)
	if err != nil {
		r.stats.Unknown++
		r.logger.Debug("unreadable subtitle", logging.String(logging.FieldPath, path), logging.Error(err))
		return nil
	}
	text, encName := textenc.Decode(raw)

	out := r.engine.Evaluate(text)
	switch out.Verdict {
	case decision.VerdictHTTPError:
		r.stats.HTTPErrors++
		return r.flag(ctx, path, fmt.Sprintf("HTTP errors: %d", out.ErrorSignatures))
	case decision.VerdictShort:
		r.stats.SkippedShort++
		r.logger.Debug("skipping short subtitle",
			logging.String(logging.FieldPath, path),
			logging.Int("chars", out.CleanedChars),
		)
	case decision.VerdictUnknown:
		r.stats.Analyzed++
		r.stats.Unknown++
		r.logger.Debug("language undetermined",
			logging.String(logging.FieldPath, path),
			logging.String("encoding", encName),
		)
	case decision.VerdictKeep:
		r.stats.Analyzed++
		r.logger.Debug("keeping subtitle",
			logging.String(logging.FieldPath, path),
			logging.String("language", out.Language),
			logging.Float64("confidence", out.Confidence),
		)
	case decision.VerdictWrongLanguage:
		r.stats.Analyzed++
		r.stats.WrongLanguage++
		reason := fmt.Sprintf("detected %s %.2f", language.DisplayName(out.Language), out.Confidence)
		return r.flag(ctx, path, reason)
	}
	return nil
}

// flag announces the action on the report stream before attempting it, so the
// report is a reliable preview even in dry-run mode. Action failures are
// logged and absorbed; cancellation is returned to stop the scan.
func (r *Runner) flag(ctx context.Context, path, reason string) error {
	fmt.Fprintf(r.report, "%s (%s): %s\n", r.executor.Disposition().Label(), reason, path)

	if !r.executor.Disposition().Mutates() {
		return nil
	}
	if err := r.executor.Apply(ctx, path); err != nil {
		if errors.Is(err, action.ErrCancelled) {
			r.logger.Warn("shutdown requested, file untouched", logging.String(logging.FieldPath, path))
			return err
		}
		r.logger.Error("could not apply action", logging.String(logging.FieldPath, path), logging.Error(err))
		return nil
	}
	r.stats.ActionsTaken++
	return nil
}
