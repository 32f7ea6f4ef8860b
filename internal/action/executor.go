package action

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrCancelled marks an action aborted by shutdown before it touched the
// filesystem. Callers distinguish it from real action failures with errors.Is.
var ErrCancelled = errors.New("action cancelled by shutdown")

// Disposition selects what happens to a flagged file. It is chosen once per
// run by configuration, never per file.
type Disposition int

const (
	// DryRun reports what would happen without mutating the filesystem.
	DryRun Disposition = iota
	// Delete removes the flagged file.
	Delete
	// Quarantine moves the flagged file into a holding directory for review.
	Quarantine
)

// Label returns the report-stream label announced before the action.
func (d Disposition) Label() string {
	switch d {
	case Delete:
		return "DELETE"
	case Quarantine:
		return "QUARANTINE"
	default:
		return "DRYRUN"
	}
}

// Mutates reports whether applying the disposition changes the filesystem.
func (d Disposition) Mutates() bool {
	return d == Delete || d == Quarantine
}

// Executor applies one run-wide disposition to flagged files.
type Executor struct {
	disposition   Disposition
	quarantineDir string
}

// NewExecutor builds an executor. quarantineDir is only consulted for the
// Quarantine disposition and is created on demand.
func NewExecutor(disposition Disposition, quarantineDir string) *Executor {
	return &Executor{disposition: disposition, quarantineDir: quarantineDir}
}

// Disposition returns the run-wide disposition.
func (e *Executor) Disposition() Disposition {
	return e.disposition
}

// Apply performs the configured action on path. The cancellation token is
// checked before any mutation; once shutdown is requested no file is touched
// and ErrCancelled is returned. DryRun is always a no-op.
func (e *Executor) Apply(ctx context.Context, path string) error {
	if e.disposition == DryRun {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %s untouched", ErrCancelled, path)
	}
	switch e.disposition {
	case Delete:
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("delete %s: %w", path, err)
		}
		return nil
	case Quarantine:
		return e.quarantine(path)
	default:
		return fmt.Errorf("unknown disposition %d", e.disposition)
	}
}

// quarantine renames path into the quarantine directory. The original
// filename is preserved unless it collides with an existing entry, in which
// case a numeric disambiguator is inserted before the final suffix and
// incremented until a free name is found. Rename keeps the move atomic on the
// same filesystem; an existing file is never overwritten.
func (e *Executor) quarantine(path string) error {
	if err := os.MkdirAll(e.quarantineDir, 0o755); err != nil {
		return fmt.Errorf("create quarantine directory %s: %w", e.quarantineDir, err)
	}
	target, err := freeTarget(e.quarantineDir, filepath.Base(path))
	if err != nil {
		return err
	}
	if err := os.Rename(path, target); err != nil {
		return fmt.Errorf("quarantine %s: %w", path, err)
	}
	return nil
}

func freeTarget(dir, name string) (string, error) {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	candidate := filepath.Join(dir, name)
	for i := 1; ; i++ {
		_, err := os.Lstat(candidate)
		if errors.Is(err, fs.ErrNotExist) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("probe quarantine target %s: %w", candidate, err)
		}
		candidate = filepath.Join(dir, fmt.Sprintf("%s.%d%s", stem, i, ext))
	}
}
