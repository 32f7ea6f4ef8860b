package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"subsift/internal/action"
	"subsift/internal/config"
	"subsift/internal/decision"
	"subsift/internal/detect"
	"subsift/internal/language"
	"subsift/internal/logging"
	"subsift/internal/sweep"
)

// errInterrupted marks a run stopped by SIGINT or SIGTERM. main maps it to
// exit code 130; the summary has already been printed by then.
var errInterrupted = errors.New("scan interrupted by shutdown signal")

func newScanCommand(ctx *commandContext) *cobra.Command {
	var (
		roots         []string
		suffix        string
		minChars      int
		minConfidence float64
		doDelete      bool
		quarantineDir string
		verbose       bool
	)

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan directories and act on subtitle files that fail verification",
		Long: `Scan recursively walks the given roots, matches files by suffix, and
verifies each one. Without --delete or --quarantine every run is a dry run:
flagged files are reported but left in place, and the report is an exact
preview of what a real run would do.

Examples:
  subsift scan --root /media/tv --root /media/movies
  subsift scan --root /media/tv --quarantine /tmp/bad_subs
  subsift scan --root /media/tv --delete --min-confidence 0.8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			if err := applyScanFlags(cmd, cfg, roots, suffix, minChars, minConfidence, doDelete, quarantineDir); err != nil {
				return err
			}
			if len(cfg.Scan.Roots) == 0 {
				return errors.New("no roots to scan; pass --root or set scan.roots in the config file")
			}

			level := cfg.Logging.Level
			if verbose {
				level = "debug"
			}
			logger, err := logging.New(logging.Options{Level: level, Format: cfg.Logging.Format})
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}
			logger = logger.With(logging.String(logging.FieldRunID, uuid.NewString()))

			unlock, err := acquireRunLock(cfg)
			if err != nil {
				return err
			}
			defer unlock()

			detector, err := detect.NewLingua(cfg.Detector.Candidates)
			if err != nil {
				return fmt.Errorf("build language detector: %w", err)
			}

			engine := decision.NewEngine(detector, cfg.Detector.Target, cfg.Scan.MinChars, cfg.Scan.MinConfidence)
			executor := action.NewExecutor(disposition(cfg), cfg.Scan.QuarantineDir)
			runner := sweep.NewRunner(engine, executor, logger, cmd.OutOrStdout())

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			logger.Info("starting scan",
				logging.Int("roots", len(cfg.Scan.Roots)),
				logging.String("suffix", cfg.Scan.Suffix),
				logging.String("target", cfg.Detector.Target),
				logging.String("disposition", disposition(cfg).Label()),
			)

			stats := runner.Run(runCtx, cfg.Scan.Roots, cfg.Scan.Suffix)

			// The summary renders no matter how the run ended.
			printSummary(cmd.OutOrStdout(), stats, language.DisplayName(cfg.Detector.Target))

			if runCtx.Err() != nil {
				return errInterrupted
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&roots, "root", nil, "Root directory to scan (repeatable)")
	cmd.Flags().StringVar(&suffix, "suffix", "", "File suffix to match (default from config)")
	cmd.Flags().IntVar(&minChars, "min-chars", 0, "Minimum cleaned text length needed for detection")
	cmd.Flags().Float64Var(&minConfidence, "min-confidence", 0, "Minimum confidence to trust a detection")
	cmd.Flags().BoolVar(&doDelete, "delete", false, "Delete flagged files instead of dry-running")
	cmd.Flags().StringVar(&quarantineDir, "quarantine", "", "Move flagged files here instead of deleting")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log per-file details")

	return cmd
}

// applyScanFlags overlays explicitly set flags onto the loaded configuration
// and re-validates the result.
func applyScanFlags(cmd *cobra.Command, cfg *config.Config, roots []string, suffix string, minChars int, minConfidence float64, doDelete bool, quarantineDir string) error {
	if len(roots) > 0 {
		expanded := make([]string, 0, len(roots))
		for _, root := range roots {
			path, err := config.ExpandPath(root)
			if err != nil {
				return fmt.Errorf("resolve root %q: %w", root, err)
			}
			expanded = append(expanded, path)
		}
		cfg.Scan.Roots = expanded
	}
	if cmd.Flags().Changed("suffix") {
		cfg.Scan.Suffix = suffix
	}
	if cmd.Flags().Changed("min-chars") {
		cfg.Scan.MinChars = minChars
	}
	if cmd.Flags().Changed("min-confidence") {
		cfg.Scan.MinConfidence = minConfidence
	}
	if cmd.Flags().Changed("delete") {
		cfg.Scan.Delete = doDelete
	}
	if cmd.Flags().Changed("quarantine") {
		path, err := config.ExpandPath(quarantineDir)
		if err != nil {
			return fmt.Errorf("resolve quarantine directory: %w", err)
		}
		cfg.Scan.QuarantineDir = path
	}
	return cfg.Validate()
}

// disposition maps run configuration to the file action: a quarantine
// directory always wins over delete, and with neither the run is a dry run.
func disposition(cfg *config.Config) action.Disposition {
	switch {
	case cfg.Scan.QuarantineDir != "":
		return action.Quarantine
	case cfg.Scan.Delete:
		return action.Delete
	default:
		return action.DryRun
	}
}

// acquireRunLock takes the single-instance lock so overlapping cron
// invocations cannot both mutate the tree. The returned func releases it.
func acquireRunLock(cfg *config.Config) (func(), error) {
	if err := os.MkdirAll(cfg.Paths.LockDir, 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory %q: %w", cfg.Paths.LockDir, err)
	}
	lockPath := filepath.Join(cfg.Paths.LockDir, "subsift.lock")
	lock := flock.New(lockPath)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("another subsift run is already active (lock %s)", lockPath)
	}
	return func() { _ = lock.Unlock() }, nil
}
