package sweep_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"subsift/internal/action"
	"subsift/internal/decision"
	"subsift/internal/detect"
	"subsift/internal/logging"
	"subsift/internal/sweep"
	"subsift/internal/testsupport"
)

type stubDetector struct {
	fn func(text string) (detect.Result, bool)
}

func (s stubDetector) Detect(text string) (detect.Result, bool) {
	return s.fn(text)
}

func fixedDetector(lang string, confidence float64) detect.Detector {
	return stubDetector{fn: func(string) (detect.Result, bool) {
		return detect.Result{Language: lang, Confidence: confidence}, true
	}}
}

func newRunner(detector detect.Detector, executor *action.Executor, report *bytes.Buffer) *sweep.Runner {
	engine := decision.NewEngine(detector, "et", 200, 0.70)
	return sweep.NewRunner(engine, executor, logging.NewNop(), report)
}

func TestRunKeepsTargetLanguageFile(t *testing.T) {
	dir := t.TempDir()
	content := testsupport.SRTCues("<i>Tere</i> [kõik]", 30)
	path := testsupport.WriteFile(t, dir, "show/episode.et.srt", content)

	var report bytes.Buffer
	runner := newRunner(fixedDetector("et", 0.95), action.NewExecutor(action.Delete, ""), &report)
	stats := runner.Run(context.Background(), []string{dir}, ".et.srt")

	if report.Len() != 0 {
		t.Fatalf("keep verdict must not produce report lines, got %q", report.String())
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("kept file must remain: %v", err)
	}
	want := sweep.Stats{Matched: 1, Analyzed: 1}
	if stats != want {
		t.Fatalf("stats = %+v, want %+v", stats, want)
	}
}

func TestRunDeletesHTTPErrorPage(t *testing.T) {
	dir := t.TempDir()
	path := testsupport.WriteFile(t, dir, "movie.et.srt",
		"503 Service Unavailable ... 503 Service Unavailable")

	var report bytes.Buffer
	runner := newRunner(fixedDetector("et", 0.99), action.NewExecutor(action.Delete, ""), &report)
	stats := runner.Run(context.Background(), []string{dir}, ".et.srt")

	line := strings.TrimSpace(report.String())
	if line != "DELETE (HTTP errors: 2): "+path {
		t.Fatalf("unexpected report line: %q", line)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected file deleted, stat err = %v", err)
	}
	want := sweep.Stats{Matched: 1, HTTPErrors: 1, ActionsTaken: 1}
	if stats != want {
		t.Fatalf("stats = %+v, want %+v", stats, want)
	}
}

func TestRunQuarantinesWrongLanguage(t *testing.T) {
	dir := t.TempDir()
	quarantine := filepath.Join(dir, "quarantine")
	content := testsupport.SRTCues("Добрый вечер, дорогие друзья", 30)
	path := testsupport.WriteFile(t, dir, "movie.et.srt", content)

	var report bytes.Buffer
	runner := newRunner(fixedDetector("ru", 0.93), action.NewExecutor(action.Quarantine, quarantine), &report)
	stats := runner.Run(context.Background(), []string{dir}, ".et.srt")

	line := strings.TrimSpace(report.String())
	if line != "QUARANTINE (detected Russian 0.93): "+path {
		t.Fatalf("unexpected report line: %q", line)
	}
	if _, err := os.Stat(filepath.Join(quarantine, "movie.et.srt")); err != nil {
		t.Fatalf("expected quarantined file: %v", err)
	}
	want := sweep.Stats{Matched: 1, Analyzed: 1, WrongLanguage: 1, ActionsTaken: 1}
	if stats != want {
		t.Fatalf("stats = %+v, want %+v", stats, want)
	}
}

func TestRunDryRunReportsWithoutMutating(t *testing.T) {
	dir := t.TempDir()
	content := testsupport.SRTCues("Good evening everyone, welcome back", 30)
	path := testsupport.WriteFile(t, dir, "movie.et.srt", content)

	var report bytes.Buffer
	runner := newRunner(fixedDetector("en", 0.97), action.NewExecutor(action.DryRun, ""), &report)
	stats := runner.Run(context.Background(), []string{dir}, ".et.srt")

	if !strings.HasPrefix(report.String(), "DRYRUN (detected English 0.97): ") {
		t.Fatalf("unexpected report line: %q", report.String())
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("dry run must not mutate: %v", err)
	}
	if stats.ActionsTaken != 0 {
		t.Fatalf("dry run took %d actions", stats.ActionsTaken)
	}
}

func TestRunSkipsShortAndCountsUnknown(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFile(t, dir, "short.et.srt", testsupport.SRTCues("Tere", 2))
	testsupport.WriteFile(t, dir, "odd.et.srt", testsupport.SRTCues("mmmm hmm mmm hmm", 30))

	abstainer := stubDetector{fn: func(string) (detect.Result, bool) {
		return detect.Result{}, false
	}}
	var report bytes.Buffer
	runner := newRunner(abstainer, action.NewExecutor(action.Delete, ""), &report)
	stats := runner.Run(context.Background(), []string{dir}, ".et.srt")

	want := sweep.Stats{Matched: 2, Analyzed: 1, SkippedShort: 1, Unknown: 1}
	if stats != want {
		t.Fatalf("stats = %+v, want %+v", stats, want)
	}
	if report.Len() != 0 {
		t.Fatalf("short/unknown verdicts must not produce report lines, got %q", report.String())
	}
}

func TestRunIgnoresNonMatchingSuffixesAndMissingRoots(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFile(t, dir, "movie.en.srt", "503 Service Unavailable 503 Service Unavailable")
	testsupport.WriteFile(t, dir, "notes.txt", "503 Service Unavailable 503 Service Unavailable")

	var report bytes.Buffer
	runner := newRunner(fixedDetector("et", 1), action.NewExecutor(action.DryRun, ""), &report)
	stats := runner.Run(context.Background(), []string{dir, filepath.Join(dir, "absent")}, ".et.srt")

	if stats.Matched != 0 {
		t.Fatalf("expected no matches, got %+v", stats)
	}
}

func TestRunStopsBeforeFirstFileWhenCancelled(t *testing.T) {
	dir := t.TempDir()
	path := testsupport.WriteFile(t, dir, "movie.et.srt",
		"503 Service Unavailable 503 Service Unavailable")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var report bytes.Buffer
	runner := newRunner(fixedDetector("et", 1), action.NewExecutor(action.Delete, ""), &report)
	stats := runner.Run(ctx, []string{dir}, ".et.srt")

	if stats.Matched != 0 {
		t.Fatalf("cancelled run must not start new files, stats = %+v", stats)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("file must be untouched after cancellation: %v", err)
	}
}

func TestRunStopsMidScanWhenCancelledDuringDetection(t *testing.T) {
	dir := t.TempDir()
	content := testsupport.SRTCues("Guten Abend, meine Damen und Herren", 30)
	first := testsupport.WriteFile(t, dir, "a/movie.et.srt", content)
	second := testsupport.WriteFile(t, dir, "b/movie.et.srt", content)

	ctx, cancel := context.WithCancel(context.Background())
	// The signal arrives while the first file is being classified: the
	// executor must refuse the mutation and the scan must stop.
	trigger := stubDetector{fn: func(string) (detect.Result, bool) {
		cancel()
		return detect.Result{Language: "de", Confidence: 0.9}, true
	}}

	var report bytes.Buffer
	runner := newRunner(trigger, action.NewExecutor(action.Delete, ""), &report)
	stats := runner.Run(ctx, []string{dir}, ".et.srt")

	if _, err := os.Stat(first); err != nil {
		t.Fatalf("first file must survive the cancelled action: %v", err)
	}
	if _, err := os.Stat(second); err != nil {
		t.Fatalf("second file must never be reached: %v", err)
	}
	if stats.ActionsTaken != 0 {
		t.Fatalf("no action may complete after cancellation, stats = %+v", stats)
	}
	if stats.Matched != 1 {
		t.Fatalf("expected scan to stop after the first file, stats = %+v", stats)
	}
	// The announcement still precedes the attempted action.
	if !strings.HasPrefix(report.String(), "DELETE (detected German 0.90): ") {
		t.Fatalf("unexpected report line: %q", report.String())
	}
}

func TestRunContinuesAfterActionFailure(t *testing.T) {
	dir := t.TempDir()
	// A file where the quarantine directory should be makes MkdirAll fail.
	blocked := testsupport.WriteFile(t, dir, "quarantine", "not a directory")
	content := testsupport.SRTCues("Hyvää iltaa kaikille katsojille", 30)
	testsupport.WriteFile(t, dir, "a.et.srt", content)
	testsupport.WriteFile(t, dir, "b.et.srt", content)

	var report bytes.Buffer
	runner := newRunner(fixedDetector("fi", 0.88), action.NewExecutor(action.Quarantine, blocked), &report)
	stats := runner.Run(context.Background(), []string{dir}, ".et.srt")

	if stats.Matched != 2 || stats.WrongLanguage != 2 {
		t.Fatalf("both files must be processed despite failures, stats = %+v", stats)
	}
	if stats.ActionsTaken != 0 {
		t.Fatalf("failed actions must not count as taken, stats = %+v", stats)
	}
	if got := strings.Count(report.String(), "QUARANTINE "); got != 2 {
		t.Fatalf("expected 2 report lines, got %d in %q", got, report.String())
	}
}

func TestStatsRowsFixedOrder(t *testing.T) {
	stats := sweep.Stats{Matched: 7, Analyzed: 5, SkippedShort: 1, Unknown: 1, HTTPErrors: 2, WrongLanguage: 3, ActionsTaken: 4}
	rows := stats.Rows("Estonian")

	wantLabels := []string{
		"matched files",
		"analysed (>= min chars)",
		"skipped short",
		"unknown/unreadable",
		"HTTP errors (>= 2)",
		"not Estonian",
		"actions taken",
	}
	if len(rows) != len(wantLabels) {
		t.Fatalf("expected %d rows, got %d", len(wantLabels), len(rows))
	}
	for i, label := range wantLabels {
		if rows[i][0] != label {
			t.Fatalf("row %d label = %q, want %q", i, rows[i][0], label)
		}
	}
	if rows[0][1] != "7" || rows[6][1] != "4" {
		t.Fatalf("unexpected counter values: %v", rows)
	}
}
