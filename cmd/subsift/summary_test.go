package main

import (
	"bytes"
	"strings"
	"testing"

	"subsift/internal/sweep"
)

func TestPrintSummaryPlainFormat(t *testing.T) {
	var buf bytes.Buffer
	stats := sweep.Stats{Matched: 12, Analyzed: 9, SkippedShort: 2, Unknown: 1, HTTPErrors: 3, WrongLanguage: 4, ActionsTaken: 7}

	printSummary(&buf, stats, "Estonian")

	want := strings.Join([]string{
		"",
		"Summary",
		"  matched files: 12",
		"  analysed (>= min chars): 9",
		"  skipped short: 2",
		"  unknown/unreadable: 1",
		"  HTTP errors (>= 2): 3",
		"  not Estonian: 4",
		"  actions taken: 7",
		"",
	}, "\n")
	if buf.String() != want {
		t.Fatalf("summary mismatch:\ngot:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestPrintSummaryZeroCounters(t *testing.T) {
	var buf bytes.Buffer
	printSummary(&buf, sweep.Stats{}, "Estonian")

	if !strings.Contains(buf.String(), "matched files: 0") {
		t.Fatalf("expected zero counters rendered, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "actions taken: 0") {
		t.Fatalf("expected actions counter rendered, got %q", buf.String())
	}
}

func TestIsTerminalFalseForBuffer(t *testing.T) {
	if isTerminal(&bytes.Buffer{}) {
		t.Fatal("plain buffer must not look like a terminal")
	}
}
