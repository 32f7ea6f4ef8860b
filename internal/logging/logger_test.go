package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"subsift/internal/logging"
)

func TestConsoleHandlerFormatsComponentPrefix(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logging.WithComponent(logger, "sweep").Info("starting scan", logging.Int("roots", 2))

	line := strings.TrimSpace(buf.String())
	if !strings.Contains(line, " INFO sweep: starting scan") {
		t.Fatalf("unexpected console line: %q", line)
	}
	if !strings.HasSuffix(line, "roots=2") {
		t.Fatalf("expected roots attr at end of line: %q", line)
	}
}

func TestConsoleHandlerQuotesValuesWithSpaces(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Warn("action failed", logging.String("reason", "permission denied"))

	if !strings.Contains(buf.String(), `reason="permission denied"`) {
		t.Fatalf("expected quoted attr value, got %q", buf.String())
	}
}

func TestConsoleHandlerHonorsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("hidden")
	logger.Debug("also hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn, got %q", buf.String())
	}
	logger.Error("visible")
	if !strings.Contains(buf.String(), "ERROR visible") {
		t.Fatalf("expected error line, got %q", buf.String())
	}
}

func TestJSONHandlerEmitsLowercaseLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Debug("probe", logging.String(logging.FieldPath, "/tmp/a.et.srt"))

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if payload["level"] != "debug" {
		t.Fatalf("unexpected level: %v", payload["level"])
	}
	if payload[logging.FieldPath] != "/tmp/a.et.srt" {
		t.Fatalf("unexpected path attr: %v", payload[logging.FieldPath])
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
