package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "console", Output: &buf})
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("hello", "key", "value")
	line := buf.String()
	if !strings.Contains(line, "INFO") {
		t.Errorf("line %q missing level", line)
	}
	if !strings.Contains(line, "hello") {
		t.Errorf("line %q missing message", line)
	}
	if !strings.Contains(line, "key=value") {
		t.Errorf("line %q missing attribute", line)
	}
}

func TestNewConsoleQuotesSpacedValues(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Format: "console", Output: &buf})
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("msg", "path", "/tmp/with space")
	if !strings.Contains(buf.String(), `path="/tmp/with space"`) {
		t.Errorf("line %q should quote values containing spaces", buf.String())
	}
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: "json", Output: &buf})
	if err != nil {
		t.Fatal(err)
	}

	logger.Debug("structured", "count", 3)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if record["msg"] != "structured" {
		t.Errorf("msg = %v, want structured", record["msg"])
	}
	if record["level"] != "debug" {
		t.Errorf("level = %v, want debug", record["level"])
	}
}

func TestNewUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Format: "console", Output: &buf})
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("quiet")
	if buf.Len() != 0 {
		t.Errorf("info record leaked past warn level: %q", buf.String())
	}

	logger.Warn("loud")
	if !strings.Contains(buf.String(), "loud") {
		t.Error("warn record was dropped")
	}
}

func TestNewNopDiscards(t *testing.T) {
	// Must not panic and must report disabled at every level.
	logger := NewNop()
	logger.Info("into the void")
	if logger.Enabled(t.Context(), 0) {
		t.Error("nop logger should be disabled")
	}
}

func TestWithAttrsCarriesForward(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Format: "console", Output: &buf})
	if err != nil {
		t.Fatal(err)
	}

	logger.With("component", "test").Info("tagged")
	if !strings.Contains(buf.String(), "component=test") {
		t.Errorf("line %q missing carried attribute", buf.String())
	}
}
