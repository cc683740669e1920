package logging

import (
	"bytes"
	"testing"
)

func TestPrinterFrom(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).From("powertools", "ready")

	if got, want := buf.String(), "[powertools] ready\n"; got != want {
		t.Errorf("From() wrote %q, want %q", got, want)
	}
}

func TestPrinterPretty(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		flourish string
		count    int
		want     string
	}{
		{"repeated flourish", "done", "=", 3, "=== done ===\n"},
		{"single", "hi", "*", 1, "* hi *\n"},
		{"zero count", "bare", "-", 0, " bare \n"},
		{"negative count clamps", "bare", "-", -2, " bare \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewPrinter(&buf).Pretty(tt.message, tt.flourish, tt.count)
			if got := buf.String(); got != tt.want {
				t.Errorf("Pretty() wrote %q, want %q", got, tt.want)
			}
		})
	}
}
