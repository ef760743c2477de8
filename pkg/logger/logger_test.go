package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestInit_FirstCallWins(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	log := Init(Options{Level: "debug", Output: &buf})
	log.Debug().Msg("first")

	// A second Init must not rebuild the logger or redirect output.
	var other bytes.Buffer
	Init(Options{Level: "error", Output: &other})
	got := Get()
	got.Debug().Msg("second")

	out := buf.String()
	if !strings.Contains(out, "first") || !strings.Contains(out, "second") {
		t.Fatalf("expected both messages in first writer, got %q", out)
	}
	if other.Len() != 0 {
		t.Fatalf("second Init must be a no-op, wrote %q", other.String())
	}
}

func TestInit_LevelFiltersOutput(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	log := Init(Options{Level: "warn", Output: &buf})

	log.Info().Msg("quiet")
	log.Warn().Msg("loud")

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Fatalf("info emitted at warn level: %q", out)
	}
	if !strings.Contains(out, "loud") {
		t.Fatalf("warn missing from output: %q", out)
	}
}

func TestGet_BeforeInitPanics(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	defer func() {
		if recover() == nil {
			t.Fatalf("Get before Init must panic")
		}
	}()
	Get()
}

func TestParseLevel_UnknownFallsBackToInfo(t *testing.T) {
	for _, s := range []string{"", "verbose", "  INFO  "} {
		if got := parseLevel(s); got.String() != "info" {
			t.Fatalf("parseLevel(%q) = %s, want info", s, got)
		}
	}
}
