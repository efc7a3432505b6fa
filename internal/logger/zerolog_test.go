package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestZerologAdapterTagsComponent(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.DebugLevel)

	log.Info("Controller", "intent handled", map[string]interface{}{
		"intent": "up",
		"tempo":  121,
	})

	out := buf.String()
	for _, want := range []string{`"component":"Controller"`, `"intent":"up"`, `"tempo":121`, "intent handled"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output missing %q: %s", want, out)
		}
	}
}

func TestZerologAdapterLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.InfoLevel)

	log.Debug("Controller", "should be dropped", nil)
	if buf.Len() != 0 {
		t.Fatalf("debug message emitted at info level: %s", buf.String())
	}

	log.SetLevel(zerolog.DebugLevel)
	log.Debug("Controller", "now visible", nil)
	if !strings.Contains(buf.String(), "now visible") {
		t.Fatalf("debug message missing after SetLevel: %s", buf.String())
	}
}

func TestZerologAdapterError(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.DebugLevel)

	log.Error("ConfigLoader", errors.New("no such file"), nil)
	if !strings.Contains(buf.String(), "no such file") {
		t.Fatalf("error detail missing: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"info":    zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLevelFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("DEBUG", "1")
	if got := LevelFromEnv(); got != zerolog.ErrorLevel {
		t.Fatalf("LOG_LEVEL should win, got %v", got)
	}

	t.Setenv("LOG_LEVEL", "")
	if got := LevelFromEnv(); got != zerolog.DebugLevel {
		t.Fatalf("DEBUG=1 should select debug, got %v", got)
	}
}
