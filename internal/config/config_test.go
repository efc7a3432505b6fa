package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{})   {}
func (nopLogger) Info(string, string, map[string]interface{})    {}
func (nopLogger) Warning(string, string, map[string]interface{}) {}
func (nopLogger) Error(string, error, map[string]interface{})    {}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		t.Fatalf("default window size must be positive: %+v", cfg.Window)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("expected default level info, got %q", cfg.Logging.Level)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "window:\n  width: 640\n  height: 480\nlogging:\n  level: debug\n")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if cfg.Window.Width != 640 || cfg.Window.Height != 480 {
		t.Fatalf("window size not loaded: %+v", cfg.Window)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("logging level not loaded: %q", cfg.Logging.Level)
	}
}

func TestLoadFilePartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "logging:\n  level: warn\n")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	def := Default()
	if cfg.Window != def.Window {
		t.Fatalf("missing window section should keep defaults: %+v", cfg.Window)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("expected warn, got %q", cfg.Logging.Level)
	}
}

func TestLoadFileNormalizesBadValues(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "window:\n  width: -10\n  height: 0\n")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if cfg.Window != Default().Window {
		t.Fatalf("invalid window values should normalize to defaults: %+v", cfg.Window)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "config.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadFileMalformed(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "window: [not a mapping\n")
	if _, err := LoadFile(path); err == nil {
		t.Fatalf("expected error for malformed yaml")
	}
}

func TestWatcherDeliversReload(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "logging:\n  level: info\n")

	w, err := NewWatcher(path, nopLogger{})
	if err != nil {
		t.Fatalf("creating watcher: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	// Give the watcher goroutine a moment to start consuming events.
	time.Sleep(100 * time.Millisecond)

	writeConfig(t, dir, "logging:\n  level: debug\n")

	select {
	case update := <-w.Updates():
		if update.Err != nil {
			t.Fatalf("unexpected reload error: %v", update.Err)
		}
		if update.Config.Logging.Level != "debug" {
			t.Fatalf("expected reloaded level debug, got %q", update.Config.Logging.Level)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("no update received after config write")
	}
}

func TestWatcherClosesOnCancel(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "logging:\n  level: info\n")

	w, err := NewWatcher(path, nopLogger{})
	if err != nil {
		t.Fatalf("creating watcher: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("watcher did not stop after cancel")
	}

	if _, ok := <-w.Updates(); ok {
		t.Fatalf("updates channel should be closed after stop")
	}
}
