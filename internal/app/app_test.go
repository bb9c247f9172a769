package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/christoffel/internal/flow"
	"github.com/five82/christoffel/internal/logtail"
	"github.com/five82/christoffel/internal/menu"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestNewLogger_WritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "christoffel.log")

	logger, closeLog, err := NewLogger(path, false)
	if err != nil {
		t.Fatalf("NewLogger returned error: %v", err)
	}
	logger.Infow("dish added", "name", "Tea")
	logger.Debugw("navigate", "to", "list")
	closeLog()

	lines, err := logtail.Read(path, 0)
	if err != nil {
		t.Fatalf("logtail.Read returned error: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("got %d log lines, want 1 (debug suppressed): %v", len(lines), lines)
	}

	rec, ok := logtail.Parse(lines[0])
	if !ok {
		t.Fatalf("log line is not JSON: %q", lines[0])
	}
	if rec.Level != "INFO" || rec.Message != "dish added" {
		t.Fatalf("record = %+v, want INFO dish added", rec)
	}
	if rec.Time == "" {
		t.Fatalf("record has no timestamp")
	}
	if !strings.Contains(rec.String(), "name=Tea") {
		t.Fatalf("record %q missing name=Tea", rec.String())
	}
}

func TestNewLogger_DebugLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "christoffel.log")

	logger, closeLog, err := NewLogger(path, true)
	if err != nil {
		t.Fatalf("NewLogger returned error: %v", err)
	}
	logger.Debugw("navigate", "to", "list")
	closeLog()

	lines, err := logtail.Read(path, 0)
	if err != nil {
		t.Fatalf("logtail.Read returned error: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("got %d log lines, want 1", len(lines))
	}
}

func TestSetup_WiresDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	logDir := filepath.Join(t.TempDir(), "logs")
	cfgPath := writeConfig(t, "restaurant_name = \"Chef's Table\"\nlog_dir = \""+filepath.ToSlash(logDir)+"\"\n")

	rt, err := setup(Options{ConfigPath: cfgPath, PrefsPath: filepath.Join(t.TempDir(), "prefs.toml")})
	if err != nil {
		t.Fatalf("setup returned error: %v", err)
	}
	defer rt.closeLog()

	if rt.cfg.RestaurantName != "Chef's Table" {
		t.Fatalf("RestaurantName = %q, want Chef's Table", rt.cfg.RestaurantName)
	}
	if rt.prefs.Theme != "Christoffel" {
		t.Fatalf("Theme = %q, want Christoffel", rt.prefs.Theme)
	}
	if got := rt.store.Snapshot().Len(); got != 3 {
		t.Fatalf("store len = %d, want 3", got)
	}
	if got := rt.flow.Screen(); got != flow.ScreenWelcome {
		t.Fatalf("screen = %v, want welcome", got)
	}

	// Store mutations land in the activity log.
	d, err := menu.Build(menu.Entry{Name: "Tea", Description: "Hot", Category: "Starter", Price: "45"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	rt.store.Append(d)
	rt.closeLog()

	lines, err := logtail.Read(filepath.Join(logDir, "christoffel.log"), 0)
	if err != nil {
		t.Fatalf("logtail.Read returned error: %v", err)
	}
	found := false
	for _, line := range lines {
		if rec, ok := logtail.Parse(line); ok && rec.Message == "dish added" {
			found = true
		}
	}
	if !found {
		t.Fatalf("activity log missing dish added: %v", lines)
	}
}

func TestSetup_InvalidConfigFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfgPath := writeConfig(t, "tagline = [")

	_, err := setup(Options{ConfigPath: cfgPath})
	if err == nil {
		t.Fatalf("setup returned nil error, want error")
	}
	if !strings.Contains(err.Error(), "load config") {
		t.Fatalf("error = %q, want load config context", err.Error())
	}
}
