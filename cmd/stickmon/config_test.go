package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/BrandonKowalski/stickmap/pkg/stickmap/constants"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(nil)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}

	if cfg.Device != "/dev/input/event0" || cfg.LogLevel != "info" || cfg.InitialSet != 0 || cfg.Grab || cfg.Debug {
		t.Errorf("defaults = %+v", cfg)
	}
}

func TestLoadConfigFlags(t *testing.T) {
	cfg, err := loadConfig([]string{"--device", "/dev/input/event7", "--set", "3", "--lang", "de", "--grab", "--debug"})
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}

	if cfg.Device != "/dev/input/event7" || cfg.InitialSet != 3 || cfg.Language != "de" || !cfg.Grab || !cfg.Debug {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadConfigEnvironment(t *testing.T) {
	t.Setenv("STICKMAP_LOG_LEVEL", "debug")
	t.Setenv("STICKMAP_DEVICE", "/dev/input/event3")

	cfg, err := loadConfig([]string{"--device", "/dev/input/event9"})
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.Device != "/dev/input/event9" {
		t.Errorf("flags should win over the environment, got %q", cfg.Device)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stickmon.toml")
	data := "log-level = \"warn\"\nset = 5\nprofile = \"/etc/stickmap/shooter.toml\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig([]string{"--config", path})
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}

	if cfg.LogLevel != "warn" || cfg.InitialSet != 5 || cfg.Profile != "/etc/stickmap/shooter.toml" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"set too large", []string{"--set", "8"}},
		{"negative set", []string{"--set=-1"}},
		{"unknown flag", []string{"--sticks", "2"}},
		{"missing config", []string{"--config", filepath.Join(t.TempDir(), "missing.toml")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := loadConfig(tt.args); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestNewSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.toml")
	profile := `
[[stick]]
index = 1

  [[stick.button]]
  direction = "left"
  slots = ["key:q"]
  set_selection = 2
  set_condition = "while-held"
`
	if err := os.WriteFile(path, []byte(profile), 0o644); err != nil {
		t.Fatal(err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sticks, switcher, err := newSession(config{Profile: path, InitialSet: 1}, logger)
	if err != nil {
		t.Fatalf("newSession() error: %v", err)
	}
	if len(sticks) != 2 {
		t.Fatalf("len(sticks) = %d, want 2", len(sticks))
	}

	sticks[1].Update(-32767, 0)
	if switcher.Active() != 2 {
		t.Errorf("holding left: active = %d, want 2", switcher.Active())
	}
	if got := sticks[1].Button(constants.DirectionLeft).CalculatedActiveZoneSummary(); got != "Q" {
		t.Errorf("summary = %q, want Q", got)
	}

	sticks[1].Update(0, 0)
	if switcher.Active() != 1 {
		t.Errorf("released: active = %d, want 1", switcher.Active())
	}

	if _, _, err := newSession(config{Profile: filepath.Join(t.TempDir(), "missing.toml")}, logger); err == nil {
		t.Error("missing profile should fail")
	}
}
