package app

import (
	"flag"
	"strings"
	"testing"
)

func TestConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	if cfg.Width != 1280 || cfg.Height != 720 || cfg.TPS != 60 {
		t.Fatalf("unexpected screen defaults: %+v", cfg)
	}
	if cfg.RoundMinutes != 15 || cfg.FastForward != 5 || cfg.BlurRadius != 2 || !cfg.VSync {
		t.Fatalf("unexpected loop defaults: %+v", cfg)
	}
}

func TestEnvOverridesDefaults(t *testing.T) {
	t.Setenv("CLEAR_SKIES_WIDTH", "640")
	t.Setenv("CLEAR_SKIES_VSYNC", "false")
	cfg := NewConfig()
	if err := ParseEnv(cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Width != 640 || cfg.VSync {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if cfg.Height != 720 {
		t.Fatalf("unset variable changed height to %d", cfg.Height)
	}
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("CLEAR_SKIES_WIDTH", "640")
	t.Setenv("CLEAR_SKIES_SEED", "9")
	cfg := NewConfig()
	if err := ParseEnv(cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-width", "800", "-round", "1.5"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if cfg.Width != 800 {
		t.Fatalf("width = %d, want flag value 800", cfg.Width)
	}
	if cfg.Seed != 9 {
		t.Fatalf("seed = %d, want env value 9", cfg.Seed)
	}
	if cfg.RoundMinutes != 1.5 {
		t.Fatalf("round = %v, want 1.5", cfg.RoundMinutes)
	}
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("CLEAR_SKIES_TPS", "fast")
	err := ParseEnv(NewConfig())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
