package main

import (
	"testing"

	"github.com/okc-agents/okgpg/config"
	"github.com/okc-agents/okgpg/internal/launch"
)

func TestNewLauncher_Broadcast(t *testing.T) {
	cfg, err := config.FromEnv(nil)
	if err != nil {
		t.Fatal(err)
	}
	b, ok := newLauncher(cfg).(*launch.Broadcast)
	if !ok {
		t.Fatal("default launcher should be the broadcast")
	}
	if b.Component != config.DefaultComponent {
		t.Errorf("Component = %q", b.Component)
	}
}

func TestNewLauncher_CommandOverride(t *testing.T) {
	t.Setenv(config.EnvLauncher, "okc-mock --status 0")
	cfg, err := config.FromEnv(nil)
	if err != nil {
		t.Fatal(err)
	}
	c, ok := newLauncher(cfg).(*launch.Command)
	if !ok {
		t.Fatal("OKGPG_LAUNCHER should select the command launcher")
	}
	if c.Shell != "okc-mock --status 0" {
		t.Errorf("Shell = %q", c.Shell)
	}
}

func TestRun_ConfigError(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "loud")
	if code := run(nil); code != 1 {
		t.Errorf("run = %d, want 1 on config error", code)
	}
}
