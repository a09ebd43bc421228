package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

var keys = []string{
	"C2_DATA_DIR", "C2_SPLIT_DISTANCE", "C2_POLL_INTERVAL",
	"C2_TARGET_SPM", "C2_TARGET_PACE", "C2_LOG_LEVEL",
}

// clearEnv unsets every config variable, restoring the originals when the
// test finishes.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestReadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if cfg.SplitDistance != 500 {
		t.Errorf("SplitDistance = %v, want 500", cfg.SplitDistance)
	}
	if cfg.PollInterval != 500*time.Millisecond {
		t.Errorf("PollInterval = %v, want 500ms", cfg.PollInterval)
	}
	if cfg.TargetSPM != 35 {
		t.Errorf("TargetSPM = %v, want 35", cfg.TargetSPM)
	}
	if cfg.TargetPace != 100 {
		t.Errorf("TargetPace = %v, want 100", cfg.TargetPace)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if want := filepath.Join(".config", "c2", "workouts"); !strings.HasSuffix(cfg.DataDir, want) {
		t.Errorf("DataDir = %q, want */%s", cfg.DataDir, want)
	}
}

func TestReadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("C2_DATA_DIR", "/tmp/erg-data")
	t.Setenv("C2_SPLIT_DISTANCE", "1000")
	t.Setenv("C2_POLL_INTERVAL", "250ms")
	t.Setenv("C2_TARGET_SPM", "28")
	t.Setenv("C2_TARGET_PACE", "115")
	t.Setenv("C2_LOG_LEVEL", "debug")

	cfg, err := Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if cfg.DataDir != "/tmp/erg-data" {
		t.Errorf("DataDir = %q, want /tmp/erg-data", cfg.DataDir)
	}
	if cfg.SplitDistance != 1000 {
		t.Errorf("SplitDistance = %v, want 1000", cfg.SplitDistance)
	}
	if cfg.PollInterval != 250*time.Millisecond {
		t.Errorf("PollInterval = %v, want 250ms", cfg.PollInterval)
	}
	if cfg.TargetSPM != 28 {
		t.Errorf("TargetSPM = %v, want 28", cfg.TargetSPM)
	}
	if cfg.TargetPace != 115 {
		t.Errorf("TargetPace = %v, want 115", cfg.TargetPace)
	}
	if got := cfg.Level().String(); got != "debug" {
		t.Errorf("Level() = %q, want debug", got)
	}
}

func TestReadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "zero split distance", key: "C2_SPLIT_DISTANCE", value: "0"},
		{name: "negative split distance", key: "C2_SPLIT_DISTANCE", value: "-500"},
		{name: "zero poll interval", key: "C2_POLL_INTERVAL", value: "0s"},
		{name: "zero cadence", key: "C2_TARGET_SPM", value: "0"},
		{name: "negative pace", key: "C2_TARGET_PACE", value: "-100"},
		{name: "unknown log level", key: "C2_LOG_LEVEL", value: "loud"},
		{name: "unparseable interval", key: "C2_POLL_INTERVAL", value: "fast"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			if _, err := Read(); err == nil {
				t.Errorf("Read() with %s=%s reported no error", tt.key, tt.value)
			}
		})
	}
}
