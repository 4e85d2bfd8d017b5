package config

import (
	"log/slog"
	"testing"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestSettingsFromEnvDefaults(t *testing.T) {
	s, err := SettingsFromEnv(envMap(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.WavesToWin != DefaultWavesToWin {
		t.Fatalf("WavesToWin = %d, want %d", s.WavesToWin, DefaultWavesToWin)
	}
	if s.LogLevel != slog.LevelInfo {
		t.Fatalf("LogLevel = %v, want info", s.LogLevel)
	}
	if !s.StartInMenu {
		t.Fatalf("StartInMenu should default to true")
	}
}

func TestSettingsFromEnvOverrides(t *testing.T) {
	s, err := SettingsFromEnv(envMap(map[string]string{
		"ARENA_SEED":          "42",
		"ARENA_SAVE_PATH":     "/tmp/x.json",
		"ARENA_LOG_LEVEL":     "debug",
		"ARENA_WAVES_TO_WIN":  "5",
		"ARENA_START_IN_MENU": "false",
		"ARENA_MUTE":          "1",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Seed != 42 || s.SavePath != "/tmp/x.json" || s.WavesToWin != 5 {
		t.Fatalf("unexpected settings: %+v", s)
	}
	if s.LogLevel != slog.LevelDebug {
		t.Fatalf("LogLevel = %v, want debug", s.LogLevel)
	}
	if s.StartInMenu || !s.Mute {
		t.Fatalf("bool overrides not applied: %+v", s)
	}
}

func TestSettingsFromEnvRejectsGarbage(t *testing.T) {
	cases := []map[string]string{
		{"ARENA_SEED": "abc"},
		{"ARENA_WAVES_TO_WIN": "0"},
		{"ARENA_LOG_LEVEL": "loud"},
		{"ARENA_MUTE": "maybe"},
	}
	for _, c := range cases {
		if _, err := SettingsFromEnv(envMap(c)); err == nil {
			t.Errorf("expected error for %v", c)
		}
	}
}
