package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "station.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoadStationConfigDefaults(t *testing.T) {
	path := writeTempConfig(t, `team_number = 4499`)
	cfg, err := LoadStationConfig(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Alliance != "red" || cfg.Position != 1 || cfg.AdminAddr != ":9110" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadStationConfigOverrides(t *testing.T) {
	path := writeTempConfig(t, `
team_number = 118
alliance = "blue"
position = 3
admin_addr = ":9200"
log_level = "debug"
`)
	cfg, err := LoadStationConfig(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.TeamNumber != 118 || cfg.Alliance != "blue" || cfg.Position != 3 {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
}

func TestLoadStationConfigMissingTeamNumber(t *testing.T) {
	path := writeTempConfig(t, `alliance = "red"`)
	if _, err := LoadStationConfig(path); err == nil {
		t.Fatalf("expected validation error for missing team_number")
	}
}

func TestLoadStationConfigInvalidAlliance(t *testing.T) {
	path := writeTempConfig(t, `
team_number = 4499
alliance = "green"
`)
	if _, err := LoadStationConfig(path); err == nil {
		t.Fatalf("expected validation error for invalid alliance")
	}
}

func TestLoadStationConfigInvalidPosition(t *testing.T) {
	path := writeTempConfig(t, `
team_number = 4499
position = 7
`)
	if _, err := LoadStationConfig(path); err == nil {
		t.Fatalf("expected validation error for out-of-range position")
	}
}

func TestLoadStationConfigMissingFile(t *testing.T) {
	if _, err := LoadStationConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestWriteTemplateRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "station.toml")
	if err := WriteTemplate(path, false); err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	if err := WriteTemplate(path, false); err == nil {
		t.Fatalf("expected error on second write without overwrite")
	}
	if err := WriteTemplate(path, true); err != nil {
		t.Fatalf("overwrite=true should succeed: %v", err)
	}
}
