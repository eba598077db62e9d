package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// StationConfig is the startup configuration for a driver station process:
// which team/alliance/position it identifies as, where its admin surface
// listens, and how noisy its logs are.
type StationConfig struct {
	TeamNumber  uint16   `toml:"team_number"`
	Alliance    string   `toml:"alliance"`
	Position    int      `toml:"position"`
	AdminAddr   string   `toml:"admin_addr"`
	CorsOrigins []string `toml:"cors_origins"`
	LogLevel    string   `toml:"log_level"`
}

// LoadStationConfig reads and validates a station config file, filling in
// defaults for anything left blank.
func LoadStationConfig(path string) (StationConfig, error) {
	var cfg StationConfig
	if err := loadToml(path, &cfg); err != nil {
		return StationConfig{}, err
	}
	applyDefaults(&cfg)
	if err := ValidateStationConfig(cfg); err != nil {
		return StationConfig{}, err
	}
	return cfg, nil
}

func applyDefaults(cfg *StationConfig) {
	if cfg.Alliance == "" {
		cfg.Alliance = "red"
	}
	if cfg.Position == 0 {
		cfg.Position = 1
	}
	if cfg.AdminAddr == "" {
		cfg.AdminAddr = ":9110"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

// ValidateStationConfig checks the fields LoadStationConfig cannot default.
func ValidateStationConfig(cfg StationConfig) error {
	if cfg.TeamNumber == 0 {
		return fmt.Errorf("station config missing team_number")
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Alliance)) {
	case "red", "blue":
	default:
		return fmt.Errorf("station config alliance must be \"red\" or \"blue\", got %q", cfg.Alliance)
	}
	if cfg.Position < 1 || cfg.Position > 3 {
		return fmt.Errorf("station config position must be 1, 2, or 3, got %d", cfg.Position)
	}
	if strings.TrimSpace(cfg.AdminAddr) == "" {
		return fmt.Errorf("station config missing admin_addr")
	}
	return nil
}
