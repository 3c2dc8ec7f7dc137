// Package config loads environment configuration for ddcprobe.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// defaultMonitorIdx of 0 means inspect the primary monitor.
const defaultMonitorIdx = 0

// Config holds runtime configuration values.
type Config struct {
	// MonitorIndex selects the 1-based monitor to inspect; 0 means primary.
	MonitorIndex int
}

// Load reads configuration from ./.env and environment variables.
func Load() (Config, error) {
	cfg := Config{
		MonitorIndex: defaultMonitorIdx,
	}

	if err := loadEnvFile(".env"); err != nil {
		return Config{}, err
	}

	monitorIdx, err := envInt("MONITOR_INDEX", cfg.MonitorIndex)
	if err != nil {
		return Config{}, err
	}
	if monitorIdx < 0 {
		return Config{}, fmt.Errorf("MONITOR_INDEX must be >= 0")
	}
	cfg.MonitorIndex = monitorIdx

	return cfg, nil
}

// envInt returns an int env override when present, otherwise a default.
func envInt(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return value, nil
}

// loadEnvFile loads KEY=VALUE pairs from a .env file.
func loadEnvFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	for _, line := range strings.Split(string(data), "\n") {
		key, value, ok := parseEnvLine(line)
		if !ok {
			continue
		}
		if _, exists := os.LookupEnv(key); !exists {
			if err := os.Setenv(key, value); err != nil {
				return err
			}
		}
	}

	return nil
}

// parseEnvLine parses a single .env line into key/value.
func parseEnvLine(line string) (string, string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	if strings.HasPrefix(line, "export ") {
		line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
	}
	parts := strings.SplitN(line, "=", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if key == "" {
		return "", "", false
	}
	value = strings.Trim(value, `"'`)
	return key, value, true
}
