package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type RuntimeConfig struct {
	DatabasePath     string
	WeeklyCacheSize  int
	MonthlyCacheSize int
	AutogenBuffer    int
	PlainOutput      bool
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		DatabasePath:     defaultDatabasePath(),
		WeeklyCacheSize:  10,
		MonthlyCacheSize: 12,
		AutogenBuffer:    16,
		PlainOutput:      false,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("INSIGHTD_DB_PATH")); v != "" {
		cfg.DatabasePath = v
	}
	if v, ok := getEnvInt("INSIGHTD_WEEKLY_CACHE_SIZE"); ok && v > 0 {
		cfg.WeeklyCacheSize = v
	}
	if v, ok := getEnvInt("INSIGHTD_MONTHLY_CACHE_SIZE"); ok && v > 0 {
		cfg.MonthlyCacheSize = v
	}
	if v, ok := getEnvInt("INSIGHTD_AUTOGEN_BUFFER"); ok && v > 0 {
		cfg.AutogenBuffer = v
	}
	if v, ok := getEnvBool("INSIGHTD_PLAIN_OUTPUT"); ok {
		cfg.PlainOutput = v
	}
	return cfg
}

func defaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "insightd.db"
	}
	return filepath.Join(home, ".insightd", "insightd.db")
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
