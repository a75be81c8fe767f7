package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/yosuke-furukawa/json5/encoding/json5"
)

const (
	DirName        = "eatcli"
	ConfigFileName = "config.json"
	LogFileName    = "eatcli.log"

	DefaultBaseURL = "http://localhost:5000"
)

// Config holds client settings. Zero durations fall back to the defaults.
type Config struct {
	BaseURL          string `json:"base_url"`
	TimeoutSeconds   int    `json:"timeout_seconds"`
	MemberDebounceMS int    `json:"member_debounce_ms"`
	RecipeDebounceMS int    `json:"recipe_debounce_ms"`
	NoticeSeconds    int    `json:"notice_seconds"`
	Proxy            string `json:"proxy"`
	LogFile          string `json:"log_file"`
	DefaultGroup     string `json:"default_group"`
}

func DefaultConfig() Config {
	return Config{
		BaseURL:          envString("EATCLI_BASE_URL", DefaultBaseURL),
		TimeoutSeconds:   envInt("EATCLI_TIMEOUT", 30),
		MemberDebounceMS: envInt("EATCLI_MEMBER_DEBOUNCE_MS", 500),
		RecipeDebounceMS: envInt("EATCLI_RECIPE_DEBOUNCE_MS", 1000),
		NoticeSeconds:    envInt("EATCLI_NOTICE_SECONDS", 5),
		Proxy:            envString("EATCLI_PROXY", ""),
		LogFile:          envString("EATCLI_LOG_FILE", ""),
		DefaultGroup:     envString("EATCLI_GROUP", ""),
	}
}

func (c Config) Timeout() time.Duration {
	return seconds(c.TimeoutSeconds, 30)
}

func (c Config) MemberDelay() time.Duration {
	return millis(c.MemberDebounceMS, 500)
}

func (c Config) RecipeDelay() time.Duration {
	return millis(c.RecipeDebounceMS, 1000)
}

func (c Config) NoticeLifetime() time.Duration {
	return seconds(c.NoticeSeconds, 5)
}

func seconds(value, fallback int) time.Duration {
	if value <= 0 {
		value = fallback
	}
	return time.Duration(value) * time.Second
}

func millis(value, fallback int) time.Duration {
	if value <= 0 {
		value = fallback
	}
	return time.Duration(value) * time.Millisecond
}

func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, DirName), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// LogPath is where the interactive screen logs when no log_file is set,
// since the terminal belongs to the screen.
func LogPath(cfg Config) (string, error) {
	if path := strings.TrimSpace(cfg.LogFile); path != "" {
		return path, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, LogFileName), nil
}

func Load() (Config, error) {
	cfg := DefaultConfig()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}

	if err := json5.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Init writes a default config.json if it doesn't already exist.
func Init() ([]string, error) {
	var created []string

	dir, err := ConfigDir()
	if err != nil {
		return created, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return created, err
	}

	configPath := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		if err := writeConfig(configPath, DefaultConfig()); err != nil {
			return created, err
		}
		created = append(created, configPath)
	}

	return created, nil
}

func writeConfig(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func envString(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func envInt(key string, fallback int) int {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
