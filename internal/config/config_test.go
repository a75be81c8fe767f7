package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaultsFromEnv(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("EATCLI_BASE_URL", "http://api.local:8080")
	t.Setenv("EATCLI_MEMBER_DEBOUNCE_MS", "250")
	t.Setenv("EATCLI_TIMEOUT", "nope")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.BaseURL != "http://api.local:8080" {
		t.Fatalf("BaseURL = %q", cfg.BaseURL)
	}
	if got := cfg.MemberDelay(); got != 250*time.Millisecond {
		t.Fatalf("MemberDelay() = %v, want 250ms", got)
	}
	if got := cfg.RecipeDelay(); got != time.Second {
		t.Fatalf("RecipeDelay() = %v, want 1s", got)
	}
	if got := cfg.Timeout(); got != 30*time.Second {
		t.Fatalf("Timeout() = %v, want 30s", got)
	}
}

func TestLoadReadsJSON5(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("HOME", home)
	dir := filepath.Join(home, DirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	data := "{\n  // local backend\n  base_url: \"http://127.0.0.1:5001\",\n  notice_seconds: 3,\n}\n"
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.BaseURL != "http://127.0.0.1:5001" {
		t.Fatalf("BaseURL = %q", cfg.BaseURL)
	}
	if got := cfg.NoticeLifetime(); got != 3*time.Second {
		t.Fatalf("NoticeLifetime() = %v, want 3s", got)
	}
}

func TestInitWritesOnce(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("HOME", home)

	created, err := Init()
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if len(created) != 1 {
		t.Fatalf("Init() created = %v, want one file", created)
	}
	created, err = Init()
	if err != nil {
		t.Fatalf("second Init() error = %v", err)
	}
	if len(created) != 0 {
		t.Fatalf("second Init() created = %v, want none", created)
	}
}

func TestLogPath(t *testing.T) {
	path, err := LogPath(Config{LogFile: "/tmp/custom.log"})
	if err != nil || path != "/tmp/custom.log" {
		t.Fatalf("LogPath() = %q, %v", path, err)
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path, err = LogPath(Config{})
	if err != nil {
		t.Fatalf("LogPath() error = %v", err)
	}
	if filepath.Base(path) != LogFileName {
		t.Fatalf("LogPath() = %q", path)
	}
}
