package config

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/knadh/koanf/v2"
)

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("NAMEVET_ENV")
	os.Unsetenv("NAMEVET_LOG_LEVEL")
	os.Unsetenv("NAMEVET_CACHE_SIZE")
	os.Unsetenv("NAMEVET_BLOOM_FP_RATE")
	os.Unsetenv("NAMEVET_LIST_PATH")
	os.Unsetenv("NAMEVET_DB_PATH")
	os.Unsetenv("NAMEVET_ICANN_ONLY")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Env != "prod" {
		t.Errorf("expected Env=prod, got %q", cfg.Env)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected LogLevel=info, got %q", cfg.LogLevel)
	}
	if cfg.CacheSize != 1024 {
		t.Errorf("expected CacheSize=1024, got %d", cfg.CacheSize)
	}
	if cfg.BloomFPRate != 0.01 {
		t.Errorf("expected BloomFPRate=0.01, got %v", cfg.BloomFPRate)
	}
	if cfg.ListPath != "" || cfg.DBPath != "" {
		t.Errorf("expected empty paths, got list=%q db=%q", cfg.ListPath, cfg.DBPath)
	}
	if cfg.ICANNOnly {
		t.Error("expected ICANNOnly=false by default")
	}
}

func TestLoad_ValidOverrides(t *testing.T) {
	t.Setenv("NAMEVET_ENV", "dev")
	t.Setenv("NAMEVET_LOG_LEVEL", "debug")
	t.Setenv("NAMEVET_CACHE_SIZE", "2000")
	t.Setenv("NAMEVET_BLOOM_FP_RATE", "0.001")
	t.Setenv("NAMEVET_LIST_PATH", "/tmp/public_suffix_list.dat")
	t.Setenv("NAMEVET_DB_PATH", "/tmp/rules.db")
	t.Setenv("NAMEVET_ICANN_ONLY", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Env != "dev" {
		t.Errorf("expected Env=dev, got %q", cfg.Env)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected LogLevel=debug, got %q", cfg.LogLevel)
	}
	if cfg.CacheSize != 2000 {
		t.Errorf("expected CacheSize=2000, got %d", cfg.CacheSize)
	}
	if cfg.BloomFPRate != 0.001 {
		t.Errorf("expected BloomFPRate=0.001, got %v", cfg.BloomFPRate)
	}
	if cfg.ListPath != "/tmp/public_suffix_list.dat" {
		t.Errorf("unexpected ListPath %q", cfg.ListPath)
	}
	if cfg.DBPath != "/tmp/rules.db" {
		t.Errorf("unexpected DBPath %q", cfg.DBPath)
	}
	if !cfg.ICANNOnly {
		t.Error("expected ICANNOnly=true")
	}
}

func TestLoad_WhenKoanfLoadFails(t *testing.T) {
	orig := envLoader
	envLoader = func(k *koanf.Koanf) error {
		return errors.New("mocked error")
	}
	defer func() { envLoader = orig }()

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "mocked error") {
		t.Fatal("expected error when loading env, got nil")
	}
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("NAMEVET_ENV", "staging")
	t.Setenv("NAMEVET_LOG_LEVEL", "info")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid NAMEVET_ENV, got nil")
	}
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("NAMEVET_ENV", "dev")
	t.Setenv("NAMEVET_LOG_LEVEL", "trace")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid LOG_LEVEL, got nil")
	}
}

func TestLoad_InvalidCacheSize(t *testing.T) {
	t.Setenv("NAMEVET_ENV", "dev")
	t.Setenv("NAMEVET_LOG_LEVEL", "info")
	t.Setenv("NAMEVET_CACHE_SIZE", "-1")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid CACHE_SIZE, got nil")
	}
}

func TestLoad_CacheSizeNaN(t *testing.T) {
	t.Setenv("NAMEVET_ENV", "dev")
	t.Setenv("NAMEVET_LOG_LEVEL", "info")
	t.Setenv("NAMEVET_CACHE_SIZE", "not_a_number")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for non-numeric CACHE_SIZE, got nil")
	}
}

func TestLoad_InvalidBloomFPRate(t *testing.T) {
	for _, v := range []string{"0", "1", "1.5", "-0.1"} {
		t.Setenv("NAMEVET_ENV", "dev")
		t.Setenv("NAMEVET_LOG_LEVEL", "info")
		t.Setenv("NAMEVET_BLOOM_FP_RATE", v)

		if _, err := Load(); err == nil {
			t.Fatalf("expected error for BLOOM_FP_RATE=%s, got nil", v)
		}
	}
}
