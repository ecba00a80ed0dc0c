package config

import (
	"testing"
	"time"
)

func TestCorsOriginsDefault(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "")
	got := corsOrigins()
	if len(got) != 2 || got[0] != "http://localhost:5173" || got[1] != "https://renthox.web.app" {
		t.Fatalf("default origins mismatch: %#v", got)
	}
}

func TestCorsOriginsFromEnv(t *testing.T) {
	t.Setenv("CORS_ORIGINS", " https://a.example , https://b.example ,")
	got := corsOrigins()
	if len(got) != 2 || got[0] != "https://a.example" || got[1] != "https://b.example" {
		t.Fatalf("parsed origins mismatch: %#v", got)
	}
}

func TestMongoURIPrefersFullURI(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	if got := mongoURI(); got != "mongodb://localhost:27017" {
		t.Fatalf("MONGODB_URI not honored: %q", got)
	}
}

func TestLoadCacheConfigDefaults(t *testing.T) {
	for _, k := range []string{"CACHE_ENABLED", "CACHE_TTL", "CACHE_PREFIX", "CACHE_MAX_BODY_BYTES"} {
		t.Setenv(k, "")
	}
	cfg := LoadCacheConfig()
	if !cfg.Enabled {
		t.Fatalf("cache should default to enabled")
	}
	if cfg.TTL != 30*time.Second {
		t.Fatalf("ttl default mismatch: %s", cfg.TTL)
	}
	if cfg.Prefix != "cars" {
		t.Fatalf("prefix default mismatch: %q", cfg.Prefix)
	}
	if cfg.MaxBodyBytes != 1048576 {
		t.Fatalf("max body default mismatch: %d", cfg.MaxBodyBytes)
	}
}

func TestParseDurFallback(t *testing.T) {
	if d := parseDur("nonsense"); d != time.Second {
		t.Fatalf("expected 1s fallback, got %s", d)
	}
}
