package config

import (
	"os"
	"testing"
)

func TestEnvOr(t *testing.T) {
	// Unset key returns fallback
	os.Unsetenv("TEST_ENVOR_KEY")
	if got := envOr("TEST_ENVOR_KEY", "default"); got != "default" {
		t.Errorf("envOr unset key = %q, want %q", got, "default")
	}

	// Set key returns value
	os.Setenv("TEST_ENVOR_KEY", "custom")
	defer os.Unsetenv("TEST_ENVOR_KEY")
	if got := envOr("TEST_ENVOR_KEY", "default"); got != "custom" {
		t.Errorf("envOr set key = %q, want %q", got, "custom")
	}

	// Empty string returns fallback
	os.Setenv("TEST_ENVOR_KEY", "")
	if got := envOr("TEST_ENVOR_KEY", "fallback"); got != "fallback" {
		t.Errorf("envOr empty key = %q, want %q", got, "fallback")
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "FRONTEND_ORIGIN", "BASESCAN_API_KEY", "LIVE_MODE", "INFISICAL_CLIENT_ID", "INFISICAL_CLIENT_SECRET"} {
		os.Unsetenv(k)
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want %q", cfg.Port, "8080")
	}
	if cfg.FrontendOrigin != "*" {
		t.Errorf("FrontendOrigin = %q, want %q", cfg.FrontendOrigin, "*")
	}
	if cfg.BasescanAPIKey != "" {
		t.Errorf("BasescanAPIKey = %q, want empty", cfg.BasescanAPIKey)
	}
	if !cfg.LiveMode {
		t.Error("LiveMode = false, want true by default")
	}
}

func TestLoadFromEnv(t *testing.T) {
	os.Setenv("PORT", "9090")
	os.Setenv("BASESCAN_API_KEY", "test-key")
	os.Setenv("LIVE_MODE", "false")
	os.Setenv("FRONTEND_ORIGIN", "http://localhost:3000")
	defer func() {
		os.Unsetenv("PORT")
		os.Unsetenv("BASESCAN_API_KEY")
		os.Unsetenv("LIVE_MODE")
		os.Unsetenv("FRONTEND_ORIGIN")
	}()

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want %q", cfg.Port, "9090")
	}
	if cfg.BasescanAPIKey != "test-key" {
		t.Errorf("BasescanAPIKey = %q, want %q", cfg.BasescanAPIKey, "test-key")
	}
	if cfg.LiveMode {
		t.Error("LiveMode = true, want false")
	}
	if cfg.FrontendOrigin != "http://localhost:3000" {
		t.Errorf("FrontendOrigin = %q, want %q", cfg.FrontendOrigin, "http://localhost:3000")
	}
}
