package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "CORS_ORIGINS", "DEBUG", "LOG_LEVEL", "PAGESPEED_API_KEY"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8000" {
		t.Errorf("Port = %q, want 8000", cfg.Port)
	}
	if cfg.CORSOrigins != "*" {
		t.Errorf("CORSOrigins = %q, want *", cfg.CORSOrigins)
	}
	if cfg.Debug {
		t.Error("Debug should default to false")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.HasPageSpeed() {
		t.Error("HasPageSpeed should be false without a key")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9001")
	t.Setenv("DEBUG", "true")
	t.Setenv("PAGESPEED_API_KEY", "key123")
	t.Setenv("GEMINI_API_KEY", "gem456")

	cfg := Load()
	if cfg.Port != "9001" {
		t.Errorf("Port = %q, want 9001", cfg.Port)
	}
	if !cfg.Debug {
		t.Error("Debug should be true")
	}
	if !cfg.HasPageSpeed() || !cfg.HasGemini() {
		t.Error("credential helpers should report configured keys")
	}
	if cfg.HasBing() {
		t.Error("HasBing should be false without a key")
	}
}
