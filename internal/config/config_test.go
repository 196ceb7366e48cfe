package config

import (
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// Save original env and restore after test
	originalEnv := os.Environ()
	defer func() {
		os.Clearenv()
		for _, env := range originalEnv {
			for i, c := range env {
				if c == '=' {
					os.Setenv(env[:i], env[i+1:])
					break
				}
			}
		}
	}()

	// Clear env to test defaults
	os.Clearenv()

	cfg := Load()

	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"Port", cfg.Port, 8080},
		{"LogLevel", cfg.LogLevel, "info"},
		{"MaxUploadSize", cfg.MaxUploadSize, int64(20971520)},
		{"StoreProvider", cfg.StoreProvider, "postgres"},
		{"LLMProvider", cfg.LLMProvider, "openai"},
		{"LLMModel", cfg.LLMModel, "gpt-4o-mini"},
		{"LLMTemperature", cfg.LLMTemperature, 0.3},
		{"LLMMaxTokens", cfg.LLMMaxTokens, int64(1024)},
		{"CacheTTL", cfg.CacheTTL, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("expected %s=%v, got %v", tt.name, tt.expected, tt.got)
			}
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	// Save and restore env
	originalPort := os.Getenv("PORT")
	originalMax := os.Getenv("MAX_UPLOAD_SIZE")
	defer func() {
		os.Setenv("PORT", originalPort)
		os.Setenv("MAX_UPLOAD_SIZE", originalMax)
	}()

	os.Setenv("PORT", "9090")
	os.Setenv("MAX_UPLOAD_SIZE", "1048576")

	cfg := Load()

	if cfg.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Port)
	}
	if cfg.MaxUploadSize != 1048576 {
		t.Errorf("expected upload limit 1048576, got %d", cfg.MaxUploadSize)
	}
}
