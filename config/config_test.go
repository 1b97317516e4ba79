package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := DefaultConfig()
	if cfg.Server.Port != want.Server.Port {
		t.Errorf("port %d, want %d", cfg.Server.Port, want.Server.Port)
	}
	if cfg.LLM.Model != "gpt-4o" {
		t.Errorf("model %q", cfg.LLM.Model)
	}
	if cfg.Search.MaxResults != 3 {
		t.Errorf("max_results %d, want 3", cfg.Search.MaxResults)
	}
}

func TestLoadOverlaysFileOnDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
server:
  port: 9999
llm:
  model: gpt-4o-mini
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("port %d", cfg.Server.Port)
	}
	if cfg.LLM.Model != "gpt-4o-mini" {
		t.Errorf("model %q", cfg.LLM.Model)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level %q", cfg.Logging.Level)
	}
	// Untouched sections keep their defaults.
	if cfg.Search.APIKeyEnv != "TAVILY_API_KEY" {
		t.Errorf("search key env %q", cfg.Search.APIKeyEnv)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("want parse error")
	}
}

func TestAPIKeyResolution(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LLM.APIKeyEnv = "TEST_MODEL_KEY"
	cfg.Search.APIKeyEnv = "TEST_SEARCH_KEY"

	t.Setenv("TEST_MODEL_KEY", "sk-abc")
	t.Setenv("TEST_SEARCH_KEY", "tvly-xyz")

	if got := cfg.ModelAPIKey(); got != "sk-abc" {
		t.Errorf("model key %q", got)
	}
	if got := cfg.SearchAPIKey(); got != "tvly-xyz" {
		t.Errorf("search key %q", got)
	}
}

func TestAPIKeyUnsetIsEmpty(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LLM.APIKeyEnv = "TEST_UNSET_KEY_12345"
	if got := cfg.ModelAPIKey(); got != "" {
		t.Errorf("want empty key, got %q", got)
	}
}
