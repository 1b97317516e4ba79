package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration, loaded from YAML and
// merged over defaults.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	LLM     LLMConfig     `yaml:"llm"`
	Search  SearchConfig  `yaml:"search"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Host                string `yaml:"host"`
	Port                int    `yaml:"port"`
	ReadTimeoutSeconds  int    `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `yaml:"write_timeout_seconds"`
	// GenerateTimeoutSeconds bounds one full pipeline run. The run makes
	// several sequential model and search calls, so this is minutes, not
	// seconds, by default.
	GenerateTimeoutSeconds int `yaml:"generate_timeout_seconds"`
}

type LLMConfig struct {
	Model string `yaml:"model"`
	// APIKeyEnv names the environment variable holding the model API key.
	// The key itself never appears in the config file.
	APIKeyEnv string `yaml:"api_key_env"`
	BaseURL   string `yaml:"base_url"`
}

type SearchConfig struct {
	APIKeyEnv  string `yaml:"api_key_env"`
	MaxResults int    `yaml:"max_results"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Host:                   "0.0.0.0",
			Port:                   8080,
			ReadTimeoutSeconds:     30,
			WriteTimeoutSeconds:    600,
			GenerateTimeoutSeconds: 480,
		},
		LLM: LLMConfig{
			Model:     "gpt-4o",
			APIKeyEnv: "OPENAI_API_KEY",
		},
		Search: SearchConfig{
			APIKeyEnv:  "TAVILY_API_KEY",
			MaxResults: 3,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML config file and merges it over defaults.
// If the file does not exist, defaults are returned without error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Search.MaxResults <= 0 {
		cfg.Search.MaxResults = 3
	}
	return cfg, nil
}

// ModelAPIKey resolves the model API key from the configured env var.
// Empty when the variable is unset; the bootstrap decides whether that is
// fatal or whether per-request keys are expected instead.
func (c Config) ModelAPIKey() string {
	return os.Getenv(c.LLM.APIKeyEnv)
}

// SearchAPIKey resolves the search API key from the configured env var.
func (c Config) SearchAPIKey() string {
	return os.Getenv(c.Search.APIKeyEnv)
}
