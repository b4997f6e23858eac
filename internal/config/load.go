package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// APIKeysEnv holds comma separated Gemini API keys.
const APIKeysEnv = "GEMINI_API_KEYS"

// Load reads a YAML config file, merges environment keys and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// Default returns a validated configuration with every default applied.
func Default() *Config {
	var cfg Config
	cfg.applyEnv()
	// Zero values never fail validation.
	_ = cfg.Validate()
	return &cfg
}

// LoadEnvFiles loads .env style files into the process environment.
// Missing files are skipped.
func LoadEnvFiles(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("load env file %s: %w", p, err)
		}
	}
	return nil
}

func (c *Config) applyEnv() {
	if len(c.Summary.APIKeys) > 0 {
		return
	}
	for _, k := range strings.Split(os.Getenv(APIKeysEnv), ",") {
		if k = strings.TrimSpace(k); k != "" {
			c.Summary.APIKeys = append(c.Summary.APIKeys, k)
		}
	}
}
