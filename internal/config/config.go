package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// AppConfig holds the castpanel UI configuration.
type AppConfig struct {
	// DefaultLocale is the reference locale; its catalog must contain every
	// key the UI requests.
	DefaultLocale string `yaml:"default_locale,omitempty" json:"default_locale,omitempty"`
	// LocalesDir optionally overrides the embedded catalogs with an on-disk
	// directory, watched for changes.
	LocalesDir string `yaml:"locales_dir,omitempty" json:"locales_dir,omitempty"`
	HTTPPort   string `yaml:"http_port,omitempty" json:"http_port,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() AppConfig {
	return AppConfig{DefaultLocale: "en", HTTPPort: "8080"}
}

func ReadConfig(path string) (AppConfig, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	if cfg.DefaultLocale == "" {
		cfg.DefaultLocale = "en"
	}
	if cfg.HTTPPort == "" {
		cfg.HTTPPort = "8080"
	}
	return cfg, nil
}

func WriteConfig(path string, cfg AppConfig) error {
	b, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}
