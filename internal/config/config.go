// Package config loads tool configuration from a YAML file with environment
// variable overrides. Values are injected explicitly into the components that
// need them; a missing required value surfaces as a configuration error at
// construction time, never as a late nil.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config stores all settings, loaded from
// ~/.config/linkedin-zen-post/config.yaml and LZP_* environment variables.
type Config struct {
	Webhook    WebhookConfig    `yaml:"webhook"`
	Generation GenerationConfig `yaml:"generation"`
	Photos     PhotosConfig     `yaml:"photos"`
	Assets     AssetsConfig     `yaml:"assets"`
}

// WebhookConfig holds the automation endpoint settings.
type WebhookConfig struct {
	URL    string `yaml:"url"`
	NodeID string `yaml:"node_id"`
}

// GenerationConfig holds chat-completion API settings.
type GenerationConfig struct {
	APIURL      string  `yaml:"api_url"`
	APIKey      string  `yaml:"api_key"`
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
}

// PhotosConfig holds photo search API settings.
type PhotosConfig struct {
	APIURL string `yaml:"api_url"`
	APIKey string `yaml:"api_key"`
}

// AssetsConfig holds asset host upload settings.
type AssetsConfig struct {
	CloudName    string `yaml:"cloud_name"`
	UploadPreset string `yaml:"upload_preset"`
}

// Path returns the config file path, honoring XDG_CONFIG_HOME.
func Path() (string, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "linkedin-zen-post", "config.yaml"), nil
}

// Load reads the config file when present and overlays environment
// variables. A missing file is not an error; everything can come from the
// environment.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom loads configuration from an explicit file path plus environment.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// environment-only setup
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	overlay(&c.Webhook.URL, "LZP_WEBHOOK_URL")
	overlay(&c.Webhook.NodeID, "LZP_WEBHOOK_NODE_ID")
	overlay(&c.Generation.APIURL, "LZP_GENERATION_API_URL")
	overlay(&c.Generation.APIKey, "LZP_GENERATION_API_KEY")
	overlay(&c.Generation.Model, "LZP_GENERATION_MODEL")
	overlay(&c.Photos.APIURL, "LZP_PHOTOS_API_URL")
	overlay(&c.Photos.APIKey, "LZP_PHOTOS_API_KEY")
	overlay(&c.Assets.CloudName, "LZP_ASSETS_CLOUD_NAME")
	overlay(&c.Assets.UploadPreset, "LZP_ASSETS_UPLOAD_PRESET")

	if v := strings.TrimSpace(os.Getenv("LZP_GENERATION_TEMPERATURE")); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Generation.Temperature = f
		}
	}
}

func overlay(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}
