// Copyright 2026 The Shopfront Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/shopfront-foundation/shopfront/lib/ref"
)

// Config is the service configuration for the Shopfront bot.
type Config struct {
	// Platform configures the chat platform connection.
	Platform PlatformConfig `yaml:"platform"`

	// Trust configures where the authorization policy lives.
	Trust TrustConfig `yaml:"trust"`

	// Catalog configures the product catalog store.
	Catalog CatalogConfig `yaml:"catalog"`

	// Showcase configures product card rendering.
	Showcase ShowcaseConfig `yaml:"showcase"`
}

// PlatformConfig configures the chat platform REST client.
type PlatformConfig struct {
	// BaseURL is the platform API root.
	BaseURL string `yaml:"base_url"`

	// TokenFile is the path to a file holding the bot token. The
	// token never lives in the config file itself.
	TokenFile string `yaml:"token_file"`
}

// TrustConfig configures the authorization policy source.
type TrustConfig struct {
	// PolicyFile is the JSONC trust policy (owner, staff roles, guild
	// allowlist). It is re-read on every authorization decision, so
	// edits take effect without a restart.
	PolicyFile string `yaml:"policy_file"`
}

// CatalogConfig configures catalog persistence.
type CatalogConfig struct {
	// File is the JSON catalog file. Created on first write.
	File string `yaml:"file"`
}

// ShowcaseConfig configures product card rendering.
type ShowcaseConfig struct {
	// Channel is where new product cards are published.
	Channel ref.ChannelID `yaml:"channel"`

	// StorageChannel is the durable image-storage channel that
	// uploaded product images are relocated into.
	StorageChannel ref.ChannelID `yaml:"storage_channel"`

	// PlaceholderURL is the image used when a product has none.
	PlaceholderURL string `yaml:"placeholder_url"`
}

// Load loads configuration from the SHOPFRONT_CONFIG environment
// variable. There are no fallbacks: if the variable is not set, this
// fails.
func Load() (*Config, error) {
	path := os.Getenv("SHOPFRONT_CONFIG")
	if path == "" {
		return nil, fmt.Errorf("SHOPFRONT_CONFIG environment variable not set; " +
			"set it to the path of your shopfront.yaml config file, or use --config flag")
	}
	return LoadFile(path)
}

// LoadFile loads configuration from a specific file path. The config
// file is the single source of truth; environment variables do not
// override its values. The only expansion performed is ${HOME} and
// similar path variables for portability.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var cfg Config
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	cfg.expandVariables()
	return &cfg, nil
}

// Token reads the bot token from the configured token file.
func (c *Config) Token() (string, error) {
	data, err := os.ReadFile(c.Platform.TokenFile)
	if err != nil {
		return "", fmt.Errorf("config: reading token file: %w", err)
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", fmt.Errorf("config: token file %s is empty", c.Platform.TokenFile)
	}
	return token, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Platform.BaseURL == "" {
		errs = append(errs, fmt.Errorf("platform.base_url is required"))
	}
	if c.Platform.TokenFile == "" {
		errs = append(errs, fmt.Errorf("platform.token_file is required"))
	}
	if c.Trust.PolicyFile == "" {
		errs = append(errs, fmt.Errorf("trust.policy_file is required"))
	}
	if c.Catalog.File == "" {
		errs = append(errs, fmt.Errorf("catalog.file is required"))
	}
	if c.Showcase.Channel.IsZero() {
		errs = append(errs, fmt.Errorf("showcase.channel is required"))
	}
	if c.Showcase.StorageChannel.IsZero() {
		errs = append(errs, fmt.Errorf("showcase.storage_channel is required"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in path
// fields.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}

	c.Platform.TokenFile = expandVars(c.Platform.TokenFile, vars)
	c.Trust.PolicyFile = expandVars(c.Trust.PolicyFile, vars)
	c.Catalog.File = expandVars(c.Catalog.File, vars)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}
