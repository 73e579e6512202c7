// Copyright 2026 The Shopfront Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validConfig = `
platform:
    base_url: https://api.example.com/v10
    token_file: /etc/shopfront/token
trust:
    policy_file: /etc/shopfront/trust.jsonc
catalog:
    file: /var/lib/shopfront/catalog.json
showcase:
    channel: 555
    storage_channel: 777
    placeholder_url: https://cdn.example/placeholder.png
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shopfront.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("LoadFile(): %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate(): %v", err)
	}

	if cfg.Platform.BaseURL != "https://api.example.com/v10" {
		t.Errorf("BaseURL = %q", cfg.Platform.BaseURL)
	}
	if cfg.Showcase.Channel != 555 || cfg.Showcase.StorageChannel != 777 {
		t.Errorf("showcase channels = %v %v", cfg.Showcase.Channel, cfg.Showcase.StorageChannel)
	}
}

func TestLoadFileRejectsUnknownFields(t *testing.T) {
	path := writeConfig(t, validConfig+"\nextra_section:\n    key: value\n")
	if _, err := LoadFile(path); err == nil {
		t.Error("LoadFile() accepted unknown section")
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadFile() succeeded on missing file")
	}
}

func TestLoadRequiresEnvVar(t *testing.T) {
	t.Setenv("SHOPFRONT_CONFIG", "")
	if _, err := Load(); err == nil {
		t.Error("Load() succeeded without SHOPFRONT_CONFIG")
	}

	t.Setenv("SHOPFRONT_CONFIG", writeConfig(t, validConfig))
	if _, err := Load(); err != nil {
		t.Errorf("Load(): %v", err)
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := &Config{}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() passed an empty config")
	}
	for _, want := range []string{
		"platform.base_url",
		"platform.token_file",
		"trust.policy_file",
		"catalog.file",
		"showcase.channel",
		"showcase.storage_channel",
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() error missing %q:\n%v", want, err)
		}
	}
}

func TestVariableExpansion(t *testing.T) {
	t.Setenv("HOME", "/home/shopkeeper")
	cfg, err := LoadFile(writeConfig(t, `
platform:
    base_url: https://api.example.com
    token_file: ${HOME}/.shopfront/token
trust:
    policy_file: ${SHOPFRONT_STATE:-/var/lib/shopfront}/trust.jsonc
catalog:
    file: /var/lib/shopfront/catalog.json
showcase:
    channel: 1
    storage_channel: 2
`))
	if err != nil {
		t.Fatalf("LoadFile(): %v", err)
	}
	if cfg.Platform.TokenFile != "/home/shopkeeper/.shopfront/token" {
		t.Errorf("TokenFile = %q", cfg.Platform.TokenFile)
	}
	if cfg.Trust.PolicyFile != "/var/lib/shopfront/trust.jsonc" {
		t.Errorf("PolicyFile = %q (default expansion)", cfg.Trust.PolicyFile)
	}
}

func TestToken(t *testing.T) {
	dir := t.TempDir()
	tokenPath := filepath.Join(dir, "token")
	if err := os.WriteFile(tokenPath, []byte("bot-token-value\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := &Config{}
	cfg.Platform.TokenFile = tokenPath
	token, err := cfg.Token()
	if err != nil {
		t.Fatalf("Token(): %v", err)
	}
	if token != "bot-token-value" {
		t.Errorf("Token() = %q", token)
	}

	if err := os.WriteFile(tokenPath, []byte("  \n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := cfg.Token(); err == nil {
		t.Error("Token() succeeded on blank token file")
	}
}
