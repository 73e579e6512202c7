// Copyright 2026 The Shopfront Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for the Shopfront
// service.
//
// Configuration is loaded from a single file specified by either the
// SHOPFRONT_CONFIG environment variable (via [Load]) or a --config
// flag (via [LoadFile]). There are no fallbacks, no ~/.config
// discovery, and no automatic file search. This ensures deterministic,
// auditable configuration with no hidden overrides.
//
// Variable expansion is performed on path fields after loading:
// ${HOME} and ${VAR:-default} patterns are expanded. No other
// environment variables override config values. The trust policy file
// referenced here is deliberately separate from the service config: it
// is reloaded on every authorization decision, while this file is read
// once at startup.
package config
