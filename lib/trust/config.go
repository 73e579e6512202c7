// Copyright 2026 The Shopfront Authors
// SPDX-License-Identifier: Apache-2.0

package trust

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/tidwall/jsonc"

	"github.com/shopfront-foundation/shopfront/lib/ref"
)

// ErrUnreadable marks a trust policy that could not be loaded or
// parsed. Callers must treat it as fatal to the decision being made —
// never as "deny" and never as "allow".
var ErrUnreadable = errors.New("trust policy unreadable")

// Config is the trust policy for one storefront deployment.
//
// A Config is immutable once loaded: every authorization decision
// evaluates against the single Config value it was handed, so a
// concurrent policy edit can never produce a half-old, half-new
// decision.
type Config struct {
	// OwnerID is the global owner. The owner bypasses every other
	// check, everywhere. Required.
	OwnerID ref.UserID `json:"owner_id"`

	// StaffRoles are the role IDs recognized as staff. Scoped
	// process-wide, not per guild: a role ID grants staff trust in
	// any enabled guild that carries it. (Role IDs are platform-wide
	// unique, so this only matters if one role is shared across
	// guilds deliberately.)
	StaffRoles []ref.RoleID `json:"staff_roles"`

	// AllowedGuilds is the guild allowlist. Empty or absent means
	// the bot is enabled everywhere.
	AllowedGuilds []ref.GuildID `json:"allowed_guilds"`
}

// IsStaffRole reports whether roleID is one of the configured staff
// roles.
func (c *Config) IsStaffRole(roleID ref.RoleID) bool {
	return slices.Contains(c.StaffRoles, roleID)
}

// Store reads the trust policy file.
type Store struct {
	path string
}

// NewStore creates a store reading the policy from path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads and parses the policy file. The file is JSONC — JSON
// extended with // line comments, /* block comments */, and trailing
// commas — so operators can annotate role and guild IDs in place.
//
// Any failure wraps ErrUnreadable.
func (s *Store) Load() (*Config, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w: %w", s.path, ErrUnreadable, err)
	}

	config, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.path, err)
	}
	return config, nil
}

// Parse parses policy bytes. Unknown fields are rejected — a typo in
// "staff_roles" must not silently produce an empty staff set.
func Parse(data []byte) (*Config, error) {
	stripped := jsonc.ToJSON(data)

	decoder := json.NewDecoder(bytes.NewReader(stripped))
	decoder.DisallowUnknownFields()

	var config Config
	if err := decoder.Decode(&config); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	return &config, nil
}

func (c *Config) validate() error {
	var errs []error

	if c.OwnerID <= 0 {
		errs = append(errs, fmt.Errorf("owner_id is required and must be positive"))
	}
	for _, role := range c.StaffRoles {
		if role <= 0 {
			errs = append(errs, fmt.Errorf("staff_roles contains non-positive ID %d", role))
		}
	}
	for _, guild := range c.AllowedGuilds {
		if guild <= 0 {
			errs = append(errs, fmt.Errorf("allowed_guilds contains non-positive ID %d", guild))
		}
	}

	return errors.Join(errs...)
}
