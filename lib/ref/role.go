// Copyright 2026 The Shopfront Authors
// SPDX-License-Identifier: Apache-2.0

package ref

// RoleID identifies a role within a guild. Role IDs are unique across
// the whole platform, not just within one guild — two guilds never
// share a role ID.
type RoleID int64

// ParseRoleID parses the decimal form of a role ID.
func ParseRoleID(raw string) (RoleID, error) {
	id, err := parseID("role ID", raw)
	return RoleID(id), err
}

// String returns the decimal form.
func (r RoleID) String() string { return formatID(int64(r)) }

// IsZero reports whether the identifier is absent.
func (r RoleID) IsZero() bool { return r == 0 }
