// Copyright 2026 The Shopfront Authors
// SPDX-License-Identifier: Apache-2.0

package ref

// GuildID identifies a guild — the platform's tenant boundary. The
// zero value means "no guild", which is what a command invoked from a
// direct-message context carries.
type GuildID int64

// ParseGuildID parses the decimal form of a guild ID.
func ParseGuildID(raw string) (GuildID, error) {
	id, err := parseID("guild ID", raw)
	return GuildID(id), err
}

// String returns the decimal form.
func (g GuildID) String() string { return formatID(int64(g)) }

// IsZero reports whether the identifier is absent.
func (g GuildID) IsZero() bool { return g == 0 }
