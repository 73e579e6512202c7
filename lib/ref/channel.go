// Copyright 2026 The Shopfront Authors
// SPDX-License-Identifier: Apache-2.0

package ref

// ChannelID identifies a channel within a guild. Channels are the
// surfaces item cards render into.
type ChannelID int64

// ParseChannelID parses the decimal form of a channel ID.
func ParseChannelID(raw string) (ChannelID, error) {
	id, err := parseID("channel ID", raw)
	return ChannelID(id), err
}

// String returns the decimal form.
func (c ChannelID) String() string { return formatID(int64(c)) }

// IsZero reports whether the identifier is absent.
func (c ChannelID) IsZero() bool { return c == 0 }
