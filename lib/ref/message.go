// Copyright 2026 The Shopfront Authors
// SPDX-License-Identifier: Apache-2.0

package ref

// MessageID identifies a message within a channel. Message IDs anchor
// rendered item cards.
type MessageID int64

// ParseMessageID parses the decimal form of a message ID.
func ParseMessageID(raw string) (MessageID, error) {
	id, err := parseID("message ID", raw)
	return MessageID(id), err
}

// String returns the decimal form.
func (m MessageID) String() string { return formatID(int64(m)) }

// IsZero reports whether the identifier is absent.
func (m MessageID) IsZero() bool { return m == 0 }
