// Copyright 2026 The Shopfront Authors
// SPDX-License-Identifier: Apache-2.0

package ref

// UserID identifies a platform account. The zero value means "absent".
type UserID int64

// ParseUserID parses the decimal form of a user ID.
func ParseUserID(raw string) (UserID, error) {
	id, err := parseID("user ID", raw)
	return UserID(id), err
}

// String returns the decimal form.
func (u UserID) String() string { return formatID(int64(u)) }

// IsZero reports whether the identifier is absent.
func (u UserID) IsZero() bool { return u == 0 }
