// Copyright 2026 The Shopfront Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import (
	"fmt"
	"strconv"
)

// parseID parses the decimal form of a snowflake. kind names the
// identifier type for error messages. Snowflakes are strictly
// positive — zero is reserved for "absent".
func parseID(kind, raw string) (int64, error) {
	if raw == "" {
		return 0, fmt.Errorf("ref: empty %s", kind)
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("ref: invalid %s %q: %w", kind, raw, err)
	}
	if value <= 0 {
		return 0, fmt.Errorf("ref: %s must be positive, got %d", kind, value)
	}
	return value, nil
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
