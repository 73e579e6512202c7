// Copyright 2026 The Shopfront Authors
// SPDX-License-Identifier: Apache-2.0

// Package trust loads the storefront's trust policy: who owns the bot,
// which roles count as staff, and which guilds the bot is enabled in.
//
// The policy lives in a single operator-edited JSONC file. Loading is
// strict: a missing file, malformed JSON, an unknown field, or a field
// of the wrong type all fail with an error wrapping ErrUnreadable.
// There is no partial-config fallback — silently defaulting to "deny
// all" locks the owner out, and silently defaulting to "allow all"
// opens the store to everyone. Both are security failures, so the
// only safe behavior is to fail loudly and make no decision at all.
//
// The policy is re-read from disk on every authorization decision.
// That trades a file read per command for an always-fresh policy: an
// operator edit takes effect on the very next command, with no reload
// hook and no staleness window.
package trust
