// Copyright 2026 The Shopfront Authors
// SPDX-License-Identifier: Apache-2.0

// Package policy decides whether a caller may run a command.
//
// The trust model is layered: the global owner bypasses everything,
// staff roles grant access to privileged commands inside enabled
// guilds, guild membership grants access to public commands, and
// everything else is denied. Evaluation is a pure function over the
// loaded trust policy and the caller's context — no hidden globals,
// no control-flow exceptions — so every precedence rule is directly
// testable.
//
// The Guard composes the full gate an inbound command passes through:
// policy load, owner bypass, guild allowlist, trust level. The guild
// check runs before the role check for non-owners so a caller in a
// guild the bot is not enabled in learns only that, never whether
// their roles would have sufficed.
package policy
