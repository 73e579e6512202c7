// Copyright 2026 The Shopfront Authors
// SPDX-License-Identifier: Apache-2.0

// Package ref provides typed identifiers for chat platform entities.
//
// The platform assigns every entity — users, roles, guilds, channels,
// messages — a snowflake: a positive 64-bit integer. Passing them
// around as bare int64 invites transposition bugs (a channel ID where
// a message ID belongs compiles fine and fails at runtime). Each
// entity gets its own type so the compiler catches the confusion.
//
// Snowflakes serialize as JSON numbers, matching the persisted trust
// policy and catalog formats. String returns the decimal form used in
// REST URL paths.
package ref
