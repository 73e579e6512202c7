// Copyright 2026 The Shopfront Authors
// SPDX-License-Identifier: Apache-2.0

// Package command is the dispatch boundary between the platform's
// interaction payloads and the storefront core.
//
// An Invocation carries the caller's ephemeral identity (user id, role
// ids, guild id) alongside the command name and parameters; nothing
// from it is ever persisted. The Router authorizes every invocation
// through the policy guard before the handler runs, translates deny
// reasons into user-facing replies, and makes sure internal failures
// never leak — a persistence error reaches the user as a generic
// failure message and reaches the operator through the log.
package command
