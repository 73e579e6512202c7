// Copyright 2026 The Shopfront Authors
// SPDX-License-Identifier: Apache-2.0

package policy

import (
	"github.com/shopfront-foundation/shopfront/lib/ref"
	"github.com/shopfront-foundation/shopfront/lib/trust"
)

// Level is the trust level a command requires.
type Level int

const (
	// Public commands need no role — only an enabled guild.
	Public Level = iota

	// Staff commands need a staff role (or the owner).
	Staff

	// Owner commands are restricted to the global owner.
	Owner
)

// String returns "public", "staff", or "owner".
func (l Level) String() string {
	switch l {
	case Public:
		return "public"
	case Staff:
		return "staff"
	case Owner:
		return "owner"
	default:
		return "unknown"
	}
}

// Decision is the outcome of an authorization check.
type Decision int

const (
	// Deny means the command must not run.
	Deny Decision = iota

	// Allow means the command may run.
	Allow
)

// String returns "allow" or "deny".
func (d Decision) String() string {
	if d == Allow {
		return "allow"
	}
	return "deny"
}

// DenyReason describes why an authorization check was denied.
type DenyReason int

const (
	// ReasonNone is the zero value, present on Allow results.
	ReasonNone DenyReason = iota

	// ReasonOwnerOnly means the command is restricted to the owner.
	ReasonOwnerOnly

	// ReasonInsufficientRole means the caller holds no staff role.
	ReasonInsufficientRole

	// ReasonWorkspaceNotEnabled means the bot is not enabled in the
	// caller's guild.
	ReasonWorkspaceNotEnabled
)

// String returns the stable reason token. These tokens are part of
// the dispatch boundary contract — collaborators match on them.
func (r DenyReason) String() string {
	switch r {
	case ReasonOwnerOnly:
		return "owner-only"
	case ReasonInsufficientRole:
		return "insufficient-role"
	case ReasonWorkspaceNotEnabled:
		return "workspace-not-enabled"
	default:
		return "none"
	}
}

// Result is the outcome of an authorization check: the decision plus,
// on Deny, the reason.
type Result struct {
	Decision Decision
	Reason   DenyReason
}

func allowed() Result {
	return Result{Decision: Allow}
}

func denied(reason DenyReason) Result {
	return Result{Decision: Deny, Reason: reason}
}

// CallerContext carries the identity of one command invocation. It is
// constructed per invocation and discarded with it — never persisted.
type CallerContext struct {
	// UserID is the invoking account.
	UserID ref.UserID

	// RoleIDs are the roles the caller holds in the guild the command
	// was invoked from. Nil or empty for callers with no roles, which
	// includes every direct-message invocation.
	RoleIDs []ref.RoleID

	// GuildID is the guild the command was invoked from. Zero for
	// direct-message invocations.
	GuildID ref.GuildID
}

// Evaluate checks caller against the required trust level. Fixed
// precedence, short-circuiting:
//
//  1. Owner bypass — absolute, independent of level and guild.
//  2. Owner-level commands deny everyone else.
//  3. Staff-level commands need a non-empty intersection between the
//     caller's roles and the configured staff roles.
//  4. Public commands allow.
//
// A caller with no roles (a direct-message context, say) fails the
// staff check the ordinary way — absence of roles is an empty set,
// not an error.
func Evaluate(config *trust.Config, caller CallerContext, level Level) Result {
	if caller.UserID == config.OwnerID {
		return allowed()
	}

	switch level {
	case Owner:
		return denied(ReasonOwnerOnly)
	case Staff:
		for _, role := range caller.RoleIDs {
			if config.IsStaffRole(role) {
				return allowed()
			}
		}
		return denied(ReasonInsufficientRole)
	default:
		return allowed()
	}
}

// GuildAllowed reports whether the bot is enabled in guild. An empty
// allowlist means the bot is enabled everywhere. Guild eligibility is
// deliberately separate from Evaluate: it is an orthogonal concern
// with its own failure message, checked by the Guard before trust
// levels for non-owner callers.
func GuildAllowed(config *trust.Config, guild ref.GuildID) bool {
	if len(config.AllowedGuilds) == 0 {
		return true
	}
	for _, allowed := range config.AllowedGuilds {
		if allowed == guild {
			return true
		}
	}
	return false
}
