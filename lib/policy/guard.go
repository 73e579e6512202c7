// Copyright 2026 The Shopfront Authors
// SPDX-License-Identifier: Apache-2.0

package policy

import (
	"fmt"
	"log/slog"

	"github.com/shopfront-foundation/shopfront/lib/trust"
)

// Guard is the gate every privileged command passes through before
// executing. It loads the trust policy fresh for each decision and
// composes the checks in fixed order: owner bypass, guild allowlist,
// trust level.
type Guard struct {
	policies *trust.Store
	logger   *slog.Logger
}

// NewGuard creates a Guard reading policy from policies. If logger is
// nil, slog.Default() is used.
func NewGuard(policies *trust.Store, logger *slog.Logger) *Guard {
	if logger == nil {
		logger = slog.Default()
	}
	return &Guard{policies: policies, logger: logger}
}

// Authorize decides whether caller may run a command at the required
// trust level.
//
// A non-nil error means the decision could not be made at all (the
// trust policy was unreadable) — the command must not run, but the
// caller must not be told "denied" either, because an unreadable
// policy is an operational fault, not a policy outcome.
//
// Order: the owner bypass precedes the guild allowlist — the owner is
// allowed everywhere, including guilds the bot is not enabled in. For
// everyone else the guild check comes first, so a caller in a
// disabled guild never learns whether their roles would have been
// sufficient.
func (g *Guard) Authorize(caller CallerContext, level Level) (Result, error) {
	config, err := g.policies.Load()
	if err != nil {
		return Result{}, fmt.Errorf("authorize: %w", err)
	}

	result := g.evaluate(config, caller, level)
	if result.Decision == Deny {
		// Denials are expected outcomes, not faults.
		g.logger.Debug("command denied",
			"caller", caller.UserID,
			"guild", caller.GuildID,
			"level", level.String(),
			"reason", result.Reason.String(),
		)
	}
	return result, nil
}

func (g *Guard) evaluate(config *trust.Config, caller CallerContext, level Level) Result {
	if caller.UserID == config.OwnerID {
		return allowed()
	}
	if !GuildAllowed(config, caller.GuildID) {
		return denied(ReasonWorkspaceNotEnabled)
	}
	return Evaluate(config, caller, level)
}
