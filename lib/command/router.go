// Copyright 2026 The Shopfront Authors
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopfront-foundation/shopfront/lib/policy"
)

// Handler executes an already-authorized invocation.
type Handler func(ctx context.Context, inv Invocation) Result

// genericFailure is the reply for any internal error. The detail goes
// to the log, never to the channel.
const genericFailure = "Something went wrong. Please try again later."

type binding struct {
	level   policy.Level
	handler Handler
}

// Router authorizes and dispatches invocations.
type Router struct {
	guard    *policy.Guard
	logger   *slog.Logger
	bindings map[string]binding
}

// NewRouter creates a Router authorizing through the given guard.
func NewRouter(guard *policy.Guard, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		guard:    guard,
		logger:   logger,
		bindings: make(map[string]binding),
	}
}

// Register binds a command name to its required trust level and
// handler. Registering the same name twice panics: bindings are wiring,
// and conflicting wiring is a programming error.
func (r *Router) Register(name string, level policy.Level, handler Handler) {
	if _, exists := r.bindings[name]; exists {
		panic(fmt.Sprintf("command: %q registered twice", name))
	}
	r.bindings[name] = binding{level: level, handler: handler}
}

// Dispatch authorizes the invocation and runs its handler. Every path
// returns a user-facing Result; authorization failures and unknown
// commands never reach a handler.
func (r *Router) Dispatch(ctx context.Context, inv Invocation) Result {
	bound, ok := r.bindings[inv.Command]
	if !ok {
		return Result{Message: "Unknown command.", Ephemeral: true}
	}

	caller := policy.CallerContext{
		UserID:  inv.CallerID,
		RoleIDs: inv.RoleIDs,
		GuildID: inv.GuildID,
	}
	decision, err := r.guard.Authorize(caller, bound.level)
	if err != nil {
		// Trust policy unreadable. Failing loud here means failing
		// closed: nobody gets through on a broken policy file.
		r.logger.Error("authorization unavailable",
			"command", inv.Command, "caller", inv.CallerID, "error", err)
		return Result{Message: genericFailure, Ephemeral: true}
	}
	if decision.Decision == policy.Deny {
		return Result{Message: denyMessage(decision.Reason), Ephemeral: true}
	}

	return bound.handler(ctx, inv)
}

// denyMessage maps a deny reason onto the reply the caller sees.
func denyMessage(reason policy.DenyReason) string {
	switch reason {
	case policy.ReasonOwnerOnly:
		return "This command is restricted to the shop owner."
	case policy.ReasonInsufficientRole:
		return "You don't have permission to use this command."
	case policy.ReasonWorkspaceNotEnabled:
		return "This server isn't enabled for the shop."
	default:
		return "You can't use this command."
	}
}
