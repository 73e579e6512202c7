// Copyright 2026 The Shopfront Authors
// SPDX-License-Identifier: Apache-2.0

package policy

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopfront-foundation/shopfront/lib/ref"
	"github.com/shopfront-foundation/shopfront/lib/trust"
)

// writePolicy writes a policy file and returns a Store reading it.
func writePolicy(t *testing.T, content string) *trust.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "policy.jsonc")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return trust.NewStore(path)
}

func TestAuthorize(t *testing.T) {
	restricted := `{"owner_id": 1, "staff_roles": [10], "allowed_guilds": [5]}`
	open := `{"owner_id": 1, "staff_roles": [10], "allowed_guilds": []}`

	tests := []struct {
		name       string
		policy     string
		caller     CallerContext
		level      Level
		want       Decision
		wantReason DenyReason
	}{
		{
			name:   "owner bypasses guild allowlist",
			policy: restricted,
			caller: CallerContext{UserID: 1, GuildID: 99},
			level:  Owner,
			want:   Allow,
		},
		{
			name:   "owner bypasses from direct message",
			policy: restricted,
			caller: CallerContext{UserID: 1},
			level:  Staff,
			want:   Allow,
		},
		{
			name:       "guild check precedes role check",
			policy:     restricted,
			caller:     CallerContext{UserID: 2, RoleIDs: []ref.RoleID{10}, GuildID: 99},
			level:      Staff,
			want:       Deny,
			wantReason: ReasonWorkspaceNotEnabled,
		},
		{
			name:   "staff allowed in enabled guild",
			policy: restricted,
			caller: CallerContext{UserID: 2, RoleIDs: []ref.RoleID{10}, GuildID: 5},
			level:  Staff,
			want:   Allow,
		},
		{
			name:       "staff denied owner command",
			policy:     open,
			caller:     CallerContext{UserID: 2, RoleIDs: []ref.RoleID{10}, GuildID: 5},
			level:      Owner,
			want:       Deny,
			wantReason: ReasonOwnerOnly,
		},
		{
			name:   "empty allowlist never denies on guild",
			policy: open,
			caller: CallerContext{UserID: 2, RoleIDs: []ref.RoleID{10}, GuildID: 424242},
			level:  Staff,
			want:   Allow,
		},
		{
			name:       "no roles denied staff",
			policy:     open,
			caller:     CallerContext{UserID: 2, GuildID: 5},
			level:      Staff,
			want:       Deny,
			wantReason: ReasonInsufficientRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guard := NewGuard(writePolicy(t, tt.policy), nil)
			result, err := guard.Authorize(tt.caller, tt.level)
			if err != nil {
				t.Fatalf("Authorize(): %v", err)
			}
			if result.Decision != tt.want {
				t.Fatalf("decision = %v, want %v", result.Decision, tt.want)
			}
			if tt.want == Deny && result.Reason != tt.wantReason {
				t.Errorf("reason = %v, want %v", result.Reason, tt.wantReason)
			}
		})
	}
}

func TestAuthorizeUnreadablePolicy(t *testing.T) {
	guard := NewGuard(trust.NewStore(filepath.Join(t.TempDir(), "absent.jsonc")), nil)
	_, err := guard.Authorize(CallerContext{UserID: 1}, Public)
	if !errors.Is(err, trust.ErrUnreadable) {
		t.Errorf("Authorize() error = %v, want trust.ErrUnreadable", err)
	}
}

func TestAuthorizeMalformedPolicy(t *testing.T) {
	// A malformed policy must fail the decision, not default to deny
	// or allow.
	guard := NewGuard(writePolicy(t, `{"owner_id": "not a number"}`), nil)
	_, err := guard.Authorize(CallerContext{UserID: 1}, Public)
	if !errors.Is(err, trust.ErrUnreadable) {
		t.Errorf("Authorize() error = %v, want trust.ErrUnreadable", err)
	}
}

func TestAuthorizeReloadsPerDecision(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.jsonc")
	write := func(content string) {
		t.Helper()
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	write(`{"owner_id": 1, "staff_roles": [10]}`)
	guard := NewGuard(trust.NewStore(path), nil)
	caller := CallerContext{UserID: 2, RoleIDs: []ref.RoleID{10}, GuildID: 5}

	result, err := guard.Authorize(caller, Staff)
	if err != nil {
		t.Fatal(err)
	}
	if result.Decision != Allow {
		t.Fatalf("before edit: decision = %v, want Allow", result.Decision)
	}

	// Revoke the staff role; the very next decision must see it.
	write(`{"owner_id": 1, "staff_roles": [20]}`)
	result, err = guard.Authorize(caller, Staff)
	if err != nil {
		t.Fatal(err)
	}
	if result.Decision != Deny || result.Reason != ReasonInsufficientRole {
		t.Errorf("after edit: result = %+v, want insufficient-role deny", result)
	}
}
