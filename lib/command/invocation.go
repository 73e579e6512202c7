// Copyright 2026 The Shopfront Authors
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"github.com/shopfront-foundation/shopfront/lib/ref"
	"github.com/shopfront-foundation/shopfront/lib/showcase"
)

// Invocation is one command call as delivered by the platform. The
// identity fields describe the caller at the moment of the call and
// are discarded after dispatch.
type Invocation struct {
	CallerID  ref.UserID
	RoleIDs   []ref.RoleID
	GuildID   ref.GuildID
	ChannelID ref.ChannelID

	Command string
	Params  Params

	// Attachment is the image uploaded with the command, if any.
	Attachment *showcase.Asset
}

// Params holds the command's named options as the platform delivered
// them: loosely typed JSON values. The accessors perform the type
// narrowing handlers need; a missing key and a wrong-typed value both
// read as absent.
type Params map[string]any

// String returns the named string option.
func (p Params) String(key string) (string, bool) {
	value, ok := p[key].(string)
	return value, ok
}

// Float returns the named numeric option. Platform payloads deliver
// numbers as JSON doubles; integers stored by earlier layers are
// accepted too.
func (p Params) Float(key string) (float64, bool) {
	switch value := p[key].(type) {
	case float64:
		return value, true
	case int64:
		return float64(value), true
	case int:
		return float64(value), true
	}
	return 0, false
}

// Int returns the named integer option. JSON doubles are accepted
// when they carry an integral value.
func (p Params) Int(key string) (int64, bool) {
	switch value := p[key].(type) {
	case int64:
		return value, true
	case int:
		return int64(value), true
	case float64:
		if value == float64(int64(value)) {
			return int64(value), true
		}
	}
	return 0, false
}

// Result is the reply sent back for an invocation. Ephemeral results
// are visible only to the caller.
type Result struct {
	Success   bool
	Message   string
	Ephemeral bool
}
