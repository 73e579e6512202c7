// Copyright 2026 The Shopfront Authors
// SPDX-License-Identifier: Apache-2.0

package showcase

import (
	"context"
	"errors"

	"github.com/shopfront-foundation/shopfront/lib/ref"
)

// ErrCardGone reports that a card's anchor can never be edited again:
// the message or its channel was deleted, or the message is not
// editable by this identity. Surface implementations wrap it so the
// manager can tell a dead anchor from a transient failure.
var ErrCardGone = errors.New("showcase: card message is gone")

// Card is the renderable content of a product showcase message. It is
// platform-neutral: the Surface implementation decides how a card maps
// onto the platform's message format.
type Card struct {
	Title    string      `json:"title"`
	Fields   []CardField `json:"fields,omitempty"`
	ImageURL string      `json:"imageUrl,omitempty"`
	Footer   string      `json:"footer,omitempty"`
}

// CardField is one labeled line on a card.
type CardField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

// Asset is an image supplied with a product. Data holds the raw bytes
// when the platform delivered an attachment; TransientURL is the
// short-lived CDN link the platform exposes for it. Either may be
// empty.
type Asset struct {
	Filename     string
	Data         []byte
	TransientURL string
}

// Surface is the platform side of the showcase: something that can
// post cards, edit them in place, and re-host image bytes somewhere
// durable. The production implementation wraps the messaging client;
// tests substitute a fake.
type Surface interface {
	// SendNew posts a card as a fresh message in the channel and
	// returns the new message's id.
	SendNew(ctx context.Context, channel ref.ChannelID, card Card) (ref.MessageID, error)

	// UpdateExisting replaces the content of an existing card message.
	UpdateExisting(ctx context.Context, channel ref.ChannelID, message ref.MessageID, card Card) error

	// RelocateAsset uploads raw image bytes to durable storage and
	// returns a stable URL for them.
	RelocateAsset(ctx context.Context, filename string, data []byte) (string, error)
}
