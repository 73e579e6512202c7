// Copyright 2026 The Shopfront Authors
// SPDX-License-Identifier: Apache-2.0

package showcase

import (
	"context"
	"fmt"

	"github.com/shopfront-foundation/shopfront/lib/ref"
	"github.com/shopfront-foundation/shopfront/messaging"
)

// cardColor is the accent color on rendered product cards.
const cardColor = 0x5865F2

// PlatformSurface renders cards through the platform REST client.
// Assets relocate into a dedicated storage channel whose CDN links
// outlive the transient upload URLs attached to commands.
type PlatformSurface struct {
	client         *messaging.Client
	storageChannel ref.ChannelID
}

// NewPlatformSurface wraps a messaging client as a Surface.
func NewPlatformSurface(client *messaging.Client, storageChannel ref.ChannelID) *PlatformSurface {
	return &PlatformSurface{client: client, storageChannel: storageChannel}
}

// SendNew posts the card as an embed message.
func (p *PlatformSurface) SendNew(ctx context.Context, channel ref.ChannelID, card Card) (ref.MessageID, error) {
	messageID, err := p.client.CreateMessage(ctx, channel, cardMessage(card))
	if messaging.IsAPIError(err, messaging.ErrCodeMissingAccess) {
		return 0, fmt.Errorf("showcase: no access to channel %s: %w", channel, err)
	}
	return messageID, err
}

// UpdateExisting edits the card message in place. Platform responses
// meaning the anchor can never be edited again — message deleted,
// channel deleted, or the message is not ours to edit — are reported
// as ErrCardGone.
func (p *PlatformSurface) UpdateExisting(ctx context.Context, channel ref.ChannelID, message ref.MessageID, card Card) error {
	err := p.client.UpdateMessage(ctx, channel, message, cardMessage(card))
	switch {
	case err == nil:
		return nil
	case messaging.IsAPIError(err, messaging.ErrCodeUnknownMessage),
		messaging.IsAPIError(err, messaging.ErrCodeUnknownChannel),
		messaging.IsAPIError(err, messaging.ErrCodeCannotEdit):
		return fmt.Errorf("%w: %w", ErrCardGone, err)
	}
	return err
}

// RelocateAsset uploads the bytes to the storage channel and returns
// the resulting CDN URL.
func (p *PlatformSurface) RelocateAsset(ctx context.Context, filename string, data []byte) (string, error) {
	return p.client.UploadAsset(ctx, p.storageChannel, filename, data)
}

// cardMessage maps the platform-neutral card onto an embed.
func cardMessage(card Card) messaging.Message {
	embed := messaging.Embed{
		Title: card.Title,
		Color: cardColor,
	}
	for _, field := range card.Fields {
		embed.Fields = append(embed.Fields, messaging.EmbedField{
			Name:   field.Name,
			Value:  field.Value,
			Inline: field.Inline,
		})
	}
	if card.ImageURL != "" {
		embed.Image = &messaging.EmbedImage{URL: card.ImageURL}
	}
	if card.Footer != "" {
		embed.Footer = &messaging.EmbedFooter{Text: card.Footer}
	}
	return messaging.Message{Embeds: []messaging.Embed{embed}}
}
