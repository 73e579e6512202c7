// Copyright 2026 The Shopfront Authors
// SPDX-License-Identifier: Apache-2.0

package messaging

import "github.com/shopfront-foundation/shopfront/lib/ref"

// Message is the outbound message payload: plain text, rich embeds, or
// both.
type Message struct {
	Content string  `json:"content,omitempty"`
	Embeds  []Embed `json:"embeds,omitempty"`
}

// Embed is a rich content block attached to a message.
type Embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
	Image       *EmbedImage  `json:"image,omitempty"`
	Footer      *EmbedFooter `json:"footer,omitempty"`
}

// EmbedField is one name/value row inside an embed.
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

// EmbedImage references the embed's image by URL.
type EmbedImage struct {
	URL string `json:"url"`
}

// EmbedFooter is the small text line at the bottom of an embed.
type EmbedFooter struct {
	Text string `json:"text"`
}

// messageResponse is the subset of the platform's message object the
// client reads back.
type messageResponse struct {
	ID          ref.MessageID `json:"id,string"`
	ChannelID   ref.ChannelID `json:"channel_id,string"`
	Attachments []Attachment  `json:"attachments,omitempty"`
}

// Attachment is an uploaded file hanging off a message. The URL is the
// platform CDN link for the stored bytes.
type Attachment struct {
	ID       ref.MessageID `json:"id,string"`
	Filename string        `json:"filename"`
	URL      string        `json:"url"`
}
