// Copyright 2026 The Shopfront Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"math"

	"github.com/shopfront-foundation/shopfront/lib/ref"
)

// RenderLink records where an item's card is currently rendered: the
// channel (surface) and the message (anchor) within it. The link is a
// back-reference, not ownership — the rendered card is a projection
// of the item, and the catalog stays correct whether or not the card
// still exists.
type RenderLink struct {
	SurfaceID ref.ChannelID `json:"surfaceId"`
	AnchorID  ref.MessageID `json:"anchorId"`
}

// Item is one catalog record.
type Item struct {
	// ID is positive, unique, and stable for the item's lifetime.
	ID int64 `json:"id"`

	// Name is non-empty display text.
	Name string `json:"name"`

	// Price in the store currency, rounded to 2 places on the way in.
	Price float64 `json:"price"`

	// Stock is the tracked unit count. Nil means stock is not
	// tracked for this item.
	Stock *int64 `json:"stock,omitempty"`

	// ImageRef is the URL of the item's image. Resolution happens
	// before the item reaches the store: durable relocated asset,
	// then the caller's transient URL, then the placeholder.
	ImageRef string `json:"imageRef"`

	// RenderLink is where the item's card is rendered, if anywhere.
	RenderLink *RenderLink `json:"renderLink,omitempty"`

	// PaymentMethods are the accepted payment identifiers, in the
	// order staff configured them. May be empty.
	PaymentMethods []string `json:"paymentMethods"`

	// DiscountPercent is an integer percentage in [0, 100].
	DiscountPercent int `json:"discountPercent"`
}

// EffectivePrice returns the price after the discount, rounded to 2
// places.
func (i *Item) EffectivePrice() float64 {
	if i.DiscountPercent <= 0 {
		return i.Price
	}
	return RoundPrice(i.Price * float64(100-i.DiscountPercent) / 100)
}

// Draft is the caller-supplied portion of a new item. The store
// assigns the ID.
type Draft struct {
	Name            string
	Price           float64
	Stock           *int64
	ImageRef        string
	PaymentMethods  []string
	DiscountPercent int
}

// RoundPrice rounds a price to 2 decimal places: the value is scaled
// by 100, rounded half away from zero, and scaled back.
//
// The rounding operates on the binary float64, so decimal literals
// that look like exact midpoints may not be: 19.995 is stored as
// 19.99500000000000099…, lands above the midpoint, and rounds up to
// 20.00, while 9.995 is stored as 9.99499…, below it, and rounds down
// to 9.99. Rounding is idempotent — a value already on the 2-place
// grid maps to itself.
func RoundPrice(value float64) float64 {
	return math.Round(value*100) / 100
}
