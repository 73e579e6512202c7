// Copyright 2026 The Shopfront Authors
// SPDX-License-Identifier: Apache-2.0

package showcase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/zeebo/blake3"

	"github.com/shopfront-foundation/shopfront/lib/catalog"
	"github.com/shopfront-foundation/shopfront/lib/codec"
	"github.com/shopfront-foundation/shopfront/lib/ref"
)

// Manager publishes product cards and keeps them reconciled with the
// catalog. Publish failures surface to the caller (who treats them as
// best-effort); Reconcile failures are absorbed here and logged.
type Manager struct {
	surface        Surface
	placeholderURL string
	logger         *slog.Logger

	mu sync.Mutex
	// rendered maps item id to the digest of the card content last
	// delivered to the platform. Process-lifetime only: after a
	// restart the first Reconcile per item edits unconditionally.
	rendered map[int64][32]byte
	// relocated maps the BLAKE3 digest of raw asset bytes to the
	// durable URL they were relocated to, so identical images are
	// uploaded once.
	relocated map[[32]byte]string
}

// NewManager returns a Manager rendering through the given surface.
// placeholderURL is the image used when a product has no resolvable
// image of its own.
func NewManager(surface Surface, placeholderURL string, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		surface:        surface,
		placeholderURL: placeholderURL,
		logger:         logger,
		rendered:       make(map[int64][32]byte),
		relocated:      make(map[[32]byte]string),
	}
}

// ItemCard builds the card content for a catalog item. The card is a
// pure function of the item, which is what makes digest-based skip
// detection in Reconcile sound.
func (m *Manager) ItemCard(item catalog.Item) Card {
	fields := []CardField{
		{Name: "Price", Value: formatPrice(item), Inline: true},
		{Name: "Stock", Value: formatStock(item.Stock), Inline: true},
	}
	if len(item.PaymentMethods) > 0 {
		fields = append(fields, CardField{
			Name:  "Payment",
			Value: strings.Join(item.PaymentMethods, ", "),
		})
	}
	return Card{
		Title:    item.Name,
		Fields:   fields,
		ImageURL: item.ImageRef,
		Footer:   fmt.Sprintf("Product #%d", item.ID),
	}
}

// Publish sends a fresh card for the item and returns the render link
// to persist on it. The caller decides what a failure means; for a
// newly created item it simply leaves the item unrendered.
func (m *Manager) Publish(ctx context.Context, channel ref.ChannelID, item catalog.Item) (*catalog.RenderLink, error) {
	card := m.ItemCard(item)
	messageID, err := m.surface.SendNew(ctx, channel, card)
	if err != nil {
		return nil, fmt.Errorf("showcase: publishing card for item %d: %w", item.ID, err)
	}
	m.remember(item.ID, card)
	return &catalog.RenderLink{SurfaceID: channel, AnchorID: messageID}, nil
}

// Reconcile brings the item's rendered card up to date with its
// current state. Items without a render link are skipped, as are items
// whose card content is unchanged since the last delivery. Surface
// failures are logged at warn and swallowed: the catalog committed
// first and a stale card never justifies unwinding that.
func (m *Manager) Reconcile(ctx context.Context, item catalog.Item) {
	if item.RenderLink == nil {
		return
	}

	card := m.ItemCard(item)
	digest, err := cardDigest(card)
	if err != nil {
		// Card content is plain data; this does not happen in
		// practice, but a digest failure only costs the skip
		// optimization.
		m.logger.Warn("card digest failed, editing unconditionally",
			"item", item.ID, "error", err)
	} else if m.alreadyRendered(item.ID, digest) {
		return
	}

	link := *item.RenderLink
	if err := m.surface.UpdateExisting(ctx, link.SurfaceID, link.AnchorID, card); err != nil {
		if errors.Is(err, ErrCardGone) {
			// The anchor will never be editable again; no retry can
			// help. The item stays valid without a card.
			m.logger.Info("showcase card is gone, leaving item unrendered",
				"item", item.ID,
				"channel", link.SurfaceID,
				"message", link.AnchorID)
			m.Forget(item.ID)
			return
		}
		m.logger.Warn("showcase card update failed",
			"item", item.ID,
			"channel", link.SurfaceID,
			"message", link.AnchorID,
			"error", err)
		return
	}
	m.remember(item.ID, card)
}

// Forget drops the reconcile state for an item, typically after it is
// deleted. The rendered card itself is left in the channel.
func (m *Manager) Forget(itemID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rendered, itemID)
}

// ResolveImage turns the asset supplied with a product into the image
// reference stored on the item. Resolution order: relocate raw bytes
// to durable storage, fall back to the platform's transient URL, fall
// back to the placeholder. Identical bytes relocate once; later
// resolutions reuse the cached URL.
func (m *Manager) ResolveImage(ctx context.Context, asset Asset) string {
	if len(asset.Data) > 0 {
		digest := blake3.Sum256(asset.Data)

		m.mu.Lock()
		url, cached := m.relocated[digest]
		m.mu.Unlock()
		if cached {
			return url
		}

		url, err := m.surface.RelocateAsset(ctx, asset.Filename, asset.Data)
		if err == nil {
			m.mu.Lock()
			m.relocated[digest] = url
			m.mu.Unlock()
			return url
		}
		m.logger.Warn("asset relocation failed, falling back",
			"filename", asset.Filename, "error", err)
	}
	if asset.TransientURL != "" {
		return asset.TransientURL
	}
	return m.placeholderURL
}

func (m *Manager) alreadyRendered(itemID int64, digest [32]byte) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	previous, ok := m.rendered[itemID]
	return ok && previous == digest
}

func (m *Manager) remember(itemID int64, card Card) {
	digest, err := cardDigest(card)
	if err != nil {
		return
	}
	m.mu.Lock()
	m.rendered[itemID] = digest
	m.mu.Unlock()
}

// cardDigest returns the BLAKE3 digest of the card's canonical CBOR
// encoding. Deterministic encoding is what lets byte equality stand in
// for content equality.
func cardDigest(card Card) ([32]byte, error) {
	data, err := codec.Marshal(card)
	if err != nil {
		return [32]byte{}, err
	}
	return blake3.Sum256(data), nil
}

func formatPrice(item catalog.Item) string {
	effective := item.EffectivePrice()
	if item.DiscountPercent > 0 {
		return fmt.Sprintf("~~$%.2f~~ $%.2f (%d%% off)", item.Price, effective, item.DiscountPercent)
	}
	return fmt.Sprintf("$%.2f", effective)
}

func formatStock(stock *int64) string {
	if stock == nil {
		return "Unlimited"
	}
	if *stock == 0 {
		return "Out of stock"
	}
	return fmt.Sprintf("%d available", *stock)
}
