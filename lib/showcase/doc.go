// Copyright 2026 The Shopfront Authors
// SPDX-License-Identifier: Apache-2.0

// Package showcase keeps rendered product cards in sync with the
// catalog.
//
// A showcase card is a projection: the catalog file is the source of
// truth, and the message pinned in a channel is a best-effort mirror
// of it. Mutations to the catalog commit first; the card is sent or
// edited afterward, outside the store lock, and a failed render never
// rolls anything back. The link from an item to its card (channel id
// plus message id) lives on the item record so the projection survives
// restarts.
//
// Reconcile digests each card (deterministic CBOR, BLAKE3) and skips
// the platform edit when the content is unchanged, so repeated
// stock-only or no-op updates do not burn API calls.
package showcase
