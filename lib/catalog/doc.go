// Copyright 2026 The Shopfront Authors
// SPDX-License-Identifier: Apache-2.0

// Package catalog is the durable store of sellable items.
//
// The catalog is an ordered JSON array in a single file — small enough
// to hold in memory, human-inspectable, and trivially diffable. Every
// mutation runs a full read-modify-write-confirm cycle: the new
// catalog is written to a temp file and renamed over the old one
// before the mutation reports success, so a crash mid-command leaves
// the previous consistent catalog on disk. The in-memory view is only
// updated after the write confirms.
//
// Item identifiers are assigned monotonically under the store lock
// and never reused after deletion. A single mutex serializes every
// read-modify-write cycle; the backing file is one resource, so
// finer-grained per-item locking would still funnel every write
// through the same file replacement.
package catalog
