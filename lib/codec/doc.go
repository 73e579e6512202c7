// Copyright 2026 The Shopfront Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides Shopfront's deterministic CBOR encoding.
//
// JSON is the format for everything external: the platform API, the
// persisted catalog and trust policy, CLI output. CBOR exists for one
// internal job — producing canonical bytes for content digests. The
// encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items.
// Same logical data always produces identical bytes, which is what
// makes digest comparison meaningful.
package codec
