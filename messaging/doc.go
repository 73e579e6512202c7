// Copyright 2026 The Shopfront Authors
// SPDX-License-Identifier: Apache-2.0

// Package messaging is the REST client for the chat platform.
//
// The client covers the small slice of the platform API the storefront
// needs: posting and editing channel messages with embeds, and
// uploading attachments to the durable image-storage channel. Every
// call takes a context and returns an explicit error; platform error
// responses are surfaced as *APIError so callers can branch on the
// platform's numeric error codes with errors.As.
package messaging
