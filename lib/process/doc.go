// Copyright 2026 The Shopfront Authors
// SPDX-License-Identifier: Apache-2.0

// Package process provides binary entrypoint helpers for Shopfront
// binaries: fatal error reporting to stderr for errors that occur
// before the structured logger is initialized.
package process
