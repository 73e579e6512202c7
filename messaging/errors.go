// Copyright 2026 The Shopfront Authors
// SPDX-License-Identifier: Apache-2.0

package messaging

import (
	"errors"
	"fmt"
)

// APIError represents a structured error response from the platform.
// Callers can use errors.As to extract the structured information:
//
//	var apiErr *messaging.APIError
//	if errors.As(err, &apiErr) {
//	    if apiErr.Code == messaging.ErrCodeUnknownMessage { ... }
//	}
type APIError struct {
	// Code is the platform's numeric error code (e.g. 10008 for an
	// unknown message).
	Code int `json:"code"`
	// Message is the human-readable error description from the server.
	Message string `json:"message"`
	// StatusCode is the HTTP status code of the response.
	StatusCode int `json:"-"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("platform: %d (%d): %s", e.Code, e.StatusCode, e.Message)
}

// Platform error codes the storefront cares about.
const (
	ErrCodeUnknownChannel = 10003
	ErrCodeUnknownMessage = 10008
	ErrCodeMissingAccess  = 50001
	ErrCodeCannotEdit     = 50005
)

// IsAPIError checks whether err is a *APIError with the given code.
func IsAPIError(err error, code int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == code
	}
	return false
}
