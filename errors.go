// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/globre

package globre

import "errors"

// Sentinel errors for globre operations.
var (
	// ErrInvalidRule indicates malformed or unsupported rule input.
	ErrInvalidRule = errors.New("invalid rule")
	// ErrInvalidPattern indicates a pattern the compiler could not accept.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrInvalidAction indicates an unknown action name or value.
	ErrInvalidAction = errors.New("invalid action")
)
