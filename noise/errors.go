// SPDX-License-Identifier: MIT
// Package noise: sentinel errors.
// All messages are prefixed with "noise: ..."; match with errors.Is.

package noise

import "errors"

var (
	// ErrUnknownOperation indicates Execute was called with an unregistered name.
	ErrUnknownOperation = errors.New("noise: unknown operation")

	// ErrInvalidOperation indicates Register was given an empty name or nil op.
	ErrInvalidOperation = errors.New("noise: invalid operation")

	// ErrNilField indicates a nil input, or an operation that returned nil.
	ErrNilField = errors.New("noise: nil field")

	// ErrBadSettings indicates settings or params an operation cannot use.
	ErrBadSettings = errors.New("noise: bad settings")
)
