// SPDX-License-Identifier: MIT
// Package config: sentinel errors.

package config

import "errors"

// ErrInvalidConfig indicates a value Validate rejects.
var ErrInvalidConfig = errors.New("config: invalid configuration")
