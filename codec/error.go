/*
 * Copyright (c) 2024 jhuix. All rights reserved.
 * Use of this source code is governed by a license
 * that can be found in the LICENSE file.
 */

package codec

import (
	`errors`
)

var (
	// ErrInvalidFormat malformed address text or non-numeric integer text
	ErrInvalidFormat = errors.New("invalid IPv4 address format")
	// ErrOutOfRange integer outside [0, 4294967295]
	ErrOutOfRange = errors.New("integer out of IPv4 range")
)
