/*
 * Copyright (c) 2024 jhuix. All rights reserved.
 * Use of this source code is governed by a license
 * that can be found in the LICENSE file.
 */

package history

import (
	`errors`
)

var (
	// ErrIOFailure wraps read and write failures of the history file.
	ErrIOFailure   = errors.New("history file io failure")
	ErrEntryFormat = errors.New("malformed history entry")
)
