/*
 * Copyright (c) 2024 jhuix. All rights reserved.
 * Use of this source code is governed by a license
 * that can be found in the LICENSE file.
 */

// Package recall walks back and forth through the values previously
// submitted in one input field.
package recall

import (
	`strings`
)

const noCursor = -1

type Recall struct {
	values []string
	cursor int
}

func New() *Recall {
	return &Recall{cursor: noCursor}
}

// Commit appends value unless it is empty or equal to the last committed
// value. The cursor is always reset.
func (r *Recall) Commit(value string) {
	value = strings.TrimSpace(value)
	if len(value) > 0 && (len(r.values) == 0 || r.values[len(r.values)-1] != value) {
		r.values = append(r.values, value)
	}
	r.cursor = noCursor
}

// Previous moves the cursor one step back, starting from the newest value.
// ok is false when nothing has been committed.
func (r *Recall) Previous() (value string, ok bool) {
	if len(r.values) == 0 {
		return "", false
	}

	if r.cursor == noCursor {
		r.cursor = len(r.values) - 1
	} else if r.cursor > 0 {
		r.cursor--
	}
	return r.values[r.cursor], true
}

// Next moves the cursor one step forward. Stepping past the newest value
// unsets the cursor and returns ("", true): the field is to be cleared.
// ok is false when the cursor is unset.
func (r *Recall) Next() (value string, ok bool) {
	if r.cursor == noCursor {
		return "", false
	}

	if r.cursor < len(r.values)-1 {
		r.cursor++
		return r.values[r.cursor], true
	}

	r.cursor = noCursor
	return "", true
}

func (r *Recall) Values() []string {
	out := make([]string, len(r.values))
	copy(out, r.values)
	return out
}

func (r *Recall) Cursor() (int, bool) {
	if r.cursor == noCursor {
		return 0, false
	}
	return r.cursor, true
}

func (r *Recall) Len() int {
	return len(r.values)
}
