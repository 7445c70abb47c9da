/*
 * Copyright (c) 2024 jhuix. All rights reserved.
 * Use of this source code is governed by a license
 * that can be found in the LICENSE file.
 */

package recall

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecallWalk(t *testing.T) {
	r := New()
	r.Commit("10.0.0.1")
	r.Commit("10.0.0.2")

	v, ok := r.Previous()
	require.True(t, ok)
	assert.Equal(t, "10.0.0.2", v)

	v, ok = r.Previous()
	require.True(t, ok)
	assert.Equal(t, "10.0.0.1", v)

	// stays on the first value
	v, _ = r.Previous()
	assert.Equal(t, "10.0.0.1", v)

	v, ok = r.Next()
	require.True(t, ok)
	assert.Equal(t, "10.0.0.2", v)

	v, ok = r.Next()
	require.True(t, ok)
	assert.Empty(t, v)
	_, set := r.Cursor()
	assert.False(t, set)

	_, ok = r.Next()
	assert.False(t, ok)
}

func TestRecallEmpty(t *testing.T) {
	r := New()
	_, ok := r.Previous()
	assert.False(t, ok)
	_, ok = r.Next()
	assert.False(t, ok)
	_, set := r.Cursor()
	assert.False(t, set)
}

func TestRecallCommit(t *testing.T) {
	r := New()
	r.Commit("")
	r.Commit("   ")
	r.Commit(" 1.2.3.4 ")
	r.Commit("1.2.3.4")
	r.Commit("5.6.7.8")
	r.Commit("1.2.3.4")
	assert.Equal(t, []string{"1.2.3.4", "5.6.7.8", "1.2.3.4"}, r.Values())
	assert.Equal(t, 3, r.Len())

	r.Previous()
	r.Previous()
	i, set := r.Cursor()
	require.True(t, set)
	assert.Equal(t, 1, i)

	r.Commit("")
	_, set = r.Cursor()
	assert.False(t, set)
}

func TestRecallInstancesAreIndependent(t *testing.T) {
	values, searches := New(), New()
	values.Commit("10.0.0.1")
	searches.Commit("error")

	v, _ := values.Previous()
	assert.Equal(t, "10.0.0.1", v)
	s, _ := searches.Previous()
	assert.Equal(t, "error", s)

	_, set := searches.Cursor()
	assert.True(t, set)
	values.Commit("10.0.0.2")
	_, set = searches.Cursor()
	assert.True(t, set)
}
