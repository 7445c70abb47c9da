/*
 * Copyright (c) 2024 jhuix. All rights reserved.
 * Use of this source code is governed by a license
 * that can be found in the LICENSE file.
 */

package queue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDequePushPop(t *testing.T) {
	d := NewDeque[int](0)
	_, ok := d.PopFront()
	require.False(t, ok)

	for i := 1; i <= 20; i++ {
		d.PushBack(i)
	}
	d.PushFront(0)
	require.Equal(t, 21, d.Len())

	front, ok := d.Front()
	require.True(t, ok)
	assert.Equal(t, 0, front)
	back, ok := d.Back()
	require.True(t, ok)
	assert.Equal(t, 20, back)

	v, _ := d.PopFront()
	assert.Equal(t, 0, v)
	v, _ = d.PopBack()
	assert.Equal(t, 20, v)
	assert.Equal(t, 19, d.Len())
	assert.Equal(t, 1, d.At(0))
	assert.Equal(t, 19, d.At(18))
}

func TestDequeWrapAround(t *testing.T) {
	d := NewDeque[string](4)
	d.PushBack("a")
	d.PushBack("b")
	d.PushBack("c")
	d.PopFront()
	d.PopFront()
	d.PushBack("d")
	d.PushBack("e")
	d.PushBack("f")
	d.PushBack("g")
	assert.Equal(t, []string{"c", "d", "e", "f", "g"}, d.Slice())
}

func TestDequeRemove(t *testing.T) {
	d := NewDeque[int](2)
	for i := 0; i < 5; i++ {
		d.PushBack(i)
	}
	d.Remove(2)
	assert.Equal(t, []int{0, 1, 3, 4}, d.Slice())
	d.Remove(0)
	assert.Equal(t, []int{1, 3, 4}, d.Slice())
	d.Remove(7)
	assert.Equal(t, []int{1, 3, 4}, d.Slice())
	assert.Panics(t, func() { d.At(3) })

	d.Clear()
	assert.Zero(t, d.Len())
	assert.Empty(t, d.Slice())
}

func TestBoundedEvictsOldest(t *testing.T) {
	b := NewBounded[int](3)
	assert.Nil(t, b.Push(1))
	b.Push(2)
	b.Push(3)
	assert.Equal(t, []int{1}, b.Push(4))
	assert.Equal(t, []int{2, 3, 4}, b.Slice())
	assert.Equal(t, 3, b.Len())

	b.Reset([]int{9, 8, 7, 6, 5})
	assert.Equal(t, []int{7, 6, 5}, b.Slice())
}

func TestQueueFIFO(t *testing.T) {
	q := NewQueueWithSize[int](0, 4)
	defer q.Destroy()

	for i := 0; i < 10; i++ {
		q.Enqueue(i)
	}
	for i := 0; i < 10; i++ {
		select {
		case v := <-q.DequeueC():
			require.Equal(t, i, v)
		case <-time.After(time.Second):
			t.Fatalf("timeout waiting for element %d", i)
		}
	}
}

func TestQueueTuneSize(t *testing.T) {
	q := NewQueueWithSize[int](2, 0)
	defer q.Destroy()
	assert.Equal(t, 2, q.MaxSize())
	q.TuneSize(5)
	assert.Equal(t, 5, q.MaxSize())
}
