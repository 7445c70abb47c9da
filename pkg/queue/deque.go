/*
 * Copyright (c) 2024 jhuix. All rights reserved.
 * Use of this source code is governed by a license
 * that can be found in the LICENSE file.
 */

package queue

// Deque 基于环形缓冲区的双端队列，非并发安全
type Deque[T any] struct {
	buf  []T
	head int
	n    int
}

func NewDeque[T any](capacity int) *Deque[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Deque[T]{buf: make([]T, capacity)}
}

func (d *Deque[T]) Len() int {
	return d.n
}

func (d *Deque[T]) grow() {
	size := len(d.buf) * 2
	if size == 0 {
		size = 8
	}
	buf := make([]T, size)
	for i := 0; i < d.n; i++ {
		buf[i] = d.buf[(d.head+i)%len(d.buf)]
	}
	d.buf = buf
	d.head = 0
}

func (d *Deque[T]) PushBack(v T) {
	if d.n == len(d.buf) {
		d.grow()
	}
	d.buf[(d.head+d.n)%len(d.buf)] = v
	d.n++
}

func (d *Deque[T]) PushFront(v T) {
	if d.n == len(d.buf) {
		d.grow()
	}
	d.head = (d.head - 1 + len(d.buf)) % len(d.buf)
	d.buf[d.head] = v
	d.n++
}

// Front 返回队首元素但不移除
func (d *Deque[T]) Front() (T, bool) {
	var zero T
	if d.n == 0 {
		return zero, false
	}
	return d.buf[d.head], true
}

func (d *Deque[T]) Back() (T, bool) {
	var zero T
	if d.n == 0 {
		return zero, false
	}
	return d.buf[(d.head+d.n-1)%len(d.buf)], true
}

func (d *Deque[T]) PopFront() (T, bool) {
	v, ok := d.Front()
	if !ok {
		return v, false
	}
	var zero T
	d.buf[d.head] = zero
	d.head = (d.head + 1) % len(d.buf)
	d.n--
	return v, true
}

func (d *Deque[T]) PopBack() (T, bool) {
	v, ok := d.Back()
	if !ok {
		return v, false
	}
	var zero T
	d.buf[(d.head+d.n-1)%len(d.buf)] = zero
	d.n--
	return v, true
}

// At panics when i is out of range, like a slice index.
func (d *Deque[T]) At(i int) T {
	if i < 0 || i >= d.n {
		panic("queue: deque index out of range")
	}
	return d.buf[(d.head+i)%len(d.buf)]
}

// Remove deletes the element at i and keeps the order of the rest.
func (d *Deque[T]) Remove(i int) {
	if i < 0 || i >= d.n {
		return
	}
	if i == 0 {
		d.PopFront()
		return
	}
	for j := i; j < d.n-1; j++ {
		d.buf[(d.head+j)%len(d.buf)] = d.buf[(d.head+j+1)%len(d.buf)]
	}
	d.PopBack()
}

// Slice copies the elements from front to back.
func (d *Deque[T]) Slice() []T {
	out := make([]T, d.n)
	for i := 0; i < d.n; i++ {
		out[i] = d.buf[(d.head+i)%len(d.buf)]
	}
	return out
}

func (d *Deque[T]) Clear() {
	var zero T
	for i := range d.buf {
		d.buf[i] = zero
	}
	d.head, d.n = 0, 0
}

// Bounded keeps at most max elements, evicting from the front.
type Bounded[T any] struct {
	d   *Deque[T]
	max int
}

func NewBounded[T any](max int) *Bounded[T] {
	if max <= 0 {
		max = 1
	}
	return &Bounded[T]{d: NewDeque[T](max + 1), max: max}
}

// Push appends v and returns the evicted elements, oldest first.
func (b *Bounded[T]) Push(v T) (evicted []T) {
	b.d.PushBack(v)
	for b.d.Len() > b.max {
		e, _ := b.d.PopFront()
		evicted = append(evicted, e)
	}
	return evicted
}

func (b *Bounded[T]) Len() int {
	return b.d.Len()
}

func (b *Bounded[T]) MaxSize() int {
	return b.max
}

func (b *Bounded[T]) Slice() []T {
	return b.d.Slice()
}

func (b *Bounded[T]) Reset(vs []T) {
	b.d.Clear()
	for _, v := range vs {
		b.Push(v)
	}
}
