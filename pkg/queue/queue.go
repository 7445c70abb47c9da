/*
 * Copyright (c) 2024 jhuix. All rights reserved.
 * Use of this source code is governed by a license
 * that can be found in the LICENSE file.
 */

package queue

import (
	`sync`
	`sync/atomic`
)

// Queue 相当于容量可无限制的channel，元素缓存在Deque中
// Enqueue 在队列满时阻塞，Dequeue 在队列空时阻塞
type Queue[T any] struct {
	l    *Deque[T]
	max  atomic.Int64
	size atomic.Int64
	done chan struct{}
	once sync.Once
	in   chan T // use to enqueue
	out  chan T // use to dequeue
}

// NewQueueWithSize max<=0 表示无元素上限；内部goroutine由Destroy()结束
func NewQueueWithSize[T any](max int, inChanSize int) *Queue[T] {
	q := &Queue[T]{
		l:    NewDeque[T](inChanSize),
		done: make(chan struct{}),
		in:   make(chan T, inChanSize),
		out:  make(chan T),
	}
	q.max.Store(int64(max))
	go q.dispatch()
	return q
}

func NewQueue[T any]() *Queue[T] {
	return NewQueueWithSize[T](0, 0)
}

func (q *Queue[T]) full() bool {
	max := q.max.Load()
	return max > 0 && int64(q.l.Len()) >= max
}

func (q *Queue[T]) dispatch() {
	for {
		if q.l.Len() == 0 {
			select {
			case v := <-q.in:
				q.l.PushBack(v)
				q.size.Add(1)
			case <-q.done:
				return
			}
		}

		e, _ := q.l.Front()
		if q.full() {
			select {
			case q.out <- e:
				q.l.PopFront()
				q.size.Add(-1)
			case <-q.done:
				return
			}
			continue
		}

		select {
		case v := <-q.in:
			q.l.PushBack(v)
			q.size.Add(1)
		case q.out <- e:
			q.l.PopFront()
			q.size.Add(-1)
		case <-q.done:
			return
		}
	}
}

func (q *Queue[T]) Size() int {
	return int(q.size.Load())
}

func (q *Queue[T]) MaxSize() int {
	return int(q.max.Load())
}

func (q *Queue[T]) TuneSize(max int) {
	q.max.Store(int64(max))
}

func (q *Queue[T]) Enqueue(v T) {
	q.in <- v
}

func (q *Queue[T]) Dequeue() T {
	return <-q.out
}

func (q *Queue[T]) EnqueueC() chan<- T {
	return q.in
}

func (q *Queue[T]) DequeueC() <-chan T {
	return q.out
}

// Destroy 之后不可再入队出队，否则会一直阻塞
func (q *Queue[T]) Destroy() {
	q.once.Do(func() {
		close(q.done)
	})
}
