/*
 * Copyright (c) 2024 jhuix. All rights reserved.
 * Use of this source code is governed by a license
 * that can be found in the LICENSE file.
 */

package runtime

import (
	`sync`
)

// HandleCrash 必须直接在defer中调用，handlers 收到 recover() 的结果（可能为nil）
func HandleCrash(reallyCrash bool, handlers ...func(any)) {
	r := recover()
	for _, fn := range handlers {
		fn(r)
	}
	if r != nil && reallyCrash {
		panic(r)
	}
}

type WaitGroup struct {
	wg sync.WaitGroup
}

func (g *WaitGroup) Wait() {
	g.wg.Wait()
}

// Start runs f on a new goroutine, onPanic gets the recovered value.
func (g *WaitGroup) Start(f func(), onPanic ...func(any)) {
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		if len(onPanic) > 0 {
			defer HandleCrash(false, onPanic...)
		}
		f()
	}()
}
