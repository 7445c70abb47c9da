/*
 * Copyright (c) 2024 jhuix. All rights reserved.
 * Use of this source code is governed by a license
 * that can be found in the LICENSE file.
 */

package log

import (
	"fmt"
	"testing"

	"github.com/gookit/slog"
	"github.com/stretchr/testify/assert"
)

type captureLogger struct {
	lines []string
}

func (c *captureLogger) Errorf(format string, v ...any) { c.add("E", format, v...) }
func (c *captureLogger) Warnf(format string, v ...any)  { c.add("W", format, v...) }
func (c *captureLogger) Infof(format string, v ...any)  { c.add("I", format, v...) }
func (c *captureLogger) Debugf(format string, v ...any) { c.add("D", format, v...) }
func (c *captureLogger) SetLevel(int)                   {}

func (c *captureLogger) add(level, format string, v ...any) {
	c.lines = append(c.lines, level+" "+fmt.Sprintf(format, v...))
}

func TestSetLogger(t *testing.T) {
	c := &captureLogger{}
	SetLogger(c)
	defer SetLogger(nil)

	Infof("hello %s", "world")
	Warnf("write %d failed", 3)
	assert.Equal(t, []string{"I hello world", "W write 3 failed"}, c.lines)
	assert.Same(t, Logger(c), GetLogger())

	SetLogger(nil)
	_, ok := GetLogger().(*EmptyLogger)
	assert.True(t, ok)
}

func TestLoggerLevel(t *testing.T) {
	l := newLogger()
	l.SetLevel(WarnLevel)
	assert.True(t, l.enabled(slog.ErrorLevel))
	assert.True(t, l.enabled(slog.WarnLevel))
	assert.False(t, l.enabled(slog.InfoLevel))

	l.SetLevel(DebugLevel)
	assert.True(t, l.enabled(slog.DebugLevel))
	assert.False(t, l.enabled(slog.TraceLevel))
}

func TestLoggerAsyncToggle(t *testing.T) {
	l := newLogger()
	l.SetAsync(true)
	l.Infof("dropped without backend %d", 1)
	l.SetAsync(false)
	assert.False(t, l.async.Load())
	assert.Nil(t, l.q)
}

func TestOptionsMerge(t *testing.T) {
	opt := NewOptions()
	opt.Merge(&Options{Filename: ".info.log", Level: DebugLevel, Async: true})
	assert.Equal(t, ".info.log", opt.Filename)
	assert.Equal(t, DebugLevel, opt.Level)
	assert.Equal(t, "../logs", opt.OutDir)
	assert.True(t, opt.Async)
}
