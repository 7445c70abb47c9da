/*
 * Copyright (c) 2024 jhuix. All rights reserved.
 * Use of this source code is governed by a license
 * that can be found in the LICENSE file.
 */

package log

const (
	NoneLevel = iota
	// PanicLevel level, the highest level of severity.
	PanicLevel
	// FatalLevel level.
	FatalLevel
	// ErrorLevel level. Runtime errors that should definitely be noted.
	ErrorLevel
	// WarnLevel level. Non-critical entries, e.g. a history line that could not be written.
	WarnLevel
	// NoticeLevel level. Uncommon events.
	NoticeLevel
	// InfoLevel level. Startup, config reload.
	InfoLevel
	// DebugLevel level. Every conversion.
	DebugLevel
	// TraceLevel level.
	TraceLevel
)

type Logger interface {
	Errorf(format string, v ...any)
	Warnf(format string, v ...any)
	Infof(format string, v ...any)
	Debugf(format string, v ...any)
	SetLevel(level int)
}

type EmptyLogger struct{}

func (l *EmptyLogger) Errorf(string, ...any) {}
func (l *EmptyLogger) Warnf(string, ...any)  {}
func (l *EmptyLogger) Infof(string, ...any)  {}
func (l *EmptyLogger) Debugf(string, ...any) {}
func (l *EmptyLogger) SetLevel(int)          {}

var (
	defaultEmptyLogger Logger = &EmptyLogger{}
	defaultLogger             = defaultEmptyLogger
)

// SetLogger replaces the package logger, nil restores the empty logger.
func SetLogger(nl Logger) {
	Close()
	if nl == nil {
		return
	}

	defaultLogger = nl
}

func GetLogger() Logger {
	return defaultLogger
}

func SetAsync(async bool) {
	if l, ok := defaultLogger.(*logger); ok {
		l.SetAsync(async)
	}
}

func Errorf(format string, v ...any) {
	defaultLogger.Errorf(format, v...)
}
func Warnf(format string, v ...any) {
	defaultLogger.Warnf(format, v...)
}
func Infof(format string, v ...any) {
	defaultLogger.Infof(format, v...)
}
func Debugf(format string, v ...any) {
	defaultLogger.Debugf(format, v...)
}

func Close() {
	var old Logger
	old, defaultLogger = defaultLogger, defaultEmptyLogger
	if l, ok := old.(*logger); ok {
		l.Close()
	}
}
