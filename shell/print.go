/*
 * Copyright (c) 2024 jhuix. All rights reserved.
 * Use of this source code is governed by a license
 * that can be found in the LICENSE file.
 */

package shell

import (
	`fmt`
	`strings`
	`time`
)

func (s *Shell) printf(format string, v ...any) {
	_, _ = fmt.Fprintln(s.out, fmt.Sprintf(format, v...))
}

func (s *Shell) resultf(format string, v ...any) {
	_, _ = s.resultColor.Fprintln(s.out, fmt.Sprintf(format, v...))
}

func (s *Shell) errorf(format string, v ...any) {
	_, _ = s.errorColor.Fprintln(s.out, fmt.Sprintf(format, v...))
}

func (s *Shell) printHeadline(h string) {
	_, _ = s.headColor.Fprintln(s.out, h)
	if s.app.Config().HelpHeadlineUnderline {
		_, _ = s.headColor.Fprintln(s.out, strings.Repeat("=", len([]rune(h))))
	}
}

// shellLogger prints log lines into the shell instead of the log file.
type shellLogger struct {
	s *Shell
}

func (l *shellLogger) logf(level, format string, v ...any) {
	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	l.s.printf("["+timestamp+"] ["+level+"] "+format, v...)
}

func (l *shellLogger) Errorf(format string, v ...any) { l.logf("ERROR", format, v...) }
func (l *shellLogger) Warnf(format string, v ...any)  { l.logf("WARN", format, v...) }
func (l *shellLogger) Infof(format string, v ...any)  { l.logf("INFO", format, v...) }
func (l *shellLogger) Debugf(format string, v ...any) { l.logf("DEBUG", format, v...) }
func (l *shellLogger) SetLevel(int)                   {}
