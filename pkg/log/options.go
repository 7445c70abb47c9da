/*
 * Copyright (c) 2024 jhuix. All rights reserved.
 * Use of this source code is governed by a license
 * that can be found in the LICENSE file.
 */

package log

type Options struct {
	OutDir     string `json:"out_dir" yaml:"out_dir" toml:"out_dir"`
	Filename   string `json:"filename" yaml:"filename" toml:"filename"`
	MaxSize    int    `json:"max_size" yaml:"max_size" toml:"max_size"`
	MaxBackups int    `json:"max_backups" yaml:"max_backups" toml:"max_backups"`
	MaxAge     int    `json:"max_age" yaml:"max_age" toml:"max_age"`
	Compress   bool   `json:"compress" yaml:"compress" toml:"compress"`
	Level      int    `json:"level" yaml:"level" toml:"level"`
	Async      bool   `json:"async" yaml:"async" toml:"async"`
}

var defaultOptions = Options{
	OutDir:     "../logs",
	Filename:   ".log",
	MaxSize:    10,
	MaxBackups: 7,
	MaxAge:     1,
	Compress:   false,
	Level:      InfoLevel,
	Async:      false,
}

func NewOptions() Options {
	return defaultOptions
}

// Merge copies the non-zero fields of o over the receiver.
func (opt *Options) Merge(o *Options) {
	if o == nil {
		return
	}
	if len(o.OutDir) > 0 {
		opt.OutDir = o.OutDir
	}
	if len(o.Filename) > 0 {
		opt.Filename = o.Filename
	}
	if o.MaxSize > 0 {
		opt.MaxSize = o.MaxSize
	}
	if o.MaxBackups > 0 {
		opt.MaxBackups = o.MaxBackups
	}
	if o.MaxAge > 0 {
		opt.MaxAge = o.MaxAge
	}
	if o.Level != 0 {
		opt.Level = o.Level
	}
	opt.Compress = o.Compress
	opt.Async = o.Async
}
