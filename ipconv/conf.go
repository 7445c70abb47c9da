/*
 * Copyright (c) 2024 jhuix. All rights reserved.
 * Use of this source code is governed by a license
 * that can be found in the LICENSE file.
 */

package ipconv

import (
	`errors`

	`github.com/jhuix-go/ipconv/converter`
	`github.com/jhuix-go/ipconv/history`
	`github.com/jhuix-go/ipconv/pkg/app`
	`github.com/jhuix-go/ipconv/pkg/log`
	`github.com/jhuix-go/ipconv/shell`
)

type HistoryConfig struct {
	File      string `json:"file" yaml:"file" toml:"file"`
	Tag       bool   `json:"tag" yaml:"tag" toml:"tag"`
	TagPrefix string `json:"tag_prefix" yaml:"tag_prefix" toml:"tag_prefix"`
}

type ServiceConfig struct {
	History *HistoryConfig `json:"history" yaml:"history" toml:"history"`
	Shell   *shell.Options `json:"shell,omitempty" yaml:"shell,omitempty" toml:"shell,omitempty"`
}

func NewServiceConfig() *ServiceConfig {
	return &ServiceConfig{
		History: &HistoryConfig{
			File:      history.DefaultFile,
			Tag:       true,
			TagPrefix: converter.DefaultTagPrefix,
		},
		Shell: &shell.Options{},
	}
}

func (c *ServiceConfig) converterOptions() []converter.Option {
	return []converter.Option{
		converter.WithTag(c.History.Tag),
		converter.WithTagPrefix(c.History.TagPrefix),
	}
}

// decodeConfig fills the defaults first so a partial or missing file still
// yields a complete config.
func decodeConfig(cfg app.Config) (*ServiceConfig, error) {
	config := NewServiceConfig()
	if cfg == nil {
		return config, nil
	}

	if err := cfg.Unmarshal(config); err != nil {
		return nil, err
	}

	if config.History == nil || config.Shell == nil {
		return nil, errors.New("conf is invalid")
	}
	if len(config.History.File) == 0 {
		config.History.File = history.DefaultFile
	}
	if len(config.History.TagPrefix) == 0 {
		config.History.TagPrefix = converter.DefaultTagPrefix
	}
	return config, nil
}

func (s *Service) ReloadConfig(cfg app.Config) error {
	config, err := decodeConfig(cfg)
	if err != nil {
		return err
	}

	if s.cfg == nil {
		s.cfg = config
		return nil
	}

	if config.History.File != s.cfg.History.File {
		log.Warnf("history file change to %s needs a restart", config.History.File)
	}
	if config.History.Tag != s.cfg.History.Tag || config.History.TagPrefix != s.cfg.History.TagPrefix {
		s.cfg.History.Tag = config.History.Tag
		s.cfg.History.TagPrefix = config.History.TagPrefix
		if s.conv != nil {
			s.conv.SetOptions(s.cfg.converterOptions()...)
		}
		log.Infof("history tag reloaded: %v %q", s.cfg.History.Tag, s.cfg.History.TagPrefix)
	}
	return nil
}

func (s *Service) InitializeConfig(cfg app.Config) error {
	return s.ReloadConfig(cfg)
}
