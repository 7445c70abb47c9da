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
	`github.com/jhuix-go/ipconv/pkg/runtime`
	`github.com/jhuix-go/ipconv/shell`
)

const SelfName = "ipconv"

type Service struct {
	cfg  *ServiceConfig
	conv *converter.Converter
	sh   *shell.Shell
	wg   runtime.WaitGroup
	quit func()
}

func NewService() *Service {
	return &Service{quit: app.Quit}
}

func (s *Service) ParseCommandArgs() {}

func (s *Service) Initialize(cfg app.Config) error {
	if err := s.InitializeConfig(cfg); err != nil {
		return err
	}

	store := history.Open(s.cfg.History.File)
	log.Infof("history file %s, %d recent entries loaded", store.Path(), len(store.Recent()))
	s.conv = converter.New(store, s.cfg.converterOptions()...)
	s.sh = shell.New(s.conv, *s.cfg.Shell)
	return nil
}

func (s *Service) Converter() *converter.Converter {
	return s.conv
}

// RunLoop runs the shell on its own goroutine; the app quits when the shell
// returns.
func (s *Service) RunLoop() error {
	if s.sh == nil {
		return errors.New("shell run failed: shell not created")
	}

	args := app.Args()
	s.wg.Start(func() {
		if err := s.sh.Run(args); err != nil {
			log.Errorf("shell run failed: %v", err)
			println(err.Error())
		}
		s.quit()
	}, func(r any) {
		if r != nil {
			log.Errorf("shell crashed: %v", r)
			s.quit()
		}
	})
	return nil
}

func (s *Service) Destroy() {
	if s.sh != nil {
		_ = s.sh.Close()
	}
	s.wg.Wait()
	log.Infof("%s destroyed", SelfName)
}
