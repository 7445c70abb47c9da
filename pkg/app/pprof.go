/*
 * Copyright (c) 2024 jhuix. All rights reserved.
 * Use of this source code is governed by a MIT license
 * that can be found in the LICENSE file.
 */

package app

import (
	"context"
	`errors`
	"net/http"
	_ "net/http/pprof"
	"sync"
	"time"

	`github.com/jhuix-go/ipconv/pkg/log`
)

// loopback only, the converter is a desktop tool
const defaultPprofAddress = "127.0.0.1:6060"

type PprofConfig struct {
	Trace   bool   `json:"trace,omitempty" yaml:"trace,omitempty" toml:"trace,omitempty"`
	Address string `json:"address,omitempty" yaml:"address,omitempty" toml:"address,omitempty"`
}

type Pprof struct {
	mu  sync.Mutex
	cfg *PprofConfig
	srv *http.Server
	wg  sync.WaitGroup
}

func NewPprofConfig() *PprofConfig {
	return &PprofConfig{false, defaultPprofAddress}
}

func NewPprof(cfg *PprofConfig) *Pprof {
	if len(cfg.Address) == 0 {
		cfg.Address = defaultPprofAddress
	}
	return &Pprof{cfg: cfg}
}

func (p *Pprof) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.cfg.Trace || p.srv != nil {
		return
	}

	log.Infof("pprof running: %s", p.cfg.Address)
	srv := &http.Server{Addr: p.cfg.Address, ReadHeaderTimeout: 10 * time.Second}
	p.srv = srv
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("pprof ListenAndServe: %v", err)
		}
	}()
}

func (p *Pprof) Stop() {
	p.mu.Lock()
	srv := p.srv
	p.srv = nil
	p.mu.Unlock()
	if srv == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("pprof Shutdown: %v", err)
	}
	p.wg.Wait()
	log.Infof("pprof stopped: %s", srv.Addr)
}

func (p *Pprof) SetConfig(cfg *PprofConfig) {
	if len(cfg.Address) == 0 {
		cfg.Address = defaultPprofAddress
	}
	p.mu.Lock()
	p.cfg = cfg
	p.mu.Unlock()
}

func (p *Pprof) Restart() {
	p.Stop()
	p.Start()
}
