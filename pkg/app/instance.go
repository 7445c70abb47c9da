/*
 * Copyright (c) 2024 jhuix. All rights reserved.
 * Use of this source code is governed by a license
 * that can be found in the LICENSE file.
 */

package app

import (
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	`github.com/jhuix-go/ipconv/pkg/log`
)

type ServiceInstance interface {
	ParseCommandArgs()
	Initialize(Config) error
	ReloadConfig(Config) error
	RunLoop() error
	Destroy()
}

type ClosureInstance interface {
	Closure()
}

var (
	ServiceName     string
	ApplicationName string
	ServiceApp      ServiceInstance
	ConfigPath      string
	DotEnvPath      string
	OutLogPath      = "../logs"
	ch              = make(chan os.Signal, 1)
)

func SetDefaultOutLogPath(defaultPath string) {
	OutLogPath = defaultPath
}

func ChDir() error {
	dir, err := filepath.Abs(filepath.Dir(os.Args[0]))
	if err != nil {
		return err
	}

	return os.Chdir(dir)
}

func GetApplicationName() string {
	cmd, err := os.Executable()
	if err != nil {
		return ""
	}

	_, exec := filepath.Split(cmd)
	for i := len(exec) - 1; i >= 0; i-- {
		if exec[i] == '.' {
			return exec[:i]
		}
	}

	return exec
}

// Args returns the command line arguments left over after the app flags.
func Args() []string {
	return flag.Args()
}

type WaterConfigProxy struct {
	instance    ServiceInstance
	options     *log.Options
	pprofConfig *PprofConfig
	pprof       *Pprof
}

func (w *WaterConfigProxy) OnConfigChange(cfg Config) {
	if w.options != nil {
		options := initLogOption(cfg)
		ops := make([]log.WithConfig, 0, 4)
		if options.Level != w.options.Level {
			w.options.Level = options.Level
			log.SetLevel(options.Level)
		}
		if options.MaxBackups != w.options.MaxBackups {
			w.options.MaxBackups = options.MaxBackups
			ops = append(ops, log.WithMaxBackupsConfig(options.MaxBackups))
		}
		if options.MaxSize != w.options.MaxSize {
			w.options.MaxSize = options.MaxSize
			ops = append(ops, log.WithMaxSizeConfig(options.MaxSize))
		}
		if options.MaxAge != w.options.MaxAge {
			w.options.MaxAge = options.MaxAge
			ops = append(ops, log.WithMaxAgeConfig(options.MaxAge))
		}
		if options.Compress != w.options.Compress {
			w.options.Compress = options.Compress
			ops = append(ops, log.WithCompressConfig(options.Compress))
		}
		if len(ops) > 0 {
			log.SetConfig(ops...)
		}
	}

	if w.pprofConfig != nil {
		pprofConfig := NewPprofConfig()
		_ = cfg.Sub("pprof").Unmarshal(pprofConfig)
		if pprofConfig.Trace != w.pprofConfig.Trace || pprofConfig.Address != w.pprofConfig.Address {
			w.pprofConfig.Trace = pprofConfig.Trace
			w.pprofConfig.Address = pprofConfig.Address
			w.pprof.SetConfig(w.pprofConfig)
			w.pprof.Restart()
		}
	}

	if err := w.instance.ReloadConfig(cfg); err != nil {
		log.Errorf("app config reload failed: %v", err)
	}
}

func onlyShowVersion() bool {
	var showVersion bool
	flag.BoolVar(&showVersion, "version", false, "Show version for "+ServiceName+".")
	flag.Parse()
	if showVersion {
		println(VersionString(ApplicationName))
	}
	return showVersion
}

func initLogOption(cfg Config) log.Options {
	options := log.NewOptions()
	options.OutDir = OutLogPath
	if cfg != nil {
		_ = cfg.Sub("log").Unmarshal(&options)
	}
	if len(options.Filename) == 0 {
		options.Filename = ".info.log"
	}
	return options
}

// Start parses the app flags, reads the config, sets up logging and runs
// instance until it calls Quit or the process gets a termination signal.
func Start(serviceName string, cfgType string, instance ServiceInstance) {
	ServiceName = serviceName
	ApplicationName = GetApplicationName()
	if len(ApplicationName) == 0 {
		ApplicationName = serviceName
	}
	if instance == nil {
		println(VersionString(ApplicationName))
		println(ApplicationName + " app is nil, will exit.")
		return
	}

	// 强制设置执行文件目录为工作目录
	_ = ChDir()
	ServiceApp = instance
	defaultConfig := "../conf/" + serviceName + "." + cfgType
	flag.StringVar(&ConfigPath, "conf", defaultConfig, ServiceName+" app config path")
	flag.StringVar(&DotEnvPath, "env", ".env", ServiceName+" app dotenv file")
	ServiceApp.ParseCommandArgs()
	if onlyShowVersion() {
		return
	}

	if err := LoadDotEnv(DotEnvPath); err != nil {
		println("load " + DotEnvPath + " failed: " + err.Error())
	}

	// 拆解配置文件名和相应目录
	cfgType = ConfigTypeOf(ConfigPath, cfgType)
	cfgPath, cfgFile := filepath.Split(ConfigPath)
	cfgName := strings.TrimSuffix(cfgFile, filepath.Ext(cfgFile))
	if len(cfgName) == 0 {
		cfgName = serviceName
	}
	cfgWater := &WaterConfigProxy{instance: ServiceApp}
	cfg, err := NewConfig(cfgPath, cfgName, cfgType, strings.ToUpper(serviceName), cfgWater)
	if err != nil {
		if cfg == nil {
			println(err.Error())
			println("read " + ApplicationName + " config be failed, will exit.")
			return
		}
		// defaults apply without a config file
		println(err.Error())
	}

	options := initLogOption(cfg)
	cfgWater.options = &options
	log.InitLogger(serviceName, &options)
	defer log.Close()

	pprofConfig := NewPprofConfig()
	_ = cfg.Sub("pprof").Unmarshal(pprofConfig)
	cfgWater.pprofConfig = pprofConfig
	pprof := NewPprof(pprofConfig)
	cfgWater.pprof = pprof
	pprof.Start()
	defer pprof.Stop()

	log.Infof("app initialize for version is %s, build in %s, %s", Version, CommitHash, BuildTime)
	if err = ServiceApp.Initialize(cfg); err != nil {
		println(err.Error())
		log.Errorf("app initialize error: %v", err)
		ServiceApp.Destroy()
		return
	}

	cfg.Water()
	signal.Notify(ch, syscall.SIGHUP, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(ch)

	log.Infof("app starting...")
	if err = ServiceApp.RunLoop(); err != nil {
		log.Errorf("app run error: %v", err)
		ServiceApp.Destroy()
		return
	}

	for {
		s := <-ch
		log.Infof("get a signal %v", s.String())
		switch s {
		case syscall.SIGHUP:
		case syscall.SIGTERM:
			if ci, ok := ServiceApp.(ClosureInstance); ok {
				ci.Closure()
				log.Infof("app closure from signal %d", s)
				return
			}
			ServiceApp.Destroy()
			log.Infof("app exit from signal %d", s)
			return
		default:
			ServiceApp.Destroy()
			log.Infof("app exit from signal %d", s)
			return
		}
	}
}

// Quit asks Start to shut the instance down.
func Quit() {
	select {
	case ch <- syscall.SIGTERM:
	default:
	}
}
