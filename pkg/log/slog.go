/*
 * Copyright (c) 2024 jhuix. All rights reserved.
 * Use of this source code is governed by a license
 * that can be found in the LICENSE file.
 */

package log

import (
	"fmt"
	"path"
	"runtime"
	"strconv"
	`strings`
	"sync"
	"sync/atomic"
	"time"

	"github.com/gookit/slog"
	"github.com/gookit/slog/handler"
	"github.com/gookit/slog/rotatefile"

	"github.com/jhuix-go/ipconv/pkg/queue"
)

func toSlogLevel(level int) slog.Level {
	return slog.Level(level * int(slog.PanicLevel))
}

func getCaller(callerSkip int) (string, int) {
	pcs := make([]uintptr, 1)
	num := runtime.Callers(callerSkip, pcs)
	if num < 1 {
		return "", 0
	}

	f, _ := runtime.CallersFrames(pcs).Next()
	if f.PC == 0 {
		return "", 0
	}

	return path.Base(f.File), f.Line
}

type Record struct {
	level    slog.Level
	fileName string
	lineNum  int
	message  string
}

func (r *Record) write() {
	b := backend
	if b == nil {
		return
	}

	msg := r.message
	if len(r.fileName) != 0 {
		msg = r.fileName + ":" + strconv.Itoa(r.lineNum) + " " + msg
	}
	switch r.level {
	case slog.ErrorLevel:
		b.Error(msg)
	case slog.WarnLevel:
		b.Warn(msg)
	case slog.InfoLevel:
		b.Info(msg)
	case slog.DebugLevel:
		b.Debug(msg)
	default:
		b.Trace(msg)
	}
}

// backend is nil until InitLogger succeeds, records are dropped meanwhile.
var backend *slog.Logger

var recordPool = sync.Pool{
	New: func() interface{} {
		return &Record{}
	},
}

func releaseRecord(r *Record) {
	*r = Record{}
	recordPool.Put(r)
}

type logger struct {
	q     *queue.Queue[*Record]
	wg    sync.WaitGroup
	done  chan struct{}
	async atomic.Bool
	level atomic.Int32
}

func newLogger() *logger {
	l := &logger{}
	l.level.Store(int32(slog.InfoLevel))
	return l
}

func (l *logger) enabled(level slog.Level) bool {
	return slog.Level(l.level.Load()).ShouldHandling(level)
}

func (l *logger) log(level slog.Level, format string, v ...any) {
	if !l.enabled(level) {
		return
	}

	r := recordPool.Get().(*Record)
	r.level = level
	r.fileName, r.lineNum = getCaller(callerSkip)
	r.message = fmt.Sprintf(format, v...)
	if l.async.Load() && l.q != nil {
		l.q.Enqueue(r)
		return
	}

	r.write()
	releaseRecord(r)
}

func (l *logger) dispatch(q *queue.Queue[*Record], done chan struct{}) {
	defer l.wg.Done()

	tick := time.NewTicker(5 * time.Second)
	defer tick.Stop()

	for {
		select {
		case r := <-q.DequeueC():
			r.write()
			releaseRecord(r)
		case <-tick.C:
			if b := backend; b != nil {
				_ = b.Flush()
			}
		case <-done:
			// processing the remaining logs
			for {
				select {
				case r := <-q.DequeueC():
					r.write()
					releaseRecord(r)
				default:
					q.Destroy()
					return
				}
			}
		}
	}
}

func (l *logger) SetAsync(async bool) {
	if !l.async.CompareAndSwap(!async, async) {
		return
	}

	if async {
		l.q = queue.NewQueueWithSize[*Record](1024, 128)
		l.done = make(chan struct{})
		l.wg.Add(1)
		go l.dispatch(l.q, l.done)
		return
	}

	if l.done != nil {
		close(l.done)
		l.done = nil
	}
	l.wg.Wait()
	l.q = nil
}

// callerSkip skips runtime.Callers, getCaller, logger.log, logger.Xxxf and
// the package level Xxxf.
var callerSkip = 5

func (l *logger) Errorf(format string, v ...any) { l.log(slog.ErrorLevel, format, v...) }
func (l *logger) Warnf(format string, v ...any)  { l.log(slog.WarnLevel, format, v...) }
func (l *logger) Infof(format string, v ...any)  { l.log(slog.InfoLevel, format, v...) }
func (l *logger) Debugf(format string, v ...any) { l.log(slog.DebugLevel, format, v...) }

func (l *logger) SetLevel(level int) {
	l.level.Store(int32(toSlogLevel(level)))
}

func (l *logger) Close() {
	l.SetAsync(false)
	if b := backend; b != nil {
		_ = b.Close()
	}
}

var logConfig *handler.Config

// newRotateFileHandler supports splitting log files by time and size.
func newRotateFileHandler(logfile string, level slog.Level, rt rotatefile.RotateTime, fns ...handler.ConfigFn) (*handler.SyncCloseHandler, error) {
	logConfig = handler.NewConfig(fns...).With(handler.WithLogfile(logfile), handler.WithLogLevel(level),
		handler.WithLevelMode(handler.LevelModeValue), handler.WithRotateTime(rt))
	writer, err := logConfig.RotateWriter()
	if err != nil {
		return nil, err
	}

	h := handler.SyncCloserWithMaxLevel(writer, logConfig.Level)
	if tf, ok := h.Formatter().(*slog.TextFormatter); ok {
		tf.TimeFormat = slog.DefaultTimeFormat
		tf.SetTemplate("[{{datetime}}] [{{channel}}] [{{level}}] {{message}}\n")
	}
	return h, nil
}

type WithConfig func(*handler.Config)

// SetConfig applies changes to the rotating file handler created by InitLogger.
func SetConfig(ops ...WithConfig) {
	if logConfig == nil {
		return
	}
	for _, op := range ops {
		op(logConfig)
	}
}

func SetLevel(level int) {
	if level > NoneLevel {
		if _, ok := defaultLogger.(*EmptyLogger); ok {
			defaultLogger = newLogger()
		}
		defaultLogger.SetLevel(level)
		return
	}

	Close()
}

func WithMaxSizeConfig(maxSize int) WithConfig {
	return func(o *handler.Config) {
		if maxSize > 0 {
			o.MaxSize = uint64(maxSize) * rotatefile.OneMByte
		}
	}
}

func WithMaxBackupsConfig(maxBackups int) WithConfig {
	return func(o *handler.Config) {
		if maxBackups > 0 {
			o.BackupTime = uint(rotatefile.RotateTime(maxBackups) * rotatefile.EveryDay)
		}
	}
}

func WithMaxAgeConfig(maxAge int) WithConfig {
	return func(o *handler.Config) {
		if maxAge > 0 {
			o.RotateTime = rotatefile.RotateTime(maxAge) * rotatefile.EveryDay
		}
	}
}

func WithCompressConfig(compress bool) WithConfig {
	return func(o *handler.Config) {
		o.Compress = compress
	}
}

// InitLogger writes to <OutDir>/<appName><Filename> with daily rotation.
func InitLogger(appName string, o *Options) {
	opt := NewOptions()
	opt.Merge(o)

	slog.DefaultTimeFormat = "2006/01/02 15:04:05.000000"
	slog.DefaultChannelName = strings.ToUpper(appName)

	fileName := path.Join(opt.OutDir, appName+opt.Filename)
	maxSize := uint64(opt.MaxSize) * rotatefile.OneMByte
	bt := rotatefile.RotateTime(opt.MaxBackups) * rotatefile.EveryDay
	rt := rotatefile.RotateTime(opt.MaxAge) * rotatefile.EveryDay
	h, err := newRotateFileHandler(fileName, toSlogLevel(opt.Level), rt,
		handler.WithMaxSize(maxSize), handler.WithBackupTime(uint(bt)), handler.WithCompress(opt.Compress))
	if err == nil {
		// a dedicated logger without the console handler, the shell owns stdout
		b := slog.NewWithHandlers(h)
		b.ChannelName = slog.DefaultChannelName
		b.ReportCaller = false
		backend = b
	}
	if opt.Level > NoneLevel {
		l := newLogger()
		l.SetLevel(opt.Level)
		l.SetAsync(opt.Async)
		defaultLogger = l
	}
}
