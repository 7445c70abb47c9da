/*
 * Copyright (c) 2024 jhuix. All rights reserved.
 * Use of this source code is governed by a MIT license
 * that can be found in the LICENSE file.
 */

package shell

import (
	`errors`
	`fmt`
	`io`
	`os`
	`path/filepath`
	`strings`
	`sync`

	`github.com/desertbit/grumble`
	`github.com/fatih/color`

	`github.com/jhuix-go/ipconv/converter`
	`github.com/jhuix-go/ipconv/pkg/log`
)

const (
	Name = "ipconv"

	FieldValue  = "value"
	FieldSearch = "search"
)

var (
	ErrParamsIsEmpty = errors.New("command: params is empty")
	ErrInvalidParam  = errors.New("command: invalid param")
	ErrInvalidField  = errors.New("command: field must be value or search")
)

type Options struct {
	HistoryFile string `json:"history_file" yaml:"history_file" toml:"history_file"`
	NoColor     bool   `json:"no_color" yaml:"no_color" toml:"no_color"`
	Reverse     bool   `json:"reverse" yaml:"reverse" toml:"reverse"`
	Verbose     bool   `json:"verbose" yaml:"verbose" toml:"verbose"`
}

// Shell is the interactive front end of a Converter. The value and search
// fields hold what prev/next recalled until the next convert/search.
type Shell struct {
	app  *grumble.App
	conv *converter.Converter
	out  io.Writer

	mu     sync.Mutex
	dir    converter.Direction
	fields map[string]string

	resultColor *color.Color
	errorColor  *color.Color
	headColor   *color.Color
}

func New(conv *converter.Converter, opts Options) *Shell {
	historyFile := opts.HistoryFile
	if len(historyFile) == 0 {
		historyFile = filepath.Join(os.TempDir(), "."+Name+"_history")
	}

	s := &Shell{
		conv:        conv,
		fields:      map[string]string{FieldValue: "", FieldSearch: ""},
		resultColor: color.New(color.FgYellow, color.Bold),
		errorColor:  color.New(color.FgRed),
		headColor:   color.New(color.FgCyan),
	}
	if opts.Reverse {
		s.dir = converter.Reverse
	}

	s.app = grumble.New(&grumble.Config{
		Name:                  Name,
		Description:           "Converts between IPv4 addresses and 32-bit integers.",
		HistoryFile:           historyFile,
		NoColor:               opts.NoColor,
		Prompt:                s.prompt(),
		PromptColor:           color.New(color.FgGreen, color.Bold),
		HelpHeadlineColor:     s.headColor,
		HelpHeadlineUnderline: true,
		HelpSubCommands:       true,
	})
	s.out = s.app
	if opts.NoColor {
		s.setNoColor()
	}

	s.app.SetPrintASCIILogo(func(a *grumble.App) {
		_, _ = s.headColor.Fprintln(s.out, "IPv4 <-> 32-bit integer converter")
		_, _ = fmt.Fprintln(s.out, "type help for the command list")
	})
	s.app.OnClose(func() error {
		log.Infof("shell closed")
		return nil
	})
	if opts.Verbose {
		log.SetLogger(&shellLogger{s: s})
	}

	s.addCommands()
	return s
}

func (s *Shell) setNoColor() {
	for _, c := range []*color.Color{s.resultColor, s.errorColor, s.headColor} {
		c.DisableColor()
	}
}

func (s *Shell) App() *grumble.App {
	return s.app
}

func (s *Shell) Direction() converter.Direction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dir
}

func (s *Shell) prompt() string {
	if s.dir == converter.Reverse {
		return Name + "(int→ip)§ "
	}
	return Name + "(ip→int)§ "
}

// SetDirection switches the conversion direction and clears the value field.
func (s *Shell) SetDirection(dir converter.Direction) {
	s.mu.Lock()
	s.dir = dir
	s.fields[FieldValue] = ""
	prompt := s.prompt()
	s.mu.Unlock()
	s.app.SetPrompt(prompt)
}

func (s *Shell) Field(name string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fields[name]
}

func (s *Shell) setField(name, value string) {
	s.mu.Lock()
	s.fields[name] = value
	s.mu.Unlock()
}

// takeField returns arg, or the recalled field value when arg is empty, and
// clears the field.
func (s *Shell) takeField(name, arg string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(strings.TrimSpace(arg)) == 0 {
		arg = s.fields[name]
	}
	s.fields[name] = ""
	return arg
}

// Run starts the interactive shell, or runs args once as a single command.
func (s *Shell) Run(args []string) error {
	if len(args) > 0 {
		return s.app.RunCommand(args)
	}

	// grumble parses os.Args itself, the app flags are already consumed
	os.Args = os.Args[:1]
	return s.app.Run()
}

func (s *Shell) Close() error {
	return s.app.Close()
}
