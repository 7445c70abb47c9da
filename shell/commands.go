/*
 * Copyright (c) 2024 jhuix. All rights reserved.
 * Use of this source code is governed by a MIT license
 * that can be found in the LICENSE file.
 */

package shell

import (
	`os`
	`strings`

	`github.com/desertbit/grumble`

	`github.com/jhuix-go/ipconv/converter`
	`github.com/jhuix-go/ipconv/pkg/app`
)

func (s *Shell) addCommands() {
	s.app.AddCommand(&grumble.Command{
		Name:    "convert",
		Help:    "convert an IPv4 address or a 32-bit integer",
		Aliases: []string{"c"},
		Flags: func(f *grumble.Flags) {
			f.Bool("r", "reverse", false, "integer to address for this conversion only")
		},
		Args: func(a *grumble.Args) {
			a.String("value", "address or integer, empty uses the recalled value", grumble.Default(""))
		},
		Run: func(c *grumble.Context) error {
			dir := s.Direction()
			if c.Flags.Bool("reverse") {
				dir = converter.Reverse
			}
			return s.convert(dir, c.Args.String("value"))
		},
	})

	s.app.AddCommand(&grumble.Command{
		Name: "reverse",
		Help: "show or switch the conversion direction: on (int→ip), off (ip→int), toggle",
		Args: func(a *grumble.Args) {
			a.String("mode", "on, off or toggle", grumble.Default(""))
		},
		Run: func(c *grumble.Context) error {
			return s.reverse(c.Args.String("mode"))
		},
	})

	s.app.AddCommand(&grumble.Command{
		Name:    "history",
		Help:    "show the recent conversions, most recent first",
		Aliases: []string{"h"},
		Run: func(c *grumble.Context) error {
			return s.history()
		},
	})

	s.app.AddCommand(&grumble.Command{
		Name:    "search",
		Help:    "search the whole history file, case-insensitive",
		Aliases: []string{"s"},
		Args: func(a *grumble.Args) {
			a.String("query", "text to look for, empty uses the recalled query", grumble.Default(""))
		},
		Run: func(c *grumble.Context) error {
			return s.search(c.Args.String("query"))
		},
	})

	s.app.AddCommand(&grumble.Command{
		Name: "prev",
		Help: "recall the previous value of a field",
		Args: func(a *grumble.Args) {
			a.String("field", "value or search", grumble.Default(FieldValue))
		},
		Run: func(c *grumble.Context) error {
			return s.recall(c.Args.String("field"), true)
		},
	})

	s.app.AddCommand(&grumble.Command{
		Name: "next",
		Help: "recall the next value of a field",
		Args: func(a *grumble.Args) {
			a.String("field", "value or search", grumble.Default(FieldValue))
		},
		Run: func(c *grumble.Context) error {
			return s.recall(c.Args.String("field"), false)
		},
	})

	s.app.AddCommand(&grumble.Command{
		Name: "export",
		Help: "export the history file as JSON",
		Args: func(a *grumble.Args) {
			a.String("file", "output file, empty prints to the shell", grumble.Default(""))
		},
		Run: func(c *grumble.Context) error {
			return s.export(c.Args.String("file"))
		},
	})

	s.app.AddCommand(&grumble.Command{
		Name: "version",
		Help: "show version information",
		Run: func(c *grumble.Context) error {
			s.printf("%s", app.VersionString(Name))
			return nil
		},
	})
}

func (s *Shell) convert(dir converter.Direction, value string) error {
	value = s.takeField(FieldValue, value)
	if len(strings.TrimSpace(value)) == 0 {
		return ErrParamsIsEmpty
	}

	res := s.conv.Convert(dir, value)
	if res.Failed {
		s.errorf("%s", res.Display)
		return nil
	}

	s.resultf("%s", res.Display)
	return nil
}

func (s *Shell) reverse(mode string) error {
	dir := s.Direction()
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "":
		s.printf("direction: %s", dir)
		return nil
	case "on", "true", "1":
		dir = converter.Reverse
	case "off", "false", "0":
		dir = converter.Forward
	case "toggle", "t":
		if dir == converter.Reverse {
			dir = converter.Forward
		} else {
			dir = converter.Reverse
		}
	default:
		return ErrInvalidParam
	}

	s.SetDirection(dir)
	in, out := dir.Labels()
	s.printf("direction: %s (%s → %s)", dir, in, out)
	return nil
}

func (s *Shell) printLines(headline string, lines []string) {
	s.printHeadline(headline)
	if len(lines) == 0 {
		s.printf("(empty)")
		return
	}
	for _, l := range lines {
		s.printf("%s", l)
	}
}

func (s *Shell) history() error {
	s.printLines("recent conversions", s.conv.Recent())
	return nil
}

func (s *Shell) search(query string) error {
	query = s.takeField(FieldSearch, query)
	lines := s.conv.Search(query)
	if len(query) == 0 {
		s.printLines("recent conversions", lines)
		return nil
	}

	s.printLines("matches for \""+query+"\"", lines)
	return nil
}

func (s *Shell) recall(field string, previous bool) error {
	var r interface {
		Previous() (string, bool)
		Next() (string, bool)
	}
	switch field {
	case FieldValue, "v", "":
		field, r = FieldValue, s.conv.Values()
	case FieldSearch, "s":
		field, r = FieldSearch, s.conv.Searches()
	default:
		return ErrInvalidField
	}

	var (
		v  string
		ok bool
	)
	if previous {
		v, ok = r.Previous()
	} else {
		v, ok = r.Next()
	}
	if !ok {
		s.printf("%s: nothing to recall", field)
		return nil
	}

	s.setField(field, v)
	if len(v) == 0 {
		s.printf("%s: (cleared)", field)
		return nil
	}
	s.printf("%s: %s", field, v)
	return nil
}

func (s *Shell) export(file string) error {
	if len(file) == 0 {
		return s.conv.Store().Export(s.out)
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}

	if err = s.conv.Store().Export(f); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}

	s.printf("history exported to %s", file)
	return nil
}
