/*
 * Copyright (c) 2024 jhuix. All rights reserved.
 * Use of this source code is governed by a license
 * that can be found in the LICENSE file.
 */

// Package history keeps the append-only conversion log and the in-memory
// view of its most recent lines.
package history

import (
	`bufio`
	`errors`
	`fmt`
	`io`
	`os`
	`strings`

	jsoniter `github.com/json-iterator/go`

	`github.com/jhuix-go/ipconv/pkg/log`
	`github.com/jhuix-go/ipconv/pkg/queue`
)

const (
	DefaultFile = "conversion_history.txt"
	RecentLimit = 10

	maxLineSize = 1 << 20
)

// Store is not safe for concurrent use; one running instance owns the file.
type Store struct {
	path   string
	recent *queue.Bounded[string]
}

func NewStore(path string) *Store {
	if len(path) == 0 {
		path = DefaultFile
	}
	return &Store{path: path, recent: queue.NewBounded[string](RecentLimit)}
}

// Open creates a store whose recent view is filled from the existing file.
func Open(path string) *Store {
	s := NewStore(path)
	s.recent.Reset(s.LoadRecent())
	return s
}

func (s *Store) Path() string {
	return s.path
}

// Record appends entry to the file and to the recent view. A failed write is
// logged and otherwise ignored.
func (s *Store) Record(entry string) {
	s.recent.Push(entry)
	if err := s.appendLine(entry); err != nil {
		log.Warnf("history record failed: %v", err)
	}
}

func (s *Store) appendLine(entry string) error {
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIOFailure, err)
	}

	_, err = f.WriteString(entry + "\n")
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
	return nil
}

func (s *Store) readLines() ([]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIOFailure, err)
	}

	defer func() {
		_ = f.Close()
	}()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)
	for sc.Scan() {
		lines = append(lines, strings.TrimSpace(sc.Text()))
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
	return lines, nil
}

func (s *Store) readLinesQuiet() []string {
	lines, err := s.readLines()
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Warnf("history read failed: %v", err)
		}
		return []string{}
	}
	return lines
}

// LoadRecent returns the last RecentLimit lines of the file, oldest first.
func (s *Store) LoadRecent() []string {
	lines := s.readLinesQuiet()
	if len(lines) > RecentLimit {
		lines = lines[len(lines)-RecentLimit:]
	}
	return lines
}

// Recent returns a copy of the in-memory view, oldest first.
func (s *Store) Recent() []string {
	return s.recent.Slice()
}

// All returns every line of the file in file order.
func (s *Store) All() []string {
	return s.readLinesQuiet()
}

func reversed(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[len(lines)-1-i] = l
	}
	return out
}

// Search matches query case-insensitively against the whole file, most
// recent first. An empty query returns the recent view, most recent first.
func (s *Store) Search(query string) []string {
	query = strings.ToLower(query)
	if len(query) == 0 {
		return reversed(s.recent.Slice())
	}

	lines := s.readLinesQuiet()
	matches := make([]string, 0, len(lines))
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.Contains(strings.ToLower(lines[i]), query) {
			matches = append(matches, lines[i])
		}
	}
	return matches
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Export writes all persisted lines as a JSON array of Entry. Lines that do
// not parse carry only their raw text.
func (s *Store) Export(w io.Writer) error {
	lines, err := s.readLines()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	entries := make([]Entry, 0, len(lines))
	for _, l := range lines {
		if len(l) == 0 {
			continue
		}
		e, perr := ParseEntry(l)
		if perr != nil {
			e = Entry{Raw: l}
		}
		entries = append(entries, e)
	}

	stream := json.BorrowStream(w)
	defer json.ReturnStream(stream)
	stream.WriteVal(entries)
	stream.WriteRaw("\n")
	if stream.Error != nil {
		return stream.Error
	}
	return stream.Flush()
}
