/*
 * Copyright (c) 2024 jhuix. All rights reserved.
 * Use of this source code is governed by a license
 * that can be found in the LICENSE file.
 */

package converter

import (
	`strconv`
	`strings`
	`sync`

	`github.com/jhuix-go/ipconv/codec`
	`github.com/jhuix-go/ipconv/history`
	`github.com/jhuix-go/ipconv/pkg/log`
	`github.com/jhuix-go/ipconv/recall`
)

type Direction int

const (
	Forward Direction = iota // address -> integer
	Reverse                  // integer -> address
)

func (d Direction) String() string {
	if d == Reverse {
		return "reverse"
	}
	return "forward"
}

// Labels returns the input and output labels of the direction.
func (d Direction) Labels() (string, string) {
	if d == Reverse {
		return history.LabelInteger, history.LabelAddress
	}
	return history.LabelAddress, history.LabelInteger
}

const (
	DefaultTagPrefix = "🚀 VB-2000"

	tagUnknown = "??"

	MsgInvalidAddress = "Enter a valid IPv4 address."
	MsgInvalidInteger = "Enter a valid 32-bit integer (0-4294967295)."
)

type Result struct {
	Direction Direction
	Input     string
	Display   string
	Failed    bool
	Entry     string
	Err       error
}

type Option func(c *Converter)

func WithTag(enable bool) Option {
	return func(c *Converter) {
		c.tag = enable
	}
}

func WithTagPrefix(prefix string) Option {
	return func(c *Converter) {
		c.tagPrefix = prefix
	}
}

// Converter converts raw field input, records every attempt and owns the
// recall state of the value and search fields.
type Converter struct {
	store    *history.Store
	values   *recall.Recall
	searches *recall.Recall

	mu        sync.RWMutex
	tag       bool
	tagPrefix string
}

func New(store *history.Store, opts ...Option) *Converter {
	c := &Converter{
		store:     store,
		values:    recall.New(),
		searches:  recall.New(),
		tag:       true,
		tagPrefix: DefaultTagPrefix,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetOptions may be called from the config watcher goroutine.
func (c *Converter) SetOptions(opts ...Option) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, opt := range opts {
		opt(c)
	}
}

func (c *Converter) Store() *history.Store {
	return c.store
}

func (c *Converter) Values() *recall.Recall {
	return c.values
}

func (c *Converter) Searches() *recall.Recall {
	return c.searches
}

func (c *Converter) tagOf(octets []string, ok bool) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.tag {
		return ""
	}
	if !ok {
		return c.tagPrefix + tagUnknown
	}
	return c.tagPrefix + octets[2]
}

func convert(dir Direction, value string) (string, []string, bool, error) {
	if dir == Reverse {
		n, err := codec.ParseInteger(value)
		if err != nil {
			return "", nil, false, err
		}
		addr, err := codec.IntegerToAddress(n)
		if err != nil {
			return "", nil, false, err
		}
		octets, ok := codec.Octets(addr)
		return addr, octets, ok, nil
	}

	// the input segments name the tag even when they do not convert
	octets, ok := codec.Octets(value)
	v, err := codec.AddressToInteger(value)
	if err != nil {
		return "", octets, ok, err
	}
	return strconv.FormatUint(uint64(v), 10), octets, ok, nil
}

// Convert converts raw in the given direction and records the attempt.
func (c *Converter) Convert(dir Direction, raw string) Result {
	value := strings.TrimSpace(raw)
	c.values.Commit(value)

	inLabel, outLabel := dir.Labels()
	res := Result{Direction: dir, Input: value}
	out, octets, ok, err := convert(dir, value)
	if err != nil {
		res.Failed = true
		res.Err = err
		res.Display = MsgInvalidAddress
		if dir == Reverse {
			res.Display = MsgInvalidInteger
		}
		out = history.ErrorOutput
		log.Debugf("%s conversion of %q failed: %v", dir, value, err)
	} else {
		res.Display = out
		log.Debugf("%s conversion of %q: %s", dir, value, out)
	}

	res.Entry = history.FormatEntry(inLabel, value, outLabel, out, c.tagOf(octets, ok))
	c.store.Record(res.Entry)
	return res
}

// Search commits the query to the search field recall and queries the store.
func (c *Converter) Search(query string) []string {
	c.searches.Commit(query)
	return c.store.Search(query)
}

func (c *Converter) Recent() []string {
	return c.store.Search("")
}
