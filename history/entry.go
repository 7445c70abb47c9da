/*
 * Copyright (c) 2024 jhuix. All rights reserved.
 * Use of this source code is governed by a license
 * that can be found in the LICENSE file.
 */

package history

import (
	`strings`
)

const (
	LabelAddress = "IP Address"
	LabelInteger = "32-bit Integer"

	ErrorOutput = "Error"

	arrow        = " → "
	tagSeparator = "    "
	labelSep     = ": "
)

// Entry is the structured view of one history line.
type Entry struct {
	InputLabel  string `json:"input_label,omitempty"`
	Input       string `json:"input,omitempty"`
	OutputLabel string `json:"output_label,omitempty"`
	Output      string `json:"output,omitempty"`
	Failed      bool   `json:"failed"`
	Tag         string `json:"tag,omitempty"`
	Raw         string `json:"raw"`
}

// FormatEntry renders "<in label>: <input> → <out label>: <output>    <tag>".
// The tag and its separator are left out when tag is empty.
func FormatEntry(inputLabel, input, outputLabel, output, tag string) string {
	var b strings.Builder
	b.Grow(len(inputLabel) + len(input) + len(outputLabel) + len(output) + len(tag) + 16)
	b.WriteString(inputLabel)
	b.WriteString(labelSep)
	b.WriteString(input)
	b.WriteString(arrow)
	b.WriteString(outputLabel)
	b.WriteString(labelSep)
	b.WriteString(output)
	if len(tag) > 0 {
		b.WriteString(tagSeparator)
		b.WriteString(tag)
	}
	return b.String()
}

// ParseEntry also accepts the short error form "<in label>: <input> → Error".
func ParseEntry(line string) (Entry, error) {
	e := Entry{Raw: line}
	line = strings.TrimSpace(line)

	left, right, ok := strings.Cut(line, arrow)
	if !ok {
		return e, ErrEntryFormat
	}

	e.InputLabel, e.Input, ok = strings.Cut(left, labelSep)
	if !ok || len(e.InputLabel) == 0 {
		return e, ErrEntryFormat
	}

	if i := strings.LastIndex(right, tagSeparator); i >= 0 {
		e.Tag = strings.TrimSpace(right[i+len(tagSeparator):])
		right = right[:i]
	}

	if right == ErrorOutput {
		e.Failed = true
		e.Output = ErrorOutput
		return e, nil
	}

	e.OutputLabel, e.Output, ok = strings.Cut(right, labelSep)
	if !ok {
		return e, ErrEntryFormat
	}
	e.Failed = e.Output == ErrorOutput
	return e, nil
}
