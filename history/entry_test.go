/*
 * Copyright (c) 2024 jhuix. All rights reserved.
 * Use of this source code is governed by a license
 * that can be found in the LICENSE file.
 */

package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatEntry(t *testing.T) {
	assert.Equal(t,
		"IP Address: 10.1.2.3 → 32-bit Integer: 167838211    🚀 VB-20002",
		FormatEntry(LabelAddress, "10.1.2.3", LabelInteger, "167838211", "🚀 VB-20002"))
	assert.Equal(t,
		"32-bit Integer: -1 → IP Address: Error",
		FormatEntry(LabelInteger, "-1", LabelAddress, ErrorOutput, ""))
}

func TestParseEntry(t *testing.T) {
	line := "IP Address: 10.1.2.3 → 32-bit Integer: 167838211    🚀 VB-20002"
	e, err := ParseEntry(line)
	require.NoError(t, err)
	assert.Equal(t, Entry{
		InputLabel:  LabelAddress,
		Input:       "10.1.2.3",
		OutputLabel: LabelInteger,
		Output:      "167838211",
		Tag:         "🚀 VB-20002",
		Raw:         line,
	}, e)

	e, err = ParseEntry("32-bit Integer: 99999999999 → IP Address: Error    🚀 VB-2000??")
	require.NoError(t, err)
	assert.True(t, e.Failed)
	assert.Equal(t, LabelAddress, e.OutputLabel)
	assert.Equal(t, "🚀 VB-2000??", e.Tag)
}

func TestParseEntryShortErrorForm(t *testing.T) {
	e, err := ParseEntry("IP Address: a.b.c.d → Error    🚀 VB-2000c")
	require.NoError(t, err)
	assert.True(t, e.Failed)
	assert.Equal(t, "a.b.c.d", e.Input)
	assert.Empty(t, e.OutputLabel)
	assert.Equal(t, ErrorOutput, e.Output)
	assert.Equal(t, "🚀 VB-2000c", e.Tag)
}

func TestParseEntryRejects(t *testing.T) {
	for _, line := range []string{"", "no arrow here", " → B: 2", "A: 1 → nothing"} {
		_, err := ParseEntry(line)
		assert.ErrorIs(t, err, ErrEntryFormat, "line %q", line)
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	line := FormatEntry(LabelInteger, "16909060", LabelAddress, "1.2.3.4", "")
	e, err := ParseEntry(line)
	require.NoError(t, err)
	assert.Equal(t, "16909060", e.Input)
	assert.Equal(t, "1.2.3.4", e.Output)
	assert.Empty(t, e.Tag)
	assert.False(t, e.Failed)
}
