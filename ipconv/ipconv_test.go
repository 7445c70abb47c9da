/*
 * Copyright (c) 2024 jhuix. All rights reserved.
 * Use of this source code is governed by a license
 * that can be found in the LICENSE file.
 */

package ipconv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhuix-go/ipconv/converter"
	"github.com/jhuix-go/ipconv/pkg/app"
)

func loadConfig(t *testing.T, content string) app.Config {
	t.Helper()
	p := filepath.Join(t.TempDir(), "ipconv.toml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	cfg, err := app.NewConfig2(p, app.ConfigTypeToml, nil)
	require.NoError(t, err)
	return cfg
}

func TestShippedConfig(t *testing.T) {
	cfg, err := app.NewConfig2(filepath.Join("..", "conf", "ipconv.toml"), app.ConfigTypeToml, nil)
	require.NoError(t, err)

	config, err := decodeConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, "conversion_history.txt", config.History.File)
	assert.True(t, config.History.Tag)
	assert.Equal(t, converter.DefaultTagPrefix, config.History.TagPrefix)
	assert.False(t, config.Shell.Reverse)
}

func TestDecodeConfigDefaults(t *testing.T) {
	config, err := decodeConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, NewServiceConfig(), config)

	config, err = decodeConfig(loadConfig(t, "[shell]\nreverse = true\n"))
	require.NoError(t, err)
	assert.True(t, config.Shell.Reverse)
	assert.True(t, config.History.Tag)
	assert.Equal(t, "conversion_history.txt", config.History.File)
}

func serviceConf(dir string, tag bool) string {
	tagValue := "false"
	if tag {
		tagValue = "true"
	}
	return "[history]\nfile = \"" + filepath.ToSlash(filepath.Join(dir, "history.txt")) + "\"\ntag = " + tagValue +
		"\n[shell]\nhistory_file = \"" + filepath.ToSlash(filepath.Join(dir, ".sh")) + "\"\nno_color = true\n"
}

func TestServiceInitializeAndReload(t *testing.T) {
	dir := t.TempDir()

	s := NewService()
	require.NoError(t, s.Initialize(loadConfig(t, serviceConf(dir, true))))
	require.NotNil(t, s.Converter())

	res := s.Converter().Convert(converter.Forward, "10.0.5.1")
	assert.True(t, strings.HasSuffix(res.Entry, converter.DefaultTagPrefix+"5"))

	require.NoError(t, s.ReloadConfig(loadConfig(t, serviceConf(dir, false))))
	res = s.Converter().Convert(converter.Forward, "10.0.5.1")
	assert.Equal(t, "IP Address: 10.0.5.1 → 32-bit Integer: 167773441", res.Entry)

	data, err := os.ReadFile(filepath.Join(dir, "history.txt"))
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "\n"))
}

func TestServiceRunLoopWithoutShell(t *testing.T) {
	s := NewService()
	assert.Error(t, s.RunLoop())
}
