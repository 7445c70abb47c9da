/*
 * Copyright (c) 2024 jhuix. All rights reserved.
 * Use of this source code is governed by a BSD-style
 * license that can be found in the LICENSE file.
 */

package app

import (
	`crypto/md5`
	`encoding/hex`
	"errors"
	"fmt"
	`io`
	`os`
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const (
	ConfigTypeToml = "toml"
	ConfigTypeJson = "json"
	ConfigTypeYaml = "yaml"
)

type Config interface {
	Sub(key string) Config
	Unmarshal(rawVal interface{}) error
	UnmarshalKey(key string, rawVal interface{}) error
}

type WaterConfig interface {
	OnConfigChange(cfg Config)
}

func decoderOption(configType string) (viper.DecoderConfigOption, error) {
	switch configType {
	case ConfigTypeToml:
		return decoderToml, nil
	case ConfigTypeJson:
		return decoderJson, nil
	case ConfigTypeYaml, "yml":
		return decoderYaml, nil
	default:
		return nil, fmt.Errorf("invaild config type is %s", configType)
	}
}

// ConfigTypeOf returns the config type named by the file extension, or def.
func ConfigTypeOf(configFile, def string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(configFile)), ".")
	if _, err := decoderOption(ext); err != nil {
		return def
	}
	if ext == "yml" {
		return ConfigTypeYaml
	}
	return ext
}

func newConfigImpl(configType, envPrefix string) (*ConfigImpl, error) {
	option, err := decoderOption(configType)
	if err != nil {
		return nil, err
	}

	c := &ConfigImpl{cfg: viper.New(), option: option}
	c.cfg.SetConfigType(configType)
	if len(envPrefix) > 0 {
		// IPCONV_HISTORY_FILE overrides history.file
		c.cfg.SetEnvPrefix(envPrefix)
		c.cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		c.cfg.AutomaticEnv()
	}
	return c, nil
}

// NewConfig reads <configPath>/<configName>.<configType>. A missing file still
// returns a usable Config together with the read error.
func NewConfig(configPath, configName, configType, envPrefix string, water WaterConfig) (*ConfigImpl, error) {
	c, err := newConfigImpl(configType, envPrefix)
	if err != nil {
		return nil, err
	}

	c.water = water
	c.cfg.AddConfigPath(configPath)
	c.cfg.SetConfigName(configName)
	if err = c.ReadConfig(); err != nil {
		return c, err
	}

	return c, nil
}

func NewConfig2(configFile, configType string, water WaterConfig) (*ConfigImpl, error) {
	c, err := newConfigImpl(configType, "")
	if err != nil {
		return nil, err
	}

	c.water = water
	c.cfg.SetConfigFile(configFile)
	if err = c.ReadConfig(); err != nil {
		return c, err
	}

	return c, nil
}

func decoderYaml(c *mapstructure.DecoderConfig) {
	c.TagName = "yaml"
}

func decoderToml(c *mapstructure.DecoderConfig) {
	c.TagName = "toml"
}

func decoderJson(c *mapstructure.DecoderConfig) {
	c.TagName = "json"
}

// LoadDotEnv loads the given .env files (default ".env") without overriding
// variables already set. Missing files are not an error.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	return nil
}

func GetFileMd5(fileName string) string {
	fd, err := os.Open(fileName)
	if err != nil {
		return ""
	}

	defer func() {
		_ = fd.Close()
	}()

	md5h := md5.New()
	_, _ = io.Copy(md5h, fd)
	return hex.EncodeToString(md5h.Sum(nil))
}

type ConfigImpl struct {
	key    string
	cfg    *viper.Viper
	water  WaterConfig
	option viper.DecoderConfigOption
	md5    string
}

func (c *ConfigImpl) ReadConfig() error {
	err := c.cfg.ReadInConfig()
	if err != nil {
		return err
	}

	c.md5 = GetFileMd5(c.cfg.ConfigFileUsed())
	return nil
}

func (c *ConfigImpl) ConfigFileUsed() string {
	if c.cfg == nil {
		return ""
	}
	return c.cfg.ConfigFileUsed()
}

// Water watches the config file and calls OnConfigChange when its content
// really changed.
func (c *ConfigImpl) Water() {
	if len(c.ConfigFileUsed()) == 0 {
		return
	}

	c.cfg.OnConfigChange(func(in fsnotify.Event) {
		if c.water == nil || !in.Has(fsnotify.Write|fsnotify.Create) {
			return
		}

		md5v := GetFileMd5(c.cfg.ConfigFileUsed())
		if md5v == c.md5 {
			return
		}

		c.md5 = md5v
		c.water.OnConfigChange(c)
	})
	c.cfg.WatchConfig()
}

func (c *ConfigImpl) Sub(key string) Config {
	return &ConfigImpl{key: key, cfg: c.cfg.Sub(key), option: c.option}
}

func (c *ConfigImpl) Unmarshal(rawVal interface{}) error {
	if c.cfg == nil {
		return fmt.Errorf("while unmarshaling config: %s field is non-existent", c.key)
	}

	return c.cfg.Unmarshal(rawVal, c.option)
}

func (c *ConfigImpl) UnmarshalKey(key string, rawVal interface{}) error {
	if c.cfg == nil {
		return fmt.Errorf("while unmarshaling config: %s field is non-existent", c.key)
	}

	return c.cfg.UnmarshalKey(key, rawVal, c.option)
}
