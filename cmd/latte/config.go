// Copyright 2026 The Latte Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/trejjam/latte"
)

const defaultConfigFile = "latte.yaml"

var (
	errUnsupportedFormat = errors.New("unsupported configuration format")
	errParseFailed       = errors.New("cannot parse configuration")
)

// config is the configuration of the command.
type config struct {
	latte.Config `koanf:",squash"`

	// Data is the data file read when the --data flag is not given.
	Data string `koanf:"data"`

	Serve struct {
		Addr string `koanf:"addr"`
	} `koanf:"serve"`

	Markdown struct {
		// Unsafe allows raw HTML in Markdown.
		Unsafe bool `koanf:"unsafe"`
	} `koanf:"markdown"`
}

// defaultConfig returns the configuration used for the keys that are not
// present in the configuration file.
func defaultConfig() *config {
	c := &config{}
	c.Serve.Addr = ":8080"
	return c
}

// loadConfig loads the configuration file name. If the file does not exist
// and explicit is false, it returns the default configuration.
func loadConfig(name string, explicit bool) (*config, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return defaultConfig(), nil
		}
		return nil, fmt.Errorf("cannot read configuration: %w", err)
	}
	return parseConfig(data, filepath.Ext(name))
}

// parseConfig parses a configuration in the format of the file name
// extension ext.
func parseConfig(data []byte, ext string) (*config, error) {
	var parser koanf.Parser
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("%w %q", errUnsupportedFormat, ext)
	}
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return nil, fmt.Errorf("%w: %w", errParseFailed, err)
	}
	c := defaultConfig()
	if err := k.UnmarshalWithConf("", c, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", errParseFailed, err)
	}
	return c, nil
}

// extension returns the filters extension of the configuration.
func (c *config) extension() *latte.Extension {
	return latte.NewExtension(&c.Config)
}
