// Copyright 2026 The Latte Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseConfig(t *testing.T) {
	yamlSrc := `
filters:
  md5: false
data: data.yaml
serve:
  addr: ":9000"
markdown:
  unsafe: true
`
	jsonSrc := `{"filters":{"md5":false},"data":"data.yaml","serve":{"addr":":9000"},"markdown":{"unsafe":true}}`
	expected := defaultConfig()
	expected.Filters = map[string]bool{"md5": false}
	expected.Data = "data.yaml"
	expected.Serve.Addr = ":9000"
	expected.Markdown.Unsafe = true
	for _, test := range []struct{ src, ext string }{{yamlSrc, ".yaml"}, {yamlSrc, ".YML"}, {jsonSrc, ".json"}} {
		c, err := parseConfig([]byte(test.src), test.ext)
		if err != nil {
			t.Fatalf("%s: unexpected error %q", test.ext, err)
		}
		if diff := cmp.Diff(expected, c); diff != "" {
			t.Fatalf("%s: unexpected configuration (-want +got):\n%s", test.ext, diff)
		}
		if _, ok := c.extension().Filters()["md5"]; ok {
			t.Fatalf("%s: unexpected md5 filter", test.ext)
		}
	}
}

func TestParseConfigDefaults(t *testing.T) {
	c, err := parseConfig([]byte("data: a.json\n"), ".yaml")
	if err != nil {
		t.Fatal(err)
	}
	if c.Serve.Addr != ":8080" {
		t.Fatalf("unexpected address %q, expecting %q", c.Serve.Addr, ":8080")
	}
	if len(c.extension().Filters()) != 3 {
		t.Fatalf("unexpected filters %v", c.extension().Filters())
	}
}

func TestParseConfigErrors(t *testing.T) {
	_, err := parseConfig([]byte("a = 1"), ".toml")
	if !errors.Is(err, errUnsupportedFormat) {
		t.Fatalf("unexpected error %v, expecting %q", err, errUnsupportedFormat)
	}
	_, err = parseConfig([]byte("{"), ".json")
	if !errors.Is(err, errParseFailed) {
		t.Fatalf("unexpected error %v, expecting %q", err, errParseFailed)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	// Missing default file.
	c, err := loadConfig(filepath.Join(dir, defaultConfigFile), false)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(defaultConfig(), c); diff != "" {
		t.Fatalf("unexpected configuration (-want +got):\n%s", diff)
	}

	// Missing explicit file.
	_, err = loadConfig(filepath.Join(dir, "missing.yaml"), true)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("unexpected error %v, expecting not exist error", err)
	}

	writeFiles(t, dir, map[string]string{"latte.json": `{"serve":{"addr":":1234"}}`})
	c, err = loadConfig(filepath.Join(dir, "latte.json"), true)
	if err != nil {
		t.Fatal(err)
	}
	if c.Serve.Addr != ":1234" {
		t.Fatalf("unexpected address %q, expecting %q", c.Serve.Addr, ":1234")
	}
}
