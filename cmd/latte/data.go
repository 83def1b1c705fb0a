// Copyright 2026 The Latte Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

var jsonConfig = jsoniter.ConfigCompatibleWithStandardLibrary

// loadData reads the data file name. If name is empty, it returns an empty
// map.
func loadData(name string) (map[string]interface{}, error) {
	if name == "" {
		return map[string]interface{}{}, nil
	}
	src, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("cannot read data: %w", err)
	}
	v, err := decodeValue(src, filepath.Ext(name))
	if err != nil {
		return nil, fmt.Errorf("cannot decode data file %s: %w", name, err)
	}
	switch v := v.(type) {
	case nil:
		return map[string]interface{}{}, nil
	case map[string]interface{}:
		return v, nil
	}
	return nil, fmt.Errorf("data file %s does not contain an object", name)
}

// decodeValue decodes src as YAML if format is "yaml", "yml", ".yaml" or
// ".yml", otherwise as JSON.
func decodeValue(src []byte, format string) (interface{}, error) {
	var v interface{}
	var err error
	switch strings.TrimPrefix(strings.ToLower(format), ".") {
	case "yaml", "yml":
		err = yaml.Unmarshal(src, &v)
	default:
		err = jsonConfig.Unmarshal(src, &v)
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}
