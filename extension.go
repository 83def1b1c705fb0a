// Copyright 2026 The Latte Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package latte

import (
	"github.com/open2b/scriggo"
	"github.com/open2b/scriggo/native"
)

// Names of the filters.
const (
	FilterJSON = "json"
	FilterMd5  = "md5"
	FilterSha1 = "sha1"
)

// Config is the configuration of an extension.
type Config struct {
	// Filters enables or disables filters by name. Filters not present are
	// enabled, unknown names are ignored.
	Filters map[string]bool `koanf:"filters" yaml:"filters" json:"filters"`
}

// Extension declares the filters as globals of Scriggo templates.
type Extension struct {
	filters native.Declarations
}

// NewExtension returns a new extension with configuration conf. conf can be
// nil, in which case all filters are enabled.
func NewExtension(conf *Config) *Extension {
	all := native.Declarations{
		FilterJSON: JSON,
		FilterMd5:  Md5,
		FilterSha1: Sha1,
	}
	ext := &Extension{filters: native.Declarations{}}
	for name, filter := range all {
		if conf != nil {
			if enabled, ok := conf.Filters[name]; ok && !enabled {
				continue
			}
		}
		ext.filters[name] = filter
	}
	return ext
}

// Filters returns the declarations of the enabled filters. The returned
// map is a copy and can be modified by the caller.
func (ext *Extension) Filters() native.Declarations {
	filters := make(native.Declarations, len(ext.filters))
	for name, filter := range ext.filters {
		filters[name] = filter
	}
	return filters
}

// Register adds the enabled filters to the globals of opts, replacing
// globals with the same name. If opts.Globals is nil, it is created. If
// opts is nil, Register does nothing.
func (ext *Extension) Register(opts *scriggo.BuildOptions) {
	if opts == nil {
		return
	}
	if opts.Globals == nil {
		opts.Globals = make(native.Declarations, len(ext.filters))
	}
	for name, filter := range ext.filters {
		opts.Globals[name] = filter
	}
}

var defaultExtension = NewExtension(nil)

// Filters returns the declarations of the json, md5 and sha1 filters.
func Filters() native.Declarations {
	return defaultExtension.Filters()
}

// Register adds the json, md5 and sha1 filters to the globals of opts.
// See Extension.Register for details.
func Register(opts *scriggo.BuildOptions) {
	defaultExtension.Register(opts)
}
