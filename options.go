// Copyright 2026 The Latte Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package latte

import "strings"

// Options of the json filter.
const (
	OptionPretty       = "pretty"
	OptionASCII        = "ascii"
	OptionHTML         = "html"
	OptionNoHTML       = "!html"
	OptionForceObjects = "forceobjects"
)

// EncodingMode controls how a value is encoded by the json filter.
type EncodingMode struct {
	Pretty       bool // indent with four spaces, one key or element per line.
	ASCIISafe    bool // escape code points greater than 0x7F.
	HTMLSafe     bool // escape <, >, &, ' and " in strings.
	ForceObjects bool // encode empty arrays as {}.
}

// DefaultEncodingMode is the mode used when no options are given.
var DefaultEncodingMode = EncodingMode{HTMLSafe: true}

// ParseOptions returns the encoding mode resulting from applying options, in
// order, to the default mode.
//
// Options are case insensitive and leading and trailing white space is
// ignored. A later option overrides an earlier one that sets the same flag.
// Unknown options are ignored.
func ParseOptions(options ...string) EncodingMode {
	mode := DefaultEncodingMode
	for _, option := range options {
		switch strings.ToLower(strings.TrimSpace(option)) {
		case OptionPretty:
			mode.Pretty = true
		case OptionASCII:
			mode.ASCIISafe = true
		case OptionHTML:
			mode.HTMLSafe = true
		case OptionNoHTML:
			mode.HTMLSafe = false
		case OptionForceObjects:
			mode.ForceObjects = true
		}
	}
	return mode
}
