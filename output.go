// Copyright 2026 The Latte Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package latte

import (
	"fmt"

	"github.com/open2b/scriggo"
	"github.com/open2b/scriggo/native"
)

// Output is the JSON returned by the json filter. Its dynamic type is either
// Safe or Raw.
type Output interface {
	fmt.Stringer

	// Format returns the format of the content, FormatHTML for Safe and
	// FormatJS for Raw.
	Format() scriggo.Format

	// IsSafe reports whether the output can be embedded in an HTML document
	// without being escaped.
	IsSafe() bool

	output()
}

// Safe is JSON in which the characters <, >, &, ' and " do not appear inside
// strings. It is shown as is in HTML, JavaScript, JSON and text contexts.
type Safe string

// String returns s as a string.
func (s Safe) String() string { return string(s) }

// HTML returns s as HTML.
func (s Safe) HTML() native.HTML { return native.HTML(s) }

// JS returns s as JavaScript.
func (s Safe) JS() native.JS { return native.JS(s) }

// JSON returns s as JSON.
func (s Safe) JSON() native.JSON { return native.JSON(s) }

// Format returns FormatHTML.
func (s Safe) Format() scriggo.Format { return scriggo.FormatHTML }

// IsSafe returns true.
func (s Safe) IsSafe() bool { return true }

func (s Safe) output() {}

// Raw is JSON encoded without HTML escaping. It is shown as is in
// JavaScript, JSON and text contexts and it is escaped in HTML context.
type Raw string

// String returns r as a string.
func (r Raw) String() string { return string(r) }

// JS returns r as JavaScript.
func (r Raw) JS() native.JS { return native.JS(r) }

// JSON returns r as JSON.
func (r Raw) JSON() native.JSON { return native.JSON(r) }

// Format returns FormatJS.
func (r Raw) Format() scriggo.Format { return scriggo.FormatJS }

// IsSafe returns false.
func (r Raw) IsSafe() bool { return false }

func (r Raw) output() {}
