// Copyright 2026 The Latte Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package latte

import (
	"github.com/open2b/scriggo"
	"github.com/open2b/scriggo/native"
)

// JSON is the json template filter. It encodes v as Encode does and panics
// with an *IncompatibleContextError or an *EncodingError if it fails. The
// template engine returns the panic as error from the execution of the
// template.
//
// The content type of v is derived from its type: the format types of
// package native and the Output values have their own format, any other
// value is text.
func JSON(v interface{}, options ...string) Output {
	out, err := EncodeIn(formatOf(v), v, options...)
	if err != nil {
		panic(err)
	}
	return out
}

// formatOf returns the format of the content of v.
func formatOf(v interface{}) scriggo.Format {
	switch v := v.(type) {
	case native.HTML:
		return scriggo.FormatHTML
	case native.CSS:
		return scriggo.FormatCSS
	case native.JS:
		return scriggo.FormatJS
	case native.JSON:
		return scriggo.FormatJSON
	case native.Markdown:
		return scriggo.FormatMarkdown
	case interface{ Format() scriggo.Format }:
		return v.Format()
	}
	return scriggo.FormatText
}
