// Copyright 2026 The Latte Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package latte

import (
	"strconv"

	"github.com/open2b/scriggo"
)

// IncompatibleContextError is the error returned, or the panic value, when
// a filter is applied to content of a format it cannot handle.
type IncompatibleContextError struct {
	Filter string         // filter name.
	Format scriggo.Format // format of the content.
}

// Error returns a string representation of the error.
func (err *IncompatibleContextError) Error() string {
	return "latte: filter " + err.Filter + " used in incompatible content type " +
		formatName(err.Format) + ", expected text or JavaScript"
}

// EncodingError is the error returned, or the panic value, when a value
// cannot be encoded as JSON.
type EncodingError struct {
	Err error
}

// Error returns a string representation of the error.
func (err *EncodingError) Error() string {
	return "latte: json: " + err.Err.Error()
}

// Unwrap returns the error returned by the encoder.
func (err *EncodingError) Unwrap() error {
	return err.Err
}

// formatName returns the name of format. Unlike format.String it does not
// panic if format is not valid.
func formatName(format scriggo.Format) string {
	if format < scriggo.FormatText || format > scriggo.FormatMarkdown {
		return "format(" + strconv.Itoa(int(format)) + ")"
	}
	return format.String()
}
