// Copyright 2026 The Latte Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package latte

import (
	"errors"
	"unicode/utf16"
	"unicode/utf8"

	jsoniter "github.com/json-iterator/go"
	"github.com/open2b/scriggo"
)

// encoder serializes the values. Its output is compact, map keys are sorted
// and no character is escaped for HTML; the encoding mode is applied later
// by EncodingMode.format.
var encoder = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

// indent is the indentation of a single level in pretty mode.
const indent = "    "

var errMalformedUTF8 = errors.New("malformed UTF-8 characters, possibly incorrectly encoded")

// Encode encodes v as JSON according to the mode m. It returns a Safe value
// if m.HTMLSafe is true, otherwise a Raw value.
//
// If v cannot be encoded, for example it is a NaN float or a channel, or it
// contains a string that is not valid UTF-8, Encode returns an
// *EncodingError.
func (m EncodingMode) Encode(v interface{}) (Output, error) {
	b, err := encoder.Marshal(v)
	if err != nil {
		return nil, &EncodingError{Err: err}
	}
	b, err = m.format(b)
	if err != nil {
		return nil, &EncodingError{Err: err}
	}
	if m.HTMLSafe {
		return Safe(b), nil
	}
	return Raw(b), nil
}

// Encode encodes v as JSON with the encoding mode resulting from options.
// See ParseOptions for the options.
func Encode(v interface{}, options ...string) (Output, error) {
	return ParseOptions(options...).Encode(v)
}

// EncodeIn is like Encode but format is the format of the content the value
// comes from. If format is not FormatText or FormatJS, EncodeIn returns an
// *IncompatibleContextError.
func EncodeIn(format scriggo.Format, v interface{}, options ...string) (Output, error) {
	if format != scriggo.FormatText && format != scriggo.FormatJS {
		return nil, &IncompatibleContextError{Filter: FilterJSON, Format: format}
	}
	return Encode(v, options...)
}

// format applies the layout and the escaping of m to src, the compact JSON
// encoding of a value, and returns the result.
func (m EncodingMode) format(src []byte) ([]byte, error) {
	dst := make([]byte, 0, len(src)+len(src)/8)
	depth := 0
	inString := false
	for i := 0; i < len(src); i++ {
		c := src[i]
		if inString {
			switch {
			case c == '"':
				inString = false
				dst = append(dst, c)
			case c == '\\':
				// src is valid JSON, so an escape is never the last byte.
				i++
				if src[i] == '"' && m.HTMLSafe {
					dst = appendEscape(dst, '"', true)
				} else {
					dst = append(dst, c, src[i])
				}
			case c < utf8.RuneSelf:
				if m.HTMLSafe && (c == '<' || c == '>' || c == '&' || c == '\'') {
					dst = appendEscape(dst, rune(c), true)
				} else {
					dst = append(dst, c)
				}
			default:
				r, size := utf8.DecodeRune(src[i:])
				if r == utf8.RuneError && size == 1 {
					return nil, errMalformedUTF8
				}
				switch {
				case !m.ASCIISafe && r != 0x2028 && r != 0x2029:
					dst = append(dst, src[i:i+size]...)
				case r >= 0x10000:
					r1, r2 := utf16.EncodeRune(r)
					dst = appendEscape(dst, r1, false)
					dst = appendEscape(dst, r2, false)
				default:
					dst = appendEscape(dst, r, false)
				}
				i += size - 1
			}
			continue
		}
		switch c {
		case ' ', '\t', '\n', '\r':
			// Values implementing json.Marshaler and json.RawMessage values
			// are copied as they are by the encoder.
		case '"':
			inString = true
			dst = append(dst, c)
		case '{', '[':
			j := skipSpaces(src, i+1)
			if j < len(src) && (c == '{' && src[j] == '}' || c == '[' && src[j] == ']') {
				if c == '[' && m.ForceObjects {
					dst = append(dst, '{', '}')
				} else {
					dst = append(dst, c, src[j])
				}
				i = j
				continue
			}
			dst = append(dst, c)
			depth++
			if m.Pretty {
				dst = appendNewline(dst, depth)
			}
		case '}', ']':
			depth--
			if m.Pretty {
				dst = appendNewline(dst, depth)
			}
			dst = append(dst, c)
		case ',':
			dst = append(dst, c)
			if m.Pretty {
				dst = appendNewline(dst, depth)
			}
		case ':':
			dst = append(dst, c)
			if m.Pretty {
				dst = append(dst, ' ')
			}
		default:
			dst = append(dst, c)
		}
	}
	return dst, nil
}

// skipSpaces returns the index of the first byte of src, starting from i,
// that is not JSON white space.
func skipSpaces(src []byte, i int) int {
	for i < len(src) {
		switch src[i] {
		case ' ', '\t', '\n', '\r':
			i++
		default:
			return i
		}
	}
	return i
}

const (
	lowerHex = "0123456789abcdef"
	upperHex = "0123456789ABCDEF"
)

// appendEscape appends to dst the JSON escape sequence of r that must be in
// the Basic Multilingual Plane. upper reports whether the hexadecimal digits
// are upper case.
func appendEscape(dst []byte, r rune, upper bool) []byte {
	digits := lowerHex
	if upper {
		digits = upperHex
	}
	return append(dst, '\\', 'u', digits[r>>12&0xF], digits[r>>8&0xF], digits[r>>4&0xF], digits[r&0xF])
}

// appendNewline appends to dst a new line followed by the indentation for
// the given depth.
func appendNewline(dst []byte, depth int) []byte {
	dst = append(dst, '\n')
	for ; depth > 0; depth-- {
		dst = append(dst, indent...)
	}
	return dst
}
