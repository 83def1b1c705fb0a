// Copyright 2026 The Latte Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package latte

import "testing"

var parseOptionsTests = []struct {
	options []string
	mode    EncodingMode
}{
	{nil, EncodingMode{HTMLSafe: true}},
	{[]string{}, EncodingMode{HTMLSafe: true}},
	{[]string{"pretty"}, EncodingMode{Pretty: true, HTMLSafe: true}},
	{[]string{"PRETTY"}, EncodingMode{Pretty: true, HTMLSafe: true}},
	{[]string{"  pretty  "}, EncodingMode{Pretty: true, HTMLSafe: true}},
	{[]string{"\tPretty\n"}, EncodingMode{Pretty: true, HTMLSafe: true}},
	{[]string{"ascii"}, EncodingMode{ASCIISafe: true, HTMLSafe: true}},
	{[]string{"html"}, EncodingMode{HTMLSafe: true}},
	{[]string{"!html"}, EncodingMode{}},
	{[]string{"!HTML"}, EncodingMode{}},
	{[]string{"forceobjects"}, EncodingMode{HTMLSafe: true, ForceObjects: true}},
	{[]string{"forceObjects"}, EncodingMode{HTMLSafe: true, ForceObjects: true}},
	{[]string{"html", "!html"}, EncodingMode{}},
	{[]string{"!html", "html"}, EncodingMode{HTMLSafe: true}},
	{[]string{"pretty", "pretty"}, EncodingMode{Pretty: true, HTMLSafe: true}},
	{[]string{"pretty", "ascii", "!html", "forceobjects"}, EncodingMode{true, true, false, true}},
	{[]string{"bogus"}, EncodingMode{HTMLSafe: true}},
	{[]string{"", " ", "! html", "html!"}, EncodingMode{HTMLSafe: true}},
	{[]string{"bogus", "pretty", "another"}, EncodingMode{Pretty: true, HTMLSafe: true}},
}

func TestParseOptions(t *testing.T) {
	for _, expr := range parseOptionsTests {
		mode := ParseOptions(expr.options...)
		if mode != expr.mode {
			t.Fatalf("options %q: unexpected %+v, expecting %+v", expr.options, mode, expr.mode)
		}
	}
}

func TestDefaultEncodingMode(t *testing.T) {
	if ParseOptions() != DefaultEncodingMode {
		t.Fatalf("unexpected %+v, expecting %+v", ParseOptions(), DefaultEncodingMode)
	}
	if !DefaultEncodingMode.HTMLSafe {
		t.Fatal("expecting html safe default mode")
	}
}
