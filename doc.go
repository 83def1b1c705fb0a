// Copyright 2026 The Latte Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package latte provides the json, md5 and sha1 filters for Scriggo
// templates.
//
// Register the filters with the build options of a template
//
//	opts := &scriggo.BuildOptions{}
//	latte.Register(opts)
//	template, err := scriggo.BuildTemplate(fsys, "index.html", opts)
//
// and use them in the template
//
//	<script>var data = {{ json(data) }};</script>
//	{{ json(data, "pretty", "ascii") }}
//	<img src="https://www.gravatar.com/avatar/{{ md5(email) }}">
//	{{ sha1(name) }}
//
// The json filter takes any number of options after the value:
//
//	pretty        indent the output with four spaces
//	ascii         escape all non-ASCII characters
//	html          escape <, >, &, ' and " in strings (default)
//	!html         do not escape <, >, &, ' and "
//	forceObjects  encode empty arrays as {}
//
// Options are case insensitive and surrounding white space is ignored. When
// an option is repeated the last one wins. Unknown options are ignored, so
// templates written for a newer version keep working with an older one.
//
// With html, the default, json returns a Safe value that is shown as is in
// HTML, JavaScript, JSON and text contexts. With !html it returns a Raw value
// that is shown as is in JavaScript, JSON and text contexts but is escaped in
// HTML context.
package latte
