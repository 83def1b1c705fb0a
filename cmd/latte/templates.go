// Copyright 2026 The Latte Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/open2b/scriggo"
	"github.com/open2b/scriggo/builtin"
	"github.com/open2b/scriggo/native"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// globals are the builtins available in the templates besides the filters
// and the data.
var globals = native.Declarations{
	// crypto
	"hmacSHA256": builtin.HmacSHA256,
	"sha256":     builtin.Sha256,

	// encoding
	"base64": builtin.Base64,
	"hex":    builtin.Hex,

	// html
	"htmlEscape": builtin.HtmlEscape,

	// math
	"abs": builtin.Abs,
	"max": builtin.Max,
	"min": builtin.Min,

	// strconv
	"formatFloat": builtin.FormatFloat,
	"formatInt":   builtin.FormatInt,

	// strings
	"abbreviate":    builtin.Abbreviate,
	"capitalize":    builtin.Capitalize,
	"capitalizeAll": builtin.CapitalizeAll,
	"hasPrefix":     builtin.HasPrefix,
	"hasSuffix":     builtin.HasSuffix,
	"join":          builtin.Join,
	"replace":       builtin.Replace,
	"replaceAll":    builtin.ReplaceAll,
	"split":         builtin.Split,
	"sprint":        builtin.Sprint,
	"sprintf":       builtin.Sprintf,
	"toKebab":       builtin.ToKebab,
	"toLower":       builtin.ToLower,
	"toUpper":       builtin.ToUpper,
	"trim":          builtin.Trim,

	// time
	"now": builtin.Now,
}

// newMarkdown returns the Markdown converter for the configuration c.
func newMarkdown(c *config) goldmark.Markdown {
	var rendererOptions []renderer.Option
	if c.Markdown.Unsafe {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(rendererOptions...),
	)
}

// newBuildOptions returns the options to build the templates. data is the
// value of the global variable data.
func newBuildOptions(c *config, md goldmark.Markdown, data map[string]interface{}) *scriggo.BuildOptions {
	opts := &scriggo.BuildOptions{
		Globals: make(native.Declarations, len(globals)+4),
		MarkdownConverter: func(src []byte, out io.Writer) error {
			return md.Convert(src, out)
		},
	}
	for n, v := range globals {
		opts.Globals[n] = v
	}
	opts.Globals["data"] = &data
	c.extension().Register(opts)
	return opts
}
