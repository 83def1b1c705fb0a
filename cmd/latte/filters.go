// Copyright 2026 The Latte Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/trejjam/latte"
)

var (
	jsonOptions []string
	jsonFormat  string
	jsonSafe    bool
)

var jsonCmd = &cobra.Command{
	Use:   "json [flags] [file]",
	Short: "Encode a value as the json filter does",
	Long: `Json reads a JSON or YAML value from the file, or from the standard input,
and writes it encoded as the json filter does with the given options.`,
	Example: `  latte json -o pretty -o ascii data.yaml
  echo '{"a":"<b>"}' | latte json -o '!html' --safe`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var src []byte
		var err error
		format := jsonFormat
		if len(args) == 1 {
			src, err = os.ReadFile(args[0])
			if format == "" {
				format = filepath.Ext(args[0])
			}
		} else {
			src, err = io.ReadAll(cmd.InOrStdin())
		}
		if err != nil {
			return err
		}
		return encodeJSON(cmd.OutOrStdout(), src, format, jsonOptions, jsonSafe)
	},
}

var md5Cmd = &cobra.Command{
	Use:   "md5 string...",
	Short: "Print the MD5 checksum of the strings",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printChecksums(cmd.OutOrStdout(), latte.Md5, args)
	},
}

var sha1Cmd = &cobra.Command{
	Use:   "sha1 string...",
	Short: "Print the SHA1 checksum of the strings",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printChecksums(cmd.OutOrStdout(), latte.Sha1, args)
	},
}

func init() {
	jsonCmd.Flags().StringArrayVarP(&jsonOptions, "option", "o", nil, "json filter option (pretty, ascii, html, !html, forceObjects)")
	jsonCmd.Flags().StringVar(&jsonFormat, "format", "", "input format, json or yaml (default from the file extension, or json)")
	jsonCmd.Flags().BoolVar(&jsonSafe, "safe", false, "also print whether the output is safe in HTML")
}

// encodeJSON decodes src in the given format and writes to w its encoding
// with options.
func encodeJSON(w io.Writer, src []byte, format string, options []string, safe bool) error {
	v, err := decodeValue(src, format)
	if err != nil {
		return fmt.Errorf("cannot decode input: %w", err)
	}
	mode := latte.ParseOptions(options...)
	logger.Debug("encoding value", zap.Any("mode", mode))
	out, err := mode.Encode(v)
	if err != nil {
		return err
	}
	if _, err = fmt.Fprintln(w, out); err != nil {
		return err
	}
	if safe {
		_, err = fmt.Fprintf(w, "safe: %t\n", out.IsSafe())
	}
	return err
}

// printChecksums writes to w the checksum, computed by sum, of each string.
func printChecksums(w io.Writer, sum func(string) string, values []string) error {
	for _, s := range values {
		if _, err := fmt.Fprintf(w, "%s  %s\n", sum(s), s); err != nil {
			return err
		}
	}
	return nil
}
