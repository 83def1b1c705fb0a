// Copyright 2026 The Latte Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/open2b/scriggo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	renderRoot string
	dataFile   string
)

var renderCmd = &cobra.Command{
	Use:   "render [flags] template",
	Short: "Render a template to the standard output",
	Long: `Render builds and renders the template, with path relative to the root
directory, and writes the result to the standard output.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := loadData(dataPath())
		if err != nil {
			return err
		}
		opts := newBuildOptions(conf, newMarkdown(conf), data)
		return render(cmd.OutOrStdout(), os.DirFS(renderRoot), filepath.ToSlash(args[0]), opts)
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderRoot, "root", ".", "root directory of the templates")
	renderCmd.Flags().StringVar(&dataFile, "data", "", "data file (YAML or JSON), overrides the configuration")
}

// dataPath returns the path of the data file.
func dataPath() string {
	if dataFile != "" {
		return dataFile
	}
	return conf.Data
}

// render builds the named template of fsys and renders it to w.
func render(w io.Writer, fsys fs.FS, name string, opts *scriggo.BuildOptions) error {
	logger.Debug("building template", zap.String("template", name))
	template, err := scriggo.BuildTemplate(fsys, name, opts)
	if err != nil {
		return fmt.Errorf("cannot build %s: %w", name, err)
	}
	err = template.Run(w, nil, nil)
	if err != nil {
		return fmt.Errorf("cannot render %s: %w", name, err)
	}
	return nil
}
