// Copyright 2026 The Latte Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/open2b/scriggo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// templateExtensions are the extensions of the files checked by lint.
var templateExtensions = map[string]bool{
	".css":  true,
	".html": true,
	".js":   true,
	".json": true,
	".md":   true,
	".txt":  true,
}

var lintCmd = &cobra.Command{
	Use:   "lint [dir]",
	Short: "Check that all templates in a directory build",
	Long: `Lint builds every template in the directory, and in its subdirectories,
and reports the templates that do not build. Directories whose name starts
with a dot or an underscore are skipped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		data, err := loadData(dataPath())
		if err != nil {
			return err
		}
		opts := newBuildOptions(conf, newMarkdown(conf), data)
		checked, failed, err := lint(os.DirFS(dir), opts)
		if err != nil {
			return err
		}
		logger.Info("lint completed", zap.Int("templates", checked), zap.Int("errors", failed))
		if failed > 0 {
			return fmt.Errorf("%d of %d templates do not build", failed, checked)
		}
		return nil
	},
}

func init() {
	lintCmd.Flags().StringVar(&dataFile, "data", "", "data file (YAML or JSON), overrides the configuration")
}

// lint builds the templates of fsys and returns the number of checked
// templates and the number of templates that do not build.
func lint(fsys fs.FS, opts *scriggo.BuildOptions) (checked, failed int, err error) {
	err = fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if name == "." {
			return nil
		}
		base := path.Base(name)
		if strings.HasPrefix(base, ".") || strings.HasPrefix(base, "_") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !templateExtensions[path.Ext(name)] {
			return nil
		}
		checked++
		_, err = scriggo.BuildTemplate(fsys, name, opts)
		if err != nil {
			failed++
			logger.Error("template does not build", zap.String("template", name), zap.Error(err))
			return nil
		}
		logger.Debug("template ok", zap.String("template", name))
		return nil
	})
	return checked, failed, err
}
