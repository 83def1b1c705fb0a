// Copyright 2026 The Latte Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Latte renders, checks and serves Scriggo templates with the json, md5 and
// sha1 filters.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configFile string
	verbose    bool

	logger *zap.Logger
	conf   *config
)

var rootCmd = &cobra.Command{
	Use:   "latte",
	Short: "Render Scriggo templates with the json, md5 and sha1 filters",
	Long: `Latte renders, checks and serves Scriggo templates.

The templates can use the json, md5 and sha1 filters and the value read
from the data file as the global variable data.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zc := zap.NewProductionConfig()
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		conf, err = loadConfig(configFile, cmd.Flags().Changed("config"))
		if err != nil {
			return err
		}
		logger.Debug("configuration loaded", zap.String("file", configFile))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", defaultConfigFile, "configuration file (YAML or JSON)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(renderCmd, lintCmd, serveCmd, jsonCmd, md5Cmd, sha1Cmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "latte: %s\n", err)
		os.Exit(1)
	}
}
