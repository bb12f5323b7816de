// Copyright (c) 2026 Joseph Courtney. All rights reserved.
// SPDX-License-Identifier: MIT

// Command awl synchronizes a Python module's __all__ declaration with the
// names it imports, honoring awl: comment directives.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const version = "0.1.0"

var logger *zap.Logger

func main() {
	rootCmd := &cobra.Command{
		Use:   "awl [path]",
		Short: "Keep __all__ in sync with imports",
		Long: "awl derives a Python module's __all__ from its import statements.\n" +
			"Private names, awl:ignore, awl:include-private, and awl:exclude-public\n" +
			"comment directives control which names are exported. Without a path it\n" +
			"discovers __init__.py files via pyproject.toml; '-' reads from stdin.",
		Args:              cobra.MaximumNArgs(1),
		PersistentPreRunE: initLogger,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: runReconcile,
	}

	rootCmd.Flags().StringP("input", "i", "", "Path to input file or '-' for stdin")
	rootCmd.Flags().Bool("dry-run", false, "Show what would change, but do not write any files")
	rootCmd.Flags().Bool("diff", false, "Print a unified diff of any changes")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Only show warnings and errors")
	rootCmd.PersistentFlags().BoolP("verbose", "V", false, "Show debug-level output for troubleshooting")
	rootCmd.Flags().Int("workers", 0, "Concurrent file limit (0 = number of CPUs)")

	viper.BindPFlag("input", rootCmd.Flags().Lookup("input"))
	viper.BindPFlag("dry-run", rootCmd.Flags().Lookup("dry-run"))
	viper.BindPFlag("diff", rootCmd.Flags().Lookup("diff"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("workers", rootCmd.Flags().Lookup("workers"))

	// Env vars: AWL_DIFF, AWL_WORKERS, etc.
	viper.SetEnvPrefix("AWL")
	viper.AutomaticEnv()

	// Config file.
	viper.SetConfigName(".awl")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.ReadInConfig() // Ignore error; config file is optional.

	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initLogger builds the zap logger at a level derived from the verbosity
// flags: warnings-only under --quiet, debug under --verbose.
func initLogger(cmd *cobra.Command, args []string) error {
	config := zap.NewProductionConfig()
	switch {
	case viper.GetBool("quiet"):
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	case viper.GetBool("verbose"):
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print awl version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("awl %s\n", version)
		},
	}
}
