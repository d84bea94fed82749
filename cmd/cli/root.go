package main

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sevigo/readme-forge/internal/logger"
)

var (
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "readme-forge [path]",
	Short: "readme-forge generates a README.md from observable project facts.",
	Long: `readme-forge inspects a project directory (manifest files, directory
layout, file extensions) and synthesizes a structured README: title,
description, installation, usage, project structure and license.

Run without arguments it documents the current directory:

  readme-forge
  readme-forge ./my-project
  readme-forge generate --force --depth 4 ./my-project`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
	addAnalysisFlags(rootCmd)
	addOutputFlags(rootCmd)
}

// initConfig reads ENV variables if set.
func initConfig() {
	viper.SetEnvPrefix("RF")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// newLogger builds the CLI logger from the persistent flags.
func newLogger() *slog.Logger {
	return logger.New(logger.Config{Level: logLevel, Format: logFormat}, nil)
}

// targetDir resolves the positional argument, defaulting to the current
// working directory. The path is absolutized so directory-name
// fallbacks ("." has no usable base name) stay meaningful.
func targetDir(args []string) string {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return dir
	}
	return abs
}
