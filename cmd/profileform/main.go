// Profileform is a terminal form that asks for a name and an age, checks
// them as they are typed, and greets the user with their age category.
//
// Usage:
//
//	profileform [command] [flags]
//
// Running without arguments opens the interactive form. The check command
// runs a single submission non-interactively, which is handy in scripts.
// See 'profileform --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/profileform/internal/config"
	"github.com/muurk/profileform/internal/logging"
	"github.com/muurk/profileform/internal/urls"
	"github.com/muurk/profileform/internal/version"
)

func main() {
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Global flags
var (
	configPath string
	logLevel   string
	logFile    string
)

var rootCmd = &cobra.Command{
	Use:   "profileform",
	Short: "Name and age profile form",
	Long: `A small terminal form that validates a name and an age as you type.

A valid submission is answered with a greeting and an age category
(Child, Teenager, Young Adult, Adult, Middle-aged or Senior).

If no command is specified, the interactive form will launch automatically.

Configuration reference: ` + urls.ConfigGuide,
	Version:       version.Full(),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runForm,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: $XDG_CONFIG_HOME/profileform/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); silent when unset")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file instead of stderr")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Get().String())
	},
}

// resolveConfigPath returns --config when given, otherwise the default location
func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigPath()
}

// loadConfig reads the config file and starts logging. Flags win over the
// file and the environment.
func loadConfig() (*config.Config, error) {
	var (
		cfg  *config.Config
		path = configPath
		err  error
	)
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, path, err = config.LoadDefault()
	}
	if err != nil {
		return nil, err
	}

	level := cfg.Logging.Level
	if logLevel != "" {
		level = logLevel
	}
	file := cfg.Logging.File
	if logFile != "" {
		file = logFile
	}
	if err := logging.InitializeWithFile(level, file); err != nil {
		return nil, err
	}

	logging.Debug("Configuration loaded", zap.String("path", path))
	return cfg, nil
}
