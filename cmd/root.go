package cmd

import (
	"context"
	"fmt"
	"os"

	"hemttrun/pkg/config"
	"hemttrun/pkg/log"

	"github.com/spf13/cobra"
)

var (
	cfgFile     string
	logLevel    string
	hemttFlag   string
	projectFlag string
	verboseOpt  bool
	pedanticOpt bool

	rootCmd = &cobra.Command{
		Use:   "hemttrun",
		Short: "hemttrun is a launcher for the HEMTT build tool",
		Long: `A frontend for the HEMTT CLI used to build Arma 3 mods.
It runs HEMTT commands in the background, streams their output with
severity highlighting, and remembers your paths and option toggles.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			writer := cmd.ErrOrStderr()
			logger := log.NewSlogLogger(level, writer)
			ctx := context.WithValue(cmd.Context(), "logger", logger)
			cmd.SetContext(ctx)
			return nil
		},
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// The process exit code mirrors the child's when a command carried one.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// configPath resolves the config file location, preferring the --config flag.
func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultPath()
}

// contextLogger pulls the logger installed by PersistentPreRunE.
func contextLogger(cmd *cobra.Command) log.Logger {
	return cmd.Context().Value("logger").(log.Logger)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is the per-user config path)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&hemttFlag, "hemtt", "", "HEMTT executable (overrides the config file)")
	rootCmd.PersistentFlags().StringVar(&projectFlag, "project", "", "project directory (overrides the config file)")
	rootCmd.PersistentFlags().BoolVar(&verboseOpt, "verbose", false, "pass -v to HEMTT (overrides the config file)")
	rootCmd.PersistentFlags().BoolVar(&pedanticOpt, "pedantic", false, "enable pedantic lints (overrides the config file)")
}
