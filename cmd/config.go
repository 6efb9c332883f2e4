package cmd

import (
	"encoding/json"
	"fmt"

	"hemttrun/pkg/config"

	"github.com/spf13/cobra"
)

// configCmd represents the config command group.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage launcher preferences",
	Long: `Preferences are stored as a flat JSON document. Missing keys fall
back to their defaults, so a partial or absent file is never an error.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load(configPath(), contextLogger(cmd))
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a preference and persist it",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := contextLogger(cmd)
		cfg := config.Load(configPath(), logger)
		if err := config.Set(&cfg, args[0], args[1]); err != nil {
			return err
		}
		// Persistence is best-effort, same as the original store.
		if err := config.Save(configPath(), cfg); err != nil {
			logger.Warn("could not persist config", "error", err)
		}
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), configPath())
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetCmd, configPathCmd)
	rootCmd.AddCommand(configCmd)
}
