package cmd

import (
	"fmt"

	"hemttrun/pkg/command"
	"hemttrun/pkg/config"

	"github.com/spf13/cobra"
)

// The button catalog of the launcher: each subcommand maps to one fixed
// HEMTT invocation with option toggles applied from the config file,
// overridable per run with the persistent flags.

var (
	devBinarize      bool
	releaseNoSign    bool
	releaseNoArchive bool
)

// loadOptions merges the persisted option toggles with any explicit flags.
func loadOptions(cmd *cobra.Command) command.Options {
	cfg := config.Load(configPath(), contextLogger(cmd))
	opts := command.Options{
		Verbose:  cfg.Verbose,
		Pedantic: cfg.Pedantic,
	}
	if cmd.Flags().Changed("verbose") {
		opts.Verbose = verboseOpt
	}
	if cmd.Flags().Changed("pedantic") {
		opts.Pedantic = pedanticOpt
	}
	return opts
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the project for errors without building",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHemtt(cmd, loadOptions(cmd).Check())
	},
}

var devCmd = &cobra.Command{
	Use:   "dev",
	Short: "Build for development with file-patching symlinks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHemtt(cmd, loadOptions(cmd).Dev(devBinarize))
	},
}

var launchCmd = &cobra.Command{
	Use:   "launch",
	Short: "Build the project and launch Arma 3 with the mod loaded",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHemtt(cmd, loadOptions(cmd).Launch())
	},
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build binarized PBOs for local testing",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHemtt(cmd, loadOptions(cmd).Build())
	},
}

var releaseCmd = &cobra.Command{
	Use:   "release",
	Short: "Build signed PBOs and release archives",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHemtt(cmd, loadOptions(cmd).Release(releaseNoSign, releaseNoArchive))
	},
}

var lnCmd = &cobra.Command{
	Use:   "ln",
	Short: "Stringtable helpers",
}

var lnSortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Sort stringtable entries alphabetically",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHemtt(cmd, loadOptions(cmd).LnSort())
	},
}

var lnCoverageCmd = &cobra.Command{
	Use:   "coverage",
	Short: "Report missing stringtable translations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHemtt(cmd, loadOptions(cmd).LnCoverage())
	},
}

var utilsCmd = &cobra.Command{
	Use:   "utils",
	Short: "File utilities",
}

var utilsFnlCmd = &cobra.Command{
	Use:   "fnl [paths]",
	Short: "Insert final newlines into files missing one",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHemtt(cmd, loadOptions(cmd).UtilsFnl(args...))
	},
}

var utilsBomCmd = &cobra.Command{
	Use:   "bom [paths]",
	Short: "Remove UTF-8 BOM markers from files",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHemtt(cmd, loadOptions(cmd).UtilsBom(args...))
	},
}

var paaCmd = &cobra.Command{
	Use:   "paa",
	Short: "PAA texture utilities",
}

var paaConvertCmd = &cobra.Command{
	Use:   "convert <source> <target>",
	Short: "Convert between PAA and common image formats",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHemtt(cmd, loadOptions(cmd).PaaConvert(args[0], args[1]))
	},
}

var paaInspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Show details of a PAA file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHemtt(cmd, loadOptions(cmd).PaaInspect(args[0]))
	},
}

var pboCmd = &cobra.Command{
	Use:   "pbo",
	Short: "PBO archive utilities",
}

var pboInspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Show the contents of a PBO file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHemtt(cmd, loadOptions(cmd).PboInspect(args[0]))
	},
}

var pboUnpackCmd = &cobra.Command{
	Use:   "unpack <file>",
	Short: "Extract a PBO file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHemtt(cmd, loadOptions(cmd).PboUnpack(args[0]))
	},
}

var licenseCmd = &cobra.Command{
	Use:   "license <name>",
	Short: "Add or update the project license file",
	Long: `Writes the named license (apl-sa, apl, apl-nd, apache, gpl, mit,
unlicense) into the project. Run hemtt license directly for the
interactive picker.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHemtt(cmd, loadOptions(cmd).License(args[0]))
	},
}

var scriptCmd = &cobra.Command{
	Use:   "script <name>",
	Short: "Run a Rhai automation script",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHemtt(cmd, loadOptions(cmd).Script(args[0]))
	},
}

var valueCmd = &cobra.Command{
	Use:   "value <key>",
	Short: "Print a project configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHemtt(cmd, loadOptions(cmd).Value(args[0]))
	},
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Signing key management",
}

var keysGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a private key for signing PBOs",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHemtt(cmd, loadOptions(cmd).KeysGenerate())
	},
}

var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "Show where the HEMTT documentation lives",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), "https://hemtt.dev")
		return nil
	},
}

func init() {
	devCmd.Flags().BoolVarP(&devBinarize, "binarize", "b", false, "binarize addons like a local build")
	releaseCmd.Flags().BoolVar(&releaseNoSign, "no-sign", false, "skip PBO signing")
	releaseCmd.Flags().BoolVar(&releaseNoArchive, "no-archive", false, "skip the release archive")

	lnCmd.AddCommand(lnSortCmd, lnCoverageCmd)
	utilsCmd.AddCommand(utilsFnlCmd, utilsBomCmd)
	paaCmd.AddCommand(paaConvertCmd, paaInspectCmd)
	pboCmd.AddCommand(pboInspectCmd, pboUnpackCmd)
	keysCmd.AddCommand(keysGenerateCmd)
	rootCmd.AddCommand(checkCmd, devCmd, launchCmd, buildCmd, releaseCmd, lnCmd, utilsCmd,
		paaCmd, pboCmd, licenseCmd, scriptCmd, valueCmd, keysCmd, bookCmd)
}
