package cmd

import (
	"bytes"
	"testing"

	"hemttrun/pkg/config"
	"hemttrun/pkg/project"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
)

// executeCommand runs the root command with args and captures its output.
func executeCommand(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

// setupTest gives each test a fresh flag state and memory filesystems for
// the config store and project detection.
func setupTest(t *testing.T) afero.Fs {
	t.Helper()

	cfgFile = ""
	logLevel = "info"
	hemttFlag = ""
	projectFlag = ""
	verboseOpt = false
	pedanticOpt = false
	devBinarize = false
	releaseNoSign = false
	releaseNoArchive = false
	for _, flags := range []*pflag.FlagSet{
		rootCmd.PersistentFlags(),
		devCmd.Flags(),
		releaseCmd.Flags(),
	} {
		flags.VisitAll(func(f *pflag.Flag) { f.Changed = false })
	}

	mem := afero.NewMemMapFs()
	oldConfigFs := config.AppFs
	oldProjectFs := project.AppFs
	config.AppFs = mem
	project.AppFs = mem
	t.Cleanup(func() {
		config.AppFs = oldConfigFs
		project.AppFs = oldProjectFs
	})
	return mem
}
