package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"hemttrun/pkg/command"
	"hemttrun/pkg/config"
	"hemttrun/pkg/highlight"
	"hemttrun/pkg/project"
	"hemttrun/pkg/runner"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// runCmd represents the run command: custom arguments passed straight to HEMTT.
var runCmd = &cobra.Command{
	Use:   "run -- [hemtt args]",
	Short: "Run HEMTT with custom arguments",
	Long: `The run command passes its arguments to HEMTT verbatim and streams
the output back, with the tool's own colors stripped and the launcher's
severity highlighting applied instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHemtt(cmd, args)
	},
}

// event carries runner callbacks onto the command goroutine, the CLI
// equivalent of the GUI's polled output queue.
type event struct {
	line string
	code int
	exit bool
}

// exitError carries the child's exit code out of a command so Execute can
// mirror it as the launcher's own process exit code.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("hemtt exited with code %d", e.code)
}

// exitCode maps an Execute error back to a process exit code.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	return 1
}

// runHemtt executes one HEMTT invocation end to end: resolve paths from the
// config file and flags, build the argument vector, stream output, and
// report the exit code.
func runHemtt(cmd *cobra.Command, args []string) error {
	logger := contextLogger(cmd)
	cfg := config.Load(configPath(), logger)

	exe := cfg.HemttPath
	if hemttFlag != "" {
		exe = hemttFlag
	}
	dir := cfg.ProjectDir
	if projectFlag != "" {
		dir = projectFlag
	}

	if m, err := project.Load(dir); err != nil {
		logger.Warn("no HEMTT project manifest found", "dir", dir)
	} else {
		logger.Info("project", "name", m.Name, "prefix", m.Prefix)
	}

	vector := command.Build(exe, args)
	logger.Debug("running", "command", strings.Join(vector, " "))

	events := make(chan event, 64)
	run := runner.New(runner.Config{
		Command: vector,
		Dir:     dir,
		OnOutput: func(line string) {
			events <- event{line: line}
		},
		OnExit: func(code int) {
			events <- event{code: code, exit: true}
			close(events)
		},
	})

	out := cmd.OutOrStdout()
	colorize := false
	if f, ok := out.(*os.File); ok {
		colorize = isatty.IsTerminal(f.Fd())
	}

	start := time.Now()
	run.Start()

	code := 0
	for ev := range events {
		if ev.exit {
			code = ev.code
			continue
		}
		fmt.Fprintln(out, render(ev.line, colorize))
	}

	elapsed := fmt.Sprintf("%.1fs", time.Since(start).Seconds())
	if code != 0 {
		logger.Error("command failed", "code", code, "elapsed", elapsed)
		return &exitError{code: code}
	}
	logger.Info("command finished", "elapsed", elapsed)
	return nil
}

// The launcher's own severity colors, applied after the child's were
// stripped, matching the GUI's keyword-based theme.
const (
	colorError   = "\x1b[31m"
	colorWarning = "\x1b[33m"
	colorInfo    = "\x1b[36m"
	colorReset   = "\x1b[0m"
)

func render(line string, colorize bool) string {
	if !colorize {
		return line
	}
	switch highlight.Classify(line) {
	case highlight.SeverityError:
		return colorError + line + colorReset
	case highlight.SeverityWarning:
		return colorWarning + line + colorReset
	case highlight.SeverityInfo:
		return colorInfo + line + colorReset
	default:
		return line
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
}
