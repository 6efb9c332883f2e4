// Package runner owns the lifecycle of one external command: spawn, merged
// output streaming, cooperative cancellation, and exit reporting.
//
// A Runner executes its command on a background goroutine, so Start returns
// immediately and the caller is never blocked on child-process I/O. Both
// callbacks fire on that goroutine, not the caller's: a consumer driving an
// event loop must hand the payloads to its own loop (a channel works) before
// touching loop-affine state. Output lines arrive in the order the child
// produced them, and the exit callback always arrives exactly once, after
// the final output line.
package runner

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	"time"
	"unicode/utf8"

	"hemttrun/pkg/ansi"
)

// Sentinel exit codes for failures detected by the runner itself rather
// than reported by the child process. 127 follows shell convention for a
// missing executable.
const (
	ExitNotFound = 127
	ExitFailure  = 1
)

// maxLineBytes caps a single output line. Build tools emit long lines
// (full paths, minified JSON) but a line past this is a runaway stream.
const maxLineBytes = 1 << 20

// State represents the lifecycle phase of a Runner.
type State int32

const (
	// StateIdle indicates Start has not been called.
	StateIdle State = iota
	// StateRunning indicates the command is executing in the background.
	StateRunning
	// StateFinished indicates the exit callback has been delivered. A
	// finished Runner is inert; run another command with a new Runner.
	StateFinished
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateFinished:
		return "finished"
	default:
		return fmt.Sprintf("unknown(%d)", int32(s))
	}
}

// Config describes a single command invocation. It is not mutated after the
// Runner is created.
type Config struct {
	// Command is the argument vector. Command[0] is the executable, resolved
	// through PATH when it is a bare name.
	Command []string

	// Dir is the working directory. Empty means the current directory.
	Dir string

	// Env replaces the inherited environment when non-nil. NO_COLOR=1 and
	// TERM=dumb are forced in either case so well-behaved tools skip color
	// and interactive output.
	Env map[string]string

	// OnOutput receives each line of the merged stdout/stderr stream,
	// sanitized and with the trailing newline removed. May be nil. Lines
	// longer than maxLineBytes abort the run with the generic failure code.
	OnOutput func(line string)

	// OnExit receives the exit code exactly once per Start. May be nil.
	OnExit func(code int)
}

// Runner executes one command in the background. A Runner is single-shot:
// create it, Start it, wait for Done, discard it.
type Runner struct {
	cfg Config

	state     atomic.Int32
	cancelled atomic.Bool
	exitCode  atomic.Int32

	// mu guards cmd, which is published once the process has started.
	mu  sync.Mutex
	cmd *exec.Cmd

	// Started is the time Start transitioned the Runner to running.
	Started time.Time

	// done is closed when the Runner reaches StateFinished.
	done chan struct{}
}

// New creates a Runner for the given invocation. Nil callbacks are replaced
// with no-ops.
func New(cfg Config) *Runner {
	if cfg.OnOutput == nil {
		cfg.OnOutput = func(string) {}
	}
	if cfg.OnExit == nil {
		cfg.OnExit = func(int) {}
	}
	r := &Runner{
		cfg:  cfg,
		done: make(chan struct{}),
	}
	r.exitCode.Store(-1) // -1 indicates not exited
	return r
}

// Start begins asynchronous execution and returns immediately. Calling
// Start while the command runs, or after it finished, does nothing and
// spawns no second process.
func (r *Runner) Start() {
	if !r.state.CompareAndSwap(int32(StateIdle), int32(StateRunning)) {
		return
	}
	r.Started = time.Now()
	go r.run()
}

// Cancel requests termination of the running command. It sets the
// cancellation flag, then attempts a graceful SIGTERM with a forceful kill
// as fallback. Cancellation is best-effort and never reports failure. The
// exit callback is not fired here; it still arrives through the normal
// drain path, so the caller keeps its exactly-one exit notification.
func (r *Runner) Cancel() {
	r.cancelled.Store(true)
	r.mu.Lock()
	cmd := r.cmd
	r.mu.Unlock()
	if cmd != nil {
		terminate(cmd)
	}
}

// State returns the current lifecycle state.
func (r *Runner) State() State {
	return State(r.state.Load())
}

// IsRunning reports whether the command is still executing.
func (r *Runner) IsRunning() bool {
	return r.State() == StateRunning
}

// ExitCode returns the reported exit code, or -1 before the exit callback
// has been delivered.
func (r *Runner) ExitCode() int {
	return int(r.exitCode.Load())
}

// Done returns a channel that is closed once the exit callback has been
// delivered and the Runner is finished.
func (r *Runner) Done() <-chan struct{} {
	return r.done
}

// Runtime returns how long the command has been running, or zero if Start
// has not been called.
func (r *Runner) Runtime() time.Duration {
	if r.Started.IsZero() {
		return 0
	}
	return time.Since(r.Started)
}

// run executes the command and reports its exit. The finished transition
// lives in a defer so a panicking callback cannot leave the Runner
// reporting itself as running.
func (r *Runner) run() {
	defer func() {
		r.state.Store(int32(StateFinished))
		close(r.done)
	}()

	code := r.execute()
	r.exitCode.Store(int32(code))
	r.cfg.OnExit(code)
}

func (r *Runner) execute() int {
	if len(r.cfg.Command) == 0 {
		r.cfg.OnOutput("Unexpected error: empty command")
		return ExitFailure
	}

	cmd := exec.Command(r.cfg.Command[0], r.cfg.Command[1:]...)
	cmd.Dir = r.cfg.Dir
	cmd.Env = buildEnv(r.cfg.Env)

	// One pipe carries both streams so lines interleave in the order the
	// child wrote them.
	pr, pw, err := os.Pipe()
	if err != nil {
		r.cfg.OnOutput(fmt.Sprintf("Unexpected error: %v", err))
		return ExitFailure
	}
	cmd.Stdout = pw
	cmd.Stderr = pw

	if err := cmd.Start(); err != nil {
		pw.Close()
		pr.Close()
		if isNotFound(err) {
			r.cfg.OnOutput(fmt.Sprintf("Error: %v", err))
			return ExitNotFound
		}
		r.cfg.OnOutput(fmt.Sprintf("Unexpected error: %v", err))
		return ExitFailure
	}

	r.mu.Lock()
	r.cmd = cmd
	r.mu.Unlock()

	// The child holds its own copy of the write end; drop ours so the read
	// side sees EOF when the child exits.
	pw.Close()

	// Cancel may have fired before the process handle was published.
	if r.cancelled.Load() {
		terminate(cmd)
	}

	scanErr := r.drain(pr)
	pr.Close()

	if scanErr != nil {
		// Reading failed mid-stream. Reap the child and report a generic
		// failure rather than whatever code it eventually returns.
		terminate(cmd)
		_ = cmd.Wait()
		r.cfg.OnOutput(fmt.Sprintf("Unexpected error: %v", scanErr))
		return ExitFailure
	}

	return r.collectExit(cmd)
}

// drain consumes the merged stream line by line, delivering each sanitized
// line as soon as it is available. The first of {EOF, cancellation observed}
// stops the loop; exit-code collection still waits for true termination.
func (r *Runner) drain(pr io.Reader) error {
	scanner := bufio.NewScanner(pr)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := strings.ToValidUTF8(scanner.Text(), string(utf8.RuneError))
		r.cfg.OnOutput(ansi.Strip(line))
		if r.cancelled.Load() {
			return nil
		}
	}
	return scanner.Err()
}

// collectExit waits for the child to fully terminate and extracts its exit
// status. A signal-terminated child reports the shell convention 128+signal.
func (r *Runner) collectExit(cmd *exec.Cmd) int {
	err := cmd.Wait()
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
			return 128 + int(status.Signal())
		}
		return exitErr.ExitCode()
	}
	r.cfg.OnOutput(fmt.Sprintf("Unexpected error: %v", err))
	return ExitFailure
}

// terminate asks politely first, then forcefully. Both failures are
// swallowed; cancellation is best-effort.
func terminate(cmd *exec.Cmd) {
	if cmd.Process == nil {
		return
	}
	if err := cmd.Process.Signal(syscall.SIGTERM); err != nil {
		_ = cmd.Process.Kill()
	}
}

// isNotFound reports whether a spawn error means the executable could not
// be resolved, either through PATH lookup or as an explicit path.
func isNotFound(err error) bool {
	return errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist)
}

// buildEnv assembles the child environment with deterministic ordering.
// A non-nil override replaces the inherited environment entirely; the two
// forced variables are applied on top in both cases.
func buildEnv(override map[string]string) []string {
	envMap := make(map[string]string)

	if override != nil {
		for k, v := range override {
			envMap[k] = v
		}
	} else {
		for _, kv := range os.Environ() {
			if idx := strings.Index(kv, "="); idx > 0 {
				envMap[kv[:idx]] = kv[idx+1:]
			}
		}
	}

	envMap["NO_COLOR"] = "1"
	envMap["TERM"] = "dumb"

	keys := make([]string, 0, len(envMap))
	for k := range envMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	env := make([]string, 0, len(envMap))
	for _, k := range keys {
		env = append(env, k+"="+envMap[k])
	}
	return env
}
