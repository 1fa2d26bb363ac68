package subprocess

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"sync"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/oneryalcin/gemini-cli-sdk/internal/cli"
	"github.com/oneryalcin/gemini-cli-sdk/internal/config"
	"github.com/oneryalcin/gemini-cli-sdk/internal/errors"
)

const (
	// maxStdoutBufferSize caps captured stdout. Output beyond the cap is
	// dropped and RawOutput.Truncated is set.
	maxStdoutBufferSize = 10 * 1024 * 1024 // 10MB

	// maxStderrBufferSize caps the stderr buffer. The stderr callback still
	// receives every line; only the buffer stops growing.
	maxStderrBufferSize = 10 * 1024 * 1024 // 10MB

	// killGracePeriod is how long a cancelled process gets to exit after
	// SIGTERM before it is killed.
	killGracePeriod = 5 * time.Second
)

// CLITransport implements Transport by spawning a gemini CLI subprocess per
// Execute call.
type CLITransport struct {
	log            *slog.Logger
	options        *config.Options
	stderrCallback func(string)

	mu         sync.Mutex // protects lifecycle state below
	cliPath    string
	connected  bool
	closed     bool
	nativeJSON bool
	cmd        *exec.Cmd // running command, nil outside Execute
}

// Compile-time verification that CLITransport implements the Transport interface.
var _ config.Transport = (*CLITransport)(nil)

// NewCLITransport creates a new CLI transport with the given options.
//
// The logger is used for operation tracking and debugging. CLI discovery is
// deferred to Connect, which searches for the gemini binary in the following
// order:
//  1. The explicit path in options.CliPath (if provided)
//  2. The system PATH
//  3. Common installation directories
//
// Connect returns CLINotFoundError if the binary cannot be located.
func NewCLITransport(log *slog.Logger, options *config.Options) *CLITransport {
	return &CLITransport{
		log:            log.With("component", "cli_transport"),
		options:        options,
		stderrCallback: options.Stderr,
	}
}

// Connect discovers the gemini CLI binary and marks the transport ready.
// Calling Connect twice is a lifecycle error.
func (t *CLITransport) Connect(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.connected {
		return &errors.CLIConnectionError{Err: errors.ErrAlreadyConnected}
	}

	t.log.Debug("Connecting CLI transport")

	discoverer := cli.NewDiscoverer(&cli.Config{
		CliPath:          t.options.CliPath,
		SkipVersionCheck: t.options.SkipVersionCheck,
		Logger:           t.log,
	})

	cliPath, err := discoverer.Discover(ctx)
	if err != nil {
		return fmt.Errorf("discover CLI: %w", err)
	}

	t.cliPath = cliPath
	t.connected = true

	t.log.Info("CLI transport connected", "cli_path", cliPath)

	return nil
}

// CliPath returns the discovered binary path. Empty before Connect.
func (t *CLITransport) CliPath() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.cliPath
}

// SetNativeJSON asks the CLI for machine-readable output on the next Execute.
// Called by the orchestrator after parser selection, before Execute.
func (t *CLITransport) SetNativeJSON(native bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.nativeJSON = native
}

// Execute runs the CLI non-interactively with the prompt and waits for
// completion. The subprocess inherits the parent environment plus SDK
// variables; options.Cwd changes the subprocess working directory only.
//
// Returns ProcessError when the process exits non-zero, is killed by the
// configured timeout, or is cancelled via ctx.
func (t *CLITransport) Execute(ctx context.Context, prompt string) (*config.RawOutput, error) {
	t.mu.Lock()

	if !t.connected {
		t.mu.Unlock()

		return nil, &errors.CLIConnectionError{Err: errors.ErrTransportNotConnected}
	}

	if t.closed {
		t.mu.Unlock()

		return nil, &errors.CLIConnectionError{Err: errors.ErrTransportNotConnected}
	}

	cliPath := t.cliPath
	nativeJSON := t.nativeJSON
	t.mu.Unlock()

	args := cli.BuildArgs(prompt, t.options, nativeJSON)
	t.log.Debug("Built command arguments", "args", args)

	if t.options.Timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, t.options.Timeout)
		defer cancel()
	}

	//nolint:gosec // G204: subprocess launching with dynamic args is the point of this transport
	cmd := exec.CommandContext(ctx, cliPath, args...)
	cmd.Dir = t.options.Cwd
	cmd.Env = cli.BuildEnvironment(t.options)

	// Graceful termination: SIGTERM on cancellation, SIGKILL after the grace
	// period if the process ignores it.
	cmd.Cancel = func() error {
		return cmd.Process.Signal(syscall.SIGTERM)
	}
	cmd.WaitDelay = killGracePeriod

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, &errors.CLIConnectionError{Err: fmt.Errorf("stdout pipe: %w", err)}
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, &errors.CLIConnectionError{Err: fmt.Errorf("stderr pipe: %w", err)}
	}

	start := time.Now()

	if err := cmd.Start(); err != nil {
		return nil, &errors.CLIConnectionError{Err: fmt.Errorf("start process: %w", err)}
	}

	t.mu.Lock()
	t.cmd = cmd
	t.mu.Unlock()

	t.log.Info("gemini CLI subprocess started", "pid", cmd.Process.Pid)

	var (
		stdoutBuf strings.Builder
		stderrBuf strings.Builder
		truncated bool
	)

	// Pipes must be fully drained before cmd.Wait().
	var g errgroup.Group

	g.Go(func() error {
		reader := bufio.NewReader(stdout)
		chunk := make([]byte, 32*1024)

		for {
			n, readErr := reader.Read(chunk)
			if n > 0 {
				remaining := maxStdoutBufferSize - stdoutBuf.Len()
				if remaining > 0 {
					if n > remaining {
						n = remaining
						truncated = true
					}

					stdoutBuf.Write(chunk[:n])
				} else {
					truncated = true
				}
			}

			if readErr != nil {
				return nil // EOF and pipe-close errors both end the pump
			}
		}
	})

	g.Go(func() error {
		scanner := bufio.NewScanner(stderr)
		for scanner.Scan() {
			line := scanner.Text()

			if stderrBuf.Len() < maxStderrBufferSize {
				if stderrBuf.Len() > 0 {
					stderrBuf.WriteString("\n")
				}

				stderrBuf.WriteString(line)
			}

			if t.stderrCallback != nil {
				t.stderrCallback(line)
			}
		}

		if scanErr := scanner.Err(); scanErr != nil {
			t.log.Debug("Stderr scanner error", "error", scanErr)
		}

		return nil
	})

	_ = g.Wait()

	waitErr := cmd.Wait()
	duration := time.Since(start)

	t.mu.Lock()
	t.cmd = nil
	isClosing := t.closed
	t.mu.Unlock()

	raw := &config.RawOutput{
		Stdout:    stdoutBuf.String(),
		Stderr:    stderrBuf.String(),
		ExitCode:  cmd.ProcessState.ExitCode(),
		Truncated: truncated,
		Duration:  duration,
	}

	if truncated {
		t.log.Warn("CLI stdout exceeded buffer limit, output truncated",
			"limit_bytes", maxStdoutBufferSize)
	}

	if waitErr != nil {
		// Context expiry beats the exit status: a SIGTERM'd process reports
		// a signal exit, but the caller cares that the deadline fired.
		if ctxErr := ctx.Err(); ctxErr != nil && !isClosing {
			t.log.Error("CLI process cancelled", "error", ctxErr, "duration", duration)

			return nil, &errors.ProcessError{
				ExitCode: raw.ExitCode,
				Stderr:   raw.Stderr,
				Err:      ctxErr,
			}
		}

		exitCode := raw.ExitCode

		if exitErr, ok := stderrors.AsType[*exec.ExitError](waitErr); ok {
			exitCode = exitErr.ExitCode()
		}

		t.log.Error("CLI process exited with error", "exit_code", exitCode, "stderr", raw.Stderr)

		return nil, &errors.ProcessError{
			ExitCode: exitCode,
			Stderr:   raw.Stderr,
			Err:      waitErr,
		}
	}

	t.log.Info("CLI process exited successfully", "duration", duration)

	return raw, nil
}

// Close terminates a still-running CLI process and marks the transport done.
// Safe to call multiple times and on all exit paths.
func (t *CLITransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.closed = true

	if t.cmd != nil && t.cmd.Process != nil {
		t.log.Debug("Killing CLI process", "pid", t.cmd.Process.Pid)

		if err := t.cmd.Process.Kill(); err != nil && !stderrors.Is(err, os.ErrProcessDone) {
			return fmt.Errorf("kill CLI process (pid %d): %w", t.cmd.Process.Pid, err)
		}
	}

	return nil
}
