package config

import (
	"context"
	"time"
)

// Transport defines the interface for Gemini CLI execution. Implement this to
// provide custom transports for testing, mocking, or alternative execution
// methods (e.g., remote runners).
//
// The default implementation spawns the gemini CLI as a subprocess.
// Custom transports can be injected via Options.Transport.
type Transport interface {
	// Connect acquires an execution-ready state: it locates the CLI binary
	// and validates it. Connect must be called exactly once before Execute;
	// a second call is a lifecycle error.
	Connect(ctx context.Context) error

	// Execute runs the CLI non-interactively with the given prompt, waits
	// for completion or timeout, and returns the captured output.
	// Calling Execute before Connect is a lifecycle error.
	Execute(ctx context.Context, prompt string) (*RawOutput, error)

	// Close releases held resources and terminates a still-running process.
	// It is safe to call Close multiple times and on all exit paths.
	Close() error
}

// RawOutput is the captured result of one subprocess execution. It is created
// once per execution and never mutated after Execute returns.
type RawOutput struct {
	// Stdout is the captured standard output, capped at the transport's
	// buffer limit.
	Stdout string

	// Stderr is the captured standard error, capped the same way.
	Stderr string

	// ExitCode is the subprocess exit code. Zero on success.
	ExitCode int

	// Truncated reports that stdout exceeded the buffer limit and the
	// overflow was dropped.
	Truncated bool

	// Duration is the wall-clock time of the execution.
	Duration time.Duration
}
