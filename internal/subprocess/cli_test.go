package subprocess

import (
	"context"
	stderrors "errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oneryalcin/gemini-cli-sdk/internal/config"
	"github.com/oneryalcin/gemini-cli-sdk/internal/errors"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeCLI writes an executable shell script posing as the gemini binary and
// returns its path.
func fakeCLI(t *testing.T, body string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("Test requires Unix shell scripts")
	}

	path := filepath.Join(t.TempDir(), "gemini")
	err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755)
	require.NoError(t, err)

	return path
}

func newTestTransport(t *testing.T, body string, mutate func(*config.Options)) *CLITransport {
	t.Helper()

	options := &config.Options{
		CliPath:          fakeCLI(t, body),
		SkipVersionCheck: true,
	}

	if mutate != nil {
		mutate(options)
	}

	return NewCLITransport(discardLogger(), options)
}

func TestExecute_Success(t *testing.T) {
	transport := newTestTransport(t, `echo "4"`+"\n", nil)

	ctx := context.Background()
	require.NoError(t, transport.Connect(ctx))

	defer transport.Close()

	raw, err := transport.Execute(ctx, "What is 2 + 2?")
	require.NoError(t, err)
	require.Equal(t, "4\n", raw.Stdout)
	require.Empty(t, raw.Stderr)
	require.Equal(t, 0, raw.ExitCode)
	require.False(t, raw.Truncated)
	require.Positive(t, raw.Duration)
}

func TestExecute_CapturesStderr(t *testing.T) {
	transport := newTestTransport(t, "echo out\necho warn1 >&2\necho warn2 >&2\n", nil)

	ctx := context.Background()
	require.NoError(t, transport.Connect(ctx))

	defer transport.Close()

	raw, err := transport.Execute(ctx, "p")
	require.NoError(t, err)
	require.Equal(t, "out\n", raw.Stdout)
	require.Equal(t, "warn1\nwarn2", raw.Stderr)
}

func TestExecute_NonZeroExit(t *testing.T) {
	transport := newTestTransport(t, "echo boom >&2\nexit 3\n", nil)

	ctx := context.Background()
	require.NoError(t, transport.Connect(ctx))

	defer transport.Close()

	_, err := transport.Execute(ctx, "p")
	require.Error(t, err)

	procErr, ok := stderrors.AsType[*errors.ProcessError](err)
	require.True(t, ok)
	require.Equal(t, 3, procErr.ExitCode)
	require.Equal(t, "boom", procErr.Stderr)
}

func TestExecute_Timeout(t *testing.T) {
	transport := newTestTransport(t, "sleep 30\n", func(o *config.Options) {
		o.Timeout = 200 * time.Millisecond
	})

	ctx := context.Background()
	require.NoError(t, transport.Connect(ctx))

	defer transport.Close()

	start := time.Now()
	_, err := transport.Execute(ctx, "p")
	elapsed := time.Since(start)

	require.Error(t, err)

	procErr, ok := stderrors.AsType[*errors.ProcessError](err)
	require.True(t, ok)
	require.ErrorIs(t, procErr, context.DeadlineExceeded)

	// Timeout plus the kill grace period bounds the call.
	require.Less(t, elapsed, killGracePeriod+5*time.Second)
}

func TestExecute_ContextCancellation(t *testing.T) {
	transport := newTestTransport(t, "sleep 30\n", nil)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, transport.Connect(ctx))

	defer transport.Close()

	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()

	_, err := transport.Execute(ctx, "p")
	require.Error(t, err)

	procErr, ok := stderrors.AsType[*errors.ProcessError](err)
	require.True(t, ok)
	require.ErrorIs(t, procErr, context.Canceled)
}

func TestExecute_BeforeConnect(t *testing.T) {
	transport := newTestTransport(t, "echo hi\n", nil)

	_, err := transport.Execute(context.Background(), "p")
	require.Error(t, err)

	_, ok := stderrors.AsType[*errors.CLIConnectionError](err)
	require.True(t, ok)
	require.ErrorIs(t, err, errors.ErrTransportNotConnected)
}

func TestConnect_Twice(t *testing.T) {
	transport := newTestTransport(t, "echo hi\n", nil)

	ctx := context.Background()
	require.NoError(t, transport.Connect(ctx))

	err := transport.Connect(ctx)
	require.Error(t, err)
	require.ErrorIs(t, err, errors.ErrAlreadyConnected)
}

func TestConnect_CLINotFound(t *testing.T) {
	transport := NewCLITransport(discardLogger(), &config.Options{
		CliPath: "/nonexistent/path/to/gemini",
	})

	err := transport.Connect(context.Background())
	require.Error(t, err)

	_, ok := stderrors.AsType[*errors.CLINotFoundError](err)
	require.True(t, ok)
}

func TestExecute_NativeJSONFlag(t *testing.T) {
	// The script echoes its arguments so the test can assert flag presence.
	transport := newTestTransport(t, `echo "$@"`+"\n", nil)

	ctx := context.Background()
	require.NoError(t, transport.Connect(ctx))

	defer transport.Close()

	transport.SetNativeJSON(true)

	raw, err := transport.Execute(ctx, "p")
	require.NoError(t, err)
	require.Contains(t, raw.Stdout, "--output-format json")
}

func TestExecute_Cwd(t *testing.T) {
	dir := t.TempDir()

	transport := newTestTransport(t, "pwd\n", func(o *config.Options) {
		o.Cwd = dir
	})

	ctx := context.Background()
	require.NoError(t, transport.Connect(ctx))

	defer transport.Close()

	raw, err := transport.Execute(ctx, "p")
	require.NoError(t, err)

	// Resolve symlinks before comparing; macOS tempdirs live under /private.
	got, err := filepath.EvalSymlinks(strings.TrimSpace(raw.Stdout))
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)

	require.Equal(t, want, got)
}

func TestExecute_StderrCallback(t *testing.T) {
	var lines []string

	transport := newTestTransport(t, "echo a >&2\necho b >&2\n", func(o *config.Options) {
		o.Stderr = func(line string) {
			lines = append(lines, line)
		}
	})

	ctx := context.Background()
	require.NoError(t, transport.Connect(ctx))

	defer transport.Close()

	_, err := transport.Execute(ctx, "p")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, lines)
}

func TestExecute_TruncatesOversizedStdout(t *testing.T) {
	// Emit ~12MB of zeros, beyond the 10MB stdout cap.
	transport := newTestTransport(t, "head -c 12582912 /dev/zero\n", nil)

	ctx := context.Background()
	require.NoError(t, transport.Connect(ctx))

	defer transport.Close()

	raw, err := transport.Execute(ctx, "p")
	require.NoError(t, err)
	require.True(t, raw.Truncated)
	require.Len(t, raw.Stdout, maxStdoutBufferSize)
}

func TestClose_Idempotent(t *testing.T) {
	transport := newTestTransport(t, "echo hi\n", nil)

	require.NoError(t, transport.Close())
	require.NoError(t, transport.Close())
}
