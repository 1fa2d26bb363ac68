package errors

import (
	"errors"
	"fmt"
)

// GeminiSDKError is the base interface for all SDK errors.
type GeminiSDKError interface {
	error
	IsGeminiSDKError() bool
}

// Compile-time verification that all error types implement GeminiSDKError.
var (
	_ GeminiSDKError = (*CLINotFoundError)(nil)
	_ GeminiSDKError = (*CLIConnectionError)(nil)
	_ GeminiSDKError = (*ProcessError)(nil)
	_ GeminiSDKError = (*CLIJSONDecodeError)(nil)
	_ GeminiSDKError = (*ConfigurationError)(nil)
	_ GeminiSDKError = (*ParsingError)(nil)
)

// Sentinel errors for commonly checked conditions.
var (
	// ErrEmptyPrompt indicates Query was called with an empty prompt.
	ErrEmptyPrompt = errors.New("prompt must not be empty")

	// ErrAlreadyConnected indicates Connect was called on a connected transport.
	ErrAlreadyConnected = errors.New("transport already connected")

	// ErrTransportNotConnected indicates Execute was called before Connect.
	ErrTransportNotConnected = errors.New("transport not connected")

	// ErrUnknownMessageType indicates the message type is not recognized by the SDK.
	// Callers should skip these messages rather than treating them as fatal.
	ErrUnknownMessageType = errors.New("unknown message type")
)

// CLINotFoundError indicates the Gemini CLI binary was not found.
type CLINotFoundError struct {
	SearchedPaths []string
}

func (e *CLINotFoundError) Error() string {
	return fmt.Sprintf("gemini CLI not found in: %v", e.SearchedPaths)
}

// IsGeminiSDKError implements GeminiSDKError.
func (e *CLINotFoundError) IsGeminiSDKError() bool { return true }

// CLIConnectionError indicates transport lifecycle misuse or a failure to
// launch the CLI process.
type CLIConnectionError struct {
	Err error
}

func (e *CLIConnectionError) Error() string {
	return fmt.Sprintf("failed to connect to CLI: %v", e.Err)
}

func (e *CLIConnectionError) Unwrap() error {
	return e.Err
}

// IsGeminiSDKError implements GeminiSDKError.
func (e *CLIConnectionError) IsGeminiSDKError() bool { return true }

// ProcessError indicates the CLI process failed. It carries the exit code and
// captured stderr so callers can decide whether to retry or report.
type ProcessError struct {
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ProcessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("CLI process failed (exit %d): %v", e.ExitCode, e.Err)
	}

	return fmt.Sprintf("CLI process failed (exit %d): %s", e.ExitCode, e.Stderr)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

// IsGeminiSDKError implements GeminiSDKError.
func (e *ProcessError) IsGeminiSDKError() bool { return true }

// CLIJSONDecodeError indicates the structured CLI output was undecodable as a
// whole. RawData holds an excerpt of the offending payload.
type CLIJSONDecodeError struct {
	RawData string
	Err     error
}

func (e *CLIJSONDecodeError) Error() string {
	return fmt.Sprintf("failed to decode JSON from CLI: %v", e.Err)
}

func (e *CLIJSONDecodeError) Unwrap() error {
	return e.Err
}

// IsGeminiSDKError implements GeminiSDKError.
func (e *CLIJSONDecodeError) IsGeminiSDKError() bool { return true }

// ConfigurationError indicates required configuration is missing, such as the
// API key for the parsing backend.
type ConfigurationError struct {
	Message string
	Missing string
}

func (e *ConfigurationError) Error() string {
	if e.Missing != "" {
		return fmt.Sprintf("%s (missing: %s)", e.Message, e.Missing)
	}

	return e.Message
}

// IsGeminiSDKError implements GeminiSDKError.
func (e *ConfigurationError) IsGeminiSDKError() bool { return true }

// ParsingError indicates the parsing backend failed to impose structure on the
// CLI output. The LLM-assisted parser absorbs this error and degrades to the
// verbatim-text fallback; it is exported for callers that drive a Backend
// directly.
type ParsingError struct {
	RawOutput string
	Err       error
}

func (e *ParsingError) Error() string {
	return fmt.Sprintf("failed to parse CLI output: %v", e.Err)
}

func (e *ParsingError) Unwrap() error {
	return e.Err
}

// IsGeminiSDKError implements GeminiSDKError.
func (e *ParsingError) IsGeminiSDKError() bool { return true }
