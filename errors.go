package geminisdk

import "github.com/oneryalcin/gemini-cli-sdk/internal/errors"

// Re-export error types from internal package

// GeminiSDKError is the base interface for all SDK errors.
type GeminiSDKError = errors.GeminiSDKError

// ClaudeSDKError is a compatibility alias for GeminiSDKError. Code written
// against the Claude SDK's error taxonomy keeps compiling.
type ClaudeSDKError = errors.GeminiSDKError

// CLINotFoundError indicates the Gemini CLI binary was not found.
type CLINotFoundError = errors.CLINotFoundError

// CLIConnectionError indicates transport lifecycle misuse or a failure to
// launch the CLI.
type CLIConnectionError = errors.CLIConnectionError

// ProcessError indicates the CLI process failed.
type ProcessError = errors.ProcessError

// CLIJSONDecodeError indicates JSON parsing failed for CLI output.
type CLIJSONDecodeError = errors.CLIJSONDecodeError

// ConfigurationError indicates required configuration is missing.
type ConfigurationError = errors.ConfigurationError

// ParsingError indicates the parsing backend failed to impose structure on
// the CLI output.
type ParsingError = errors.ParsingError

// Re-export sentinel errors from internal package.
var (
	// ErrEmptyPrompt indicates Query was called with an empty prompt.
	ErrEmptyPrompt = errors.ErrEmptyPrompt

	// ErrAlreadyConnected indicates Connect was called on a connected transport.
	ErrAlreadyConnected = errors.ErrAlreadyConnected

	// ErrTransportNotConnected indicates the transport is not connected.
	ErrTransportNotConnected = errors.ErrTransportNotConnected

	// ErrUnknownMessageType indicates a message type the SDK does not recognize.
	ErrUnknownMessageType = errors.ErrUnknownMessageType
)
