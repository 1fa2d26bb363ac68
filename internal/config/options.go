// Package config provides configuration types for the Gemini SDK.
package config

import (
	"log/slog"
	"os"
	"time"
)

// Default model identifiers. Overridable via environment at option-apply time.
const (
	// DefaultModel is the Gemini model used when none is configured.
	DefaultModel = "gemini-2.5-pro"

	// DefaultParserModel is the model used by the LLM-assisted parsing backend.
	DefaultParserModel = "gemini-2.5-flash-lite"
)

// ParserMode selects the parser strategy variant.
type ParserMode string

const (
	// ParserModeAuto probes the CLI for native JSON output support and picks
	// the structured variant when available, the LLM-assisted variant otherwise.
	ParserModeAuto ParserMode = "auto"
	// ParserModeLLM forces the LLM-assisted (pattern) variant.
	ParserModeLLM ParserMode = "llm"
	// ParserModeJSON forces the structured/native variant.
	ParserModeJSON ParserMode = "json"
)

// PermissionMode values accepted for Claude SDK compatibility.
const (
	PermissionModeDefault           = "default"
	PermissionModeAcceptEdits       = "acceptEdits"
	PermissionModeBypassPermissions = "bypassPermissions"
)

// Options configures the behavior of a Gemini query.
//
// Options is treated as immutable once applied: Query snapshots it before the
// first message is yielded and neither Transport nor parser mutate it.
type Options struct {
	// Logger is the slog logger for debug output.
	// If nil, logging is disabled (silent operation).
	Logger *slog.Logger

	// Model specifies which Gemini model to use (e.g., "gemini-2.5-pro").
	// Empty means the CLI's own default model.
	Model string

	// SystemPrompt is the system message to send to Gemini.
	SystemPrompt string

	// AppendSystemPrompt is appended to the CLI's default system prompt
	// instead of replacing it.
	AppendSystemPrompt string

	// Sandbox runs the CLI in sandbox mode.
	Sandbox bool

	// SandboxImage overrides the sandbox container image.
	SandboxImage string

	// Debug enables the CLI's own debug output.
	Debug bool

	// AllFiles includes all files in the working directory as context.
	AllFiles bool

	// Yolo auto-accepts all actions proposed by the CLI.
	Yolo bool

	// PermissionMode is the Claude-compatible permission setting.
	// "acceptEdits" and "bypassPermissions" are normalized onto Yolo.
	PermissionMode string

	// Checkpointing enables file change checkpointing.
	Checkpointing bool

	// Extensions is the list of CLI extension identifiers to enable.
	Extensions []string

	// MaxTurns limits the number of agent turns. Zero means no limit flag.
	MaxTurns int

	// Cwd sets the working directory for the CLI process.
	Cwd string

	// CliPath is the explicit path to the gemini CLI binary.
	// If empty, the CLI will be searched in PATH and common locations.
	CliPath string

	// Env provides additional environment variables for the CLI process.
	Env map[string]string

	// Timeout bounds a single Execute call. Zero means no timeout.
	Timeout time.Duration

	// Parser selects the parser strategy variant.
	Parser ParserMode

	// ParserModel is the model used by the LLM-assisted parsing backend.
	ParserModel string

	// ParserBaseURL overrides the parsing backend endpoint. Useful for
	// OpenAI-compatible endpoints, including Gemini's.
	ParserBaseURL string

	// Stderr is a callback invoked per line of CLI stderr output.
	Stderr func(string)

	// SkipVersionCheck skips the CLI version check during discovery.
	SkipVersionCheck bool

	// Transport allows injecting a custom transport implementation.
	// If nil, the default CLI subprocess transport is created automatically.
	Transport Transport `json:"-"`

	// Backend allows injecting a custom parsing backend.
	// If nil, the OpenAI-compatible backend is constructed from environment
	// configuration.
	Backend any `json:"-"`
}

// AutoAccept reports whether the CLI should run with auto-accept, combining
// the native Yolo flag with the Claude-compatible permission mode.
func (o *Options) AutoAccept() bool {
	if o.Yolo {
		return true
	}

	switch NormalizePermissionMode(o.PermissionMode) {
	case PermissionModeAcceptEdits, PermissionModeBypassPermissions:
		return true
	default:
		return false
	}
}

// NormalizePermissionMode maps legacy permission mode names to current values.
//
// Legacy mappings:
//   - "acceptAll" -> "bypassPermissions"
//   - "prompt" -> "default"
func NormalizePermissionMode(mode string) string {
	switch mode {
	case "acceptAll":
		return PermissionModeBypassPermissions
	case "prompt":
		return PermissionModeDefault
	default:
		return mode
	}
}

// ResolveFromEnv fills environment-derived defaults that were not set
// explicitly. Called once at option-apply time; never re-read mid-query.
func (o *Options) ResolveFromEnv() {
	if o.Model == "" {
		o.Model = os.Getenv("GEMINI_MODEL")
	}

	if o.ParserModel == "" {
		o.ParserModel = os.Getenv("GEMINI_PARSER_MODEL")
	}

	if o.ParserModel == "" {
		o.ParserModel = DefaultParserModel
	}

	if o.Parser == "" {
		o.Parser = ParserModeAuto
	}
}
