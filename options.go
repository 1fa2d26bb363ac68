package geminisdk

import (
	"log/slog"
	"time"

	"github.com/oneryalcin/gemini-cli-sdk/internal/config"
)

// GeminiOptions configures the behavior of a query. It is usually built via
// the functional Option values rather than constructed directly.
type GeminiOptions = config.Options

// ClaudeCodeOptions is a compatibility alias for GeminiOptions. Code written
// against the Claude SDK keeps compiling.
type ClaudeCodeOptions = config.Options

// ParserMode selects the parser strategy variant.
type ParserMode = config.ParserMode

// Parser mode constants.
const (
	// ParserModeAuto probes the CLI and picks the structured variant when it
	// supports native JSON output, the LLM-assisted variant otherwise.
	ParserModeAuto = config.ParserModeAuto
	// ParserModeLLM forces the LLM-assisted (pattern) variant.
	ParserModeLLM = config.ParserModeLLM
	// ParserModeJSON forces the structured/native variant.
	ParserModeJSON = config.ParserModeJSON
)

// Permission modes accepted for Claude SDK compatibility.
const (
	PermissionModeDefault           = config.PermissionModeDefault
	PermissionModeAcceptEdits       = config.PermissionModeAcceptEdits
	PermissionModeBypassPermissions = config.PermissionModeBypassPermissions
)

// Option configures GeminiOptions using the functional options pattern.
// This is the primary option type for configuring queries.
type Option func(*GeminiOptions)

// applyOptions applies functional options and resolves environment defaults.
func applyOptions(opts []Option) *GeminiOptions {
	options := &GeminiOptions{}
	for _, opt := range opts {
		opt(options)
	}

	options.ResolveFromEnv()

	return options
}

// ===== Basic Configuration =====

// WithLogger sets the logger for debug output.
// If not set, logging is disabled (silent operation).
func WithLogger(logger *slog.Logger) Option {
	return func(o *GeminiOptions) {
		o.Logger = logger
	}
}

// WithModel specifies which Gemini model to use (e.g., "gemini-2.5-pro").
func WithModel(model string) Option {
	return func(o *GeminiOptions) {
		o.Model = model
	}
}

// WithSystemPrompt sets the system message, replacing the CLI's default.
func WithSystemPrompt(prompt string) Option {
	return func(o *GeminiOptions) {
		o.SystemPrompt = prompt
	}
}

// WithAppendSystemPrompt appends to the CLI's default system prompt instead
// of replacing it.
func WithAppendSystemPrompt(prompt string) Option {
	return func(o *GeminiOptions) {
		o.AppendSystemPrompt = prompt
	}
}

// WithCwd sets the working directory for the CLI process.
func WithCwd(cwd string) Option {
	return func(o *GeminiOptions) {
		o.Cwd = cwd
	}
}

// WithCliPath sets the explicit path to the gemini CLI binary.
// If not set, the CLI will be searched in PATH and common install locations.
func WithCliPath(path string) Option {
	return func(o *GeminiOptions) {
		o.CliPath = path
	}
}

// WithEnv provides additional environment variables for the CLI process.
func WithEnv(env map[string]string) Option {
	return func(o *GeminiOptions) {
		o.Env = env
	}
}

// WithTimeout bounds a single query execution. Zero means no timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *GeminiOptions) {
		o.Timeout = timeout
	}
}

// ===== CLI Behavior =====

// WithSandbox runs the CLI in sandbox mode.
func WithSandbox(sandbox bool) Option {
	return func(o *GeminiOptions) {
		o.Sandbox = sandbox
	}
}

// WithSandboxImage overrides the sandbox container image.
func WithSandboxImage(image string) Option {
	return func(o *GeminiOptions) {
		o.SandboxImage = image
	}
}

// WithDebug enables the CLI's own debug output.
func WithDebug(debug bool) Option {
	return func(o *GeminiOptions) {
		o.Debug = debug
	}
}

// WithAllFiles includes all files in the working directory as context.
func WithAllFiles(allFiles bool) Option {
	return func(o *GeminiOptions) {
		o.AllFiles = allFiles
	}
}

// WithYolo auto-accepts all actions proposed by the CLI.
func WithYolo(yolo bool) Option {
	return func(o *GeminiOptions) {
		o.Yolo = yolo
	}
}

// WithPermissionMode controls how permissions are handled, Claude-SDK style.
// "acceptEdits" and "bypassPermissions" map onto the CLI's auto-accept mode;
// the legacy "acceptAll" and "prompt" names are normalized.
func WithPermissionMode(mode string) Option {
	return func(o *GeminiOptions) {
		o.PermissionMode = mode
	}
}

// WithCheckpointing enables file change checkpointing.
func WithCheckpointing(checkpointing bool) Option {
	return func(o *GeminiOptions) {
		o.Checkpointing = checkpointing
	}
}

// WithExtensions enables the given CLI extensions.
func WithExtensions(extensions ...string) Option {
	return func(o *GeminiOptions) {
		o.Extensions = extensions
	}
}

// WithMaxTurns limits the maximum number of agent turns.
func WithMaxTurns(maxTurns int) Option {
	return func(o *GeminiOptions) {
		o.MaxTurns = maxTurns
	}
}

// WithSkipVersionCheck skips the CLI version check during discovery.
func WithSkipVersionCheck(skip bool) Option {
	return func(o *GeminiOptions) {
		o.SkipVersionCheck = skip
	}
}

// ===== Parsing =====

// WithParser selects the parser strategy variant.
func WithParser(mode ParserMode) Option {
	return func(o *GeminiOptions) {
		o.Parser = mode
	}
}

// WithParserModel sets the model used by the LLM-assisted parsing backend.
func WithParserModel(model string) Option {
	return func(o *GeminiOptions) {
		o.ParserModel = model
	}
}

// WithParserBaseURL overrides the parsing backend endpoint. Useful for
// OpenAI-compatible endpoints, including Gemini's.
func WithParserBaseURL(baseURL string) Option {
	return func(o *GeminiOptions) {
		o.ParserBaseURL = baseURL
	}
}

// WithBackend injects a custom parsing backend for the LLM-assisted parser.
// The value must implement ParserBackend.
func WithBackend(backend ParserBackend) Option {
	return func(o *GeminiOptions) {
		o.Backend = backend
	}
}

// ===== Advanced =====

// WithStderr sets a callback invoked per line of CLI stderr output.
func WithStderr(handler func(string)) Option {
	return func(o *GeminiOptions) {
		o.Stderr = handler
	}
}

// WithTransport injects a custom transport implementation.
// The transport must implement the Transport interface.
func WithTransport(transport Transport) Option {
	return func(o *GeminiOptions) {
		o.Transport = transport
	}
}
