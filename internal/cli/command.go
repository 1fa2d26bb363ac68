package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/oneryalcin/gemini-cli-sdk/internal/config"
)

// SDKVersion is advertised to the CLI process via the environment.
const SDKVersion = "0.1.0"

// BuildArgs constructs the CLI argument vector from options.
//
// The mapping is deterministic: each set option contributes the same flags in
// the same position. Absent or zero-valued options are omitted entirely so the
// CLI's own defaults stay in effect.
//
// When nativeJSON is true the structured parser is driving the query and the
// CLI is asked for machine-readable output via --output-format json.
func BuildArgs(prompt string, options *config.Options, nativeJSON bool) []string {
	args := make([]string, 0, 16)

	if options.Model != "" {
		args = append(args, "--model", options.Model)
	}

	if options.Sandbox {
		args = append(args, "--sandbox")

		if options.SandboxImage != "" {
			args = append(args, "--sandbox-image", options.SandboxImage)
		}
	}

	if options.Debug {
		args = append(args, "--debug")
	}

	if options.AllFiles {
		args = append(args, "--all-files")
	}

	if options.AutoAccept() {
		args = append(args, "--yolo")
	}

	if options.Checkpointing {
		args = append(args, "--checkpointing")
	}

	if len(options.Extensions) > 0 {
		args = append(args, "--extensions", strings.Join(options.Extensions, ","))
	}

	if options.MaxTurns > 0 {
		args = append(args, "--max-turns", strconv.Itoa(options.MaxTurns))
	}

	if nativeJSON {
		args = append(args, "--output-format", "json")
	}

	// Prompt last, via the documented non-interactive flag.
	args = append(args, "--prompt", prompt)

	return args
}

// BuildEnvironment constructs the environment for the CLI process.
//
// The parent environment is inherited so GEMINI_API_KEY / GOOGLE_API_KEY
// reach the CLI unchanged; options.Env entries are appended last and win.
func BuildEnvironment(options *config.Options) []string {
	env := os.Environ()

	env = append(env,
		"GEMINI_CODE_SDK=go",
		"GEMINI_SDK_VERSION="+SDKVersion,
	)

	if options.SystemPrompt != "" {
		env = append(env, "GEMINI_SYSTEM_MD_CONTENT="+options.SystemPrompt)
	}

	if options.AppendSystemPrompt != "" {
		env = append(env, "GEMINI_SYSTEM_MD_APPEND="+options.AppendSystemPrompt)
	}

	for key, value := range options.Env {
		env = append(env, fmt.Sprintf("%s=%s", key, value))
	}

	return env
}
