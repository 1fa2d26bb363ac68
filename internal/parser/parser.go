package parser

import (
	"context"
	"log/slog"

	"github.com/oneryalcin/gemini-cli-sdk/internal/cli"
	"github.com/oneryalcin/gemini-cli-sdk/internal/config"
	"github.com/oneryalcin/gemini-cli-sdk/internal/message"
)

// Strategy names reported by Name() and carried in the init system message.
const (
	NameLLM  = "llm"
	NameJSON = "json"
)

// Strategy converts raw CLI output into an ordered sequence of messages.
//
// Implementations must be pure with respect to the raw output: the same
// RawOutput and configuration produce the same message sequence (modulo
// backend nondeterminism in the LLM-assisted variant).
type Strategy interface {
	// Parse converts one execution's raw output into messages.
	Parse(ctx context.Context, raw *config.RawOutput) ([]message.Message, error)

	// Name identifies the variant for logging and the init message.
	Name() string
}

// Compile-time verification that both variants implement Strategy.
var (
	_ Strategy = (*LLMParser)(nil)
	_ Strategy = (*JSONParser)(nil)
)

// Select picks the parser strategy for a query.
//
// An explicit Options.Parser setting always wins. In auto mode the CLI is
// probed for native JSON output support; the structured variant is used when
// the probe succeeds, the LLM-assisted variant otherwise. cliPath may be
// empty (injected transports), which skips the probe.
//
// Selection is deterministic given identical options and probe results.
func Select(
	ctx context.Context,
	log *slog.Logger,
	options *config.Options,
	backend Backend,
	sessionID string,
	cliPath string,
) Strategy {
	log = log.With("component", "parser_select")

	switch options.Parser {
	case config.ParserModeJSON:
		log.Debug("Using structured parser (explicit)")

		return NewJSONParser(log)

	case config.ParserModeLLM:
		log.Debug("Using LLM-assisted parser (explicit)")

		return NewLLMParser(log, backend, sessionID)
	}

	if cliPath != "" && cli.SupportsJSONOutput(ctx, log, cliPath) {
		log.Debug("Using structured parser (probe)")

		return NewJSONParser(log)
	}

	log.Debug("Using LLM-assisted parser (default)")

	return NewLLMParser(log, backend, sessionID)
}
