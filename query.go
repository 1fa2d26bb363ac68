package geminisdk

import (
	"context"
	"iter"
	"log/slog"
	"strings"

	"github.com/oklog/ulid/v2"

	"github.com/oneryalcin/gemini-cli-sdk/internal/config"
	sdkerrors "github.com/oneryalcin/gemini-cli-sdk/internal/errors"
	"github.com/oneryalcin/gemini-cli-sdk/internal/message"
	"github.com/oneryalcin/gemini-cli-sdk/internal/parser"
	"github.com/oneryalcin/gemini-cli-sdk/internal/subprocess"
)

// newSessionID creates the identifier attached to all messages of one query.
// ULIDs sort by creation time, which keeps interleaved logs readable.
func newSessionID() string {
	return ulid.Make().String()
}

// resolveBackend resolves the extraction backend for the LLM-assisted parser.
//
// An injected backend wins. Otherwise the OpenAI-compatible backend is built
// from options and environment; if no API key is configured the backend is
// nil and the LLM-assisted parser degrades to its verbatim fallback.
func resolveBackend(log *slog.Logger, options *GeminiOptions) parser.Backend {
	if options.Backend != nil {
		if backend, ok := options.Backend.(parser.Backend); ok {
			log.Debug("Using injected parsing backend")

			return backend
		}

		log.Warn("Injected backend does not implement ParserBackend, ignoring")

		return nil
	}

	backend, err := parser.NewOpenAIBackend(options)
	if err != nil {
		log.Warn("Parsing backend unavailable, verbatim fallback will be used", "error", err)

		return nil
	}

	return backend
}

// initMessage builds the synthetic system message yielded before any model
// output, mirroring the Claude CLI's init message shape.
func initMessage(options *GeminiOptions, sessionID, parserName, cliPath string) *SystemMessage {
	data := map[string]any{
		"session_id": sessionID,
		"model":      options.Model,
		"parser":     parserName,
		"cwd":        options.Cwd,
	}

	if cliPath != "" {
		data["cli_path"] = cliPath
	}

	return &message.SystemMessage{
		Type:    message.TypeSystem,
		Subtype: "init",
		Data:    data,
	}
}

// Query executes a one-shot query against the Gemini CLI and returns an
// iterator of messages.
//
// By default, logging is disabled. Use WithLogger to enable logging:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
//	for msg, err := range Query(ctx, "What is 2+2?",
//	    WithLogger(logger),
//	    WithYolo(true),
//	) {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    // handle msg
//	}
//
// The sequence always starts with a SystemMessage of subtype "init" carrying
// the resolved configuration, followed by the parsed model output, and ends
// with a ResultMessage. Errors during setup or execution are yielded inline
// as the second value, after which iteration stops. Callers can stop early
// by breaking from the loop; the subprocess is terminated on all exit paths.
//
// No subprocess is spawned until the returned sequence is iterated, and each
// iteration of the sequence is an independent execution.
func Query(
	ctx context.Context,
	prompt string,
	opts ...Option,
) iter.Seq2[Message, error] {
	return func(yield func(Message, error) bool) {
		options := applyOptions(opts)

		log := loggerFor(options).With("component", "query")
		log.Debug("Starting query execution")

		if strings.TrimSpace(prompt) == "" {
			yield(nil, sdkerrors.ErrEmptyPrompt)

			return
		}

		sessionID := newSessionID()
		log = log.With("session_id", sessionID)

		// Create or use injected transport
		var (
			transport    config.Transport
			cliTransport *subprocess.CLITransport
		)

		if options.Transport != nil {
			transport = options.Transport

			log.Debug("Using injected custom transport")
		} else {
			log.Debug("Creating CLI transport")

			cliTransport = subprocess.NewCLITransport(log, options)
			transport = cliTransport
		}

		if err := transport.Connect(ctx); err != nil {
			log.Error("Failed to connect transport", "error", err)
			yield(nil, err)

			return
		}

		defer transport.Close()

		// Parser selection needs the resolved CLI path for the capability
		// probe; injected transports skip the probe.
		cliPath := ""
		if cliTransport != nil {
			cliPath = cliTransport.CliPath()
		}

		backend := resolveBackend(log, options)
		strategy := parser.Select(ctx, log, options, backend, sessionID, cliPath)

		if cliTransport != nil {
			cliTransport.SetNativeJSON(strategy.Name() == parser.NameJSON)
		}

		log.Info("Connected to Gemini CLI", "parser", strategy.Name())

		if !yield(initMessage(options, sessionID, strategy.Name(), cliPath), nil) {
			return
		}

		raw, err := transport.Execute(ctx, prompt)
		if err != nil {
			log.Error("Execution failed", "error", err)
			yield(nil, err)

			return
		}

		log.Debug("Execution complete",
			"exit_code", raw.ExitCode,
			"stdout_bytes", len(raw.Stdout),
			"truncated", raw.Truncated,
		)

		messages, err := strategy.Parse(ctx, raw)
		if err != nil {
			log.Error("Failed to parse CLI output", "error", err)
			yield(nil, err)

			return
		}

		for _, msg := range messages {
			// Structured output may carry its own session id; fill in ours
			// only when absent so every result is attributable.
			if result, ok := msg.(*message.ResultMessage); ok && result.SessionID == "" {
				result.SessionID = sessionID
			}

			if !yield(msg, nil) {
				log.Debug("Yield returned false, stopping iteration")

				return
			}
		}
	}
}
