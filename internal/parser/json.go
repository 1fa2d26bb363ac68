package parser

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/oneryalcin/gemini-cli-sdk/internal/config"
	sdkerrors "github.com/oneryalcin/gemini-cli-sdk/internal/errors"
	"github.com/oneryalcin/gemini-cli-sdk/internal/message"
)

// rawExcerptLimit caps how much raw output is attached to a decode error.
const rawExcerptLimit = 1024

// JSONParser is the structured parser variant for Gemini CLI versions that
// support --output-format json. It decodes newline-delimited JSON documents,
// skipping lines that are not valid JSON objects (the CLI still interleaves
// free-text diagnostics with structured output).
type JSONParser struct {
	log *slog.Logger
}

// NewJSONParser creates the structured-output parser.
func NewJSONParser(log *slog.Logger) *JSONParser {
	return &JSONParser{log: log.With("component", "json_parser")}
}

// Name implements Strategy.
func (p *JSONParser) Name() string { return NameJSON }

// Parse decodes newline-delimited JSON from raw stdout. A line that fails to
// decode or carries an unrecognized type is skipped; if no line in a
// non-empty payload decodes, the whole payload is reported as a
// CLIJSONDecodeError.
func (p *JSONParser) Parse(_ context.Context, raw *config.RawOutput) ([]message.Message, error) {
	trimmed := strings.TrimSpace(raw.Stdout)
	if trimmed == "" {
		return []message.Message{}, nil
	}

	var (
		messages []message.Message
		lastErr  error
	)

	for line := range strings.SplitSeq(trimmed, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		msg, err := p.parseLine(line)
		if err != nil {
			p.log.Debug("Skipping undecodable line", "error", err)

			lastErr = err

			continue
		}

		if msg != nil {
			messages = append(messages, msg)
		}
	}

	if len(messages) == 0 && lastErr != nil {
		return nil, &sdkerrors.CLIJSONDecodeError{RawData: excerpt(trimmed), Err: lastErr}
	}

	return messages, nil
}

// parseLine decodes a single NDJSON line. Documents without a "type" field
// are handled as the CLI's single-document {"response": ...} form.
func (p *JSONParser) parseLine(line string) (message.Message, error) {
	var data map[string]any
	if err := json.Unmarshal([]byte(line), &data); err != nil {
		return nil, &sdkerrors.CLIJSONDecodeError{RawData: excerpt(line), Err: err}
	}

	if _, ok := data["type"].(string); !ok {
		if response, ok := data["response"].(string); ok {
			return &message.AssistantMessage{
				Type:    message.TypeAssistant,
				Content: []message.ContentBlock{message.NewTextBlock(response)},
			}, nil
		}

		return nil, &sdkerrors.CLIJSONDecodeError{
			RawData: excerpt(line),
			Err:     sdkerrors.ErrUnknownMessageType,
		}
	}

	msg, err := message.Parse(p.log, data)
	if err != nil {
		return nil, err
	}

	return msg, nil
}

func excerpt(raw string) string {
	if len(raw) > rawExcerptLimit {
		return raw[:rawExcerptLimit]
	}

	return raw
}
