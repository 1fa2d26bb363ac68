package parser

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/oneryalcin/gemini-cli-sdk/internal/config"
	"github.com/oneryalcin/gemini-cli-sdk/internal/message"
)

// simpleResponseMaxLen bounds the single-line shortcut that skips the backend.
const simpleResponseMaxLen = 100

// boilerplatePrefixes are informational lines the Gemini CLI mixes into its
// output; they are stripped before parsing.
var boilerplatePrefixes = []string{
	"Both GOOGLE_API_KEY and GEMINI_API_KEY are set",
	"Using GOOGLE_API_KEY",
	"Using GEMINI_API_KEY",
	"Today's date is",
	"My operating system is:",
	"I'm currently working in the directory:",
	"Showing up to",
	"This is the Gemini CLI",
	"We are setting up the context",
}

var arithmeticPattern = regexp.MustCompile(`^[\d\s\+\-\*\/\=\.\,]+$`)

// LLMParser is the pattern/LLM-assisted parser variant. It asks a structured
// extraction backend to segment the raw text into role-tagged blocks.
//
// LLMParser is total: Parse never returns a non-nil error. Backend failures
// of any kind degrade to a verbatim-text fallback so callers always receive
// at least one assistant message per successful execution. This is a
// deliberate availability/fidelity tradeoff.
type LLMParser struct {
	log       *slog.Logger
	backend   Backend // nil when no backend is configured
	sessionID string
}

// NewLLMParser creates the LLM-assisted parser. backend may be nil, in which
// case every parse takes the fallback path.
func NewLLMParser(log *slog.Logger, backend Backend, sessionID string) *LLMParser {
	return &LLMParser{
		log:       log.With("component", "llm_parser"),
		backend:   backend,
		sessionID: sessionID,
	}
}

// Name implements Strategy.
func (p *LLMParser) Name() string { return NameLLM }

// Parse converts raw output into messages via the extraction backend.
func (p *LLMParser) Parse(ctx context.Context, raw *config.RawOutput) ([]message.Message, error) {
	cleaned := cleanOutput(raw.Stdout)

	if strings.TrimSpace(cleaned) == "" {
		p.log.Debug("Empty output after cleaning")

		return []message.Message{}, nil
	}

	if isSimpleResponse(cleaned) {
		p.log.Debug("Simple response shortcut, skipping backend")

		trimmed := strings.TrimSpace(cleaned)

		return []message.Message{
			&message.AssistantMessage{
				Type:    message.TypeAssistant,
				Content: []message.ContentBlock{message.NewTextBlock(trimmed)},
			},
			p.resultMessage(raw, message.ResultSubtypeSuccess, false, nil),
		}, nil
	}

	if p.backend == nil {
		p.log.Warn("No parsing backend configured, using verbatim fallback")

		return p.fallback(raw, cleaned), nil
	}

	parsed, err := p.backend.Extract(ctx, cleaned, raw.Stderr)
	if err != nil {
		p.log.Error("Backend extraction failed, using verbatim fallback", "error", err)

		return p.fallback(raw, cleaned), nil
	}

	blocks := make([]message.ContentBlock, 0, len(parsed.Contents))

	for _, item := range parsed.Contents {
		switch item.Type {
		case "text":
			blocks = append(blocks, message.NewTextBlock(item.Content))
		case "code":
			blocks = append(blocks, message.NewCodeBlock(item.Content, item.Language))
		case "error":
			blocks = append(blocks, message.NewTextBlock("Error: "+item.Content))
		default:
			p.log.Debug("Skipping unknown parsed content type", "content_type", item.Type)
		}
	}

	messages := make([]message.Message, 0, 2)

	if len(blocks) > 0 {
		messages = append(messages, &message.AssistantMessage{
			Type:    message.TypeAssistant,
			Content: blocks,
		})
	}

	subtype := message.ResultSubtypeSuccess

	var result *string

	if parsed.HasError {
		subtype = message.ResultSubtypeError
	} else if parsed.Summary != "" {
		summary := parsed.Summary
		result = &summary
	}

	messages = append(messages, p.resultMessage(raw, subtype, parsed.HasError, result))

	return messages, nil
}

// fallback produces the degrade-not-fail result: the verbatim cleaned text as
// a single text block, and a result message whose error flag reflects the
// subprocess outcome rather than the backend failure.
func (p *LLMParser) fallback(raw *config.RawOutput, cleaned string) []message.Message {
	isError := raw.Stderr != "" || raw.ExitCode != 0

	return []message.Message{
		&message.AssistantMessage{
			Type:    message.TypeAssistant,
			Content: []message.ContentBlock{message.NewTextBlock(cleaned)},
		},
		p.resultMessage(raw, message.ResultSubtypeParsingFallback, isError, nil),
	}
}

func (p *LLMParser) resultMessage(
	raw *config.RawOutput,
	subtype string,
	isError bool,
	result *string,
) *message.ResultMessage {
	return &message.ResultMessage{
		Type:       message.TypeResult,
		Subtype:    subtype,
		DurationMs: int(raw.Duration.Milliseconds()),
		IsError:    isError,
		SessionID:  p.sessionID,
		NumTurns:   1,
		Result:     result,
	}
}

// cleanOutput removes Gemini CLI boilerplate lines from raw stdout.
func cleanOutput(output string) string {
	var cleaned []string

	for line := range strings.SplitSeq(strings.TrimSpace(output), "\n") {
		skip := false

		for _, prefix := range boilerplatePrefixes {
			if strings.Contains(line, prefix) {
				skip = true

				break
			}
		}

		if !skip {
			cleaned = append(cleaned, line)
		}
	}

	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}

// isSimpleResponse reports whether the output is trivial enough to skip the
// backend round-trip: a short single line without code fences, or a bare
// arithmetic result.
func isSimpleResponse(text string) bool {
	if !strings.Contains(text, "\n") &&
		!strings.Contains(text, "```") &&
		len(text) < simpleResponseMaxLen {
		return true
	}

	return arithmeticPattern.MatchString(strings.TrimSpace(text))
}
