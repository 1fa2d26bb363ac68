package parser

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oneryalcin/gemini-cli-sdk/internal/config"
	"github.com/oneryalcin/gemini-cli-sdk/internal/message"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubBackend returns a canned response or error and records invocations.
type stubBackend struct {
	response *ParsedResponse
	err      error
	calls    int
}

func (b *stubBackend) Extract(_ context.Context, _, _ string) (*ParsedResponse, error) {
	b.calls++

	if b.err != nil {
		return nil, b.err
	}

	return b.response, nil
}

func rawOutput(stdout, stderr string, exitCode int) *config.RawOutput {
	return &config.RawOutput{
		Stdout:   stdout,
		Stderr:   stderr,
		ExitCode: exitCode,
		Duration: 250 * time.Millisecond,
	}
}

func TestLLMParserSimpleResponse(t *testing.T) {
	backend := &stubBackend{}
	p := NewLLMParser(discardLogger(), backend, "session-1")

	messages, err := p.Parse(context.Background(), rawOutput("4\n", "", 0))
	require.NoError(t, err)
	require.Len(t, messages, 2)

	assistant, ok := messages[0].(*message.AssistantMessage)
	require.True(t, ok)
	require.Len(t, assistant.Content, 1)

	text, ok := assistant.Content[0].(*message.TextBlock)
	require.True(t, ok)
	require.Equal(t, "4", text.Text)

	result, ok := messages[1].(*message.ResultMessage)
	require.True(t, ok)
	require.Equal(t, message.ResultSubtypeSuccess, result.Subtype)
	require.False(t, result.IsError)
	require.Equal(t, "session-1", result.SessionID)
	require.Equal(t, 250, result.DurationMs)

	// Simple responses never reach the backend.
	require.Zero(t, backend.calls)
}

func TestLLMParserEmptyOutput(t *testing.T) {
	p := NewLLMParser(discardLogger(), &stubBackend{}, "session-1")

	messages, err := p.Parse(context.Background(), rawOutput("   \n  ", "", 0))
	require.NoError(t, err)
	require.Empty(t, messages)
}

func TestLLMParserStripsBoilerplate(t *testing.T) {
	stdout := "Using GEMINI_API_KEY\nToday's date is Friday\n4\n"
	p := NewLLMParser(discardLogger(), &stubBackend{}, "session-1")

	messages, err := p.Parse(context.Background(), rawOutput(stdout, "", 0))
	require.NoError(t, err)
	require.Len(t, messages, 2)

	assistant, ok := messages[0].(*message.AssistantMessage)
	require.True(t, ok)

	text, ok := assistant.Content[0].(*message.TextBlock)
	require.True(t, ok)
	require.Equal(t, "4", text.Text)
}

func TestLLMParserBackendExtraction(t *testing.T) {
	backend := &stubBackend{
		response: &ParsedResponse{
			Contents: []ParsedContent{
				{Type: "text", Content: "Here is a function:"},
				{Type: "code", Content: "func add(a, b int) int { return a + b }", Language: "go"},
			},
			HasCode: true,
			Summary: "Defines an add function",
		},
	}

	stdout := "Here is a function:\n```go\nfunc add(a, b int) int { return a + b }\n```\n"
	p := NewLLMParser(discardLogger(), backend, "session-2")

	messages, err := p.Parse(context.Background(), rawOutput(stdout, "", 0))
	require.NoError(t, err)
	require.Equal(t, 1, backend.calls)
	require.Len(t, messages, 2)

	assistant, ok := messages[0].(*message.AssistantMessage)
	require.True(t, ok)
	require.Len(t, assistant.Content, 2)

	code, ok := assistant.Content[1].(*message.CodeBlock)
	require.True(t, ok)
	require.Equal(t, "go", code.Language)

	result, ok := messages[1].(*message.ResultMessage)
	require.True(t, ok)
	require.Equal(t, message.ResultSubtypeSuccess, result.Subtype)
	require.NotNil(t, result.Result)
	require.Equal(t, "Defines an add function", *result.Result)
}

func TestLLMParserBackendErrorContent(t *testing.T) {
	backend := &stubBackend{
		response: &ParsedResponse{
			Contents: []ParsedContent{
				{Type: "error", Content: "model overloaded"},
			},
			HasError: true,
		},
	}

	p := NewLLMParser(discardLogger(), backend, "session-3")

	messages, err := p.Parse(
		context.Background(),
		rawOutput("something long enough to need the backend\nwith a second line\n", "", 0),
	)
	require.NoError(t, err)
	require.Len(t, messages, 2)

	assistant, ok := messages[0].(*message.AssistantMessage)
	require.True(t, ok)

	text, ok := assistant.Content[0].(*message.TextBlock)
	require.True(t, ok)
	require.Equal(t, "Error: model overloaded", text.Text)

	result, ok := messages[1].(*message.ResultMessage)
	require.True(t, ok)
	require.Equal(t, message.ResultSubtypeError, result.Subtype)
	require.True(t, result.IsError)
}

func TestLLMParserFallbackOnBackendFailure(t *testing.T) {
	backend := &stubBackend{err: fmt.Errorf("backend unavailable")}
	stdout := "first line of a longer answer\nsecond line\n"

	p := NewLLMParser(discardLogger(), backend, "session-4")

	messages, err := p.Parse(context.Background(), rawOutput(stdout, "", 0))
	require.NoError(t, err)
	require.Len(t, messages, 2)

	assistant, ok := messages[0].(*message.AssistantMessage)
	require.True(t, ok)

	text, ok := assistant.Content[0].(*message.TextBlock)
	require.True(t, ok)
	require.Equal(t, strings.TrimSpace(stdout), text.Text)

	result, ok := messages[1].(*message.ResultMessage)
	require.True(t, ok)
	require.Equal(t, message.ResultSubtypeParsingFallback, result.Subtype)
	require.False(t, result.IsError)
}

func TestLLMParserFallbackErrorFlag(t *testing.T) {
	backend := &stubBackend{err: fmt.Errorf("backend unavailable")}
	stdout := "partial output before the failure\nsecond line\n"

	p := NewLLMParser(discardLogger(), backend, "session-5")

	messages, err := p.Parse(context.Background(), rawOutput(stdout, "warning: quota", 1))
	require.NoError(t, err)

	result, ok := messages[1].(*message.ResultMessage)
	require.True(t, ok)
	require.Equal(t, message.ResultSubtypeParsingFallback, result.Subtype)
	require.True(t, result.IsError)
}

func TestLLMParserNilBackend(t *testing.T) {
	p := NewLLMParser(discardLogger(), nil, "session-6")

	messages, err := p.Parse(
		context.Background(),
		rawOutput("a long multi-line answer\nthat needs structural parsing\n", "", 0),
	)
	require.NoError(t, err)
	require.Len(t, messages, 2)

	result, ok := messages[1].(*message.ResultMessage)
	require.True(t, ok)
	require.Equal(t, message.ResultSubtypeParsingFallback, result.Subtype)
}

func TestIsSimpleResponse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"short single line", "The capital of France is Paris.", true},
		{"bare number", "4", true},
		{"arithmetic across lines", "2 + 2 = 4\n3 + 3 = 6", true},
		{"multi-line prose", "first line\nsecond line", false},
		{"code fence", "```go\nfunc main() {}\n```", false},
		{"long single line", strings.Repeat("a", 120), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, isSimpleResponse(tt.text))
		})
	}
}
