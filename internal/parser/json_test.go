package parser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oneryalcin/gemini-cli-sdk/internal/errors"
	"github.com/oneryalcin/gemini-cli-sdk/internal/message"
)

func TestJSONParserStream(t *testing.T) {
	stdout := `{"type":"assistant","content":[{"type":"text","text":"The answer is 4."}]}
{"type":"result","subtype":"success","duration_ms":812,"is_error":false,"session_id":"abc","num_turns":1}
`

	p := NewJSONParser(discardLogger())

	messages, err := p.Parse(context.Background(), rawOutput(stdout, "", 0))
	require.NoError(t, err)
	require.Len(t, messages, 2)

	assistant, ok := messages[0].(*message.AssistantMessage)
	require.True(t, ok)
	require.Len(t, assistant.Content, 1)

	text, ok := assistant.Content[0].(*message.TextBlock)
	require.True(t, ok)
	require.Equal(t, "The answer is 4.", text.Text)

	result, ok := messages[1].(*message.ResultMessage)
	require.True(t, ok)
	require.Equal(t, message.ResultSubtypeSuccess, result.Subtype)
	require.Equal(t, 812, result.DurationMs)
	require.Equal(t, "abc", result.SessionID)
}

func TestJSONParserSkipsMalformedLines(t *testing.T) {
	stdout := `Loaded cached credentials.
{"type":"assistant","content":[{"type":"text","text":"hi"}]}
{not json at all
{"type":"telemetry","spans":3}
`

	p := NewJSONParser(discardLogger())

	messages, err := p.Parse(context.Background(), rawOutput(stdout, "", 0))
	require.NoError(t, err)
	require.Len(t, messages, 1)
	require.Equal(t, message.TypeAssistant, messages[0].MessageType())
}

func TestJSONParserSingleDocumentResponse(t *testing.T) {
	stdout := `{"response":"Hello from Gemini","stats":{"turns":1}}`

	p := NewJSONParser(discardLogger())

	messages, err := p.Parse(context.Background(), rawOutput(stdout, "", 0))
	require.NoError(t, err)
	require.Len(t, messages, 1)

	assistant, ok := messages[0].(*message.AssistantMessage)
	require.True(t, ok)

	text, ok := assistant.Content[0].(*message.TextBlock)
	require.True(t, ok)
	require.Equal(t, "Hello from Gemini", text.Text)
}

func TestJSONParserEmptyOutput(t *testing.T) {
	p := NewJSONParser(discardLogger())

	messages, err := p.Parse(context.Background(), rawOutput("", "", 0))
	require.NoError(t, err)
	require.Empty(t, messages)
}

func TestJSONParserUndecodablePayload(t *testing.T) {
	p := NewJSONParser(discardLogger())

	_, err := p.Parse(context.Background(), rawOutput("definitely\nnot json\n", "", 0))
	require.Error(t, err)

	var decodeErr *errors.CLIJSONDecodeError
	require.ErrorAs(t, err, &decodeErr)
	require.NotEmpty(t, decodeErr.RawData)
}
