package message

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	sdkerrors "github.com/oneryalcin/gemini-cli-sdk/internal/errors"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestParse_UserMessage(t *testing.T) {
	msg, err := Parse(discardLogger(), map[string]any{
		"type":    "user",
		"content": "hello",
	})
	require.NoError(t, err)

	user, ok := msg.(*UserMessage)
	require.True(t, ok)
	require.Equal(t, "hello", user.Content)
}

func TestParse_AssistantMessage(t *testing.T) {
	msg, err := Parse(discardLogger(), map[string]any{
		"type": "assistant",
		"content": []any{
			map[string]any{"type": "text", "text": "here is code:"},
			map[string]any{"type": "code", "code": "print(42)", "language": "python"},
		},
	})
	require.NoError(t, err)

	assistant, ok := msg.(*AssistantMessage)
	require.True(t, ok)
	require.Len(t, assistant.Content, 2)

	text, ok := assistant.Content[0].(*TextBlock)
	require.True(t, ok)
	require.Equal(t, "here is code:", text.Text)

	code, ok := assistant.Content[1].(*CodeBlock)
	require.True(t, ok)
	require.Equal(t, "print(42)", code.Code)
	require.Equal(t, "python", code.Language)
}

func TestParse_CodeBlockDefaultsLanguage(t *testing.T) {
	msg, err := Parse(discardLogger(), map[string]any{
		"type": "assistant",
		"content": []any{
			map[string]any{"type": "code", "code": "ls -la"},
		},
	})
	require.NoError(t, err)

	assistant := msg.(*AssistantMessage)
	code := assistant.Content[0].(*CodeBlock)
	require.Equal(t, DefaultCodeLanguage, code.Language)
}

func TestParse_SystemMessage(t *testing.T) {
	msg, err := Parse(discardLogger(), map[string]any{
		"type":    "system",
		"subtype": "init",
		"model":   "gemini-2.5-pro",
	})
	require.NoError(t, err)

	system, ok := msg.(*SystemMessage)
	require.True(t, ok)
	require.Equal(t, "init", system.Subtype)
	require.Equal(t, "gemini-2.5-pro", system.Data["model"])
}

func TestParse_ResultMessage(t *testing.T) {
	msg, err := Parse(discardLogger(), map[string]any{
		"type":        "result",
		"subtype":     "success",
		"duration_ms": float64(1200),
		"is_error":    false,
		"session_id":  "sess-1",
		"num_turns":   float64(1),
	})
	require.NoError(t, err)

	result, ok := msg.(*ResultMessage)
	require.True(t, ok)
	require.Equal(t, "success", result.Subtype)
	require.Equal(t, 1200, result.DurationMs)
	require.Equal(t, "sess-1", result.SessionID)
	require.False(t, result.IsError)
}

func TestParse_UnknownTypeSkipped(t *testing.T) {
	_, err := Parse(discardLogger(), map[string]any{"type": "telemetry"})
	require.ErrorIs(t, err, sdkerrors.ErrUnknownMessageType)
}

func TestParse_MissingType(t *testing.T) {
	_, err := Parse(discardLogger(), map[string]any{"content": "orphan"})
	require.Error(t, err)
}

func TestUnmarshalContentBlock_UnknownFallsBackToText(t *testing.T) {
	block, err := UnmarshalContentBlock([]byte(`{"type":"sparkline","text":"▂▃▅"}`))
	require.NoError(t, err)

	text, ok := block.(*TextBlock)
	require.True(t, ok)
	require.Equal(t, "▂▃▅", text.Text)
	require.Equal(t, BlockTypeText, text.Type)
}

func TestAssistantMessage_JSONRoundTrip(t *testing.T) {
	original := &AssistantMessage{
		Type: TypeAssistant,
		Content: []ContentBlock{
			NewTextBlock("result below"),
			NewCodeBlock("SELECT 1;", "sql"),
		},
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded AssistantMessage
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, original.Content, decoded.Content)
}
