package message

import "encoding/json"

// Message type constants.
const (
	TypeUser      = "user"
	TypeAssistant = "assistant"
	TypeSystem    = "system"
	TypeResult    = "result"
)

// Result subtypes produced by the SDK.
const (
	ResultSubtypeSuccess         = "success"
	ResultSubtypeError           = "error"
	ResultSubtypeParsingFallback = "parsing_fallback"
)

// Message represents any message in the conversation.
// Use type assertion or type switch to determine the concrete type.
type Message interface {
	MessageType() string
}

// Compile-time verification that all message types implement Message.
var (
	_ Message = (*UserMessage)(nil)
	_ Message = (*AssistantMessage)(nil)
	_ Message = (*SystemMessage)(nil)
	_ Message = (*ResultMessage)(nil)
)

// UserMessage represents a message from the user.
type UserMessage struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// MessageType implements the Message interface.
func (m *UserMessage) MessageType() string { return TypeUser }

// AssistantMessage represents a message from Gemini with ordered content blocks.
type AssistantMessage struct {
	Type    string         `json:"type"`
	Content []ContentBlock `json:"content"`
}

// MessageType implements the Message interface.
func (m *AssistantMessage) MessageType() string { return TypeAssistant }

// UnmarshalJSON implements json.Unmarshaler, decoding each content block
// through its type discriminator.
func (m *AssistantMessage) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type    string            `json:"type"`
		Content []json.RawMessage `json:"content"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	m.Type = raw.Type
	m.Content = make([]ContentBlock, 0, len(raw.Content))

	for _, rawBlock := range raw.Content {
		block, err := UnmarshalContentBlock(rawBlock)
		if err != nil {
			return err
		}

		m.Content = append(m.Content, block)
	}

	return nil
}

// SystemMessage represents a system message with metadata. The orchestrator
// yields a synthetic "init" SystemMessage carrying the resolved configuration
// before any model output.
type SystemMessage struct {
	Type    string         `json:"type"`
	Subtype string         `json:"subtype"`
	Data    map[string]any `json:"data,omitempty"`
}

// MessageType implements the Message interface.
func (m *SystemMessage) MessageType() string { return TypeSystem }

// ResultMessage represents the terminal result of a query.
//
//nolint:tagliatelle // wire format uses snake_case
type ResultMessage struct {
	Type         string         `json:"type"`
	Subtype      string         `json:"subtype"`
	DurationMs   int            `json:"duration_ms"`
	IsError      bool           `json:"is_error"`
	SessionID    string         `json:"session_id"`
	NumTurns     int            `json:"num_turns"`
	TotalCostUSD *float64       `json:"total_cost_usd,omitempty"`
	Usage        map[string]any `json:"usage,omitempty"`
	Result       *string        `json:"result,omitempty"`
}

// MessageType implements the Message interface.
func (m *ResultMessage) MessageType() string { return TypeResult }
