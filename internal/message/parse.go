package message

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/oneryalcin/gemini-cli-sdk/internal/errors"
)

// Parse converts a raw JSON map into a typed Message, dispatching on the
// "type" discriminator.
//
// Returns ErrUnknownMessageType for types the SDK does not recognize; callers
// should skip those rather than treating them as fatal.
func Parse(log *slog.Logger, data map[string]any) (Message, error) {
	log = log.With("component", "message_parser")

	msgType, ok := data["type"].(string)
	if !ok {
		log.Debug("Message missing 'type' field")

		return nil, fmt.Errorf("missing or invalid 'type' field")
	}

	log.Debug("Parsing message", "message_type", msgType)

	switch msgType {
	case TypeUser:
		return parseUserMessage(data)
	case TypeAssistant:
		return parseAssistantMessage(data)
	case TypeSystem:
		return parseSystemMessage(data)
	case TypeResult:
		return parseResultMessage(data)
	default:
		log.Debug("Skipping unknown message type", "message_type", msgType)

		return nil, errors.ErrUnknownMessageType
	}
}

func parseUserMessage(data map[string]any) (*UserMessage, error) {
	msg := &UserMessage{Type: TypeUser}

	content, ok := data["content"].(string)
	if !ok {
		return nil, fmt.Errorf("user message: missing or invalid 'content' field")
	}

	msg.Content = content

	return msg, nil
}

func parseAssistantMessage(data map[string]any) (*AssistantMessage, error) {
	msg := &AssistantMessage{Type: TypeAssistant}

	contentData, ok := data["content"].([]any)
	if !ok {
		return nil, fmt.Errorf("assistant message: missing or invalid 'content' field")
	}

	blocks := make([]ContentBlock, 0, len(contentData))

	for i, item := range contentData {
		rawBlock, err := json.Marshal(item)
		if err != nil {
			return nil, fmt.Errorf("content block %d: marshal: %w", i, err)
		}

		block, err := UnmarshalContentBlock(rawBlock)
		if err != nil {
			return nil, fmt.Errorf("content block %d: %w", i, err)
		}

		blocks = append(blocks, block)
	}

	msg.Content = blocks

	return msg, nil
}

func parseSystemMessage(data map[string]any) (*SystemMessage, error) {
	msg := &SystemMessage{Type: TypeSystem}

	subtype, ok := data["subtype"].(string)
	if !ok {
		return nil, fmt.Errorf("system message: missing or invalid 'subtype' field")
	}

	msg.Subtype = subtype

	if msgData, ok := data["data"].(map[string]any); ok {
		msg.Data = msgData
	} else {
		// Capture all non-standard fields into Data
		msg.Data = make(map[string]any)

		for k, v := range data {
			if k != "type" && k != "subtype" {
				msg.Data[k] = v
			}
		}
	}

	return msg, nil
}

func parseResultMessage(data map[string]any) (*ResultMessage, error) {
	if _, ok := data["subtype"].(string); !ok {
		return nil, fmt.Errorf("result message: missing or invalid 'subtype' field")
	}

	// Re-marshal and unmarshal to use json struct tags for proper parsing
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}

	var msg ResultMessage
	if err := json.Unmarshal(jsonBytes, &msg); err != nil {
		return nil, fmt.Errorf("unmarshal result: %w", err)
	}

	return &msg, nil
}
