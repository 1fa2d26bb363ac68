// Package message provides message and content block types for Gemini conversations.
package message

import (
	"encoding/json"
	"fmt"
)

// Block type constants.
const (
	BlockTypeText       = "text"
	BlockTypeCode       = "code"
	BlockTypeToolUse    = "tool_use"
	BlockTypeToolResult = "tool_result"
)

// DefaultCodeLanguage is used when a code block carries no language tag.
const DefaultCodeLanguage = "plaintext"

// ContentBlock represents a block of content within a message.
type ContentBlock interface {
	BlockType() string
}

// Compile-time verification that all content block types implement ContentBlock.
var (
	_ ContentBlock = (*TextBlock)(nil)
	_ ContentBlock = (*CodeBlock)(nil)
	_ ContentBlock = (*ToolUseBlock)(nil)
	_ ContentBlock = (*ToolResultBlock)(nil)
)

// TextBlock contains plain text content.
type TextBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// BlockType implements the ContentBlock interface.
func (b *TextBlock) BlockType() string { return BlockTypeText }

// NewTextBlock creates a TextBlock with the type discriminator set.
func NewTextBlock(text string) *TextBlock {
	return &TextBlock{Type: BlockTypeText, Text: text}
}

// CodeBlock contains code content with a language tag.
type CodeBlock struct {
	Type     string `json:"type"`
	Code     string `json:"code"`
	Language string `json:"language"`
}

// BlockType implements the ContentBlock interface.
func (b *CodeBlock) BlockType() string { return BlockTypeCode }

// NewCodeBlock creates a CodeBlock, defaulting the language to "plaintext".
func NewCodeBlock(code, language string) *CodeBlock {
	if language == "" {
		language = DefaultCodeLanguage
	}

	return &CodeBlock{Type: BlockTypeCode, Code: code, Language: language}
}

// ToolUseBlock represents a tool invocation.
//
// Reserved for forward compatibility: neither parser variant currently emits
// this block, but native CLI output may carry it.
//
//nolint:tagliatelle // wire format uses snake_case
type ToolUseBlock struct {
	Type  string         `json:"type"`
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Input map[string]any `json:"input"`
}

// BlockType implements the ContentBlock interface.
func (b *ToolUseBlock) BlockType() string { return BlockTypeToolUse }

// ToolResultBlock contains the result of a tool invocation.
//
// Reserved for forward compatibility, like ToolUseBlock.
//
//nolint:tagliatelle // wire format uses snake_case
type ToolResultBlock struct {
	Type      string `json:"type"`
	ToolUseID string `json:"tool_use_id"`
	Content   any    `json:"content,omitempty"`
	IsError   *bool  `json:"is_error,omitempty"`
}

// BlockType implements the ContentBlock interface.
func (b *ToolResultBlock) BlockType() string { return BlockTypeToolResult }

// UnmarshalContentBlock decodes a single content block from JSON, dispatching
// on the "type" discriminator.
func UnmarshalContentBlock(data []byte) (ContentBlock, error) {
	var probe struct {
		Type string `json:"type"`
	}

	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("probe content block type: %w", err)
	}

	switch probe.Type {
	case BlockTypeText:
		var block TextBlock
		if err := json.Unmarshal(data, &block); err != nil {
			return nil, fmt.Errorf("unmarshal text block: %w", err)
		}

		return &block, nil

	case BlockTypeCode:
		var block CodeBlock
		if err := json.Unmarshal(data, &block); err != nil {
			return nil, fmt.Errorf("unmarshal code block: %w", err)
		}

		if block.Language == "" {
			block.Language = DefaultCodeLanguage
		}

		return &block, nil

	case BlockTypeToolUse:
		var block ToolUseBlock
		if err := json.Unmarshal(data, &block); err != nil {
			return nil, fmt.Errorf("unmarshal tool_use block: %w", err)
		}

		return &block, nil

	case BlockTypeToolResult:
		var block ToolResultBlock
		if err := json.Unmarshal(data, &block); err != nil {
			return nil, fmt.Errorf("unmarshal tool_result block: %w", err)
		}

		return &block, nil

	default:
		// Unknown block types decode as text to stay forward-compatible with
		// new CLI content block types.
		var block TextBlock
		if err := json.Unmarshal(data, &block); err != nil {
			return nil, fmt.Errorf("unmarshal unknown block as text: %w", err)
		}

		block.Type = BlockTypeText

		return &block, nil
	}
}
