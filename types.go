package geminisdk

import (
	"github.com/oneryalcin/gemini-cli-sdk/internal/message"
	"github.com/oneryalcin/gemini-cli-sdk/internal/parser"
)

// Re-export message types from internal package.

// Message represents any message in the conversation.
// Use type assertion or type switch to determine the concrete type.
type Message = message.Message

// UserMessage represents a message from the user.
type UserMessage = message.UserMessage

// AssistantMessage represents a message from Gemini with ordered content blocks.
type AssistantMessage = message.AssistantMessage

// SystemMessage represents a system message with metadata. Query yields a
// synthetic "init" SystemMessage carrying the resolved configuration before
// any model output.
type SystemMessage = message.SystemMessage

// ResultMessage represents the terminal result of a query.
type ResultMessage = message.ResultMessage

// Message type constants.
const (
	MessageTypeUser      = message.TypeUser
	MessageTypeAssistant = message.TypeAssistant
	MessageTypeSystem    = message.TypeSystem
	MessageTypeResult    = message.TypeResult
)

// Result subtype constants.
const (
	// ResultSubtypeSuccess marks a normally parsed, successful query.
	ResultSubtypeSuccess = message.ResultSubtypeSuccess
	// ResultSubtypeError marks a query whose output carried an error.
	ResultSubtypeError = message.ResultSubtypeError
	// ResultSubtypeParsingFallback marks a query whose output was passed
	// through verbatim because structured parsing was unavailable.
	ResultSubtypeParsingFallback = message.ResultSubtypeParsingFallback
)

// Re-export content block types from internal package.

// ContentBlock represents a block of content within an assistant message.
type ContentBlock = message.ContentBlock

// TextBlock contains plain text content.
type TextBlock = message.TextBlock

// CodeBlock contains code content with a language tag.
type CodeBlock = message.CodeBlock

// ToolUseBlock represents a tool invocation.
type ToolUseBlock = message.ToolUseBlock

// ToolResultBlock contains the result of a tool invocation.
type ToolResultBlock = message.ToolResultBlock

// Re-export parser backend types so custom backends can be injected via
// WithBackend.

// ParserBackend is the structured-extraction capability used by the
// LLM-assisted parser.
type ParserBackend = parser.Backend

// ParsedResponse is the extraction target schema a ParserBackend fills in.
type ParsedResponse = parser.ParsedResponse

// ParsedContent is one segment of a ParsedResponse.
type ParsedContent = parser.ParsedContent
