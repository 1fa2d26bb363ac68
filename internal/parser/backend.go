package parser

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/jsonschema-go/jsonschema"
	openai "github.com/sashabaranov/go-openai"

	"github.com/oneryalcin/gemini-cli-sdk/internal/config"
	"github.com/oneryalcin/gemini-cli-sdk/internal/errors"
)

// GeminiOpenAIBaseURL is Gemini's OpenAI-compatible endpoint, used when the
// backend is authenticated with a Gemini API key instead of an OpenAI one.
const GeminiOpenAIBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"

// extractionSystemPrompt instructs the backend how to segment CLI output.
const extractionSystemPrompt = `You are a parser for Gemini CLI output.
Extract structured information from the CLI output.

Identify:
1. Plain text responses
2. Code blocks (with language if specified) - look for ` + "```" + ` markers
3. Error messages or warnings
4. Multiple content sections if present

Be precise and preserve the exact content.`

// ParsedContent is one segment extracted from the raw output.
type ParsedContent struct {
	Type     string `json:"type"` // "text", "code", or "error"
	Content  string `json:"content"`
	Language string `json:"language,omitempty"`
}

// ParsedResponse is the fixed extraction target schema the backend fills in.
//
//nolint:tagliatelle // extraction schema uses snake_case
type ParsedResponse struct {
	Contents []ParsedContent `json:"contents"`
	HasCode  bool            `json:"has_code"`
	HasError bool            `json:"has_error"`
	Summary  string          `json:"summary"`
}

// extractionSchema is the JSON schema sent with every backend request. It is
// the wire form of ParsedResponse.
func extractionSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"contents": {
				Type: "array",
				Items: &jsonschema.Schema{
					Type: "object",
					Properties: map[string]*jsonschema.Schema{
						"type": {
							Type: "string",
							Enum: []any{"text", "code", "error"},
						},
						"content": {Type: "string"},
						"language": {
							Type:        "string",
							Description: "Language for code blocks",
						},
					},
					Required: []string{"type", "content"},
				},
				Description: "List of content blocks in order",
			},
			"has_code":  {Type: "boolean"},
			"has_error": {Type: "boolean"},
			"summary": {
				Type:        "string",
				Description: "Brief summary of the response",
			},
		},
		Required: []string{"contents", "has_code", "has_error", "summary"},
	}
}

// Backend is the structured-extraction capability used by the LLM-assisted
// parser. One request per query; the response must conform to ParsedResponse.
type Backend interface {
	Extract(ctx context.Context, stdout, stderr string) (*ParsedResponse, error)
}

// OpenAIBackend implements Backend against any OpenAI-compatible chat
// completion endpoint, including Gemini's.
type OpenAIBackend struct {
	client *openai.Client
	model  string
}

// Compile-time verification that OpenAIBackend implements Backend.
var _ Backend = (*OpenAIBackend)(nil)

// NewOpenAIBackend constructs the backend from options and environment.
//
// Key resolution order: OPENAI_API_KEY (stock endpoint), then
// GEMINI_API_KEY / GOOGLE_API_KEY (Gemini's OpenAI-compatible endpoint).
// Keys are read once here, never mid-query. Returns ConfigurationError when
// no key is configured.
func NewOpenAIBackend(options *config.Options) (*OpenAIBackend, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	baseURL := options.ParserBaseURL

	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			apiKey = os.Getenv("GOOGLE_API_KEY")
		}

		if apiKey != "" && baseURL == "" {
			baseURL = GeminiOpenAIBaseURL
		}
	}

	if apiKey == "" {
		return nil, &errors.ConfigurationError{
			Message: "parsing backend API key required",
			Missing: "OPENAI_API_KEY, GEMINI_API_KEY or GOOGLE_API_KEY",
		}
	}

	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}

	return &OpenAIBackend{
		client: openai.NewClientWithConfig(clientConfig),
		model:  options.ParserModel,
	}, nil
}

// Extract sends the raw text to the backend with the fixed extraction schema
// and decodes the structured reply.
func (b *OpenAIBackend) Extract(ctx context.Context, stdout, stderr string) (*ParsedResponse, error) {
	prompt := "Parse this Gemini CLI output:\n\n" + stdout
	if stderr != "" {
		prompt += "\n\nStderr output:\n" + stderr
	}

	resp, err := b.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: b.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: extractionSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "parsed_response",
				Schema: extractionSchema(),
				Strict: true,
			},
		},
	})
	if err != nil {
		return nil, &errors.ParsingError{RawOutput: stdout, Err: err}
	}

	if len(resp.Choices) == 0 {
		return nil, &errors.ParsingError{
			RawOutput: stdout,
			Err:       fmt.Errorf("backend returned no choices"),
		}
	}

	var parsed ParsedResponse
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &parsed); err != nil {
		return nil, &errors.ParsingError{
			RawOutput: stdout,
			Err:       fmt.Errorf("decode backend response: %w", err),
		}
	}

	return &parsed, nil
}
