// Package parser converts raw Gemini CLI output into typed messages.
//
// Two Strategy variants exist. JSONParser decodes the CLI's native
// newline-delimited JSON output. LLMParser imposes structure on free text by
// delegating to a Backend (an OpenAI-compatible extraction endpoint) and is
// total: backend failures degrade to a verbatim-text fallback instead of an
// error. Select picks between them from explicit configuration or a
// capability probe of the CLI binary.
package parser
