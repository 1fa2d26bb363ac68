package geminisdk

import "github.com/oneryalcin/gemini-cli-sdk/internal/config"

// Transport defines the interface for Gemini CLI execution.
// Implement this to provide custom transports for testing, mocking,
// or alternative execution methods (e.g., remote runners).
//
// The default implementation spawns the gemini CLI as a subprocess.
// Custom transports can be injected via WithTransport.
type Transport = config.Transport

// RawOutput is the captured result of one subprocess execution, handed to
// the parser strategy.
type RawOutput = config.RawOutput
