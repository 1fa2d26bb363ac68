// Package subprocess provides the subprocess-based transport for the gemini CLI.
//
// This package implements the Transport interface by spawning the gemini CLI
// as a child process per query and capturing its output. It handles process
// lifecycle management, bounded output buffering, timeouts, and graceful
// termination on cancellation.
package subprocess
