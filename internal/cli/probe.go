package cli

import (
	"context"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// ProbeTimeout bounds the capability probe command.
const ProbeTimeout = 2 * time.Second

// SupportsJSONOutput probes whether the CLI can emit self-describing JSON
// output. It runs the CLI's help text and looks for the --output-format flag.
//
// The probe is deterministic for a given binary: same help text, same answer.
// Probe failures are treated as "no" so the caller falls back to the
// LLM-assisted parser.
func SupportsJSONOutput(ctx context.Context, log *slog.Logger, cliPath string) bool {
	ctx, cancel := context.WithTimeout(ctx, ProbeTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, cliPath, "--help")

	output, err := cmd.Output()
	if err != nil {
		log.Debug("JSON output probe failed", "error", err)

		return false
	}

	supported := strings.Contains(string(output), "--output-format")
	log.Debug("JSON output probe completed", "supported", supported)

	return supported
}
