// Package cli provides CLI discovery, command building, and capability
// probing for the gemini CLI binary.
//
// # CLI Discovery
//
// The Discoverer interface locates the gemini CLI binary:
//
//	discoverer := cli.NewDiscoverer(&cli.Config{
//	    CliPath: "",           // Optional explicit path
//	    Logger:  slog.Default(),
//	})
//	cliPath, err := discoverer.Discover(ctx)
//
// Discovery searches in the following order:
//  1. Explicit path in Config.CliPath (if provided)
//  2. System PATH
//  3. Common installation directories (/usr/local/bin, /usr/bin,
//     ~/.local/bin, ~/.npm-global/bin)
//
// # Command Building
//
// BuildArgs maps each set option to its CLI flag; unset options are omitted so
// the CLI's own defaults apply. BuildEnvironment inherits the parent
// environment and overlays SDK identifiers and user-provided variables.
//
// # Capability Probing
//
// SupportsJSONOutput checks whether the installed CLI can emit structured
// output, which lets the SDK skip the LLM-assisted parser entirely.
package cli
