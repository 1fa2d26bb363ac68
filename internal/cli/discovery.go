package cli

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/oneryalcin/gemini-cli-sdk/internal/errors"
)

const (
	// BinaryName is the gemini CLI executable name searched in PATH.
	BinaryName = "gemini"

	// VersionCheckTimeout is the timeout for the CLI version check command.
	VersionCheckTimeout = 2 * time.Second
)

// Config holds configuration for CLI discovery.
type Config struct {
	// CliPath is an explicit CLI path that skips PATH search.
	// If empty, discovery will search PATH and common locations.
	CliPath string

	// SkipVersionCheck skips version logging during discovery.
	// Can also be controlled via GEMINI_SDK_SKIP_VERSION_CHECK env var.
	SkipVersionCheck bool

	// Logger is an optional logger for discovery operations.
	// If nil, a default no-op logger is used.
	Logger *slog.Logger
}

// Discoverer locates and validates the gemini CLI binary.
type Discoverer interface {
	// Discover locates the gemini CLI binary.
	// Returns the absolute path to the CLI binary or an error.
	Discover(ctx context.Context) (string, error)
}

type discoverer struct {
	cfg *Config
	log *slog.Logger
}

// Compile-time verification that discoverer implements Discoverer.
var _ Discoverer = (*discoverer)(nil)

// NewDiscoverer creates a new CLI discoverer with the given configuration.
func NewDiscoverer(cfg *Config) Discoverer {
	if cfg == nil {
		cfg = &Config{}
	}

	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError + 1}))
	}

	return &discoverer{
		cfg: cfg,
		log: log,
	}
}

// Discover locates the gemini CLI binary and logs its version.
func (d *discoverer) Discover(ctx context.Context) (string, error) {
	d.log.Debug("Discovering gemini CLI binary")

	cliPath, err := d.findCLI()
	if err != nil {
		d.log.Error("Failed to find gemini CLI", "error", err)

		return "", err
	}

	d.log.Debug("Found gemini CLI binary", "cli_path", cliPath)

	d.checkVersion(ctx, cliPath)

	return cliPath, nil
}

// findCLI locates the gemini CLI binary following the discovery order:
// explicit path, PATH search, well-known install locations.
func (d *discoverer) findCLI() (string, error) {
	// If explicit path provided, use it and only it
	if d.cfg.CliPath != "" {
		d.log.Debug("Using explicit CLI path", "cli_path", d.cfg.CliPath)

		if _, err := os.Stat(d.cfg.CliPath); err == nil {
			return d.cfg.CliPath, nil
		}

		d.log.Debug("Explicit CLI path not found", "cli_path", d.cfg.CliPath)

		return "", &errors.CLINotFoundError{SearchedPaths: []string{d.cfg.CliPath}}
	}

	searchedPaths := make([]string, 0, 5)

	d.log.Debug("Searching for 'gemini' in PATH")

	if path, err := exec.LookPath(BinaryName); err == nil {
		d.log.Debug("Found 'gemini' in PATH", "path", path)

		return path, nil
	}

	searchedPaths = append(searchedPaths, "$PATH")

	commonPaths := []string{
		"/usr/local/bin/gemini",
		"/usr/bin/gemini",
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		commonPaths = append(commonPaths,
			filepath.Join(homeDir, ".local/bin/gemini"),
			filepath.Join(homeDir, ".npm-global/bin/gemini"),
		)
	}

	for _, path := range commonPaths {
		searchedPaths = append(searchedPaths, path)
		d.log.Debug("Checking common path", "path", path)

		if _, err := os.Stat(path); err == nil {
			d.log.Debug("Found CLI at common path", "path", path)

			return path, nil
		}
	}

	d.log.Warn("gemini CLI not found in any searched paths", "searched_paths", searchedPaths)

	return "", &errors.CLINotFoundError{SearchedPaths: searchedPaths}
}

// checkVersion logs the CLI version. The gemini CLI has no stable minimum
// version requirement yet, so the check is informational only and errors are
// silently ignored.
func (d *discoverer) checkVersion(ctx context.Context, cliPath string) {
	if d.cfg.SkipVersionCheck {
		d.log.Debug("Skipping CLI version check (configured)")

		return
	}

	if os.Getenv("GEMINI_SDK_SKIP_VERSION_CHECK") != "" {
		d.log.Debug("Skipping CLI version check (GEMINI_SDK_SKIP_VERSION_CHECK set)")

		return
	}

	ctx, cancel := context.WithTimeout(ctx, VersionCheckTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, cliPath, "--version")

	output, err := cmd.Output()
	if err != nil {
		d.log.Debug("CLI version check failed", "error", err)

		return
	}

	versionStr := strings.TrimSpace(string(output))
	re := regexp.MustCompile(`([0-9]+\.[0-9]+\.[0-9]+)`)

	match := re.FindStringSubmatch(versionStr)
	if match == nil {
		d.log.Debug("Could not parse CLI version", "output", versionStr)

		return
	}

	d.log.Debug("gemini CLI version", "version", match[1])
}
