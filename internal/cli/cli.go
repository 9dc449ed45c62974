// Package cli implements the cabinetmaker command-line interface.
//
// This package provides commands for laying out cabinet sections from
// TOML plan files, validating plans, browsing layout results, and
// serving the layout API. The CLI is built using cobra and supports
// verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - layout: Compute a full room layout from a plan file
//   - validate: Check a plan for geometry and fit problems
//   - inspect: Browse a saved layout interactively
//   - serve: Run the HTTP layout API
//   - cache: Manage the layout result cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tyevans/builtin-cabinet-maker-sub005/pkg/buildinfo"
	"github.com/tyevans/builtin-cabinet-maker-sub005/pkg/cache"
	"github.com/tyevans/builtin-cabinet-maker-sub005/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "cabinetmaker"

// redisEnvVar names the environment variable holding a redis:// URL.
// When set, the CLI shares its layout cache through Redis instead of
// the local file cache.
const redisEnvVar = "CABINETMAKER_REDIS_URL"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Cabinetmaker lays out built-in cabinet sections along room walls",
		Long:         `Cabinetmaker resolves room wall geometry from a TOML plan, places cabinet sections around windows, doors, and other obstacles, and adapts them to sloped ceilings, skylights, and outside corners.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	store, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, nil, c.Logger), nil
}

// newCache picks the cache backend: Redis when configured, the local
// file cache otherwise, and the null cache when caching is disabled.
func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if url := os.Getenv(redisEnvVar); url != "" {
		return cache.NewRedisCacheFromURL(url)
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/cabinetmaker/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
