// Package cli implements the boxforge command-line interface.
//
// This package provides commands for generating finger-jointed box panels,
// listing parameter presets, and serving a live browser preview. The CLI is
// built using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - generate: Produce cut-ready SVG, DXF, or JSON output for one box
//   - presets: List the built-in parameter presets
//   - serve: Run a local HTTP server with a live preview
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/boxforge/boxforge/pkg/buildinfo"
	"github.com/boxforge/boxforge/pkg/engine"
	"github.com/boxforge/boxforge/pkg/sink"
)

// appName is the application name used for directories and display.
const appName = "boxforge"

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
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Boxforge generates finger-jointed box panels for laser and CNC cutting",
		Long:         `Boxforge turns box dimensions into flat, cut-ready panel outlines with finger joints, kerf compensation, dividers and press-fit dimples, packed onto a single sheet.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.presetsCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newGenerator creates a pipeline generator for CLI use.
func (c *CLI) newGenerator() *engine.Generator {
	return engine.New(c.Logger)
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) ([]sink.Format, error) {
	if s == "" {
		return []sink.Format{sink.FormatSVG}, nil
	}
	var formats []sink.Format
	for _, part := range strings.Split(s, ",") {
		f, err := sink.ParseFormat(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		formats = append(formats, f)
	}
	return formats, nil
}
