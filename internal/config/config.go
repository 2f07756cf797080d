// Package config parses and validates command-line arguments.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jacoelho/vy/internal/exit"
)

const (
	// DefaultDebounce is the quiet period between the last keystroke
	// and a re-parse.
	DefaultDebounce = 100 * time.Millisecond

	// DefaultReloadRate limits how many on-disk change events per
	// second turn into reloads.
	DefaultReloadRate = 4.0
)

var (
	ErrTooManyFiles       = errors.New("at most one file may be opened")
	ErrExportNeedsFile    = errors.New("-export requires a file argument")
	ErrWatchNeedsFile     = errors.New("-watch requires a file argument")
	ErrNonPositiveQuiet   = errors.New("debounce interval must be positive")
	ErrNegativeReloadRate = errors.New("reload rate cannot be negative")
)

// Config represents the complete configuration for the vy tool.
type Config struct {
	// File is the document to open; empty starts with a blank buffer.
	File string

	// ExportHTML renders the file as a static HTML tree to this path
	// and exits instead of starting the interactive viewer.
	ExportHTML string

	// Debounce is the parse quiet period.
	Debounce time.Duration

	// Watch reloads the opened file when it changes on disk.
	Watch bool

	// ReloadRate damps watch events, in events per second (0 = off).
	ReloadRate float64

	// NoColor disables styled output.
	NoColor bool
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if c.Debounce <= 0 {
		return ErrNonPositiveQuiet
	}
	if c.ReloadRate < 0 {
		return ErrNegativeReloadRate
	}
	if c.ExportHTML != "" && c.File == "" {
		return ErrExportNeedsFile
	}
	if c.Watch && c.File == "" {
		return ErrWatchNeedsFile
	}

	if c.File != "" {
		if _, err := os.Stat(c.File); err != nil {
			return fmt.Errorf("file %s not found: %w", c.File, err)
		}
	}

	return nil
}

// Parse parses command-line arguments and returns a validated Config.
// If parsing fails or help is requested, returns nil config and exit result.
func Parse(args []string) (*Config, *exit.Result) {
	if len(args) == 0 {
		return nil, exit.Errorf("Error: no arguments provided\n\n%s", Usage())
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)

	// Suppress the default usage and error output since we handle both.
	fs.Usage = func() {}
	fs.SetOutput(io.Discard)

	var (
		debounce   = fs.Duration("debounce", DefaultDebounce, "Quiet period before re-parsing after a text change")
		watch      = fs.Bool("watch", false, "Reload the opened file when it changes on disk")
		reloadRate = fs.Float64("reload-rate", DefaultReloadRate, "Maximum file reloads per second when watching (0 for unlimited)")
		noColor    = fs.Bool("no-color", false, "Disable colored output")
		exportHTML = fs.String("export", "", "Write the document as a static HTML tree to this path and exit")
	)

	if err := fs.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			return nil, exit.Success(Usage())
		}
		return nil, exit.Errorf("Error: failed to parse arguments: %v\n\n%s", err, Usage())
	}

	files := fs.Args()
	if len(files) > 1 {
		return nil, exit.Errorf("Error: %v\n\n%s", ErrTooManyFiles, Usage())
	}

	config := &Config{
		Debounce:   *debounce,
		Watch:      *watch,
		ReloadRate: *reloadRate,
		NoColor:    *noColor,
		ExportHTML: *exportHTML,
	}
	if len(files) == 1 {
		config.File = files[0]
	}

	if err := config.Validate(); err != nil {
		return nil, exit.Errorf("Error: %v\n\n%s", err, Usage())
	}

	return config, nil
}

// Usage returns the command-line usage text.
func Usage() string {
	return `vy - interactive YAML structure viewer

Usage: vy [options] [file]

Opens a YAML document in a split view: a text editor on the left and a
collapsible, typed structure tree on the right. The tree re-builds as
you type, once input settles.

Options:
  -debounce duration  Quiet period before re-parsing (default 100ms)
  -watch              Reload the opened file when it changes on disk
  -reload-rate n      Maximum reloads per second when watching (default 4)
  -no-color           Disable colored output
  -export path        Write the document as a static HTML tree and exit
  -h, -help           Show this help

Keys:
  tab        switch between editor and tree
  enter      toggle the selected container
  x          expand/collapse the selected subtree
  E          expand all
  C          collapse all
  p          jump to a JSONPath (e.g. $.items[0].name)
  q, ctrl+c  quit
`
}
