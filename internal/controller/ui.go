// Package controller provides output adapters for displaying signature search results.
package controller

import (
	"fmt"

	m "github.com/mouse-blink/cyclact/internal/model"
)

// Format selects how signatures are rendered.
type Format string

// Available Format values.
const (
	FormatText  Format = "text"
	FormatLaTeX Format = "latex"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatLaTeX, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, latex or yaml)", s)
	}
}

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeSearch StartMode = iota
	ModeList
	ModeView
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode   StartMode
	format Format
}

func newStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeSearch, format: FormatText}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// WithSearchMode sets the UI to search mode.
func WithSearchMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeSearch
	}
}

// WithListMode sets the UI to candidate listing mode.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

// WithViewMode sets the UI to saved report viewing mode.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

// WithFormat sets the output format for signatures.
func WithFormat(f Format) StartOption {
	return func(c *StartConfig) {
		c.format = f
	}
}

// UI defines the interface for displaying search results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	DisplayPlan(plan m.Plan, err error) error
	DisplaySignatures(query m.Query, signatures []m.Signature, err error) error
	DisplayReports(reports []m.ReportSummary, err error) error
	DisplaySaved(path m.Path)
}
