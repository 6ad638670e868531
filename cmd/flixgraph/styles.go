package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	colorAccent = lipgloss.Color("#3b82f6") // blue-500
	colorScore  = lipgloss.Color("#10b981") // green-500
	colorDim    = lipgloss.Color("#6b7280") // gray-500
	colorWarn   = lipgloss.Color("#eab308") // yellow-500
)

// Styles holds the lipgloss styles for table output.
type Styles struct {
	Header lipgloss.Style
	Title  lipgloss.Style
	Score  lipgloss.Style
	Dim    lipgloss.Style
	Warn   lipgloss.Style
}

// DefaultStyles returns the colored styles.
func DefaultStyles() *Styles {
	return &Styles{
		Header: lipgloss.NewStyle().Foreground(colorAccent).Bold(true),
		Title:  lipgloss.NewStyle().Bold(true),
		Score:  lipgloss.NewStyle().Foreground(colorScore),
		Dim:    lipgloss.NewStyle().Foreground(colorDim),
		Warn:   lipgloss.NewStyle().Foreground(colorWarn),
	}
}

// PlainStyles returns pass-through styles for non-TTY output.
func PlainStyles() *Styles {
	return &Styles{
		Header: lipgloss.NewStyle(),
		Title:  lipgloss.NewStyle(),
		Score:  lipgloss.NewStyle(),
		Dim:    lipgloss.NewStyle(),
		Warn:   lipgloss.NewStyle(),
	}
}

// NewStyles picks colored or plain styles depending on whether out is a
// terminal.
func NewStyles(out *os.File) *Styles {
	if isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd()) {
		return DefaultStyles()
	}

	return PlainStyles()
}

// writeJSON renders v as indented JSON for machine consumers.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
