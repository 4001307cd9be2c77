package main

import (
	"io"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-isatty"

	"github.com/vic/golambda/pkg/config"
)

var (
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)
	resultStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	welcomeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// styler applies lipgloss styles only when color output is enabled.
type styler struct {
	color bool
}

func newStyler(mode string, w io.Writer) styler {
	switch mode {
	case config.ColorAlways:
		return styler{color: true}
	case config.ColorNever:
		return styler{}
	}
	f, ok := w.(*os.File)
	if !ok {
		return styler{}
	}
	return styler{color: isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())}
}

func (s styler) render(style lipgloss.Style, text string) string {
	if !s.color {
		return text
	}
	return style.Render(text)
}

func (s styler) prompt(text string) string  { return s.render(promptStyle, text) }
func (s styler) result(text string) string  { return s.render(resultStyle, text) }
func (s styler) failure(text string) string { return s.render(errorStyle, text) }
func (s styler) welcome(text string) string { return s.render(welcomeStyle, text) }
func (s styler) dim(text string) string     { return s.render(dimStyle, text) }
