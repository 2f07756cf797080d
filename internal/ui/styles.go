package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jacoelho/vy/internal/render"
)

// Styles groups the lipgloss styles used by the viewer.
type Styles struct {
	Title       lipgloss.Style
	StatusBar   lipgloss.Style
	StatusError lipgloss.Style
	FocusPane   lipgloss.Style
	BlurPane    lipgloss.Style
	Key         lipgloss.Style
	Badge       lipgloss.Style
	Selected    lipgloss.Style
	Null        lipgloss.Style
	Bool        lipgloss.Style
	Number      lipgloss.Style
	String      lipgloss.Style
	Summary     lipgloss.Style
	ErrorText   lipgloss.Style
	Muted       lipgloss.Style
}

// DefaultStyles returns the viewer theme. With noColor set, only layout
// styling (borders, reverse selection) remains.
func DefaultStyles(noColor bool) Styles {
	s := Styles{
		FocusPane: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("12")),
		BlurPane:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")),
		Selected:  lipgloss.NewStyle().Reverse(true),
	}

	if noColor {
		s.FocusPane = lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
		s.BlurPane = lipgloss.NewStyle().Border(lipgloss.HiddenBorder())
		s.Title = lipgloss.NewStyle().Bold(true)
		s.Key = lipgloss.NewStyle().Bold(true)
		s.Null = lipgloss.NewStyle().Italic(true)
		return s
	}

	s.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	s.StatusBar = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	s.StatusError = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	s.Key = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	s.Badge = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	s.Null = lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Italic(true)
	s.Bool = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	s.Number = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	s.String = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	s.Summary = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	s.ErrorText = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	s.Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	return s
}

// classStyle maps a semantic value class to its style.
func (s Styles) classStyle(class render.Class) lipgloss.Style {
	switch class {
	case render.ClassNull:
		return s.Null
	case render.ClassBool:
		return s.Bool
	case render.ClassNumber:
		return s.Number
	case render.ClassSummary:
		return s.Summary
	default:
		return s.String
	}
}
