package style

import (
	"github.com/charmbracelet/lipgloss"
)

// ErrorStyle is used for fatal command errors on the default renderer
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ErrorColor).
	Bold(true)

// Syntax holds the styles used when highlighting ontology text
type Syntax struct {
	Keyword lipgloss.Style
	Entity  lipgloss.Style
	Literal lipgloss.Style
}

// NewSyntax builds syntax styles bound to re, so that output follows
// re's color profile rather than the process-wide one
func NewSyntax(re *lipgloss.Renderer) Syntax {
	return Syntax{
		Keyword: re.NewStyle().Foreground(KeywordColor).Bold(true),
		Entity:  re.NewStyle().Foreground(EntityColor),
		Literal: re.NewStyle().Foreground(LiteralColor).Italic(true),
	}
}
