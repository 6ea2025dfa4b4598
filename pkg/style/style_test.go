package style

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestNewSyntax(t *testing.T) {
	tests := []struct {
		name    string
		profile termenv.Profile
		styled  bool
	}{
		{"ascii", termenv.Ascii, false},
		{"ansi256", termenv.ANSI256, true},
		{"truecolor", termenv.TrueColor, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re := lipgloss.NewRenderer(io.Discard)
			re.SetColorProfile(tt.profile)
			syn := NewSyntax(re)

			for _, s := range []lipgloss.Style{syn.Keyword, syn.Entity, syn.Literal} {
				out := s.Render("Pizza")
				assert.Contains(t, out, "Pizza")
				if tt.styled {
					assert.Contains(t, out, "\x1b[")
				} else {
					assert.Equal(t, "Pizza", out)
				}
			}
		})
	}
}

func TestErrorStyleKeepsText(t *testing.T) {
	assert.Contains(t, ErrorStyle.Render("Error: boom"), "Error: boom")
}
