package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/yinjianfei/owlapi/pkg/model"
	"github.com/yinjianfei/owlapi/pkg/style"
)

// StyledRenderer writes Manchester syntax with keywords, entity names and
// literals colored for a terminal. With the ASCII color profile the output
// is identical to ManchesterRenderer.
type StyledRenderer struct {
	profile termenv.Profile
	syntax  style.Syntax
}

// NewStyledRenderer builds a renderer for an explicit color profile
func NewStyledRenderer(profile termenv.Profile) *StyledRenderer {
	re := lipgloss.NewRenderer(io.Discard)
	re.SetColorProfile(profile)

	return &StyledRenderer{
		profile: profile,
		syntax:  style.NewSyntax(re),
	}
}

// Profile returns the color profile the renderer writes for
func (r *StyledRenderer) Profile() termenv.Profile {
	return r.profile
}

// Render writes obj in Manchester syntax with styling applied
func (r *StyledRenderer) Render(obj model.Object) string {
	if r.profile == termenv.Ascii {
		return renderText(&manchesterSyntax, plain, obj)
	}
	return renderText(&manchesterSyntax, r.paint, obj)
}

func (r *StyledRenderer) paint(ro role, s string) string {
	switch ro {
	case roleKeyword:
		return r.syntax.Keyword.Render(s)
	case roleEntity:
		return r.syntax.Entity.Render(s)
	case roleLiteral:
		return r.syntax.Literal.Render(s)
	default:
		return s
	}
}

func init() {
	MustRegister(StyledName, func() (interface{}, error) {
		// EnvColorProfile honors NO_COLOR and CLICOLOR_FORCE
		return NewStyledRenderer(termenv.EnvColorProfile()), nil
	})
}
