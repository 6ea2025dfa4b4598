package render

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"

	"github.com/yinjianfei/owlapi/pkg/logging"
	"github.com/yinjianfei/owlapi/pkg/model"
)

// DefaultMarkdownWidth is the word-wrap width used by the registered factory
const DefaultMarkdownWidth = 100

// MarkdownRenderer formats an object as a short markdown section (kind
// heading plus Manchester syntax) and renders it with glamour.
type MarkdownRenderer struct {
	mu   sync.Mutex
	term *glamour.TermRenderer
}

// NewMarkdownRenderer creates a glamour-backed renderer. An empty or
// "auto" style detects the terminal background; any other value is a
// glamour standard style name or a path to a style file.
func NewMarkdownRenderer(style string, width int) (*MarkdownRenderer, error) {
	var options []glamour.TermRendererOption

	if style != "" && style != "auto" {
		options = append(options, glamour.WithStylePath(style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}

	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}

	term, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return &MarkdownRenderer{term: term}, nil
}

// Markdown returns the markdown source rendered for obj
func Markdown(obj model.Object) string {
	return fmt.Sprintf("### %s\n\n`%s`\n", obj.Kind(), ManchesterRenderer{}.Render(obj))
}

// Render converts the markdown for obj to terminal output, falling back to
// the markdown source if glamour fails
func (r *MarkdownRenderer) Render(obj model.Object) string {
	source := Markdown(obj)

	r.mu.Lock()
	out, err := r.term.Render(source)
	r.mu.Unlock()

	if err != nil {
		logger := logging.GetLogger("render")
		logger.Warn().Err(err).Str("kind", obj.Kind().String()).Msg("Markdown rendering failed, using source")
		return strings.TrimRight(source, "\n")
	}
	return strings.Trim(out, "\n")
}

func init() {
	MustRegister(MarkdownName, func() (interface{}, error) {
		r, err := NewMarkdownRenderer("auto", DefaultMarkdownWidth)
		if err != nil {
			return nil, err
		}
		return r, nil
	})
}
