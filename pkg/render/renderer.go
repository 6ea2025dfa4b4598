package render

import (
	"github.com/yinjianfei/owlapi/pkg/model"
	"github.com/yinjianfei/owlapi/pkg/registry"
)

// Renderer turns a model object into a display string. Implementations
// must be safe for concurrent use once constructed.
type Renderer interface {
	Render(obj model.Object) string
}

// RendererFunc adapts a function to the Renderer interface
type RendererFunc func(obj model.Object) string

// Render calls f(obj)
func (f RendererFunc) Render(obj model.Object) string { return f(obj) }

// Factory builds a strategy instance. The result is checked against the
// Renderer capability by the caller, so a factory may return anything.
type Factory func() (interface{}, error)

// Built-in strategy identifiers
const (
	SimpleName     = "SimpleRenderer"
	DLSyntaxName   = "DLSyntaxRenderer"
	ManchesterName = "ManchesterRenderer"
	OWLXMLName     = "OWLXMLRenderer"
	YAMLName       = "YAMLRenderer"
	StyledName     = "StyledRenderer"
	MarkdownName   = "MarkdownRenderer"
)

var factories = registry.New[Factory]()

// Factories returns the process-wide factory registry
func Factories() registry.Registry[Factory] {
	return factories
}

// Register adds a named factory to the process-wide registry
func Register(name string, factory Factory) error {
	return factories.Register(name, factory)
}

// MustRegister is Register for init() functions
func MustRegister(name string, factory Factory) {
	registry.MustRegister(factories, name, factory)
}

// Names lists the registered identifiers in sorted order
func Names() []string {
	return factories.List()
}

// Lookup returns the factory registered under name
func Lookup(name string) (Factory, bool) {
	return factories.Lookup(name)
}
