// Package render defines the Renderer capability and the built-in
// strategies that turn model objects into display strings.
//
// Strategies are selected by name. Each one registers a Factory in the
// package registry from an init() function; callers resolve a name to a
// Factory, build an instance and check that it implements Renderer.
//
// Built-in identifiers:
//
//	SimpleRenderer      default functional-syntax form
//	DLSyntaxRenderer    description logic notation
//	ManchesterRenderer  Manchester syntax
//	OWLXMLRenderer      OWL/XML fragment
//	YAMLRenderer        structural YAML
//	StyledRenderer      Manchester syntax with terminal colors
//	MarkdownRenderer    Manchester syntax rendered through glamour
package render
