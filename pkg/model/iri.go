package model

import "strings"

// IRI identifies an entity or datatype.
type IRI string

// Well-known datatype IRIs
const (
	XSDNamespace = "http://www.w3.org/2001/XMLSchema#"
	RDFNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

	XSDString     IRI = XSDNamespace + "string"
	XSDInteger    IRI = XSDNamespace + "integer"
	XSDBoolean    IRI = XSDNamespace + "boolean"
	RDFLangString IRI = RDFNamespace + "langString"
)

// String returns the IRI in angle brackets, as functional syntax writes it
func (i IRI) String() string {
	return "<" + string(i) + ">"
}

// Namespace returns everything up to and including the last '#' or '/'
func (i IRI) Namespace() string {
	s := string(i)
	if idx := strings.LastIndexAny(s, "#/"); idx >= 0 {
		return s[:idx+1]
	}
	return ""
}

// Fragment returns the part after the namespace. An IRI ending in a
// separator has no fragment and the whole IRI is returned instead.
func (i IRI) Fragment() string {
	s := string(i)
	ns := i.Namespace()
	if ns == "" || len(ns) == len(s) {
		return s
	}
	return s[len(ns):]
}
