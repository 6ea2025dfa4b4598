// Package model holds the small subset of the OWL 2 structural model that
// owlapi renders: entities, literals, a handful of class expressions and
// the common class and assertion axioms.
//
// Every Object has a default textual form, returned by String, written in
// OWL functional-style syntax with full IRIs. Renderers in pkg/render walk
// objects through the Visitor interface to produce other syntaxes.
package model
