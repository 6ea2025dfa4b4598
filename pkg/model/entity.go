package model

import (
	"fmt"
	"strconv"
)

// EntityType distinguishes the kinds of named entity
type EntityType string

const (
	EntityClass              EntityType = "Class"
	EntityObjectProperty     EntityType = "ObjectProperty"
	EntityDataProperty       EntityType = "DataProperty"
	EntityAnnotationProperty EntityType = "AnnotationProperty"
	EntityNamedIndividual    EntityType = "NamedIndividual"
	EntityDatatype           EntityType = "Datatype"
)

// EntityTypes lists every entity type in declaration order
var EntityTypes = []EntityType{
	EntityClass,
	EntityObjectProperty,
	EntityDataProperty,
	EntityAnnotationProperty,
	EntityNamedIndividual,
	EntityDatatype,
}

// ParseEntityType maps a functional-syntax keyword to its EntityType
func ParseEntityType(s string) (EntityType, error) {
	for _, t := range EntityTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown entity type %q", s)
}

// Entity is a named thing in an ontology
type Entity struct {
	Type EntityType
	IRI  IRI
}

// Class returns a class entity
func Class(iri IRI) Entity { return Entity{Type: EntityClass, IRI: iri} }

// ObjectProperty returns an object property entity
func ObjectProperty(iri IRI) Entity { return Entity{Type: EntityObjectProperty, IRI: iri} }

// DataProperty returns a data property entity
func DataProperty(iri IRI) Entity { return Entity{Type: EntityDataProperty, IRI: iri} }

// NamedIndividual returns a named individual entity
func NamedIndividual(iri IRI) Entity { return Entity{Type: EntityNamedIndividual, IRI: iri} }

func (Entity) Kind() Kind { return KindEntity }
func (e Entity) Accept(v Visitor) { v.VisitEntity(e) }
func (Entity) classExpression() {}

// String renders an entity as its bracketed IRI
func (e Entity) String() string { return e.IRI.String() }

// Literal is a data value
type Literal struct {
	Lexical  string
	Datatype IRI
	Lang     string
}

// StringLiteral returns a plain xsd:string literal
func StringLiteral(s string) Literal { return Literal{Lexical: s, Datatype: XSDString} }

func (Literal) Kind() Kind { return KindLiteral }
func (l Literal) Accept(v Visitor) { v.VisitLiteral(l) }

// EffectiveDatatype resolves an empty datatype to xsd:string, or
// rdf:langString when a language tag is set
func (l Literal) EffectiveDatatype() IRI {
	switch {
	case l.Lang != "":
		return RDFLangString
	case l.Datatype == "":
		return XSDString
	default:
		return l.Datatype
	}
}

func (l Literal) String() string {
	quoted := strconv.Quote(l.Lexical)
	switch dt := l.EffectiveDatatype(); {
	case l.Lang != "":
		return quoted + "@" + l.Lang
	case dt == XSDString:
		return quoted
	default:
		return quoted + "^^" + dt.String()
	}
}
