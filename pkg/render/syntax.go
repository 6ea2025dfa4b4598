package render

import (
	"strconv"
	"strings"

	"github.com/yinjianfei/owlapi/pkg/model"
)

// role tells a painter what kind of token it is decorating
type role int

const (
	roleKeyword role = iota
	roleEntity
	roleLiteral
)

// painter decorates a token. plain leaves it untouched.
type painter func(r role, s string) string

func plain(_ role, s string) string { return s }

// textSyntax is the vocabulary of an infix, short-name syntax. DL and
// Manchester syntax differ only in these tokens and in where restriction
// and assertion keywords go.
type textSyntax struct {
	subClassOf   string
	equivalentTo string
	and          string
	or           string
	not          string // includes any separator before the operand
	some         string
	only         string
	types        string
	facts        string

	// prefixRestriction writes "∃p.C" rather than "p some C"
	prefixRestriction bool
	// functionalFacts writes "p(s, o)" rather than "s Facts: p o"
	functionalFacts bool
}

var dlSyntax = textSyntax{
	subClassOf:        "⊑",
	equivalentTo:      "≡",
	and:               "⊓",
	or:                "⊔",
	not:               "¬",
	some:              "∃",
	only:              "∀",
	types:             ":",
	prefixRestriction: true,
	functionalFacts:   true,
}

var manchesterSyntax = textSyntax{
	subClassOf:   "SubClassOf",
	equivalentTo: "EquivalentTo",
	and:          "and",
	or:           "or",
	not:          "not ",
	some:         "some",
	only:         "only",
	types:        "Types:",
	facts:        "Facts:",
}

// textWriter walks an object and writes it in a textSyntax
type textWriter struct {
	syn   *textSyntax
	paint painter
	b     strings.Builder
}

func renderText(syn *textSyntax, paint painter, obj model.Object) string {
	w := &textWriter{syn: syn, paint: paint}
	obj.Accept(w)
	return w.b.String()
}

func (w *textWriter) keyword(s string) {
	w.b.WriteString(w.paint(roleKeyword, s))
}

func (w *textWriter) name(iri model.IRI) {
	w.b.WriteString(w.paint(roleEntity, iri.Fragment()))
}

func (w *textWriter) space() { w.b.WriteByte(' ') }

// nested writes ce, parenthesized unless it is a named entity
func (w *textWriter) nested(ce model.ClassExpression) {
	if _, ok := ce.(model.Entity); ok {
		ce.Accept(w)
		return
	}
	w.b.WriteByte('(')
	ce.Accept(w)
	w.b.WriteByte(')')
}

func (w *textWriter) join(ops []model.ClassExpression, op string) {
	for i, ce := range ops {
		if i > 0 {
			w.space()
			w.keyword(op)
			w.space()
		}
		w.nested(ce)
	}
}

func (w *textWriter) VisitEntity(e model.Entity) { w.name(e.IRI) }

func (w *textWriter) VisitLiteral(l model.Literal) {
	w.b.WriteString(w.paint(roleLiteral, shortLiteral(l)))
}

func (w *textWriter) VisitObjectIntersectionOf(x model.ObjectIntersectionOf) {
	w.join(x.Operands, w.syn.and)
}

func (w *textWriter) VisitObjectUnionOf(x model.ObjectUnionOf) {
	w.join(x.Operands, w.syn.or)
}

func (w *textWriter) VisitObjectComplementOf(x model.ObjectComplementOf) {
	w.keyword(strings.TrimSpace(w.syn.not))
	if strings.HasSuffix(w.syn.not, " ") {
		w.space()
	}
	w.nested(x.Operand)
}

func (w *textWriter) restriction(kw string, prop model.Entity, filler model.ClassExpression) {
	if w.syn.prefixRestriction {
		w.keyword(kw)
		w.name(prop.IRI)
		w.b.WriteByte('.')
		w.nested(filler)
		return
	}
	w.name(prop.IRI)
	w.space()
	w.keyword(kw)
	w.space()
	w.nested(filler)
}

func (w *textWriter) VisitObjectSomeValuesFrom(x model.ObjectSomeValuesFrom) {
	w.restriction(w.syn.some, x.Property, x.Filler)
}

func (w *textWriter) VisitObjectAllValuesFrom(x model.ObjectAllValuesFrom) {
	w.restriction(w.syn.only, x.Property, x.Filler)
}

func (w *textWriter) VisitDeclaration(a model.Declaration) {
	w.keyword(string(a.Entity.Type) + ":")
	w.space()
	w.name(a.Entity.IRI)
}

func (w *textWriter) VisitSubClassOf(a model.SubClassOf) {
	a.Sub.Accept(w)
	w.space()
	w.keyword(w.syn.subClassOf)
	w.space()
	a.Super.Accept(w)
}

func (w *textWriter) VisitEquivalentClasses(a model.EquivalentClasses) {
	w.join(a.Classes, w.syn.equivalentTo)
}

func (w *textWriter) VisitClassAssertion(a model.ClassAssertion) {
	w.name(a.Individual.IRI)
	w.space()
	w.keyword(w.syn.types)
	w.space()
	a.Class.Accept(w)
}

func (w *textWriter) fact(prop, subject model.Entity, value model.Object) {
	if w.syn.functionalFacts {
		w.name(prop.IRI)
		w.b.WriteByte('(')
		w.name(subject.IRI)
		w.b.WriteString(", ")
		value.Accept(w)
		w.b.WriteByte(')')
		return
	}
	w.name(subject.IRI)
	w.space()
	w.keyword(w.syn.facts)
	w.space()
	w.name(prop.IRI)
	w.space()
	value.Accept(w)
}

func (w *textWriter) VisitObjectPropertyAssertion(a model.ObjectPropertyAssertion) {
	w.fact(a.Property, a.Subject, a.Object)
}

func (w *textWriter) VisitDataPropertyAssertion(a model.DataPropertyAssertion) {
	w.fact(a.Property, a.Subject, a.Value)
}

// shortLiteral writes a literal with its datatype abbreviated to the
// fragment, e.g. "3"^^integer
func shortLiteral(l model.Literal) string {
	quoted := strconv.Quote(l.Lexical)
	switch dt := l.EffectiveDatatype(); {
	case l.Lang != "":
		return quoted + "@" + l.Lang
	case dt == model.XSDString:
		return quoted
	default:
		return quoted + "^^" + dt.Fragment()
	}
}

// DLSyntaxRenderer writes objects in description logic notation
type DLSyntaxRenderer struct{}

// Render writes obj with DL operators and short entity names
func (DLSyntaxRenderer) Render(obj model.Object) string {
	return renderText(&dlSyntax, plain, obj)
}

// ManchesterRenderer writes objects in Manchester syntax
type ManchesterRenderer struct{}

// Render writes obj with Manchester keywords and short entity names
func (ManchesterRenderer) Render(obj model.Object) string {
	return renderText(&manchesterSyntax, plain, obj)
}

func init() {
	MustRegister(DLSyntaxName, func() (interface{}, error) { return DLSyntaxRenderer{}, nil })
	MustRegister(ManchesterName, func() (interface{}, error) { return ManchesterRenderer{}, nil })
}
