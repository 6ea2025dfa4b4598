package render

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/yinjianfei/owlapi/pkg/logging"
	"github.com/yinjianfei/owlapi/pkg/model"
)

// OWLXMLRenderer writes objects as OWL/XML element fragments
type OWLXMLRenderer struct {
	// Indent is the number of spaces per nesting level; zero writes one line
	Indent int
}

// NewOWLXMLRenderer returns a renderer indenting by two spaces
func NewOWLXMLRenderer() *OWLXMLRenderer {
	return &OWLXMLRenderer{Indent: 2}
}

// Render builds the element tree for obj and serializes it
func (r *OWLXMLRenderer) Render(obj model.Object) string {
	doc := etree.NewDocument()
	obj.Accept(&xmlBuilder{parent: &doc.Element})

	if r.Indent > 0 {
		doc.Indent(r.Indent)
	}
	out, err := doc.WriteToString()
	if err != nil {
		logger := logging.GetLogger("render")
		logger.Warn().Err(err).Str("kind", obj.Kind().String()).Msg("OWL/XML serialization failed, using default form")
		return obj.String()
	}
	return strings.TrimRight(out, "\n")
}

// xmlBuilder appends one element per visited object under parent
type xmlBuilder struct {
	parent *etree.Element
}

func (x *xmlBuilder) element(obj model.Object) *etree.Element {
	return x.parent.CreateElement(obj.Kind().String())
}

func (x *xmlBuilder) children(el *etree.Element, objs ...model.Object) {
	child := &xmlBuilder{parent: el}
	for _, obj := range objs {
		obj.Accept(child)
	}
}

func classObjects(ops []model.ClassExpression) []model.Object {
	objs := make([]model.Object, len(ops))
	for i, op := range ops {
		objs[i] = op
	}
	return objs
}

func (x *xmlBuilder) VisitEntity(e model.Entity) {
	el := x.parent.CreateElement(string(e.Type))
	el.CreateAttr("IRI", string(e.IRI))
}

func (x *xmlBuilder) VisitLiteral(l model.Literal) {
	el := x.parent.CreateElement("Literal")
	if l.Lang != "" {
		el.CreateAttr("xml:lang", l.Lang)
	}
	el.CreateAttr("datatypeIRI", string(l.EffectiveDatatype()))
	el.SetText(l.Lexical)
}

func (x *xmlBuilder) VisitObjectIntersectionOf(v model.ObjectIntersectionOf) {
	x.children(x.element(v), classObjects(v.Operands)...)
}

func (x *xmlBuilder) VisitObjectUnionOf(v model.ObjectUnionOf) {
	x.children(x.element(v), classObjects(v.Operands)...)
}

func (x *xmlBuilder) VisitObjectComplementOf(v model.ObjectComplementOf) {
	x.children(x.element(v), v.Operand)
}

func (x *xmlBuilder) VisitObjectSomeValuesFrom(v model.ObjectSomeValuesFrom) {
	x.children(x.element(v), v.Property, v.Filler)
}

func (x *xmlBuilder) VisitObjectAllValuesFrom(v model.ObjectAllValuesFrom) {
	x.children(x.element(v), v.Property, v.Filler)
}

func (x *xmlBuilder) VisitDeclaration(a model.Declaration) {
	x.children(x.element(a), a.Entity)
}

func (x *xmlBuilder) VisitSubClassOf(a model.SubClassOf) {
	x.children(x.element(a), a.Sub, a.Super)
}

func (x *xmlBuilder) VisitEquivalentClasses(a model.EquivalentClasses) {
	x.children(x.element(a), classObjects(a.Classes)...)
}

func (x *xmlBuilder) VisitClassAssertion(a model.ClassAssertion) {
	x.children(x.element(a), a.Class, a.Individual)
}

func (x *xmlBuilder) VisitObjectPropertyAssertion(a model.ObjectPropertyAssertion) {
	x.children(x.element(a), a.Property, a.Subject, a.Object)
}

func (x *xmlBuilder) VisitDataPropertyAssertion(a model.DataPropertyAssertion) {
	x.children(x.element(a), a.Property, a.Subject, a.Value)
}

func init() {
	MustRegister(OWLXMLName, func() (interface{}, error) { return NewOWLXMLRenderer(), nil })
}
