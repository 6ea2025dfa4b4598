package model

// Kind tags the concrete type of an Object
type Kind int

const (
	KindEntity Kind = iota
	KindLiteral
	KindObjectIntersectionOf
	KindObjectUnionOf
	KindObjectComplementOf
	KindObjectSomeValuesFrom
	KindObjectAllValuesFrom
	KindDeclaration
	KindSubClassOf
	KindEquivalentClasses
	KindClassAssertion
	KindObjectPropertyAssertion
	KindDataPropertyAssertion
)

var kindNames = map[Kind]string{
	KindEntity:                  "Entity",
	KindLiteral:                 "Literal",
	KindObjectIntersectionOf:    "ObjectIntersectionOf",
	KindObjectUnionOf:           "ObjectUnionOf",
	KindObjectComplementOf:      "ObjectComplementOf",
	KindObjectSomeValuesFrom:    "ObjectSomeValuesFrom",
	KindObjectAllValuesFrom:     "ObjectAllValuesFrom",
	KindDeclaration:             "Declaration",
	KindSubClassOf:              "SubClassOf",
	KindEquivalentClasses:       "EquivalentClasses",
	KindClassAssertion:          "ClassAssertion",
	KindObjectPropertyAssertion: "ObjectPropertyAssertion",
	KindDataPropertyAssertion:   "DataPropertyAssertion",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsAxiom reports whether objects of this kind are axioms
func (k Kind) IsAxiom() bool {
	return k >= KindDeclaration
}

// Object is anything that can be rendered. String returns the default
// textual form in functional-style syntax.
type Object interface {
	Kind() Kind
	String() string
	Accept(v Visitor)
}

// ClassExpression is an Object usable wherever OWL expects a class
type ClassExpression interface {
	Object
	classExpression()
}

// Axiom is an Object that states something about entities
type Axiom interface {
	Object
	axiom()
}

// Visitor receives one call per concrete Object type
type Visitor interface {
	VisitEntity(Entity)
	VisitLiteral(Literal)
	VisitObjectIntersectionOf(ObjectIntersectionOf)
	VisitObjectUnionOf(ObjectUnionOf)
	VisitObjectComplementOf(ObjectComplementOf)
	VisitObjectSomeValuesFrom(ObjectSomeValuesFrom)
	VisitObjectAllValuesFrom(ObjectAllValuesFrom)
	VisitDeclaration(Declaration)
	VisitSubClassOf(SubClassOf)
	VisitEquivalentClasses(EquivalentClasses)
	VisitClassAssertion(ClassAssertion)
	VisitObjectPropertyAssertion(ObjectPropertyAssertion)
	VisitDataPropertyAssertion(DataPropertyAssertion)
}
