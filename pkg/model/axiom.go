package model

// Declaration states that Entity exists with its type
type Declaration struct {
	Entity Entity
}

// SubClassOf states that every Sub is a Super
type SubClassOf struct {
	Sub   ClassExpression
	Super ClassExpression
}

// EquivalentClasses states that all Classes have the same members
type EquivalentClasses struct {
	Classes []ClassExpression
}

// ClassAssertion states that Individual is a member of Class
type ClassAssertion struct {
	Class      ClassExpression
	Individual Entity
}

// ObjectPropertyAssertion links Subject to Object through Property
type ObjectPropertyAssertion struct {
	Property Entity
	Subject  Entity
	Object   Entity
}

// DataPropertyAssertion links Subject to a literal Value through Property
type DataPropertyAssertion struct {
	Property Entity
	Subject  Entity
	Value    Literal
}

func (Declaration) Kind() Kind { return KindDeclaration }
func (a Declaration) Accept(v Visitor) { v.VisitDeclaration(a) }
func (Declaration) axiom() {}
func (a Declaration) String() string {
	return "Declaration(" + string(a.Entity.Type) + "(" + a.Entity.IRI.String() + "))"
}

func (SubClassOf) Kind() Kind { return KindSubClassOf }
func (a SubClassOf) Accept(v Visitor) { v.VisitSubClassOf(a) }
func (SubClassOf) axiom() {}
func (a SubClassOf) String() string { return functional("SubClassOf", a.Sub, a.Super) }

func (EquivalentClasses) Kind() Kind { return KindEquivalentClasses }
func (a EquivalentClasses) Accept(v Visitor) { v.VisitEquivalentClasses(a) }
func (EquivalentClasses) axiom() {}
func (a EquivalentClasses) String() string {
	return functional("EquivalentClasses", classArgs(a.Classes)...)
}

func (ClassAssertion) Kind() Kind { return KindClassAssertion }
func (a ClassAssertion) Accept(v Visitor) { v.VisitClassAssertion(a) }
func (ClassAssertion) axiom() {}
func (a ClassAssertion) String() string {
	return functional("ClassAssertion", a.Class, a.Individual)
}

func (ObjectPropertyAssertion) Kind() Kind { return KindObjectPropertyAssertion }
func (a ObjectPropertyAssertion) Accept(v Visitor) { v.VisitObjectPropertyAssertion(a) }
func (ObjectPropertyAssertion) axiom() {}
func (a ObjectPropertyAssertion) String() string {
	return functional("ObjectPropertyAssertion", a.Property, a.Subject, a.Object)
}

func (DataPropertyAssertion) Kind() Kind { return KindDataPropertyAssertion }
func (a DataPropertyAssertion) Accept(v Visitor) { v.VisitDataPropertyAssertion(a) }
func (DataPropertyAssertion) axiom() {}
func (a DataPropertyAssertion) String() string {
	return functional("DataPropertyAssertion", a.Property, a.Subject, a.Value)
}
