package model

import "strings"

// ObjectIntersectionOf is the conjunction of its operands
type ObjectIntersectionOf struct {
	Operands []ClassExpression
}

// ObjectUnionOf is the disjunction of its operands
type ObjectUnionOf struct {
	Operands []ClassExpression
}

// ObjectComplementOf is the negation of Operand
type ObjectComplementOf struct {
	Operand ClassExpression
}

// ObjectSomeValuesFrom is an existential restriction on Property
type ObjectSomeValuesFrom struct {
	Property Entity
	Filler   ClassExpression
}

// ObjectAllValuesFrom is a universal restriction on Property
type ObjectAllValuesFrom struct {
	Property Entity
	Filler   ClassExpression
}

func (ObjectIntersectionOf) Kind() Kind { return KindObjectIntersectionOf }
func (x ObjectIntersectionOf) Accept(v Visitor) { v.VisitObjectIntersectionOf(x) }
func (ObjectIntersectionOf) classExpression() {}
func (x ObjectIntersectionOf) String() string {
	return functional("ObjectIntersectionOf", classArgs(x.Operands)...)
}

func (ObjectUnionOf) Kind() Kind { return KindObjectUnionOf }
func (x ObjectUnionOf) Accept(v Visitor) { v.VisitObjectUnionOf(x) }
func (ObjectUnionOf) classExpression() {}
func (x ObjectUnionOf) String() string {
	return functional("ObjectUnionOf", classArgs(x.Operands)...)
}

func (ObjectComplementOf) Kind() Kind { return KindObjectComplementOf }
func (x ObjectComplementOf) Accept(v Visitor) { v.VisitObjectComplementOf(x) }
func (ObjectComplementOf) classExpression() {}
func (x ObjectComplementOf) String() string {
	return functional("ObjectComplementOf", x.Operand)
}

func (ObjectSomeValuesFrom) Kind() Kind { return KindObjectSomeValuesFrom }
func (x ObjectSomeValuesFrom) Accept(v Visitor) { v.VisitObjectSomeValuesFrom(x) }
func (ObjectSomeValuesFrom) classExpression() {}
func (x ObjectSomeValuesFrom) String() string {
	return functional("ObjectSomeValuesFrom", x.Property, x.Filler)
}

func (ObjectAllValuesFrom) Kind() Kind { return KindObjectAllValuesFrom }
func (x ObjectAllValuesFrom) Accept(v Visitor) { v.VisitObjectAllValuesFrom(x) }
func (ObjectAllValuesFrom) classExpression() {}
func (x ObjectAllValuesFrom) String() string {
	return functional("ObjectAllValuesFrom", x.Property, x.Filler)
}

func classArgs(ops []ClassExpression) []Object {
	args := make([]Object, len(ops))
	for i, op := range ops {
		args[i] = op
	}
	return args
}

// functional writes name(arg1 arg2 ...) using each argument's default form
func functional(name string, args ...Object) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('(')
	for i, arg := range args {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(arg.String())
	}
	b.WriteByte(')')
	return b.String()
}
