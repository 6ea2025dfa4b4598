package document

import (
	"fmt"
	"strconv"

	"github.com/yinjianfei/owlapi/pkg/model"
)

const xsdDouble = model.IRI(model.XSDNamespace + "double")

// builder turns decoded nodes into model objects
type builder struct {
	prefixes *model.PrefixManager
}

type node map[string]interface{}

func asNode(v interface{}) (node, bool) {
	m, ok := v.(map[string]interface{})
	return node(m), ok
}

func (n node) get(key string) (interface{}, error) {
	v, ok := n[key]
	if !ok || v == nil {
		return nil, fmt.Errorf("missing %q", key)
	}
	return v, nil
}

func (n node) str(key string) (string, error) {
	v, err := n.get(key)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%q must be a string, got %T", key, v)
	}
	return s, nil
}

func (n node) optionalStr(key string) string {
	s, _ := n[key].(string)
	return s
}

func (n node) list(key string) ([]interface{}, error) {
	v, err := n.get(key)
	if err != nil {
		return nil, err
	}
	items, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%q must be a list, got %T", key, v)
	}
	return items, nil
}

func (b *builder) iri(name string) (model.IRI, error) {
	return b.prefixes.Expand(name)
}

func (b *builder) object(v interface{}) (model.Object, error) {
	if name, ok := v.(string); ok {
		iri, err := b.iri(name)
		if err != nil {
			return nil, err
		}
		return model.Class(iri), nil
	}

	n, ok := asNode(v)
	if !ok {
		return nil, fmt.Errorf("expected a table or a name, got %T", v)
	}
	typ, err := n.str("type")
	if err != nil {
		return nil, err
	}

	if et, err := model.ParseEntityType(typ); err == nil {
		iri, err := b.namedIRI(n)
		if err != nil {
			return nil, err
		}
		return model.Entity{Type: et, IRI: iri}, nil
	}

	switch typ {
	case "Literal":
		return b.literal(n, "value")
	case "ObjectIntersectionOf":
		ops, err := b.classList(n, "operands")
		if err != nil {
			return nil, err
		}
		return model.ObjectIntersectionOf{Operands: ops}, nil
	case "ObjectUnionOf":
		ops, err := b.classList(n, "operands")
		if err != nil {
			return nil, err
		}
		return model.ObjectUnionOf{Operands: ops}, nil
	case "ObjectComplementOf":
		op, err := b.classField(n, "operand")
		if err != nil {
			return nil, err
		}
		return model.ObjectComplementOf{Operand: op}, nil
	case "ObjectSomeValuesFrom", "ObjectAllValuesFrom":
		prop, err := b.entityField(n, "property", model.EntityObjectProperty)
		if err != nil {
			return nil, err
		}
		filler, err := b.classField(n, "filler")
		if err != nil {
			return nil, err
		}
		if typ == "ObjectSomeValuesFrom" {
			return model.ObjectSomeValuesFrom{Property: prop, Filler: filler}, nil
		}
		return model.ObjectAllValuesFrom{Property: prop, Filler: filler}, nil
	case "Declaration":
		return b.declaration(n)
	case "SubClassOf":
		sub, err := b.classField(n, "sub")
		if err != nil {
			return nil, err
		}
		super, err := b.classField(n, "super")
		if err != nil {
			return nil, err
		}
		return model.SubClassOf{Sub: sub, Super: super}, nil
	case "EquivalentClasses":
		classes, err := b.classList(n, "classes")
		if err != nil {
			return nil, err
		}
		if len(classes) < 2 {
			return nil, fmt.Errorf("EquivalentClasses needs at least two classes, got %d", len(classes))
		}
		return model.EquivalentClasses{Classes: classes}, nil
	case "ClassAssertion":
		class, err := b.classField(n, "class")
		if err != nil {
			return nil, err
		}
		ind, err := b.entityField(n, "individual", model.EntityNamedIndividual)
		if err != nil {
			return nil, err
		}
		return model.ClassAssertion{Class: class, Individual: ind}, nil
	case "ObjectPropertyAssertion":
		prop, err := b.entityField(n, "property", model.EntityObjectProperty)
		if err != nil {
			return nil, err
		}
		subject, err := b.entityField(n, "subject", model.EntityNamedIndividual)
		if err != nil {
			return nil, err
		}
		object, err := b.entityField(n, "object", model.EntityNamedIndividual)
		if err != nil {
			return nil, err
		}
		return model.ObjectPropertyAssertion{Property: prop, Subject: subject, Object: object}, nil
	case "DataPropertyAssertion":
		prop, err := b.entityField(n, "property", model.EntityDataProperty)
		if err != nil {
			return nil, err
		}
		subject, err := b.entityField(n, "subject", model.EntityNamedIndividual)
		if err != nil {
			return nil, err
		}
		value, err := b.literal(n, "value")
		if err != nil {
			return nil, err
		}
		return model.DataPropertyAssertion{Property: prop, Subject: subject, Value: value}, nil
	default:
		return nil, fmt.Errorf("unknown object type %q", typ)
	}
}

func (b *builder) namedIRI(n node) (model.IRI, error) {
	name, err := n.str("iri")
	if err != nil {
		return "", err
	}
	return b.iri(name)
}

func (b *builder) declaration(n node) (model.Object, error) {
	typ, err := n.str("entity")
	if err != nil {
		return nil, err
	}
	et, err := model.ParseEntityType(typ)
	if err != nil {
		return nil, err
	}
	iri, err := b.namedIRI(n)
	if err != nil {
		return nil, err
	}
	return model.Declaration{Entity: model.Entity{Type: et, IRI: iri}}, nil
}

func (b *builder) classExpression(v interface{}) (model.ClassExpression, error) {
	obj, err := b.object(v)
	if err != nil {
		return nil, err
	}
	ce, ok := obj.(model.ClassExpression)
	if !ok {
		return nil, fmt.Errorf("%s is not a class expression", obj.Kind())
	}
	return ce, nil
}

func (b *builder) classField(n node, key string) (model.ClassExpression, error) {
	v, err := n.get(key)
	if err != nil {
		return nil, err
	}
	ce, err := b.classExpression(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return ce, nil
}

func (b *builder) classList(n node, key string) ([]model.ClassExpression, error) {
	items, err := n.list(key)
	if err != nil {
		return nil, err
	}
	out := make([]model.ClassExpression, 0, len(items))
	for i, item := range items {
		ce, err := b.classExpression(item)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", key, i, err)
		}
		out = append(out, ce)
	}
	return out, nil
}

// entityField reads a name, or a table with an iri, as an entity of the
// given type
func (b *builder) entityField(n node, key string, et model.EntityType) (model.Entity, error) {
	v, err := n.get(key)
	if err != nil {
		return model.Entity{}, err
	}

	var name string
	switch x := v.(type) {
	case string:
		name = x
	case map[string]interface{}:
		if name, err = node(x).str("iri"); err != nil {
			return model.Entity{}, fmt.Errorf("%s: %w", key, err)
		}
	default:
		return model.Entity{}, fmt.Errorf("%s: expected a name, got %T", key, v)
	}

	iri, err := b.iri(name)
	if err != nil {
		return model.Entity{}, fmt.Errorf("%s: %w", key, err)
	}
	return model.Entity{Type: et, IRI: iri}, nil
}

// literal reads n[key] as a literal. Scalars pick their datatype from
// their decoded type; a sibling lang or datatype key overrides it.
func (b *builder) literal(n node, key string) (model.Literal, error) {
	v, err := n.get(key)
	if err != nil {
		return model.Literal{}, err
	}
	if inner, ok := asNode(v); ok {
		return b.literal(inner, "value")
	}

	lit, err := scalarLiteral(v)
	if err != nil {
		return model.Literal{}, fmt.Errorf("%s: %w", key, err)
	}

	if lang := n.optionalStr("lang"); lang != "" {
		lit.Lang = lang
		lit.Datatype = ""
	}
	if dt := n.optionalStr("datatype"); dt != "" {
		iri, err := b.iri(dt)
		if err != nil {
			return model.Literal{}, fmt.Errorf("datatype: %w", err)
		}
		lit.Datatype = iri
	}
	return lit, nil
}

func scalarLiteral(v interface{}) (model.Literal, error) {
	switch x := v.(type) {
	case string:
		return model.StringLiteral(x), nil
	case bool:
		return model.Literal{Lexical: strconv.FormatBool(x), Datatype: model.XSDBoolean}, nil
	case int:
		return model.Literal{Lexical: strconv.Itoa(x), Datatype: model.XSDInteger}, nil
	case int64:
		return model.Literal{Lexical: strconv.FormatInt(x, 10), Datatype: model.XSDInteger}, nil
	case uint64:
		return model.Literal{Lexical: strconv.FormatUint(x, 10), Datatype: model.XSDInteger}, nil
	case float64:
		return model.Literal{Lexical: strconv.FormatFloat(x, 'g', -1, 64), Datatype: xsdDouble}, nil
	default:
		return model.Literal{}, fmt.Errorf("unsupported literal value %T", v)
	}
}
