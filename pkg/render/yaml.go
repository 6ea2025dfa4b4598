package render

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yinjianfei/owlapi/pkg/logging"
	"github.com/yinjianfei/owlapi/pkg/model"
)

// YAMLRenderer writes the structure of an object as a YAML document.
// Each object becomes a single-key mapping from its kind to its parts.
type YAMLRenderer struct{}

// Render marshals the object tree
func (YAMLRenderer) Render(obj model.Object) string {
	out, err := yaml.Marshal(yamlTree(obj))
	if err != nil {
		logger := logging.GetLogger("render")
		logger.Warn().Err(err).Str("kind", obj.Kind().String()).Msg("YAML serialization failed, using default form")
		return obj.String()
	}
	return strings.TrimRight(string(out), "\n")
}

func yamlTree(obj model.Object) interface{} {
	switch v := obj.(type) {
	case model.Entity:
		return map[string]interface{}{string(v.Type): string(v.IRI)}
	case model.Literal:
		lit := map[string]interface{}{
			"value":    v.Lexical,
			"datatype": string(v.EffectiveDatatype()),
		}
		if v.Lang != "" {
			lit["lang"] = v.Lang
		}
		return map[string]interface{}{"Literal": lit}
	case model.ObjectIntersectionOf:
		return kindOf(v, yamlList(v.Operands))
	case model.ObjectUnionOf:
		return kindOf(v, yamlList(v.Operands))
	case model.ObjectComplementOf:
		return kindOf(v, yamlTree(v.Operand))
	case model.ObjectSomeValuesFrom:
		return kindOf(v, map[string]interface{}{
			"property": string(v.Property.IRI),
			"filler":   yamlTree(v.Filler),
		})
	case model.ObjectAllValuesFrom:
		return kindOf(v, map[string]interface{}{
			"property": string(v.Property.IRI),
			"filler":   yamlTree(v.Filler),
		})
	case model.Declaration:
		return kindOf(v, yamlTree(v.Entity))
	case model.SubClassOf:
		return kindOf(v, map[string]interface{}{
			"sub":   yamlTree(v.Sub),
			"super": yamlTree(v.Super),
		})
	case model.EquivalentClasses:
		return kindOf(v, yamlList(v.Classes))
	case model.ClassAssertion:
		return kindOf(v, map[string]interface{}{
			"class":      yamlTree(v.Class),
			"individual": string(v.Individual.IRI),
		})
	case model.ObjectPropertyAssertion:
		return kindOf(v, map[string]interface{}{
			"property": string(v.Property.IRI),
			"subject":  string(v.Subject.IRI),
			"object":   string(v.Object.IRI),
		})
	case model.DataPropertyAssertion:
		return kindOf(v, map[string]interface{}{
			"property": string(v.Property.IRI),
			"subject":  string(v.Subject.IRI),
			"value":    yamlTree(v.Value),
		})
	default:
		return obj.String()
	}
}

func kindOf(obj model.Object, body interface{}) map[string]interface{} {
	return map[string]interface{}{obj.Kind().String(): body}
}

func yamlList(ops []model.ClassExpression) []interface{} {
	items := make([]interface{}, len(ops))
	for i, op := range ops {
		items[i] = yamlTree(op)
	}
	return items
}

func init() {
	MustRegister(YAMLName, func() (interface{}, error) { return YAMLRenderer{}, nil })
}
