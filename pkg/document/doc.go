// Package document reads small ontology fragments from YAML or TOML files.
//
// A document has a prefixes table and an objects list:
//
//	prefixes:
//	  ex: http://example.org/pizza#
//	objects:
//	  - type: SubClassOf
//	    sub: ex:Margherita
//	    super: {type: ObjectSomeValuesFrom, property: ex:hasTopping, filler: ex:Tomato}
//
// A bare string where a class expression is expected names a class.
package document
