package model

import (
	"fmt"
	"sort"
	"strings"
)

// PrefixManager maps prefix names to namespaces so that IRIs can be
// written as prefixed names ("ex:Pizza") and expanded back.
type PrefixManager struct {
	prefixes map[string]string
}

// NewPrefixManager returns a manager preloaded with the standard
// xsd and rdf prefixes
func NewPrefixManager() *PrefixManager {
	return &PrefixManager{
		prefixes: map[string]string{
			"xsd": XSDNamespace,
			"rdf": RDFNamespace,
		},
	}
}

// SetPrefix registers or replaces a prefix. The name is given without the
// trailing colon; the empty name is the default prefix.
func (pm *PrefixManager) SetPrefix(name, namespace string) {
	pm.prefixes[strings.TrimSuffix(name, ":")] = namespace
}

// Prefixes returns the registered prefix names in sorted order
func (pm *PrefixManager) Prefixes() []string {
	names := make([]string, 0, len(pm.prefixes))
	for name := range pm.prefixes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Namespace returns the namespace bound to a prefix name
func (pm *PrefixManager) Namespace(name string) (string, bool) {
	ns, ok := pm.prefixes[name]
	return ns, ok
}

// Expand turns "prefix:local" or "<full-iri>" into an IRI. A value with
// a scheme ("http://...") is taken as a full IRI.
func (pm *PrefixManager) Expand(name string) (IRI, error) {
	if strings.HasPrefix(name, "<") && strings.HasSuffix(name, ">") {
		return IRI(name[1 : len(name)-1]), nil
	}
	if strings.Contains(name, "://") {
		return IRI(name), nil
	}

	prefix, local, found := strings.Cut(name, ":")
	if !found {
		return "", fmt.Errorf("%q is neither a prefixed name nor an IRI", name)
	}
	ns, ok := pm.prefixes[prefix]
	if !ok {
		return "", fmt.Errorf("unknown prefix %q in %q", prefix, name)
	}
	return IRI(ns + local), nil
}

// ShortForm writes iri with the longest matching namespace replaced by its
// prefix, or returns the full bracketed IRI when no prefix matches.
func (pm *PrefixManager) ShortForm(iri IRI) string {
	s := string(iri)
	best, bestNS := "", ""
	for name, ns := range pm.prefixes {
		if ns == "" || !strings.HasPrefix(s, ns) {
			continue
		}
		if len(ns) > len(bestNS) || (len(ns) == len(bestNS) && name < best) {
			best, bestNS = name, ns
		}
	}
	if bestNS == "" {
		return iri.String()
	}
	return best + ":" + s[len(bestNS):]
}

// DocumentFormat names a concrete ontology syntax
type DocumentFormat string

const (
	FunctionalSyntaxFormat DocumentFormat = "FunctionalSyntax"
	ManchesterSyntaxFormat DocumentFormat = "ManchesterSyntax"
	OWLXMLFormat           DocumentFormat = "OWL/XML"
	DLSyntaxFormat         DocumentFormat = "DLSyntax"
)
