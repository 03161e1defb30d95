// Package deps infers dependency-injection edges between classified
// components from @Autowired fields and constructor parameters.
//
// Extraction is regex-based and intentionally approximate: annotated or
// multi-generic constructor parameters may mis-extract. Edges are advisory
// and may dangle; callers that need referential integrity should use
// Validate.
package deps

import (
	"regexp"
	"strings"
)

// EdgeKind distinguishes how a dependency was injected.
type EdgeKind string

const (
	EdgeAutowired   EdgeKind = "autowired"
	EdgeConstructor EdgeKind = "constructor"
)

// Edge is one directed "uses" relationship. To names the injected field or
// parameter identifier and may not resolve to any known component.
type Edge struct {
	From string   `json:"from"`
	To   string   `json:"to"`
	Kind EdgeKind `json:"type"`
}

// autowiredField matches an @Autowired field declaration and captures the
// field identifier.
var autowiredField = regexp.MustCompile(`@Autowired\s+(?:private|protected|public)\s+\w+\s+(\w+);`)

// Extract returns the injection edges declared in one class's source text.
// sourceClass is the enclosing class name, used both as the edge origin and
// to locate its constructor.
func Extract(sourceClass, content string) []Edge {
	var edges []Edge

	for _, m := range autowiredField.FindAllStringSubmatch(content, -1) {
		edges = append(edges, Edge{From: sourceClass, To: m[1], Kind: EdgeAutowired})
	}

	edges = append(edges, constructorEdges(sourceClass, content)...)
	return edges
}

// constructorEdges captures parameter identifiers from a constructor named
// after the enclosing class. The parameter list is split naively on commas,
// so generics containing commas will mis-extract; accepted limitation.
func constructorEdges(sourceClass string, content string) []Edge {
	ctor := regexp.MustCompile(`public\s+` + regexp.QuoteMeta(sourceClass) + `\s*\(([^)]*)\)`)
	m := ctor.FindStringSubmatch(content)
	if m == nil || strings.TrimSpace(m[1]) == "" {
		return nil
	}

	var edges []Edge
	for _, param := range strings.Split(m[1], ",") {
		fields := strings.Fields(strings.TrimSpace(param))
		if len(fields) < 2 {
			continue
		}
		// Last token is the parameter name.
		name := fields[len(fields)-1]
		edges = append(edges, Edge{From: sourceClass, To: name, Kind: EdgeConstructor})
	}
	return edges
}

// Validate returns the subset of edges whose target resolves to a known
// component name. Matching is case-insensitive on the first letter so that
// a field named paymentService resolves to the PaymentService class.
func Validate(edges []Edge, known map[string]bool) []Edge {
	var valid []Edge
	for _, e := range edges {
		if known[e.To] || known[capitalize(e.To)] {
			valid = append(valid, e)
		}
	}
	return valid
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
