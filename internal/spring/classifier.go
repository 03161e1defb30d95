package spring

import (
	"regexp"
	"strings"
)

// Classifier assigns a framework role to a source file based on marker
// annotations in its text. It is a best-effort heuristic over raw source,
// not a parser; callers must not assume syntactic correctness of the input.
type Classifier interface {
	Classify(baseName, content string) Classification
}

// MarkerClassifier classifies files by substring and regex markers,
// first-match-wins in a fixed rule order. A file is assigned to at most
// one kind.
type MarkerClassifier struct{}

// NewClassifier returns the default marker-based classifier.
func NewClassifier() *MarkerClassifier {
	return &MarkerClassifier{}
}

// repositoryInterfaces are Spring Data base interfaces whose presence marks
// a file as a JPA-style repository even without @Repository.
var repositoryInterfaces = []string{"JpaRepository", "CrudRepository", "MongoRepository"}

var mappingAnnotation = regexp.MustCompile(`@(Get|Post|Put|Delete|Patch|Request)Mapping`)

// Classify applies the marker rules in priority order and returns the
// resulting component plus any endpoints extracted from controller files.
// Files matching no rule come back with KindUnclassified.
func (c *MarkerClassifier) Classify(baseName, content string) Classification {
	name := strings.TrimSuffix(baseName, ".java")
	name = strings.TrimSuffix(name, ".kt")

	comp := Component{Name: name, Kind: KindUnclassified}

	switch {
	case strings.Contains(content, "@RestController"):
		comp.Kind = KindRestController
	case strings.Contains(content, "@Controller"):
		comp.Kind = KindMvcController
	case strings.Contains(content, "@Service"):
		comp.Kind = KindService
	case strings.Contains(content, "@Repository"):
		comp.Kind = KindRepository
	case containsAny(content, repositoryInterfaces):
		comp.Kind = KindJpaRepository
	case strings.Contains(content, "@Entity"):
		comp.Kind = KindEntity
		comp.TableName = extractTableName(content)
	case strings.Contains(content, "@Configuration"):
		comp.Kind = KindConfiguration
	case strings.Contains(content, "@Component"):
		comp.Kind = KindGenericComponent
	default:
		comp.Kind, comp.Inferred = inferFromName(name, content)
	}

	cls := Classification{Component: comp}
	if comp.Kind == KindRestController || comp.Kind == KindMvcController {
		cls.Endpoints = ExtractEndpoints(name, content)
	}
	return cls
}

// inferFromName applies the naming-convention fallback used when no marker
// annotation matched. Interfaces are left unclassified since the concrete
// implementation carries the annotation.
func inferFromName(name, content string) (Kind, bool) {
	isInterface := strings.Contains(content, "interface")

	switch {
	case !isInterface && hasAnySuffix(name, "Service", "ServiceImpl", "Manager", "Processor"):
		return KindService, true
	case !isInterface && hasAnySuffix(name, "Controller", "Endpoint", "Resource"):
		return KindRestController, true
	case isInterface && strings.HasSuffix(name, "Repository"):
		return KindJpaRepository, true
	case mappingAnnotation.MatchString(content):
		// HTTP-verb mappings with no other marker: treat as a controller.
		return KindRestController, true
	}
	return KindUnclassified, false
}

// tableName matches @Table(... name = "value" ...) with either quote style.
var tableName = regexp.MustCompile(`@Table\s*\([^)]*name\s*=\s*["']([^"']+)["']`)

// extractTableName pulls the table name out of an @Table annotation,
// returning "" when the entity has no explicit table mapping.
func extractTableName(content string) string {
	if m := tableName.FindStringSubmatch(content); m != nil {
		return m[1]
	}
	return ""
}

func containsAny(content string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(content, m) {
			return true
		}
	}
	return false
}

func hasAnySuffix(name string, suffixes ...string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(name, s) {
			return true
		}
	}
	return false
}
