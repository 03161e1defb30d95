package spring

// Kind identifies the framework role assigned to a source file.
type Kind string

const (
	KindRestController   Kind = "rest_controller"
	KindMvcController    Kind = "mvc_controller"
	KindService          Kind = "service"
	KindRepository       Kind = "repository"
	KindJpaRepository    Kind = "jpa_repository"
	KindEntity           Kind = "entity"
	KindConfiguration    Kind = "configuration"
	KindGenericComponent Kind = "component"
	KindUnclassified     Kind = "unclassified"
)

// Kinds lists every classified kind in a stable order, used when iterating
// component collections for report and diagram output.
var Kinds = []Kind{
	KindRestController,
	KindMvcController,
	KindService,
	KindRepository,
	KindJpaRepository,
	KindEntity,
	KindConfiguration,
	KindGenericComponent,
}

// Label returns a human-readable name for the kind.
func (k Kind) Label() string {
	switch k {
	case KindRestController:
		return "REST Controller"
	case KindMvcController:
		return "MVC Controller"
	case KindService:
		return "Service"
	case KindRepository:
		return "Repository"
	case KindJpaRepository:
		return "JPA Repository"
	case KindEntity:
		return "JPA Entity"
	case KindConfiguration:
		return "Configuration"
	case KindGenericComponent:
		return "Component"
	default:
		return "Unclassified"
	}
}

// Plural returns the label used when reporting groups of components.
func (k Kind) Plural() string {
	if k == KindEntity {
		return "JPA Entities"
	}
	return k.Label() + "s"
}

// Component is one classified source file. Immutable after classification.
type Component struct {
	Name       string `json:"name"`
	Kind       Kind   `json:"kind"`
	SourcePath string `json:"file"`
	TableName  string `json:"table,omitempty"`
	Inferred   bool   `json:"inferred,omitempty"`
}

// Endpoint is one REST endpoint discovered on a controller.
type Endpoint struct {
	Method     string `json:"method"`
	Path       string `json:"path"`
	Controller string `json:"controller"`
}

// Classification is the result of classifying a single file.
type Classification struct {
	Component Component
	Endpoints []Endpoint
}

// Skip records a file that could not be classified because it could not be
// read. Skips are aggregated for diagnostics instead of silently discarded.
type Skip struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}
