package analyzer

import (
	"github.com/srcarch/springscan/internal/deps"
	"github.com/srcarch/springscan/internal/props"
	"github.com/srcarch/springscan/internal/spring"
)

// Service is the full analysis result for one scanned project root.
// All fields are populated during a single synchronous scan; nothing
// survives across projects or runs.
type Service struct {
	Name             string                             `json:"name"`
	Path             string                             `json:"path"`
	BuildTool        string                             `json:"build_tool"`
	Port             string                             `json:"port"`
	Database         props.Database                     `json:"database"`
	Components       map[spring.Kind][]spring.Component `json:"components"`
	Endpoints        []spring.Endpoint                  `json:"endpoints"`
	FeignClients     []string                           `json:"feign_clients,omitempty"`
	HTTPClientFiles  []string                           `json:"http_client_files,omitempty"`
	Integrations     []string                           `json:"integrations,omitempty"`
	SecurityFeatures []string                           `json:"security_features,omitempty"`
	Edges            []deps.Edge                        `json:"dependencies,omitempty"`
	ValidEdges       []deps.Edge                        `json:"validated_dependencies,omitempty"`
	Skips            []spring.Skip                      `json:"skipped_files,omitempty"`
	FilesScanned     int                                `json:"files_scanned"`
}

// ComponentCount returns the total number of classified components.
func (s *Service) ComponentCount() int {
	n := 0
	for _, comps := range s.Components {
		n += len(comps)
	}
	return n
}

// ComponentsOf returns the components of one kind, never nil.
func (s *Service) ComponentsOf(kind spring.Kind) []spring.Component {
	return s.Components[kind]
}

// Controllers returns REST and MVC controllers combined, REST first.
func (s *Service) Controllers() []spring.Component {
	out := append([]spring.Component{}, s.Components[spring.KindRestController]...)
	return append(out, s.Components[spring.KindMvcController]...)
}

// Repositories returns plain and JPA repositories combined.
func (s *Service) Repositories() []spring.Component {
	out := append([]spring.Component{}, s.Components[spring.KindRepository]...)
	return append(out, s.Components[spring.KindJpaRepository]...)
}

// KnownNames returns the set of all classified component names, used to
// validate inferred dependency edges.
func (s *Service) KnownNames() map[string]bool {
	known := make(map[string]bool)
	for _, comps := range s.Components {
		for _, c := range comps {
			known[c.Name] = true
		}
	}
	return known
}
