package emit

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/srcarch/springscan/internal/analyzer"
)

// AnalysisMetadata identifies one analysis run inside JSON output.
// Timestamps are deliberately omitted so identical inputs produce
// identical reports apart from the run ID.
type AnalysisMetadata struct {
	RunID       string `json:"run_id"`
	ToolVersion string `json:"tool_version"`
}

// NewMetadata creates metadata for the current run.
func NewMetadata(version string) AnalysisMetadata {
	return AnalysisMetadata{RunID: uuid.NewString(), ToolVersion: version}
}

// ServicesJSON renders the full descriptor collection as indented JSON,
// keyed by service name.
func ServicesJSON(services []*analyzer.Service) ([]byte, error) {
	byName := make(map[string]*analyzer.Service, len(services))
	for _, svc := range services {
		byName[svc.Name] = svc
	}
	return json.MarshalIndent(byName, "", "  ")
}

// projectAnalysis is the per-project JSON dump shape.
type projectAnalysis struct {
	Metadata AnalysisMetadata  `json:"metadata"`
	Service  *analyzer.Service `json:"service"`
}

// ProjectJSON renders one service descriptor with run metadata.
func ProjectJSON(svc *analyzer.Service, meta AnalysisMetadata) ([]byte, error) {
	return json.MarshalIndent(projectAnalysis{Metadata: meta, Service: svc}, "", "  ")
}
