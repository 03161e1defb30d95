// Package analyzer orchestrates the scan of one Spring project root:
// walking source files, classifying them, reading application
// configuration, and optionally inferring injection relationships.
package analyzer

import (
	"os"
	"sort"
	"strings"

	"github.com/srcarch/springscan/internal/deps"
	"github.com/srcarch/springscan/internal/props"
	"github.com/srcarch/springscan/internal/spring"
	"github.com/srcarch/springscan/internal/walker"
)

// Options select the optional stages of the pipeline.
type Options struct {
	Include       []string // Walker include globs.
	Exclude       []string // Walker exclude globs.
	Relationships bool     // Infer @Autowired/constructor edges.
}

// Analyzer runs the scan pipeline. One Analyzer may be reused across
// projects; all accumulation lives in the returned Service value.
type Analyzer struct {
	classifier spring.Classifier
	opts       Options
}

// New creates an Analyzer with the default marker classifier.
func New(opts Options) *Analyzer {
	return &Analyzer{classifier: spring.NewClassifier(), opts: opts}
}

type sourceFile struct {
	path     string
	relPath  string
	baseName string
}

// listSources adapts the walker output to the analyzer's needs.
func listSources(root string, include, exclude []string) ([]sourceFile, error) {
	files, err := walker.Walk(walker.Config{
		RootDir: root,
		Include: include,
		Exclude: exclude,
	})
	if err != nil {
		return nil, err
	}
	out := make([]sourceFile, 0, len(files))
	for _, f := range files {
		out = append(out, sourceFile{path: f.Path, relPath: f.RelPath, baseName: f.BaseName})
	}
	return out, nil
}

// Analyze scans a single project root and returns its descriptor.
// Per-file read failures are recorded as skips, never propagated.
func (a *Analyzer) Analyze(root string) (*Service, error) {
	svc := &Service{
		Name:       ServiceName(root),
		Path:       root,
		BuildTool:  BuildTool(root),
		Components: make(map[spring.Kind][]spring.Component),
	}

	files, err := listSources(root, a.opts.Include, a.opts.Exclude)
	if err != nil {
		return nil, err
	}
	svc.FilesScanned = len(files)

	integrations := make(map[string]bool)
	security := make(map[string]bool)
	feign := make(map[string]bool)

	for _, f := range files {
		data, err := os.ReadFile(f.path)
		if err != nil {
			svc.Skips = append(svc.Skips, spring.Skip{Path: f.relPath, Reason: err.Error()})
			continue
		}
		content := string(data)

		cls := a.classifier.Classify(f.baseName, content)
		comp := cls.Component
		comp.SourcePath = f.relPath

		if comp.Kind != spring.KindUnclassified {
			svc.Components[comp.Kind] = append(svc.Components[comp.Kind], comp)
			if a.opts.Relationships {
				svc.Edges = append(svc.Edges, deps.Extract(comp.Name, content)...)
			}
		}
		svc.Endpoints = append(svc.Endpoints, cls.Endpoints...)

		for _, client := range spring.ExtractFeignClients(content) {
			if !feign[client] {
				feign[client] = true
				svc.FeignClients = append(svc.FeignClients, client)
			}
		}
		if spring.UsesHTTPClient(content) {
			svc.HTTPClientFiles = append(svc.HTTPClientFiles, f.relPath)
		}
		for _, integ := range spring.DetectIntegrations(content) {
			integrations[integ] = true
		}
		if strings.Contains(f.baseName, "Security") {
			for _, feat := range spring.DetectSecurityFeatures(content) {
				security[feat] = true
			}
		}
	}

	svc.Integrations = sortedKeys(integrations)
	svc.SecurityFeatures = sortedKeys(security)

	if a.opts.Relationships {
		svc.ValidEdges = deps.Validate(svc.Edges, svc.KnownNames())
	}

	cfg := props.Read(root)
	svc.Port = cfg.Port()
	svc.Database = cfg.InferDatabase()

	return svc, nil
}

func sortedKeys(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
