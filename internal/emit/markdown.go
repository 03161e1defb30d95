package emit

import (
	"fmt"
	"strings"

	"github.com/srcarch/springscan/internal/analyzer"
	"github.com/srcarch/springscan/internal/spring"
)

// MarkdownReport renders the analysis report covering all scanned services.
// Brief detail lists counts only; deep detail adds sampled component names
// and endpoints.
func MarkdownReport(services []*analyzer.Service, detail Detail) string {
	var b strings.Builder

	b.WriteString("# Spring Boot Architecture Analysis Report\n\n")
	fmt.Fprintf(&b, "Total Services Found: %d\n", len(services))

	if len(services) == 0 {
		b.WriteString("\nNo Spring Boot projects were discovered under the source path. ")
		b.WriteString("Zero components found.\n")
		return b.String()
	}

	for _, svc := range services {
		fmt.Fprintf(&b, "\n## %s\n\n", svc.Name)
		fmt.Fprintf(&b, "- **Path**: %s\n", svc.Path)
		fmt.Fprintf(&b, "- **Build Tool**: %s\n", svc.BuildTool)
		fmt.Fprintf(&b, "- **Port**: %s\n", svc.Port)
		fmt.Fprintf(&b, "- **Files Scanned**: %d\n", svc.FilesScanned)
		fmt.Fprintf(&b, "- **Components Found**: %d\n", svc.ComponentCount())

		if svc.Database.Type != "" {
			fmt.Fprintf(&b, "- **Database**: %s\n", svc.Database.Type)
			if svc.Database.URL != "" {
				fmt.Fprintf(&b, "  - URL: %s\n", svc.Database.URL)
			}
		}

		for _, kind := range spring.Kinds {
			comps := svc.ComponentsOf(kind)
			if len(comps) == 0 {
				continue
			}
			fmt.Fprintf(&b, "- **%s**: %d\n", kind.Plural(), len(comps))
			if detail != DetailBrief {
				writeComponentSamples(&b, comps)
			}
		}

		fmt.Fprintf(&b, "- **Endpoints Found**: %d\n", len(svc.Endpoints))
		if detail != DetailBrief {
			sampled, more := take(svc.Endpoints, sampleLimit)
			for _, ep := range sampled {
				fmt.Fprintf(&b, "  - %s %s (%s)\n", ep.Method, ep.Path, ep.Controller)
			}
			if more > 0 {
				fmt.Fprintf(&b, "  - ... and %d more\n", more)
			}
		}

		if len(svc.FeignClients) > 0 {
			fmt.Fprintf(&b, "- **Feign Clients**: %s\n", strings.Join(svc.FeignClients, ", "))
		}
		if len(svc.HTTPClientFiles) > 0 {
			fmt.Fprintf(&b, "- **HTTP Client Files**: %d files\n", len(svc.HTTPClientFiles))
		}
		if len(svc.Integrations) > 0 {
			fmt.Fprintf(&b, "- **Integrations**: %s\n", strings.Join(svc.Integrations, ", "))
		}
		if len(svc.SecurityFeatures) > 0 {
			fmt.Fprintf(&b, "- **Security**: %s\n", strings.Join(svc.SecurityFeatures, ", "))
		}
		if len(svc.Skips) > 0 {
			fmt.Fprintf(&b, "- **Skipped Files**: %d\n", len(svc.Skips))
			if detail != DetailBrief {
				sampled, more := take(svc.Skips, sampleLimit)
				for _, s := range sampled {
					fmt.Fprintf(&b, "  - %s: %s\n", s.Path, s.Reason)
				}
				if more > 0 {
					fmt.Fprintf(&b, "  - ... and %d more\n", more)
				}
			}
		}
	}

	return b.String()
}

func writeComponentSamples(b *strings.Builder, comps []spring.Component) {
	sampled, more := take(comps, sampleLimit)
	names := make([]string, 0, len(sampled))
	for _, c := range sampled {
		name := c.Name
		if c.Inferred {
			name += " (inferred)"
		}
		if c.TableName != "" {
			name += fmt.Sprintf(" (table: %s)", c.TableName)
		}
		names = append(names, name)
	}
	fmt.Fprintf(b, "  - %s", strings.Join(names, ", "))
	if more > 0 {
		fmt.Fprintf(b, " ...and %d more", more)
	}
	b.WriteString("\n")
}

// ValidationReport renders the per-service validation report comparing what
// was discovered in source against what the component diagram shows.
func ValidationReport(svc *analyzer.Service, validRelationships int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# C4 Diagram Validation Report for %s\n\n", svc.Name)
	b.WriteString("## Analysis Summary\n\n")
	fmt.Fprintf(&b, "- Files Analyzed: %d\n", svc.FilesScanned)
	fmt.Fprintf(&b, "- Spring Components Found: %d\n", svc.ComponentCount())
	fmt.Fprintf(&b, "- JPA Entities: %d\n", len(svc.ComponentsOf(spring.KindEntity)))
	fmt.Fprintf(&b, "- Dependencies Found: %d\n", len(svc.Edges))
	fmt.Fprintf(&b, "- Validated Relationships in Diagram: %d\n", validRelationships)

	b.WriteString("\n## Component Breakdown\n")
	for _, kind := range spring.Kinds {
		comps := svc.ComponentsOf(kind)
		if len(comps) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n### %s (%d)\n\n", kind.Plural(), len(comps))
		for _, c := range comps {
			marker := ""
			if c.Inferred {
				marker = " (inferred)"
			}
			fmt.Fprintf(&b, "- %s%s (`%s`)\n", c.Name, marker, c.SourcePath)
		}
	}

	b.WriteString("\n## Validation Method\n\n")
	b.WriteString("Relationships are derived from dependency-injection analysis:\n\n")
	b.WriteString("- `@Autowired` field declarations\n")
	b.WriteString("- Constructor parameter injection\n")
	b.WriteString("- Spring component naming patterns\n")
	b.WriteString("\nEdges whose target does not resolve to a discovered component are\n")
	b.WriteString("excluded from the diagram but retained in the JSON dump.\n")

	return b.String()
}
