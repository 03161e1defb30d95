package emit

import (
	"fmt"
	"strings"

	"github.com/srcarch/springscan/internal/analyzer"
	"github.com/srcarch/springscan/internal/spring"
)

// StructurizrDSL renders one workspace covering every scanned service:
// a softwareSystem per service (plus its database), "uses" relationships
// from Feign clients, a system landscape view, and a systemContext view
// per service. Relationship targets may dangle when a Feign client names
// a service outside the scanned set; the DSL still renders them.
func StructurizrDSL(services []*analyzer.Service) string {
	var b strings.Builder

	b.WriteString("workspace {\n")
	b.WriteString("    model {\n")
	b.WriteString("        user = person \"User\" {\n")
	b.WriteString("            description \"System User\"\n")
	b.WriteString("        }\n\n")

	declared := make(map[string]bool)
	var ids []string
	for _, svc := range services {
		id := SanitizeID(svc.Name)
		ids = append(ids, id)
		declared[id] = true

		fmt.Fprintf(&b, "        %s = softwareSystem \"%s\" {\n", id, svc.Name)
		b.WriteString("            description \"Spring Boot Microservice\"\n")
		b.WriteString("            tags \"Microservice\"\n")
		writeContainers(&b, svc)
		b.WriteString("        }\n")

		if svc.Database.Type != "" {
			dbID := id + "_db"
			declared[dbID] = true
			fmt.Fprintf(&b, "        %s = softwareSystem \"%s %s\" {\n", dbID, svc.Name, svc.Database.Type)
			fmt.Fprintf(&b, "            description \"%s Database\"\n", svc.Database.Type)
			b.WriteString("            tags \"Database\"\n")
			b.WriteString("        }\n")
			fmt.Fprintf(&b, "        %s -> %s \"Reads/Writes\"\n", id, dbID)
		}
	}

	b.WriteString("\n")
	for _, svc := range services {
		from := SanitizeID(svc.Name)
		for _, client := range svc.FeignClients {
			to := SanitizeID(client)
			if !declared[to] {
				// Dangling target: declare a stub system so the DSL stays valid.
				declared[to] = true
				fmt.Fprintf(&b, "        %s = softwareSystem \"%s\" {\n", to, client)
				b.WriteString("            description \"External service\"\n")
				b.WriteString("            tags \"External\"\n")
				b.WriteString("        }\n")
			}
			fmt.Fprintf(&b, "        %s -> %s \"Uses\" \"Feign Client\"\n", from, to)
		}
	}

	b.WriteString("    }\n\n")
	b.WriteString("    views {\n")
	b.WriteString("        systemLandscape \"SystemLandscape\" {\n")
	b.WriteString("            include *\n")
	b.WriteString("            autolayout lr\n")
	b.WriteString("        }\n\n")

	for _, id := range ids {
		fmt.Fprintf(&b, "        systemContext %s \"SystemContext_%s\" {\n", id, id)
		b.WriteString("            include *\n")
		b.WriteString("            autolayout lr\n")
		b.WriteString("        }\n\n")
	}

	b.WriteString("        styles {\n")
	b.WriteString("            element \"Microservice\" {\n")
	b.WriteString("                background #1168bd\n")
	b.WriteString("                color #ffffff\n")
	b.WriteString("            }\n")
	b.WriteString("            element \"Database\" {\n")
	b.WriteString("                shape Cylinder\n")
	b.WriteString("                background #438dd5\n")
	b.WriteString("                color #ffffff\n")
	b.WriteString("            }\n")
	b.WriteString("        }\n")
	b.WriteString("    }\n")
	b.WriteString("}\n")
	return b.String()
}

// writeContainers emits the layered container/component structure of one
// service inside its softwareSystem block.
func writeContainers(b *strings.Builder, svc *analyzer.Service) {
	layers := []struct {
		name  string
		desc  string
		tech  string
		comps []componentEntry
	}{
		{"API Layer", "HTTP endpoints", "Spring MVC", entries(svc.Controllers(), "REST Controller")},
		{"Business Layer", "Business logic", "Spring", entries(svc.ComponentsOf(spring.KindService), "Service")},
		{"Data Layer", "Persistence", "Spring Data", entries(svc.Repositories(), "Repository")},
	}

	for _, layer := range layers {
		if len(layer.comps) == 0 {
			continue
		}
		fmt.Fprintf(b, "            container \"%s\" \"%s\" \"%s\" {\n", layer.name, layer.desc, layer.tech)
		sampled, _ := take(layer.comps, sampleLimit)
		for _, c := range sampled {
			fmt.Fprintf(b, "                component \"%s\" \"%s\" \"Java\"\n", c.name, c.desc)
		}
		b.WriteString("            }\n")
	}
}

type componentEntry struct {
	name string
	desc string
}

func entries(comps []spring.Component, desc string) []componentEntry {
	out := make([]componentEntry, 0, len(comps))
	for _, c := range comps {
		out = append(out, componentEntry{name: c.Name, desc: desc})
	}
	return out
}
