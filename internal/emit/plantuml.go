package emit

import (
	"fmt"
	"strings"

	"github.com/srcarch/springscan/internal/analyzer"
	"github.com/srcarch/springscan/internal/deps"
	"github.com/srcarch/springscan/internal/spring"
)

const c4ContextInclude = "!include https://raw.githubusercontent.com/plantuml-stdlib/C4-PlantUML/master/C4_Context.puml"
const c4ContainerInclude = "!include https://raw.githubusercontent.com/plantuml-stdlib/C4-PlantUML/master/C4_Container.puml"
const c4ComponentInclude = "!include https://raw.githubusercontent.com/plantuml-stdlib/C4-PlantUML/master/C4_Component.puml"

// ContextDiagram renders the C1 system-context PlantUML diagram for one
// service: a person, the system under analysis, and its external systems.
func ContextDiagram(svc *analyzer.Service) string {
	var b strings.Builder

	b.WriteString("@startuml\n")
	b.WriteString(c4ContextInclude + "\n\n")
	fmt.Fprintf(&b, "title System Context: %s\n\n", svc.Name)

	b.WriteString("Person(end_user, \"End User\", \"Uses the application\")\n")
	b.WriteString("Person(api_client, \"API Client\", \"External systems consuming APIs\")\n\n")

	id := SanitizeID(svc.Name)
	fmt.Fprintf(&b, "System(%s, \"%s\", \"Spring Boot application\")\n\n", id, svc.Name)

	writeExternalSystems(&b, svc)

	fmt.Fprintf(&b, "Rel(end_user, %s, \"Uses\", \"HTTPS\")\n", id)
	fmt.Fprintf(&b, "Rel(api_client, %s, \"Calls\", \"HTTPS/REST\")\n", id)
	fmt.Fprintf(&b, "Rel(%s, raast_system, \"Payment processing\", \"ISO8583/API\")\n", id)
	fmt.Fprintf(&b, "Rel(%s, banking_apis, \"Bank transactions\", \"SOAP/REST\")\n", id)
	writeIntegrationRels(&b, svc, id)

	b.WriteString("\n@enduml\n")
	return b.String()
}

// ContainerDiagram renders the C2 container PlantUML diagram: the service
// boundary with API/Business/Data layers plus its database.
func ContainerDiagram(svc *analyzer.Service) string {
	var b strings.Builder

	b.WriteString("@startuml\n")
	b.WriteString(c4ContainerInclude + "\n\n")
	fmt.Fprintf(&b, "title Container Architecture: %s\n\n", svc.Name)

	b.WriteString("Person(api_client, \"API Client\", \"External systems consuming APIs\")\n\n")
	writeExternalSystems(&b, svc)

	fmt.Fprintf(&b, "System_Boundary(app, \"%s\") {\n", svc.Name)
	writeLayer(&b, "api", "API Layer", svc.Controllers(), "REST Controller",
		"Component(api_placeholder, \"REST Controllers\", \"Spring MVC\", \"Handles HTTP requests\")")
	writeLayer(&b, "business", "Business Layer", svc.ComponentsOf(spring.KindService), "Business Service",
		"Component(business_placeholder, \"Business Services\", \"Spring\", \"Business logic\")")
	writeDataLayer(&b, svc)
	b.WriteString("}\n\n")

	dbType := string(svc.Database.Type)
	if dbType == "" {
		dbType = "Database"
	}
	fmt.Fprintf(&b, "ContainerDb(main_db, \"Main Database\", \"%s\", \"Primary data store\")\n\n", dbType)

	b.WriteString("Rel(api_client, api, \"API Requests\", \"HTTPS/REST\")\n")
	b.WriteString("Rel(api, business, \"Business logic delegation\")\n")
	b.WriteString("Rel(business, data, \"Data access operations\")\n")
	b.WriteString("Rel(data, main_db, \"Persistence\", \"JPA/Hibernate\")\n")
	b.WriteString("Rel(business, raast_system, \"Payment processing\", \"ISO8583/API\")\n")
	b.WriteString("Rel(business, banking_apis, \"Bank transactions\", \"SOAP/REST\")\n")
	writeIntegrationRels(&b, svc, "business")

	writeStackNote(&b, svc)
	writeEndpointNote(&b, svc)

	b.WriteString("\n@enduml\n")
	return b.String()
}

// ComponentDiagram renders the C3 component PlantUML diagram. When edges
// are present, validated relationships between known components are drawn
// and counted. It returns the diagram text and the validated count.
func ComponentDiagram(svc *analyzer.Service) (string, int) {
	var b strings.Builder

	b.WriteString("@startuml\n")
	b.WriteString(c4ComponentInclude + "\n\n")
	fmt.Fprintf(&b, "title Components: %s\n\n", svc.Name)

	fmt.Fprintf(&b, "Container_Boundary(app, \"%s\") {\n", svc.Name)

	controllers, _ := take(svc.Controllers(), sampleLimit)
	for _, c := range controllers {
		fmt.Fprintf(&b, "    Component(%s, \"%s\", \"%s\")\n", strings.ToLower(SanitizeID(c.Name)), c.Name, c.Kind.Label())
	}
	services, _ := take(svc.ComponentsOf(spring.KindService), sampleLimit)
	for _, c := range services {
		fmt.Fprintf(&b, "    Component(%s, \"%s\", \"Business Service\")\n", strings.ToLower(SanitizeID(c.Name)), c.Name)
	}
	repos, _ := take(svc.Repositories(), sampleLimit)
	for _, c := range repos {
		fmt.Fprintf(&b, "    Component(%s_repo, \"%s\", \"Repository\")\n", strings.ToLower(SanitizeID(c.Name)), c.Name)
	}
	if len(controllers)+len(services)+len(repos) == 0 {
		b.WriteString("    Component(placeholder, \"No components discovered\", \"n/a\")\n")
	}
	b.WriteString("}\n\n")

	dbType := string(svc.Database.Type)
	if dbType == "" {
		dbType = "Database"
	}
	fmt.Fprintf(&b, "ContainerDb(database, \"Database\", \"%s\", \"Stores application data\")\n\n", dbType)

	valid := writeValidatedRels(&b, svc, controllers, services, repos)

	fmt.Fprintf(&b, "\nnote right of app\n")
	fmt.Fprintf(&b, "  Components: %d\n", svc.ComponentCount())
	fmt.Fprintf(&b, "  Validated relationships: %d\n", valid)
	b.WriteString("end note\n")

	b.WriteString("\n@enduml\n")
	return b.String(), valid
}

// writeValidatedRels draws controller->service, service->repository and
// repository->database edges backed by inferred dependencies, returning
// how many were drawn.
func writeValidatedRels(b *strings.Builder, svc *analyzer.Service, controllers, services, repos []spring.Component) int {
	inSet := func(comps []spring.Component, name string) bool {
		for _, c := range comps {
			if c.Name == name {
				return true
			}
		}
		return false
	}
	lower := func(name string) string { return strings.ToLower(SanitizeID(name)) }

	valid := 0
	for _, e := range svc.ValidEdges {
		target := resolveEdgeTarget(e, svc)
		switch {
		case inSet(controllers, e.From) && inSet(services, target):
			fmt.Fprintf(b, "Rel(%s, %s, \"calls\")\n", lower(e.From), lower(target))
			valid++
		case inSet(services, e.From) && inSet(repos, target):
			fmt.Fprintf(b, "Rel(%s, %s_repo, \"uses\")\n", lower(e.From), lower(target))
			valid++
		}
	}
	for _, r := range repos {
		fmt.Fprintf(b, "Rel(%s_repo, database, \"reads/writes\")\n", lower(r.Name))
		valid++
	}
	return valid
}

// resolveEdgeTarget maps an edge target (a field or parameter identifier)
// to a known component name when possible.
func resolveEdgeTarget(e deps.Edge, svc *analyzer.Service) string {
	known := svc.KnownNames()
	if known[e.To] {
		return e.To
	}
	capitalized := strings.ToUpper(e.To[:1]) + e.To[1:]
	if known[capitalized] {
		return capitalized
	}
	return e.To
}

func writeLayer(b *strings.Builder, id, label string, comps []spring.Component, tech, placeholder string) {
	fmt.Fprintf(b, "    Container_Boundary(%s, \"%s\") {\n", id, label)
	sampled, _ := take(comps, sampleLimit)
	if len(sampled) == 0 {
		fmt.Fprintf(b, "        %s\n", placeholder)
	}
	for _, c := range sampled {
		fmt.Fprintf(b, "        Component(%s, \"%s\", \"%s\")\n", strings.ToLower(SanitizeID(c.Name)), c.Name, tech)
	}
	b.WriteString("    }\n")
}

func writeDataLayer(b *strings.Builder, svc *analyzer.Service) {
	b.WriteString("    Container_Boundary(data, \"Data Layer\") {\n")
	entities, _ := take(svc.ComponentsOf(spring.KindEntity), sampleLimit)
	for _, e := range entities {
		label := e.Name
		if e.TableName != "" {
			label = fmt.Sprintf("%s\\nTable: %s", e.Name, e.TableName)
		}
		fmt.Fprintf(b, "        Component(%s_ent, \"%s\", \"JPA Entity\")\n", strings.ToLower(SanitizeID(e.Name)), label)
	}
	repos, _ := take(svc.Repositories(), sampleLimit)
	if len(repos) == 0 && len(entities) == 0 {
		b.WriteString("        Component(data_access, \"Data Access\", \"Spring Data\", \"Direct database access\")\n")
	}
	for _, r := range repos {
		fmt.Fprintf(b, "        Component(%s_repo, \"%s\", \"Repository\")\n", strings.ToLower(SanitizeID(r.Name)), r.Name)
	}
	b.WriteString("    }\n")
}

// writeExternalSystems emits the fixed payment-domain externals plus any
// messaging integrations detected in source.
func writeExternalSystems(b *strings.Builder, svc *analyzer.Service) {
	b.WriteString("System_Ext(raast_system, \"Raast Payment System\", \"National payment infrastructure\")\n")
	b.WriteString("System_Ext(banking_apis, \"Banking APIs\", \"Financial institution services\")\n")
	for _, integ := range svc.Integrations {
		switch integ {
		case spring.IntegrationKafka:
			b.WriteString("System_Ext(kafka, \"Apache Kafka\", \"Event streaming platform\")\n")
		case spring.IntegrationRabbitMQ:
			b.WriteString("System_Ext(rabbitmq, \"RabbitMQ\", \"Message broker\")\n")
		}
	}
	b.WriteString("\n")
}

func writeIntegrationRels(b *strings.Builder, svc *analyzer.Service, from string) {
	for _, integ := range svc.Integrations {
		switch integ {
		case spring.IntegrationKafka:
			fmt.Fprintf(b, "Rel(%s, kafka, \"Event publishing\", \"Kafka Protocol\")\n", from)
		case spring.IntegrationRabbitMQ:
			fmt.Fprintf(b, "Rel(%s, rabbitmq, \"Messaging\", \"AMQP\")\n", from)
		}
	}
}

func writeStackNote(b *strings.Builder, svc *analyzer.Service) {
	b.WriteString("\nnote right of app\n")
	b.WriteString("  Technology Stack\n")
	b.WriteString("  Framework: Spring Boot\n")
	fmt.Fprintf(b, "  Build Tool: %s\n", svc.BuildTool)
	if svc.Database.Type != "" {
		fmt.Fprintf(b, "  Database: %s\n", svc.Database.Type)
	}
	if len(svc.SecurityFeatures) > 0 {
		fmt.Fprintf(b, "  Security: %s\n", strings.Join(svc.SecurityFeatures, ", "))
	}
	if len(svc.Integrations) > 0 {
		fmt.Fprintf(b, "  Integrations: %s\n", strings.Join(svc.Integrations, ", "))
	}
	b.WriteString("end note\n")
}

func writeEndpointNote(b *strings.Builder, svc *analyzer.Service) {
	if len(svc.Endpoints) == 0 {
		return
	}
	b.WriteString("\nnote left of api\n")
	b.WriteString("  Key API Endpoints\n")
	sampled, more := take(svc.Endpoints, 4)
	for _, ep := range sampled {
		fmt.Fprintf(b, "  %s %s\n", ep.Method, ep.Path)
	}
	if more > 0 {
		fmt.Fprintf(b, "  ... %d more endpoints\n", more)
	}
	b.WriteString("end note\n")
}
