package emit

import (
	"strings"
	"testing"

	"github.com/srcarch/springscan/internal/analyzer"
	"github.com/srcarch/springscan/internal/deps"
	"github.com/srcarch/springscan/internal/props"
	"github.com/srcarch/springscan/internal/spring"
)

func sampleService() *analyzer.Service {
	return &analyzer.Service{
		Name:      "payment-service",
		Path:      "/workspace/input/payment-service",
		BuildTool: "Maven",
		Port:      "8080",
		Database:  props.Database{Type: props.DatabasePostgreSQL, URL: "jdbc:postgresql://db/pay"},
		Components: map[spring.Kind][]spring.Component{
			spring.KindRestController: {
				{Name: "PaymentController", Kind: spring.KindRestController, SourcePath: "src/PaymentController.java"},
			},
			spring.KindService: {
				{Name: "PaymentService", Kind: spring.KindService, SourcePath: "src/PaymentService.java"},
			},
			spring.KindJpaRepository: {
				{Name: "PaymentRepository", Kind: spring.KindJpaRepository, SourcePath: "src/PaymentRepository.java"},
			},
			spring.KindEntity: {
				{Name: "Payment", Kind: spring.KindEntity, SourcePath: "src/Payment.java", TableName: "payments"},
			},
		},
		Endpoints: []spring.Endpoint{
			{Method: "POST", Path: "/api/v1/pay", Controller: "PaymentController"},
		},
		Edges: []deps.Edge{
			{From: "PaymentController", To: "paymentService", Kind: deps.EdgeAutowired},
			{From: "PaymentService", To: "paymentRepository", Kind: deps.EdgeConstructor},
		},
		ValidEdges: []deps.Edge{
			{From: "PaymentController", To: "paymentService", Kind: deps.EdgeAutowired},
			{From: "PaymentService", To: "paymentRepository", Kind: deps.EdgeConstructor},
		},
		FilesScanned: 4,
	}
}

func emptyService() *analyzer.Service {
	return &analyzer.Service{
		Name:       "empty-service",
		Path:       "/workspace/input/empty-service",
		BuildTool:  "Unknown",
		Port:       "unknown",
		Components: map[spring.Kind][]spring.Component{},
	}
}

func TestContainerDiagramWellFormed(t *testing.T) {
	out := ContainerDiagram(sampleService())

	for _, want := range []string{
		"@startuml",
		"@enduml",
		"title Container Architecture: payment-service",
		`System_Boundary(app, "payment-service")`,
		`Component(paymentcontroller, "PaymentController", "REST Controller")`,
		`Component(paymentservice, "PaymentService", "Business Service")`,
		`Component(paymentrepository_repo, "PaymentRepository", "Repository")`,
		`ContainerDb(main_db, "Main Database", "PostgreSQL", "Primary data store")`,
		"Table: payments",
		"POST /api/v1/pay",
		"Build Tool: Maven",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("container diagram missing %q", want)
		}
	}
}

func TestContainerDiagramEmptyServiceHasPlaceholders(t *testing.T) {
	out := ContainerDiagram(emptyService())

	if !strings.Contains(out, "@startuml") || !strings.Contains(out, "@enduml") {
		t.Fatal("diagram not well-formed")
	}
	for _, want := range []string{
		`Component(api_placeholder, "REST Controllers", "Spring MVC", "Handles HTTP requests")`,
		`Component(business_placeholder, "Business Services", "Spring", "Business logic")`,
		`Component(data_access, "Data Access", "Spring Data", "Direct database access")`,
		`ContainerDb(main_db, "Main Database", "Database", "Primary data store")`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("empty diagram missing placeholder %q", want)
		}
	}
}

func TestContextDiagramExternalSystems(t *testing.T) {
	svc := sampleService()
	svc.Integrations = []string{spring.IntegrationKafka}
	out := ContextDiagram(svc)

	for _, want := range []string{
		`System(payment_service, "payment-service", "Spring Boot application")`,
		`System_Ext(raast_system, "Raast Payment System", "National payment infrastructure")`,
		`System_Ext(kafka, "Apache Kafka", "Event streaming platform")`,
		`Rel(payment_service, kafka, "Event publishing", "Kafka Protocol")`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("context diagram missing %q", want)
		}
	}
}

func TestComponentDiagramValidatedRelationships(t *testing.T) {
	out, valid := ComponentDiagram(sampleService())

	// controller->service, service->repo, repo->database.
	if valid != 3 {
		t.Errorf("valid = %d, want 3", valid)
	}
	for _, want := range []string{
		`Rel(paymentcontroller, paymentservice, "calls")`,
		`Rel(paymentservice, paymentrepository_repo, "uses")`,
		`Rel(paymentrepository_repo, database, "reads/writes")`,
		"Validated relationships: 3",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("component diagram missing %q", want)
		}
	}
}

func TestComponentDiagramEmptyService(t *testing.T) {
	out, valid := ComponentDiagram(emptyService())
	if valid != 0 {
		t.Errorf("valid = %d, want 0", valid)
	}
	if !strings.Contains(out, `Component(placeholder, "No components discovered", "n/a")`) {
		t.Error("missing placeholder component")
	}
}
