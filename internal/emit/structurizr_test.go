package emit

import (
	"strings"
	"testing"

	"github.com/srcarch/springscan/internal/analyzer"
	"github.com/srcarch/springscan/internal/props"
	"github.com/srcarch/springscan/internal/spring"
)

func TestStructurizrDSLWorkspaceStructure(t *testing.T) {
	svc := sampleService()
	out := StructurizrDSL([]*analyzer.Service{svc})

	for _, want := range []string{
		"workspace {",
		"model {",
		`user = person "User" {`,
		`payment_service = softwareSystem "payment-service" {`,
		`tags "Microservice"`,
		`container "API Layer" "HTTP endpoints" "Spring MVC" {`,
		`component "PaymentController" "REST Controller" "Java"`,
		`container "Business Layer" "Business logic" "Spring" {`,
		`container "Data Layer" "Persistence" "Spring Data" {`,
		`payment_service_db = softwareSystem "payment-service PostgreSQL" {`,
		`payment_service -> payment_service_db "Reads/Writes"`,
		`systemLandscape "SystemLandscape" {`,
		`systemContext payment_service "SystemContext_payment_service" {`,
		`element "Database" {`,
		"shape Cylinder",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("DSL missing %q", want)
		}
	}
}

func TestStructurizrDSLFeignRelationships(t *testing.T) {
	caller := &analyzer.Service{
		Name:         "payment-service",
		Components:   map[spring.Kind][]spring.Component{},
		FeignClients: []string{"merchant-service", "fraud-service"},
	}
	callee := &analyzer.Service{
		Name:       "merchant-service",
		Components: map[spring.Kind][]spring.Component{},
	}

	out := StructurizrDSL([]*analyzer.Service{caller, callee})

	if !strings.Contains(out, `payment_service -> merchant_service "Uses" "Feign Client"`) {
		t.Error("missing relationship to scanned service")
	}
	// fraud-service is not in the scanned set, so a stub system must be
	// declared before the relationship references it.
	stub := strings.Index(out, `fraud_service = softwareSystem "fraud-service" {`)
	rel := strings.Index(out, `payment_service -> fraud_service "Uses" "Feign Client"`)
	if stub < 0 {
		t.Fatal("missing stub declaration for dangling Feign target")
	}
	if rel < 0 {
		t.Fatal("missing relationship to dangling Feign target")
	}
	if stub > rel {
		t.Error("stub declared after the relationship that references it")
	}
}

func TestStructurizrDSLNoDatabaseSkipsDBSystem(t *testing.T) {
	svc := &analyzer.Service{
		Name:       "stateless-service",
		Components: map[spring.Kind][]spring.Component{},
		Database:   props.Database{},
	}
	out := StructurizrDSL([]*analyzer.Service{svc})
	if strings.Contains(out, "stateless_service_db") {
		t.Error("database system declared for service without a database")
	}
}
