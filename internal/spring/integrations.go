package spring

import (
	"regexp"
	"strings"
)

var feignClientName = regexp.MustCompile(`@FeignClient\([^)]*name\s*=\s*["']([^"']+)["']`)
var feignClientPositional = regexp.MustCompile(`@FeignClient\(["']([^"']+)["']`)

// ExtractFeignClients returns the names of services this file declares Feign
// clients for. Both the positional and name= annotation forms are matched.
func ExtractFeignClients(content string) []string {
	var clients []string
	seen := make(map[string]bool)
	for _, re := range []*regexp.Regexp{feignClientName, feignClientPositional} {
		for _, m := range re.FindAllStringSubmatch(content, -1) {
			if !seen[m[1]] {
				seen[m[1]] = true
				clients = append(clients, m[1])
			}
		}
	}
	return clients
}

// UsesHTTPClient reports whether the file references a programmatic HTTP
// client (RestTemplate or WebClient).
func UsesHTTPClient(content string) bool {
	return strings.Contains(content, "RestTemplate") || strings.Contains(content, "WebClient")
}

// Integration names for external systems referenced from source.
const (
	IntegrationKafka       = "Apache Kafka"
	IntegrationRabbitMQ    = "RabbitMQ"
	IntegrationRESTClients = "REST Clients"
)

// DetectIntegrations returns the external messaging/HTTP integrations a file
// references, by marker substrings.
func DetectIntegrations(content string) []string {
	var found []string
	if strings.Contains(content, "@KafkaListener") || strings.Contains(content, "KafkaTemplate") {
		found = append(found, IntegrationKafka)
	}
	if strings.Contains(content, "@RabbitListener") || strings.Contains(content, "RabbitTemplate") {
		found = append(found, IntegrationRabbitMQ)
	}
	if UsesHTTPClient(content) || strings.Contains(content, "@FeignClient") {
		found = append(found, IntegrationRESTClients)
	}
	return found
}

// DetectSecurityFeatures returns security mechanisms referenced in a file,
// intended to be run against *Security*.java files.
func DetectSecurityFeatures(content string) []string {
	var found []string
	if strings.Contains(content, "@EnableWebSecurity") || strings.Contains(content, "SecurityConfig") {
		found = append(found, "Spring Security")
	}
	if strings.Contains(content, "JWT") {
		found = append(found, "JWT")
	}
	if strings.Contains(content, "OAuth2") {
		found = append(found, "OAuth2")
	}
	return found
}
