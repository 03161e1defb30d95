package spring

import (
	"regexp"
	"strings"
)

// Any @RequestMapping argument list; used to find the class-level base path.
var requestMappingArgs = regexp.MustCompile(`@RequestMapping\s*\(([^)]*)\)`)

// Positional string argument and named value= argument inside a mapping
// argument list.
var positionalPath = regexp.MustCompile(`^\s*["']([^"']+)["']`)
var valuePath = regexp.MustCompile(`value\s*=\s*["']([^"']+)["']`)

// Method-level verb mappings, positional and value= forms.
var methodMapping = regexp.MustCompile(`@(Get|Post|Put|Delete|Patch)Mapping\(["']([^"']+)["']`)
var methodMappingValue = regexp.MustCompile(`@(Get|Post|Put|Delete|Patch)Mapping\([^)]*value\s*=\s*["']([^"']+)["']`)

// @RequestMapping(value = "...", method = RequestMethod.X) on a method.
var requestMappingMethod = regexp.MustCompile(`@RequestMapping\([^)]*value\s*=\s*["']([^"']+)["'][^)]*method\s*=\s*RequestMethod\.(\w+)`)

// ExtractEndpoints returns every endpoint declared in a controller file.
// The class-level base path (if any) is prefixed to each method path.
// A controller with no matching mappings contributes zero endpoints.
func ExtractEndpoints(controller, content string) []Endpoint {
	base := extractBasePath(content)

	var endpoints []Endpoint
	seen := make(map[string]bool)
	add := func(method, path string) {
		ep := Endpoint{Method: method, Path: base + path, Controller: controller}
		key := ep.Method + " " + ep.Path
		if !seen[key] {
			seen[key] = true
			endpoints = append(endpoints, ep)
		}
	}

	for _, m := range methodMapping.FindAllStringSubmatch(content, -1) {
		add(strings.ToUpper(m[1]), m[2])
	}
	for _, m := range methodMappingValue.FindAllStringSubmatch(content, -1) {
		add(strings.ToUpper(m[1]), m[2])
	}
	for _, m := range requestMappingMethod.FindAllStringSubmatch(content, -1) {
		add(strings.ToUpper(m[2]), m[1])
	}

	return endpoints
}

// extractBasePath finds the class-level @RequestMapping path: the first
// @RequestMapping whose argument list carries no method= attribute
// (those are method-level mappings). Returns "" when absent.
func extractBasePath(content string) string {
	for _, m := range requestMappingArgs.FindAllStringSubmatch(content, -1) {
		args := m[1]
		if strings.Contains(args, "method") {
			continue
		}
		if p := positionalPath.FindStringSubmatch(args); p != nil {
			return p[1]
		}
		if p := valuePath.FindStringSubmatch(args); p != nil {
			return p[1]
		}
	}
	return ""
}
