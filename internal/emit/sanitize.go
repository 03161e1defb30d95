package emit

import "regexp"

var invalidIDChars = regexp.MustCompile(`[^a-zA-Z0-9_]`)

// SanitizeID converts a name into an identifier safe for PlantUML and
// Structurizr DSL: every character outside [A-Za-z0-9_] becomes "_".
func SanitizeID(name string) string {
	if name == "" {
		return "unnamed"
	}
	return invalidIDChars.ReplaceAllString(name, "_")
}
