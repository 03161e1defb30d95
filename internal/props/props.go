// Package props reads Spring Boot application configuration files
// (.properties and .yml) and merges them into one flat dotted-key mapping.
package props

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Properties is a flattened configuration mapping: nested YAML keys are
// joined with "." and all values are stringified. Last writer wins on
// key collision.
type Properties map[string]string

// configFilePatterns are the filename globs recognized as application
// configuration. config.properties is a legacy format still seen in
// older projects.
var configFilePatterns = []string{
	"application*.properties",
	"application*.yml",
	"application*.yaml",
	"config.properties",
}

// buildDirs are directory names whose contents are copies of the source
// configuration and must not be merged.
var buildDirs = map[string]bool{
	"target":       true,
	"build":        true,
	"node_modules": true,
	".git":         true,
}

// Read locates all configuration files under root and merges them into one
// Properties map. Candidate files are visited in sorted path order so the
// merge result is deterministic. Unreadable or malformed files contribute
// nothing; they never fail the read.
func Read(root string) Properties {
	props := make(Properties)

	var candidates []string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		name := d.Name()
		if d.IsDir() {
			if buildDirs[name] || strings.HasPrefix(name, ".") && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		for _, pattern := range configFilePatterns {
			if ok, _ := filepath.Match(pattern, name); ok {
				candidates = append(candidates, path)
				break
			}
		}
		return nil
	})
	sort.Strings(candidates)

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		switch filepath.Ext(path) {
		case ".yml", ".yaml":
			mergeYAML(props, data)
		default:
			mergeProperties(props, string(data))
		}
	}
	return props
}

// mergeProperties parses Java .properties text: blank lines and lines
// starting with # or ! are skipped, the rest split on the first "=" with
// key and value trimmed.
func mergeProperties(props Properties, content string) {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		props[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
}

// mergeYAML loads YAML into a nested map and flattens it with dotted keys.
// Malformed YAML is ignored.
func mergeYAML(props Properties, data []byte) {
	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return
	}
	flatten(props, "", tree)
}

func flatten(props Properties, prefix string, node map[string]any) {
	for key, value := range node {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := value.(type) {
		case map[string]any:
			flatten(props, full, v)
		case nil:
			// Empty mapping value; nothing to record.
		default:
			props[full] = fmt.Sprintf("%v", v)
		}
	}
}
